package shuffle

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	opEncode   = "encode"
	opDecode   = "decode"
	opNilInput = "nil_input"
)

// Metrics holds the Prometheus counters updated by the bridge.
type Metrics struct {
	Encoded      prometheus.Counter
	EncodedBytes prometheus.Counter
	Decoded      prometheus.Counter
	LazyDecodes  prometheus.Counter
	Failures     *prometheus.CounterVec
}

// NewMetrics creates the bridge counters without registering them.
func NewMetrics() *Metrics {
	return &Metrics{
		Encoded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shuffle_encoded_total",
			Help: "Total number of values encoded",
		}),
		EncodedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shuffle_encoded_bytes_total",
			Help: "Total number of bytes produced by encoding",
		}),
		Decoded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shuffle_decoded_total",
			Help: "Total number of values decoded",
		}),
		LazyDecodes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shuffle_lazy_decodes_total",
			Help: "Total number of pending lazy values decoded on first access",
		}),
		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shuffle_failures_total",
				Help: "Total number of failed bridge operations",
			},
			[]string{"op"},
		),
	}
}

// RegisterMetrics registers a fresh set of counters with reg and makes the
// bridge update them. Until it is called, the bridge records nothing.
func RegisterMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := NewMetrics()
	for _, c := range []prometheus.Collector{m.Encoded, m.EncodedBytes, m.Decoded, m.LazyDecodes, m.Failures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	metrics.current.Store(m)
	return m, nil
}

// UnregisterMetrics stops the bridge from updating counters.
func UnregisterMetrics() { metrics.current.Store(nil) }

type metricsHook struct {
	current atomic.Pointer[Metrics]
}

var metrics metricsHook

func (h *metricsHook) encoded(n int) {
	if m := h.current.Load(); m != nil {
		m.Encoded.Inc()
		m.EncodedBytes.Add(float64(n))
	}
}

func (h *metricsHook) decoded() {
	if m := h.current.Load(); m != nil {
		m.Decoded.Inc()
	}
}

func (h *metricsHook) lazyDecoded() {
	if m := h.current.Load(); m != nil {
		m.LazyDecodes.Inc()
	}
}

func (h *metricsHook) failure(op string) {
	if m := h.current.Load(); m != nil {
		m.Failures.WithLabelValues(op).Inc()
	}
}
