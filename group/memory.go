package group

import (
	"bytes"
	"fmt"
	"iter"
	"sync"
	"sync/atomic"

	"github.com/oy3o/shuffle"
	"github.com/zhangyunhao116/skipmap"
)

type bucket struct {
	mu     sync.Mutex
	values [][]byte
}

// Memory groups records in memory. Add is safe for concurrent use; Range must
// not overlap with Add.
type Memory[V any] struct {
	codec  shuffle.Codec[V]
	groups *skipmap.FuncMap[shuffle.ByteKey, *bucket]
	closed atomic.Bool
}

var _ Grouper[struct{}] = (*Memory[struct{}])(nil)

// NewMemory returns an empty in-memory grouper. c is attached to every
// replayed LazyValue.
func NewMemory[V any](c shuffle.Codec[V]) *Memory[V] {
	return &Memory[V]{
		codec: c,
		groups: skipmap.NewFunc[shuffle.ByteKey, *bucket](func(a, b shuffle.ByteKey) bool {
			return a.Compare(b) < 0
		}),
	}
}

func (m *Memory[V]) Add(key shuffle.ByteKey, value []byte) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if value == nil {
		return fmt.Errorf("group: %w: value for key %s", shuffle.ErrNilInput, key)
	}
	b, _ := m.groups.LoadOrStoreLazy(key, func() *bucket { return new(bucket) })
	b.mu.Lock()
	b.values = append(b.values, bytes.Clone(value))
	b.mu.Unlock()
	return nil
}

func (m *Memory[V]) Range(fn func(Group[V]) error) error {
	if m.closed.Load() {
		return ErrClosed
	}
	var err error
	m.groups.Range(func(key shuffle.ByteKey, b *bucket) bool {
		b.mu.Lock()
		values := b.values
		b.mu.Unlock()
		err = fn(shuffle.PairOf(key, lazySeq(values, m.codec)))
		return err == nil
	})
	return err
}

// Len returns the number of distinct keys.
func (m *Memory[V]) Len() int { return m.groups.Len() }

func (m *Memory[V]) Close() error {
	m.closed.Store(true)
	return nil
}

func lazySeq[V any](values [][]byte, c shuffle.Codec[V]) iter.Seq[*shuffle.LazyValue[V]] {
	return func(yield func(*shuffle.LazyValue[V]) bool) {
		for _, v := range values {
			if !yield(shuffle.NewLazyBytes(v, c)) {
				return
			}
		}
	}
}
