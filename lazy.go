package shuffle

import "io"

type lazyState uint8

const (
	decoded lazyState = iota
	pending
	failed
)

// LazyValue carries a value across a shuffle without decoding it until a
// consumer asks for it. It is either Decoded (holds the value) or Pending
// (holds raw bytes and the codec that produced them). The first GetOrDecode on
// a Pending value decodes once and caches the result; Decoded never reverts.
//
// A LazyValue belongs to a single consumer at a time. It does no locking, and
// sharing one instance between goroutines without synchronization is a race.
type LazyValue[T any] struct {
	state lazyState
	value T
	raw   []byte
	codec Codec[T]
	err   error
}

var _ Marshaler = (*LazyValue[struct{}])(nil)

// NewLazyValue wraps an already decoded value. c is kept only to serialize the
// wrapper later (MarshalBinary, WriteTo) and may be nil if that never happens.
func NewLazyValue[T any](v T, c Codec[T]) *LazyValue[T] {
	return &LazyValue[T]{state: decoded, value: v, codec: c}
}

// NewLazyBytes wraps raw bytes produced by c. data is not copied; the caller
// must not modify it afterwards.
func NewLazyBytes[T any](data []byte, c Codec[T]) *LazyValue[T] {
	return &LazyValue[T]{state: pending, raw: data, codec: c}
}

// GetOrDecode returns the value, decoding it on the first call if needed.
//
// The codec the bytes were wrapped with is used for decoding; c is used only
// when the value was wrapped without one, and is ignored once the value is
// cached. A failed decode is final: every later call returns the same error
// without touching a codec. Build a fresh LazyValue to retry.
func (l *LazyValue[T]) GetOrDecode(c Codec[T]) (T, error) {
	switch l.state {
	case decoded:
		return l.value, nil
	case failed:
		var zero T
		return zero, l.err
	}

	codec := l.codec
	if codec == nil {
		codec = c
	}
	if codec == nil {
		return l.fail(&DecodeError{Type: typeName[T](), Codec: "<nil>", Err: ErrNoCodec})
	}

	v, err := Decode(l.raw, codec)
	if err != nil {
		return l.fail(err)
	}
	metrics.lazyDecoded()
	l.value = v
	l.raw = nil
	l.state = decoded
	return v, nil
}

func (l *LazyValue[T]) fail(err error) (T, error) {
	l.state = failed
	l.err = err
	l.raw = nil
	var zero T
	return zero, err
}

// IsDecoded reports whether the value is available without decoding.
func (l *LazyValue[T]) IsDecoded() bool { return l.state == decoded }

// MarshalBinary returns the wire form of the wrapper. Pending bytes are
// returned as they are, without decoding; a Decoded value is encoded with the
// codec it was wrapped with.
func (l *LazyValue[T]) MarshalBinary() ([]byte, error) {
	switch l.state {
	case pending:
		out := make([]byte, len(l.raw))
		copy(out, l.raw)
		return out, nil
	case failed:
		return nil, l.err
	}
	if l.codec == nil {
		return nil, &EncodeError{Type: typeName[T](), Codec: "<nil>", Err: ErrNoCodec}
	}
	return Encode(l.value, l.codec)
}

// WriteTo writes the wire form of the wrapper to w.
func (l *LazyValue[T]) WriteTo(w io.Writer) (int64, error) {
	if w == nil {
		return 0, ErrWriteToNil
	}
	if l.state == pending {
		n, err := w.Write(l.raw)
		if err == nil && n < len(l.raw) {
			err = io.ErrShortWrite
		}
		return int64(n), err
	}
	return WriteToGeneric(l, w)
}
