package shuffle

import (
	"errors"
	"io"
	"iter"
)

// --- Mocks and Helpers ---

var errBoom = errors.New("boom")

// countingCodec wraps a codec and counts calls.
type countingCodec[T any] struct {
	inner   Codec[T]
	encodes int
	decodes int
}

func (c *countingCodec[T]) Encode(v T, w io.Writer) error {
	c.encodes++
	return c.inner.Encode(v, w)
}

func (c *countingCodec[T]) Decode(r io.Reader) (T, error) {
	c.decodes++
	return c.inner.Decode(r)
}

// failingCodec fails every operation with err.
type failingCodec[T any] struct {
	err     error
	decodes int
}

func (c *failingCodec[T]) Encode(T, io.Writer) error { return c.err }

func (c *failingCodec[T]) Decode(io.Reader) (T, error) {
	c.decodes++
	var zero T
	return zero, c.err
}

func (c *failingCodec[T]) String() string { return "failing" }

// rejectCodec fails to encode one specific value.
type rejectCodec struct {
	UTF8
	bad string
}

func (c rejectCodec) Encode(v string, w io.Writer) error {
	if v == c.bad {
		return errBoom
	}
	return c.UTF8.Encode(v, w)
}

// singlePass yields the given values once; ranging over it again reports
// through reused instead of yielding.
func singlePass[T any](values []T, reused *bool) iter.Seq[T] {
	done := false
	return func(yield func(T) bool) {
		if done {
			*reused = true
			return
		}
		done = true
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}
