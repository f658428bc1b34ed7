package shuffle

import (
	"encoding/binary"
	"io"
)

// Writer simplifies writing binary fields inside a Codec's Encode. It does no
// buffering of its own, tracks the bytes written and latches the first error;
// after an error, all subsequent writes become no-ops.
type Writer struct {
	w     io.Writer
	count int64 // total bytes written
	err   error // first error encountered. Subsequent writes become no-ops.
	order binary.ByteOrder
}

// NewWriter wraps w. The byte order defaults to Order.
func NewWriter(w io.Writer) (*Writer, error) {
	if w == nil {
		return nil, ErrNilIO
	}
	if bw, ok := w.(*Writer); ok {
		return &Writer{w: bw.w, order: bw.order}, nil
	}
	return &Writer{w: w, order: Order}, nil
}

// WithByteOrder allows setting a custom byte order and returns
// the configured Writer for chaining.
func (w *Writer) WithByteOrder(order binary.ByteOrder) *Writer {
	w.order = order
	return w
}

// Write implements the io.Writer interface.
func (w *Writer) Write(buf []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(buf)
	if n < 0 || n > len(buf) {
		w.setError(ErrInvalidWrite)
		return 0, w.err
	}
	w.count += int64(n)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	w.setError(err)
	return n, w.err
}

func (w *Writer) Count() int64 { return w.count }
func (w *Writer) Err() error   { return w.err }

// setError records the first non-nil error.
// This preserves the root cause of a failure chain instead of a later,
// less relevant error.
func (w *Writer) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Result returns the final count and error state.
func (w *Writer) Result() (int64, error) {
	return w.count, w.err
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(buf []byte) {
	if len(buf) == 0 || w.err != nil {
		return
	}
	_, _ = w.Write(buf)
}

// WriteLenBytes writes buf prefixed with its length as a uint32.
func (w *Writer) WriteLenBytes(buf []byte) {
	w.WriteUint32(uint32(len(buf)))
	w.WriteBytes(buf)
}

// --- Primitive Write Operations ---

func (w *Writer) WriteUint8(v uint8) {
	if w.err != nil {
		return
	}
	_, _ = w.Write([]byte{v})
}

func (w *Writer) WriteUint16(v uint16) {
	if w.err != nil {
		return
	}
	var buf [2]byte
	w.order.PutUint16(buf[:], v)
	_, _ = w.Write(buf[:])
}

func (w *Writer) WriteUint32(v uint32) {
	if w.err != nil {
		return
	}
	var buf [4]byte
	w.order.PutUint32(buf[:], v)
	_, _ = w.Write(buf[:])
}

func (w *Writer) WriteUint64(v uint64) {
	if w.err != nil {
		return
	}
	var buf [8]byte
	w.order.PutUint64(buf[:], v)
	_, _ = w.Write(buf[:])
}
