package shuffle

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Reader simplifies reading binary fields inside a Codec's Decode. It never
// reads past what a field needs, so several codecs can share one stream. It
// tracks the bytes read and latches the first error; subsequent reads become
// no-ops.
type Reader struct {
	r     io.Reader
	count int64 // total bytes read
	err   error // first error encountered.
	order binary.ByteOrder
}

// NewReader wraps r. The byte order defaults to Order.
func NewReader(r io.Reader) (*Reader, error) {
	if r == nil {
		return nil, ErrNilIO
	}
	if br, ok := r.(*Reader); ok {
		return &Reader{r: br.r, order: br.order}, nil
	}
	return &Reader{r: r, order: Order}, nil
}

// WithByteOrder allows setting a custom byte order and returns
// the configured Reader for chaining.
func (r *Reader) WithByteOrder(order binary.ByteOrder) *Reader {
	r.order = order
	return r
}

// Read implements the io.Reader interface.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n, err := r.r.Read(p)
	if n < 0 || n > len(p) {
		r.setError(ErrInvalidRead)
		return 0, r.err
	}
	r.count += int64(n)
	r.setError(err)
	return n, r.err
}

func (r *Reader) Count() int64 { return r.count }
func (r *Reader) Err() error   { return r.err }

// setError records the first non-nil error.
func (r *Reader) setError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// Result returns the total bytes read and the final error state.
func (r *Reader) Result() (int64, error) {
	return r.count, r.err
}

// readFull is an internal helper to read an exact number of bytes.
func (r *Reader) readFull(n int) []byte {
	if r.err != nil {
		return nil
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(r.r, buf)
	r.count += int64(read)
	if err != nil {
		if err == io.EOF && n > 0 {
			// To provide a more specific error for callers;
			// a partial read is different from a clean end-of-stream.
			r.err = io.ErrUnexpectedEOF
		} else {
			r.err = err
		}
		return nil
	}
	return buf
}

// ReadBytes reads n bytes and returns a new byte slice.
func (r *Reader) ReadBytes(n int) []byte {
	if n < 0 {
		r.setError(ErrInvalidRead)
		return nil
	}
	return r.readFull(n)
}

// ReadLenBytes reads a uint32 length prefix followed by that many bytes, the
// inverse of Writer.WriteLenBytes. limit bounds the accepted length.
func (r *Reader) ReadLenBytes(limit int) []byte {
	var n uint32
	r.ReadUint32(&n)
	if r.err != nil {
		return nil
	}
	if int64(n) > int64(limit) {
		r.setError(fmt.Errorf("%w: %d > %d", ErrFieldTooLarge, n, limit))
		return nil
	}
	return r.ReadBytes(int(n))
}

// --- Primitive Read Operations ---

func (r *Reader) ReadUint8(dest *uint8) {
	buf := r.readFull(1)
	if r.err == nil {
		*dest = buf[0]
	}
}

func (r *Reader) ReadUint16(dest *uint16) {
	buf := r.readFull(2)
	if r.err == nil {
		*dest = r.order.Uint16(buf)
	}
}

func (r *Reader) ReadUint32(dest *uint32) {
	buf := r.readFull(4)
	if r.err == nil {
		*dest = r.order.Uint32(buf)
	}
}

func (r *Reader) ReadUint64(dest *uint64) {
	buf := r.readFull(8)
	if r.err == nil {
		*dest = r.order.Uint64(buf)
	}
}
