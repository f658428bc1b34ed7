package shuffle

import "io"

// BytesReader is the source handed to a Codec by Decode: an io.Reader over a
// byte slice that also supports ReadByte and WriteTo, so codecs that probe
// for those interfaces get the fast path.
type BytesReader struct {
	B []byte // source slice, never modified
	N int    // current read position
}

// NewBytesReader creates a new BytesReader.
func NewBytesReader(b []byte) *BytesReader {
	return &BytesReader{B: b}
}

// Read implements the [io.Reader] interface.
func (r *BytesReader) Read(p []byte) (int, error) {
	if r.N >= len(r.B) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, r.B[r.N:])
	r.N += n
	return n, nil
}

// ReadByte implements the [io.ByteReader] interface.
func (r *BytesReader) ReadByte() (byte, error) {
	if r.N >= len(r.B) {
		return 0, io.EOF
	}
	b := r.B[r.N]
	r.N++
	return b, nil
}

// WriteTo implements the [io.WriterTo] interface for efficiency.
func (r *BytesReader) WriteTo(w io.Writer) (int64, error) {
	if r.N >= len(r.B) {
		return 0, nil
	}

	b := r.B[r.N:]
	n, err := w.Write(b)
	if n < 0 || n > len(b) {
		return 0, ErrInvalidRead
	}
	r.N += n
	if err == nil && n < len(b) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}
