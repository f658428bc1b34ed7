package codecs

import (
	"io"

	"github.com/oy3o/shuffle"
)

// readAll drains r. The bridge always hands codecs a *shuffle.BytesReader, so
// the common case is a slice of the remaining input without copying.
func readAll(r io.Reader) ([]byte, error) {
	if br, ok := r.(*shuffle.BytesReader); ok {
		if br.N >= len(br.B) {
			return []byte{}, nil
		}
		b := br.B[br.N:]
		br.N = len(br.B)
		return b, nil
	}
	return io.ReadAll(r)
}

func write(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err == nil && n < len(b) {
		err = io.ErrShortWrite
	}
	return err
}
