package shuffle

import (
	"bytes"
	"encoding"
	"io"
)

// WriteToGeneric provides a generic `io.WriterTo` implementation.
// It adapts a type that can marshal to a byte slice to the streaming io.Writer interface.
func WriteToGeneric[T encoding.BinaryMarshaler](v T, w io.Writer) (int64, error) {
	buf, err := v.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	if n < 0 || n > len(buf) {
		return 0, ErrInvalidWrite
	}
	if err != nil {
		return int64(n), err
	}
	if n < len(buf) {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), nil
}

// readAll drains r into a new slice. It is the decode side of codecs whose
// encoding runs to the end of the stream, such as UTF8 and Raw.
func readAll(r io.Reader) ([]byte, error) {
	if br, ok := r.(*BytesReader); ok {
		rest := br.B[min(br.N, len(br.B)):]
		out := make([]byte, len(rest))
		copy(out, rest)
		br.N = len(br.B)
		return out, nil
	}

	buf := getScratch()
	defer putScratch(buf)
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return bytes.Clone(buf.Bytes()), nil
}
