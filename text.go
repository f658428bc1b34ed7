package shuffle

import (
	"errors"
	"io"
	"unicode/utf8"
)

// UTF8 encodes a string as its UTF-8 bytes with no length prefix; decoding
// consumes the rest of the stream. "x" encodes to [0x78].
type UTF8 struct{}

var _ Codec[string] = UTF8{}

// ErrInvalidUTF8 is returned when decoded bytes are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("shuffle: invalid UTF-8")

func (UTF8) Encode(v string, w io.Writer) error {
	if !utf8.ValidString(v) {
		return ErrInvalidUTF8
	}
	_, err := io.WriteString(w, v)
	return err
}

func (UTF8) Decode(r io.Reader) (string, error) {
	b, err := readAll(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

func (UTF8) String() string { return "UTF8" }

// Raw passes byte slices through unchanged; decoding consumes the rest of the
// stream.
type Raw struct{}

var _ Codec[[]byte] = Raw{}

func (Raw) Encode(v []byte, w io.Writer) error {
	_, err := w.Write(v)
	return err
}

func (Raw) Decode(r io.Reader) ([]byte, error) { return readAll(r) }

func (Raw) String() string { return "Raw" }
