package codecs

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// CBOR encodes values with the core deterministic encoding options: map keys
// are sorted and integers use their shortest form, so equal values always
// produce equal bytes.
type CBOR[T any] struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewCBOR[T any]() (CBOR[T], error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return CBOR[T]{}, fmt.Errorf("codecs: cbor encode mode: %w", err)
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return CBOR[T]{}, fmt.Errorf("codecs: cbor decode mode: %w", err)
	}
	return CBOR[T]{enc: enc, dec: dec}, nil
}

func (c CBOR[T]) Encode(v T, w io.Writer) error {
	return c.enc.NewEncoder(w).Encode(v)
}

// Decode reads one CBOR data item; bytes after it are ignored.
func (c CBOR[T]) Decode(r io.Reader) (T, error) {
	var v T
	data, err := readAll(r)
	if err != nil {
		return v, err
	}
	if _, err := c.dec.UnmarshalFirst(data, &v); err != nil {
		return v, err
	}
	return v, nil
}

func (c CBOR[T]) String() string { return "CBOR" }
