package codecs

import (
	"bytes"
	"fmt"
	"io"

	"github.com/linkedin/goavro/v2"
)

// Avro encodes values in Avro binary form against a fixed schema. T is the
// goavro native type of the schema: string, int64, []byte,
// map[string]any for records, and so on. Decoded []byte values never share
// memory with the input.
type Avro[T any] struct {
	codec *goavro.Codec
}

func NewAvro[T any](schema string) (*Avro[T], error) {
	c, err := goavro.NewCodec(schema)
	if err != nil {
		return nil, fmt.Errorf("codecs: avro schema: %w", err)
	}
	return &Avro[T]{codec: c}, nil
}

func (a *Avro[T]) Encode(v T, w io.Writer) error {
	b, err := a.codec.BinaryFromNative(nil, v)
	if err != nil {
		return err
	}
	return write(w, b)
}

func (a *Avro[T]) Decode(r io.Reader) (T, error) {
	var zero T
	data, err := readAll(r)
	if err != nil {
		return zero, err
	}
	native, _, err := a.codec.NativeFromBinary(bytes.Clone(data))
	if err != nil {
		return zero, err
	}
	v, ok := native.(T)
	if !ok {
		return zero, fmt.Errorf("%w: got %T, want %T", ErrNativeType, native, zero)
	}
	return v, nil
}

// Schema returns the canonical form of the schema.
func (a *Avro[T]) Schema() string { return a.codec.CanonicalSchema() }

func (a *Avro[T]) String() string { return "Avro" }
