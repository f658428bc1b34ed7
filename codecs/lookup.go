package codecs

import (
	"fmt"
	"io"

	"github.com/oy3o/shuffle"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Names accepted by String.
const (
	NameUTF8  = "utf8"
	NameRaw   = "raw"
	NameCBOR  = "cbor"
	NameAvro  = "avro"
	NameProto = "proto"

	CompressNone = "none"
	CompressZstd = "zstd"
)

// String returns the string codec registered under name, optionally wrapped
// in a compression codec. The returned codec implements io.Closer when the
// compression layer holds resources.
func String(name, compress string) (shuffle.Codec[string], error) {
	var c shuffle.Codec[string]
	switch name {
	case NameUTF8, "":
		c = shuffle.UTF8{}
	case NameRaw:
		c = rawString{}
	case NameCBOR:
		cb, err := NewCBOR[string]()
		if err != nil {
			return nil, err
		}
		c = cb
	case NameAvro:
		av, err := NewAvro[string](`"string"`)
		if err != nil {
			return nil, err
		}
		c = av
	case NameProto:
		c = protoString{msg: NewProto[*wrapperspb.StringValue]()}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	switch compress {
	case CompressNone, "":
		return c, nil
	case CompressZstd:
		z, err := NewZstd(c)
		if err != nil {
			return nil, err
		}
		return z, nil
	default:
		return nil, fmt.Errorf("%w: compression %q", ErrUnknownCodec, compress)
	}
}

// rawString passes strings through byte for byte, without UTF-8 validation.
type rawString struct{}

func (rawString) Encode(s string, w io.Writer) error { return write(w, []byte(s)) }

func (rawString) Decode(r io.Reader) (string, error) {
	b, err := readAll(r)
	return string(b), err
}

func (rawString) String() string { return "Raw" }
