package codecs

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/oy3o/shuffle"
)

// MaxDecompressedSize bounds the memory a single Zstd decode may allocate.
const MaxDecompressedSize = 64 << 20

// Zstd compresses the output of another codec. Each encoded value is a
// complete zstd frame. Encoder and decoder are shared and only used through
// their stateless EncodeAll/DecodeAll, so one Zstd serves concurrent callers.
type Zstd[T any] struct {
	inner shuffle.Codec[T]
	enc   *zstd.Encoder
	dec   *zstd.Decoder
}

func NewZstd[T any](inner shuffle.Codec[T]) (*Zstd[T], error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithZeroFrames(true),
	)
	if err != nil {
		return nil, fmt.Errorf("codecs: zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(MaxDecompressedSize),
	)
	if err != nil {
		enc.Close()
		return nil, fmt.Errorf("codecs: zstd decoder: %w", err)
	}
	return &Zstd[T]{inner: inner, enc: enc, dec: dec}, nil
}

func (z *Zstd[T]) Encode(v T, w io.Writer) error {
	var buf bytes.Buffer
	if err := z.inner.Encode(v, &buf); err != nil {
		return err
	}
	return write(w, z.enc.EncodeAll(buf.Bytes(), nil))
}

func (z *Zstd[T]) Decode(r io.Reader) (T, error) {
	var zero T
	data, err := readAll(r)
	if err != nil {
		return zero, err
	}
	plain, err := z.dec.DecodeAll(data, nil)
	if err != nil {
		return zero, err
	}
	return z.inner.Decode(shuffle.NewBytesReader(plain))
}

// Close releases the decoder's resources. The codec must not be used after.
func (z *Zstd[T]) Close() error {
	z.dec.Close()
	return z.enc.Close()
}

func (z *Zstd[T]) String() string { return fmt.Sprintf("Zstd[%v]", z.inner) }
