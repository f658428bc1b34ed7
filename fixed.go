package shuffle

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/exp/constraints"
)

// widthCache maps an integer type to its encoded width. Shared by all
// goroutines.
var widthCache = xsync.NewMap[reflect.Type, int]()

// FixedInt encodes integers of type T as exactly sizeof(T) bytes in Order
// (big-endian by default). The encoding is deterministic, and for unsigned
// types it sorts the same way as the values.
//
// A FixedInt[int32] turns 1 into [0 0 0 1].
type FixedInt[T constraints.Integer] struct{}

// Int32 is the 4-byte big-endian integer codec.
type Int32 = FixedInt[int32]

// Int64 is the 8-byte big-endian integer codec.
type Int64 = FixedInt[int64]

var _ Codec[int32] = FixedInt[int32]{}

// Width returns the encoded size in bytes. The result is cached per type.
func (FixedInt[T]) Width() int {
	t := reflect.TypeFor[T]()
	if w, ok := widthCache.Load(t); ok {
		return w
	}
	w := int(t.Size())
	widthCache.Store(t, w)
	return w
}

func (c FixedInt[T]) Encode(v T, w io.Writer) error {
	bw, err := NewWriter(w)
	if err != nil {
		return err
	}
	switch c.Width() {
	case 1:
		bw.WriteUint8(uint8(v))
	case 2:
		bw.WriteUint16(uint16(v))
	case 4:
		bw.WriteUint32(uint32(v))
	case 8:
		bw.WriteUint64(uint64(v))
	}
	return bw.Err()
}

func (c FixedInt[T]) Decode(r io.Reader) (T, error) {
	br, err := NewReader(r)
	if err != nil {
		return 0, err
	}
	var v T
	switch c.Width() {
	case 1:
		var u uint8
		br.ReadUint8(&u)
		v = T(u)
	case 2:
		var u uint16
		br.ReadUint16(&u)
		v = T(u)
	case 4:
		var u uint32
		br.ReadUint32(&u)
		v = T(u)
	case 8:
		var u uint64
		br.ReadUint64(&u)
		v = T(u)
	}
	if err := br.Err(); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = fmt.Errorf("%w: want %d bytes: %w", ErrTruncatedData, c.Width(), err)
		}
		return 0, err
	}
	return v, nil
}

func (c FixedInt[T]) String() string {
	return fmt.Sprintf("FixedInt[%s]", reflect.TypeFor[T]())
}
