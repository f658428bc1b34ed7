package shuffle

import (
	"fmt"
	"io"
)

// MaxListElementSize bounds the length prefix List accepts for one element.
const MaxListElementSize = 64 << 20

// List encodes a []T as a uint32 element count followed by every element as a
// uint32 length and the element's bytes. Each element is encoded on its own
// through Elem, so element codecs that read to the end of the stream (UTF8,
// Raw) still compose.
//
// It is the codec for a whole group of values, e.g. when an engine
// materializes the output of FromKeyBytesGroupedLazyValues.
type List[T any] struct {
	Elem Codec[T]
}

func (l List[T]) Encode(values []T, writer io.Writer) error {
	w, err := NewWriter(writer)
	if err != nil {
		return err
	}
	buf := getScratch()
	defer putScratch(buf)

	w.WriteUint32(uint32(len(values)))
	for i, v := range values {
		buf.Reset()
		if err := l.Elem.Encode(v, buf); err != nil {
			return fmt.Errorf("element %d of %d: %w", i, len(values), err)
		}
		w.WriteLenBytes(buf.Bytes())
	}
	return w.Err()
}

// Decode reads exactly the elements announced by the count.
func (l List[T]) Decode(reader io.Reader) ([]T, error) {
	r, err := NewReader(reader)
	if err != nil {
		return nil, err
	}
	var count uint32
	r.ReadUint32(&count)
	if err := r.Err(); err != nil {
		return nil, err
	}

	// The count is untrusted input; grow as elements actually arrive.
	values := make([]T, 0, min(int(count), 1024))
	for i := uint32(0); i < count; i++ {
		b := r.ReadLenBytes(MaxListElementSize)
		if err := r.Err(); err != nil {
			return nil, fmt.Errorf("element %d of %d: %w", i, count, err)
		}
		v, err := l.Elem.Decode(NewBytesReader(b))
		if err != nil {
			return nil, fmt.Errorf("element %d of %d: %w", i, count, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func (l List[T]) String() string { return fmt.Sprintf("List[%s]", describe(l.Elem)) }
