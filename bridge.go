package shuffle

import "fmt"

// Encode serializes one value with c. The returned slice is freshly allocated
// and never nil, even for an empty encoding.
func Encode[T any](value T, c Codec[T]) ([]byte, error) {
	buf := getScratch()
	defer putScratch(buf)

	if err := c.Encode(value, buf); err != nil {
		metrics.failure(opEncode)
		return nil, &EncodeError{Type: typeName[T](), Codec: describe(c), Err: err}
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	metrics.encoded(len(out))
	return out, nil
}

// Decode deserializes one value from data with c. Bytes left unread by the
// codec are ignored.
func Decode[T any](data []byte, c Codec[T]) (T, error) {
	v, err := c.Decode(NewBytesReader(data))
	if err != nil {
		metrics.failure(opDecode)
		var zero T
		return zero, &DecodeError{Type: typeName[T](), Codec: describe(c), Err: err}
	}
	metrics.decoded()
	return v, nil
}

// EncodeAll encodes values one-to-one, preserving order. It stops at the first
// value that fails and returns no partial result.
func EncodeAll[T any](values []T, c Codec[T]) ([][]byte, error) {
	out := make([][]byte, len(values))
	for i, v := range values {
		b, err := Encode(v, c)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// DecodeAll decodes every element of data independently, preserving order. A
// nil element fails with ErrNilInput before it is decoded; otherwise the first
// decode failure is returned. No partial result is returned on failure.
func DecodeAll[T any](data [][]byte, c Codec[T]) ([]T, error) {
	out := make([]T, len(data))
	for i, b := range data {
		if b == nil {
			metrics.failure(opNilInput)
			return nil, fmt.Errorf("%w: element %d", ErrNilInput, i)
		}
		v, err := Decode(b, c)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// EncodeKey encodes key with c and wraps the result as a ByteKey.
func EncodeKey[K any](key K, c Codec[K]) (ByteKey, error) {
	b, err := Encode(key, c)
	if err != nil {
		return ByteKey{}, err
	}
	return ByteKey{s: string(b)}, nil
}

// DecodeKey decodes the content of k with c.
func DecodeKey[K any](k ByteKey, c Codec[K]) (K, error) {
	return Decode([]byte(k.s), c)
}
