package shuffle

import (
	"fmt"
	"iter"
)

// Pair is a key-value record crossing a shuffle boundary.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// PairOf is shorthand for Pair[K, V]{k, v}.
func PairOf[K, V any](k K, v V) Pair[K, V] { return Pair[K, V]{Key: k, Value: v} }

// ToKeyBytesValueBytes eagerly encodes both sides of a pair.
type ToKeyBytesValueBytes[K, V any] struct {
	Keys   Codec[K]
	Values Codec[V]
}

func (t ToKeyBytesValueBytes[K, V]) Apply(p Pair[K, V]) (Pair[ByteKey, []byte], error) {
	k, err := EncodeKey(p.Key, t.Keys)
	if err != nil {
		return Pair[ByteKey, []byte]{}, err
	}
	v, err := Encode(p.Value, t.Values)
	if err != nil {
		return Pair[ByteKey, []byte]{}, err
	}
	return PairOf(k, v), nil
}

// FromKeyBytesValueBytes is the inverse of ToKeyBytesValueBytes.
type FromKeyBytesValueBytes[K, V any] struct {
	Keys   Codec[K]
	Values Codec[V]
}

func (t FromKeyBytesValueBytes[K, V]) Apply(p Pair[ByteKey, []byte]) (Pair[K, V], error) {
	k, err := DecodeKey(p.Key, t.Keys)
	if err != nil {
		return Pair[K, V]{}, err
	}
	v, err := Decode(p.Value, t.Values)
	if err != nil {
		return Pair[K, V]{}, err
	}
	return PairOf(k, v), nil
}

// ToKeyBytesLazyValue encodes the key and wraps the value undecoded. The value
// is only turned into bytes if the engine serializes the wrapper.
type ToKeyBytesLazyValue[K, V any] struct {
	Keys   Codec[K]
	Values Codec[V]
}

func (t ToKeyBytesLazyValue[K, V]) Apply(p Pair[K, V]) (Pair[ByteKey, *LazyValue[V]], error) {
	k, err := EncodeKey(p.Key, t.Keys)
	if err != nil {
		return Pair[ByteKey, *LazyValue[V]]{}, err
	}
	return PairOf(k, NewLazyValue(p.Value, t.Values)), nil
}

// FromKeyBytesLazyValue decodes the key eagerly and the value through
// GetOrDecode.
type FromKeyBytesLazyValue[K, V any] struct {
	Keys   Codec[K]
	Values Codec[V]
}

func (t FromKeyBytesLazyValue[K, V]) Apply(p Pair[ByteKey, *LazyValue[V]]) (Pair[K, V], error) {
	if p.Value == nil {
		return Pair[K, V]{}, fmt.Errorf("%w: lazy value", ErrNilInput)
	}
	k, err := DecodeKey(p.Key, t.Keys)
	if err != nil {
		return Pair[K, V]{}, err
	}
	v, err := p.Value.GetOrDecode(t.Values)
	if err != nil {
		return Pair[K, V]{}, err
	}
	return PairOf(k, v), nil
}

// FromKeyBytesGroupedLazyValues reconstitutes one group produced by a
// group-by-key shuffle. The value sequence is ranged over exactly once and in
// order, so it may be a single-pass replay of spilled data.
type FromKeyBytesGroupedLazyValues[K, V any] struct {
	Keys   Codec[K]
	Values Codec[V]
}

func (t FromKeyBytesGroupedLazyValues[K, V]) Apply(p Pair[ByteKey, iter.Seq[*LazyValue[V]]]) (Pair[K, []V], error) {
	k, err := DecodeKey(p.Key, t.Keys)
	if err != nil {
		return Pair[K, []V]{}, err
	}
	var values []V
	for lv := range p.Value {
		if lv == nil {
			return Pair[K, []V]{}, fmt.Errorf("%w: grouped value %d", ErrNilInput, len(values))
		}
		v, err := lv.GetOrDecode(t.Values)
		if err != nil {
			return Pair[K, []V]{}, err
		}
		values = append(values, v)
	}
	if values == nil {
		values = []V{}
	}
	return PairOf(k, values), nil
}

// ToBytes encodes single values.
type ToBytes[T any] struct{ Codec Codec[T] }

func (t ToBytes[T]) Apply(v T) ([]byte, error) { return Encode(v, t.Codec) }

// FromBytes decodes single values.
type FromBytes[T any] struct{ Codec Codec[T] }

func (t FromBytes[T]) Apply(b []byte) (T, error) { return Decode(b, t.Codec) }

// ToLazy wraps single values as Decoded LazyValues.
type ToLazy[T any] struct{ Codec Codec[T] }

func (t ToLazy[T]) Apply(v T) (*LazyValue[T], error) { return NewLazyValue(v, t.Codec), nil }

// FromLazy unwraps single LazyValues.
type FromLazy[T any] struct{ Codec Codec[T] }

func (t FromLazy[T]) Apply(l *LazyValue[T]) (T, error) {
	if l == nil {
		var zero T
		return zero, fmt.Errorf("%w: lazy value", ErrNilInput)
	}
	return l.GetOrDecode(t.Codec)
}

// WrapAll wraps every value as a Decoded LazyValue, preserving order.
func WrapAll[T any](values []T, c Codec[T]) []*LazyValue[T] {
	out := make([]*LazyValue[T], len(values))
	for i, v := range values {
		out[i] = NewLazyValue(v, c)
	}
	return out
}

// UnwrapAll resolves every LazyValue in order and fails on the first error
// without a partial result.
func UnwrapAll[T any](lazies []*LazyValue[T], c Codec[T]) ([]T, error) {
	out := make([]T, len(lazies))
	for i, l := range lazies {
		if l == nil {
			return nil, fmt.Errorf("%w: element %d", ErrNilInput, i)
		}
		v, err := l.GetOrDecode(c)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
