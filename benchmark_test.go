package shuffle

import (
	"iter"
	"testing"
)

func BenchmarkEncodeInt32(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Encode(int32(i), Int32{})
	}
}

func BenchmarkDecodeInt32(b *testing.B) {
	data, _ := Encode(int32(42), Int32{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decode(data, Int32{})
	}
}

func BenchmarkByteKeyHash(b *testing.B) {
	k := NewByteKey([]byte("user:1234567890"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = k.Hash()
	}
}

func BenchmarkGroupedLazyValues(b *testing.B) {
	raw := make([][]byte, 64)
	for i := range raw {
		raw[i], _ = Encode("value", UTF8{})
	}
	key := NewByteKey([]byte{0, 0, 0, 1})
	from := FromKeyBytesGroupedLazyValues[int32, string]{Keys: Int32{}, Values: UTF8{}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var seq iter.Seq[*LazyValue[string]] = func(yield func(*LazyValue[string]) bool) {
			for _, r := range raw {
				if !yield(NewLazyBytes(r, Codec[string](UTF8{}))) {
					return
				}
			}
		}
		_, _ = from.Apply(PairOf(key, seq))
	}
}

// Baseline: the raw codec without the bridge, to see the wrapper overhead.
func BenchmarkRawCodecInt32(b *testing.B) {
	w := NewBytesReader(make([]byte, 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.N = 0
		_, _ = Int32{}.Decode(w)
	}
}
