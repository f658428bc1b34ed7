package shuffle

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyBytesValueBytes_Scenario(t *testing.T) {
	to := ToKeyBytesValueBytes[int32, string]{Keys: Int32{}, Values: UTF8{}}
	from := FromKeyBytesValueBytes[int32, string]{Keys: Int32{}, Values: UTF8{}}

	encoded, err := to.Apply(PairOf(int32(1), "x"))
	require.NoError(t, err)
	assert.Equal(t, NewByteKey([]byte{0, 0, 0, 1}), encoded.Key)
	assert.Equal(t, []byte("x"), encoded.Value)

	decoded, err := from.Apply(encoded)
	require.NoError(t, err)
	assert.Equal(t, PairOf(int32(1), "x"), decoded)
}

func TestKeyBytesValueBytes_Errors(t *testing.T) {
	to := ToKeyBytesValueBytes[int32, string]{Keys: Int32{}, Values: rejectCodec{bad: "bad"}}
	_, err := to.Apply(PairOf(int32(1), "bad"))
	assert.ErrorIs(t, err, ErrEncode)

	to.Keys = &failingCodec[int32]{err: errBoom}
	_, err = to.Apply(PairOf(int32(1), "ok"))
	assert.ErrorIs(t, err, errBoom)

	from := FromKeyBytesValueBytes[int32, string]{Keys: Int32{}, Values: UTF8{}}
	_, err = from.Apply(PairOf(NewByteKey([]byte{1}), []byte("x")))
	assert.ErrorIs(t, err, ErrDecode)
	_, err = from.Apply(PairOf(NewByteKey([]byte{0, 0, 0, 1}), []byte{0xff}))
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestKeyBytesLazyValue(t *testing.T) {
	values := &countingCodec[string]{inner: UTF8{}}
	to := ToKeyBytesLazyValue[int32, string]{Keys: Int32{}, Values: values}
	from := FromKeyBytesLazyValue[int32, string]{Keys: Int32{}, Values: values}

	out, err := to.Apply(PairOf(int32(5), "v"))
	require.NoError(t, err)
	assert.Equal(t, NewByteKey([]byte{0, 0, 0, 5}), out.Key)
	assert.True(t, out.Value.IsDecoded(), "the value is wrapped, not encoded")
	assert.Zero(t, values.encodes)

	// Within one process the pair goes back without any value codec work.
	back, err := from.Apply(out)
	require.NoError(t, err)
	assert.Equal(t, PairOf(int32(5), "v"), back)
	assert.Zero(t, values.decodes)

	// Across a process boundary the engine ships the wrapper's bytes.
	wire, err := out.Value.MarshalBinary()
	require.NoError(t, err)
	received := PairOf(out.Key, NewLazyBytes(wire, Codec[string](values)))
	back, err = from.Apply(received)
	require.NoError(t, err)
	assert.Equal(t, PairOf(int32(5), "v"), back)
	assert.Equal(t, 1, values.decodes)
}

func TestFromLazy_NilValue(t *testing.T) {
	from := FromKeyBytesLazyValue[int32, string]{Keys: Int32{}, Values: UTF8{}}
	var out Pair[int32, string]
	var err error
	require.NotPanics(t, func() {
		out, err = from.Apply(PairOf(NewByteKey([]byte{0, 0, 0, 1}), (*LazyValue[string])(nil)))
	})
	assert.ErrorIs(t, err, ErrNilInput)
	assert.NotErrorIs(t, err, ErrDecode)
	assert.Zero(t, out)

	var v string
	require.NotPanics(t, func() {
		v, err = FromLazy[string]{Codec: UTF8{}}.Apply(nil)
	})
	assert.ErrorIs(t, err, ErrNilInput)
	assert.Empty(t, v)
}

func TestFromKeyBytesGroupedLazyValues_Scenario(t *testing.T) {
	lazies := make([]*LazyValue[string], 0, 3)
	for _, s := range []string{"a", "b", "c"} {
		lazies = append(lazies, NewLazyBytes([]byte(s), Codec[string](UTF8{})))
	}
	reused := false
	group := PairOf(NewByteKey([]byte{0, 0, 0, 7}), singlePass(lazies, &reused))

	from := FromKeyBytesGroupedLazyValues[int32, string]{Keys: Int32{}, Values: UTF8{}}
	out, err := from.Apply(group)
	require.NoError(t, err)
	assert.Equal(t, int32(7), out.Key)
	assert.Equal(t, []string{"a", "b", "c"}, out.Value)
	assert.False(t, reused, "the grouped sequence is consumed once")
}

func TestFromKeyBytesGroupedLazyValues_Empty(t *testing.T) {
	from := FromKeyBytesGroupedLazyValues[int32, string]{Keys: Int32{}, Values: UTF8{}}
	out, err := from.Apply(PairOf(NewByteKey([]byte{0, 0, 0, 1}), iter.Seq[*LazyValue[string]](slices.Values([]*LazyValue[string]{}))))
	require.NoError(t, err)
	assert.NotNil(t, out.Value)
	assert.Empty(t, out.Value)
}

func TestFromKeyBytesGroupedLazyValues_FailFast(t *testing.T) {
	codec := &countingCodec[string]{inner: UTF8{}}
	lazies := []*LazyValue[string]{
		NewLazyBytes([]byte("a"), Codec[string](codec)),
		NewLazyBytes([]byte{0xff}, Codec[string](codec)),
		NewLazyBytes([]byte("c"), Codec[string](codec)),
	}
	from := FromKeyBytesGroupedLazyValues[int32, string]{Keys: Int32{}, Values: codec}
	out, err := from.Apply(PairOf(NewByteKey([]byte{0, 0, 0, 1}), slices.Values(lazies)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
	assert.Nil(t, out.Value)
	assert.Equal(t, 2, codec.decodes)
	assert.False(t, lazies[2].IsDecoded())

	_, err = from.Apply(PairOf(NewByteKey([]byte{0, 0, 0, 1}), slices.Values([]*LazyValue[string]{nil})))
	assert.ErrorIs(t, err, ErrNilInput)

	_, err = from.Apply(PairOf(NewByteKey([]byte{1}), slices.Values(lazies)))
	assert.ErrorIs(t, err, ErrDecode)
}

func TestValueTransforms(t *testing.T) {
	var toBytes Transform[int32, []byte] = ToBytes[int32]{Codec: Int32{}}
	var fromBytes Transform[[]byte, int32] = FromBytes[int32]{Codec: Int32{}}
	var toLazy Transform[int32, *LazyValue[int32]] = ToLazy[int32]{Codec: Int32{}}
	var fromLazy Transform[*LazyValue[int32], int32] = FromLazy[int32]{Codec: Int32{}}

	b, err := toBytes.Apply(9)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 9}, b)
	v, err := fromBytes.Apply(b)
	require.NoError(t, err)
	assert.Equal(t, int32(9), v)

	l, err := toLazy.Apply(9)
	require.NoError(t, err)
	v, err = fromLazy.Apply(l)
	require.NoError(t, err)
	assert.Equal(t, int32(9), v)
}

func TestFunc(t *testing.T) {
	double := Func[int, int](func(i int) (int, error) { return i * 2, nil })
	var tr Transform[int, int] = double
	out, err := tr.Apply(21)
	require.NoError(t, err)
	assert.Equal(t, 42, out)
}
