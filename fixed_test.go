package shuffle

import (
	"bytes"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedInt_WidthCache(t *testing.T) {
	assert.Equal(t, 4, Int32{}.Width())
	assert.Equal(t, 8, Int64{}.Width())
	assert.Equal(t, 1, FixedInt[uint8]{}.Width())

	w, ok := widthCache.Load(reflect.TypeFor[int32]())
	require.True(t, ok, "the first call populates the cache")
	assert.Equal(t, 4, w)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 2, FixedInt[int16]{}.Width())
		}()
	}
	wg.Wait()
}

func TestFixedInt_Order(t *testing.T) {
	// Big-endian unsigned encodings sort like the values.
	var prev []byte
	for _, v := range []uint32{0, 1, 255, 256, 1 << 24, 1<<32 - 1} {
		b, err := Encode(v, FixedInt[uint32]{})
		require.NoError(t, err)
		if prev != nil {
			assert.Equal(t, -1, bytes.Compare(prev, b))
		}
		prev = b
	}
}

func TestFixedInt_Truncated(t *testing.T) {
	for _, in := range [][]byte{{}, {1, 2, 3}} {
		_, err := Decode(in, Int32{})
		assert.ErrorIs(t, err, ErrTruncatedData)
	}

	// Extra bytes after the integer are left unread.
	v, err := Decode([]byte{0, 0, 0, 9, 0xff}, Int32{})
	require.NoError(t, err)
	assert.Equal(t, int32(9), v)
}

func TestRaw(t *testing.T) {
	in := []byte{0, 0xff, 7}
	b, err := Encode(in, Raw{})
	require.NoError(t, err)
	assert.Equal(t, in, b)

	out, err := Decode(b, Raw{})
	require.NoError(t, err)
	assert.Equal(t, in, out)
	out[0] = 1
	assert.Equal(t, byte(0), b[0], "decoded bytes do not alias the input")
}
