package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer(t *testing.T) {
	t.Run("WriteAndReset", func(t *testing.T) {
		bb := NewByteBuffer(16)
		n, err := bb.Write([]byte("hello"))
		require.NoError(t, err)
		require.Equal(t, 5, n)
		require.NoError(t, bb.WriteByte('!'))
		bb.MustWrite([]byte("?"))
		require.Equal(t, []byte("hello!?"), bb.Bytes())
		require.Equal(t, 7, bb.Len())

		c := bb.Cap()
		bb.Reset()
		require.Equal(t, 0, bb.Len())
		require.Equal(t, c, bb.Cap())
	})

	t.Run("GrowKeepsContent", func(t *testing.T) {
		bb := NewByteBuffer(4)
		bb.MustWrite([]byte("abcd"))
		bb.Grow(100)
		require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 100)
		require.Equal(t, []byte("abcd"), bb.Bytes())
	})

	t.Run("GrowNoop", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(10)
		require.Equal(t, 64, bb.Cap())
	})

	t.Run("WriteTo", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.MustWrite([]byte("data"))
		var out bytes.Buffer
		n, err := bb.WriteTo(&out)
		require.NoError(t, err)
		require.Equal(t, int64(4), n)
		require.Equal(t, "data", out.String())
	})
}

func TestByteBufferPool(t *testing.T) {
	t.Run("ReturnsEmptyBuffers", func(t *testing.T) {
		p := NewByteBufferPool(32, 0)
		bb := p.Get()
		bb.MustWrite([]byte("x"))
		p.Put(bb)
		require.Equal(t, 0, p.Get().Len())
	})

	t.Run("DropsOversized", func(t *testing.T) {
		p := NewByteBufferPool(8, 16)
		bb := p.Get()
		bb.Grow(1024)
		p.Put(bb)
		p.Put(nil)
		require.Equal(t, 0, p.Get().Len())
	})

	t.Run("PayloadPool", func(t *testing.T) {
		bb := GetPayloadBuffer()
		require.NotNil(t, bb)
		require.Equal(t, 0, bb.Len())
		PutPayloadBuffer(bb)
	})
}

func TestSlicePools(t *testing.T) {
	ints, cleanup := GetIntSlice(10)
	require.Len(t, ints, 10)
	cleanup()

	ints, cleanup = GetIntSlice(3)
	require.Len(t, ints, 3)
	cleanup()

	floats, release := GetFloat64Slice(7)
	require.Len(t, floats, 7)
	release()
}
