package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(ChunkBufferDefaultSize)
	bb.B = append(bb.B, "some data"...)
	originalCap := cap(bb.B)

	bb.Reset()

	require.Equal(t, 0, bb.Len())
	require.Equal(t, originalCap, cap(bb.B))
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.B = append(bb.B, 1, 2, 3)

	bb.Grow(100)

	require.GreaterOrEqual(t, cap(bb.B)-bb.Len(), 100)
	require.Equal(t, []byte{1, 2, 3}, bb.Bytes())
}

func TestByteBufferPool_DropsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(8, 16)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.Grow(64)
	p.Put(bb)

	// Put(nil) is a no-op.
	p.Put(nil)

	next := p.Get()
	require.Equal(t, 0, next.Len())
}

func TestChunkBuffer(t *testing.T) {
	cb := GetChunkBuffer()
	require.Equal(t, 0, cb.Len())
	require.GreaterOrEqual(t, cap(cb.B), ChunkBufferDefaultSize)
	PutChunkBuffer(cb)
}

func TestGetIntSlice(t *testing.T) {
	s, cleanup := GetIntSlice(5)
	require.Len(t, s, 5)
	cleanup()

	s, cleanup = GetIntSlice(0)
	defer cleanup()
	require.Empty(t, s)
}
