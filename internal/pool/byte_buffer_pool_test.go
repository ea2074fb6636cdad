package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Basics(t *testing.T) {
	bb := NewByteBuffer(16)
	require.Zero(t, bb.Len())
	require.Equal(t, 16, bb.Cap())

	bb.MustWrite([]byte("hello"))
	require.NoError(t, bb.WriteByte('!'))
	require.Equal(t, []byte("hello!"), bb.Bytes())
	require.Equal(t, 6, bb.Len())

	bb.Reset()
	require.Zero(t, bb.Len())
	require.Equal(t, 16, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte{1, 2})

	bb.Grow(100)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 100)
	require.Equal(t, []byte{1, 2}, bb.Bytes())

	// Growing within existing capacity is a no-op.
	capBefore := bb.Cap()
	bb.Grow(1)
	require.Equal(t, capBefore, bb.Cap())
}

func TestSnapshotBufferPool(t *testing.T) {
	buf := GetSnapshotBuffer()
	require.NotNil(t, buf)
	require.Zero(t, buf.Len())

	buf.MustWrite([]byte("payload"))
	PutSnapshotBuffer(buf)

	// A recycled buffer always comes back empty.
	again := GetSnapshotBuffer()
	require.Zero(t, again.Len())
	PutSnapshotBuffer(again)
}

func TestSnapshotBufferPool_DropsOversized(t *testing.T) {
	huge := NewByteBuffer(SnapshotBufferMaxThreshold * 2)
	// Must not panic and must not reject nil either.
	PutSnapshotBuffer(huge)
	PutSnapshotBuffer(nil)
}
