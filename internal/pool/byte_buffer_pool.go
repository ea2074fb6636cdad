package pool

import "sync"

// SnapshotBufferDefaultSize is the default capacity of a pooled buffer.
// Snapshots are dominated by vocabulary payloads; 4KiB covers the common
// case without repeated growth.
const (
	SnapshotBufferDefaultSize  = 1024 * 4
	SnapshotBufferMaxThreshold = 1024 * 256 // 256KiB, larger buffers are not pooled back
)

// ByteBuffer is a reusable byte slice wrapper for snapshot encoding.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures capacity for at least n more bytes.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	grown := make([]byte, len(bb.B), len(bb.B)+n)
	copy(grown, bb.B)
	bb.B = grown
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// WriteByte appends a single byte. The error is always nil; the signature
// satisfies io.ByteWriter.
func (bb *ByteBuffer) WriteByte(b byte) error {
	bb.B = append(bb.B, b)
	return nil
}

var snapshotBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(SnapshotBufferDefaultSize)
	},
}

// GetSnapshotBuffer returns an empty pooled buffer for snapshot encoding.
func GetSnapshotBuffer() *ByteBuffer {
	buf, _ := snapshotBufferPool.Get().(*ByteBuffer)
	buf.Reset()

	return buf
}

// PutSnapshotBuffer returns a buffer to the pool. Oversized buffers are
// dropped so one huge vocabulary does not pin memory forever.
func PutSnapshotBuffer(buf *ByteBuffer) {
	if buf == nil || buf.Cap() > SnapshotBufferMaxThreshold {
		return
	}

	snapshotBufferPool.Put(buf)
}
