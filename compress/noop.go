package compress

// NoOpCompressor bypasses data without compression.
//
// It is the default for snapshots, where payloads are often a few dozen
// bytes and compression only adds overhead. It is also useful as a baseline
// when measuring codec overhead.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor that bypasses data.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input data as-is without copying.
//
// The returned slice shares the input's underlying memory; callers must not
// modify the input afterwards if they keep the result.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data as-is without copying.
//
// The returned slice shares the input's underlying memory; callers must not
// modify the input afterwards if they keep the result.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
