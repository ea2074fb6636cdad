package compress

// ZstdCompressor provides Zstandard compression for snapshot payloads.
//
// Zstd gives the best ratio of the available codecs and is the right choice
// when snapshots hold large vocabularies and are written once, read rarely
// (archival, artifact stores, model registries).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
