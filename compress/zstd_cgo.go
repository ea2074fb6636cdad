//go:build zstdcgo

package compress

import (
	"github.com/valyala/gozstd"
)

// cgo-backed Zstd implementation, selected with -tags zstdcgo. gozstd links
// the reference libzstd and is noticeably faster on large vocabulary
// payloads at the cost of a cgo dependency.

// Compress compresses the input data using Zstandard compression.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses Zstd-compressed data.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
