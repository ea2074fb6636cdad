package section

import (
	"github.com/coltok/coltok/errs"
	"github.com/coltok/coltok/format"
)

// SnapshotHeader is the fixed-size header at the start of a tokenizer
// snapshot.
type SnapshotHeader struct {
	// PayloadLength is the byte length of the payload as stored, after
	// compression.
	PayloadLength uint32
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64

	// Flag is the packed field for endianness, magic number and type enums.
	Flag SnapshotFlag
}

// NewSnapshotHeader creates a header for the given tokenizer type.
// PayloadLength and Checksum are filled in by the encoder's Finish.
func NewSnapshotHeader(tokenizerType format.TokenizerType) *SnapshotHeader {
	return &SnapshotHeader{
		Flag: NewSnapshotFlag(tokenizerType),
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least HeaderSize bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is too short, or flag validation errors
func (h *SnapshotHeader) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The Options field itself is always little-endian; it carries the flag
	// that decides the byte order of everything after it.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.TokenizerType = data[2]
	h.Flag.CompressionType = data[3]

	engine := h.Flag.GetEndianEngine()
	h.PayloadLength = engine.Uint32(data[4:8])
	h.Checksum = engine.Uint64(data[8:16])

	return h.Flag.Validate()
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *SnapshotHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.TokenizerType
	b[3] = h.Flag.CompressionType

	engine := h.Flag.GetEndianEngine()
	engine.PutUint32(b[4:8], h.PayloadLength)
	engine.PutUint64(b[8:16], h.Checksum)

	return b
}
