package section

const (
	// Bit masks for the packed Options field.
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0), 0=little-endian, 1=big-endian
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3), must be zero
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicSnapshotV1Opt is the version 1 magic number for the tokenizer
	// snapshot format, stored in bits 4-15 of the Options field.
	MagicSnapshotV1Opt = 0xC510
)

// HeaderSize is the fixed snapshot header size in bytes.
//
// Layout:
//
//	byte 0-1:  Options (always little-endian, carries magic + flags)
//	byte 2:    tokenizer type
//	byte 3:    compression type
//	byte 4-7:  payload length after compression
//	byte 8-15: xxHash64 checksum of the uncompressed payload
const HeaderSize = 16
