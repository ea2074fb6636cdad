package section

import (
	"fmt"

	"github.com/coltok/coltok/endian"
	"github.com/coltok/coltok/errs"
	"github.com/coltok/coltok/format"
)

// SnapshotFlag represents the packed flag fields in the snapshot header.
type SnapshotFlag struct {
	// Options is a packed field.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the snapshot format:
	//   - 0xC510 (0b1100_0101_0001_0000): tokenizer snapshot format v1
	Options uint16

	// TokenizerType is an enum indicating which tokenizer the payload restores.
	TokenizerType uint8
	// CompressionType is an enum indicating the payload compression.
	CompressionType uint8
}

var validTokenizerTypes = map[uint8]struct{}{
	uint8(format.TypeNumeric):     {},
	uint8(format.TypeCategorical): {},
	uint8(format.TypeTimestamp):   {},
}

var validCompressionTypes = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewSnapshotFlag creates a SnapshotFlag with default settings: little-endian
// byte order, no compression.
func NewSnapshotFlag(tokenizerType format.TokenizerType) SnapshotFlag {
	flag := SnapshotFlag{
		Options:         MagicSnapshotV1Opt,
		TokenizerType:   uint8(tokenizerType),
		CompressionType: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the payload is little-endian.
func (f SnapshotFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the payload is big-endian.
func (f SnapshotFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *SnapshotFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *SnapshotFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f SnapshotFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// GetEndianEngine returns the endian engine matching the endianness flag.
func (f SnapshotFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// GetTokenizerType returns the tokenizer type enum.
func (f SnapshotFlag) GetTokenizerType() format.TokenizerType {
	return format.TokenizerType(f.TokenizerType)
}

// GetCompressionType returns the compression type enum.
func (f SnapshotFlag) GetCompressionType() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompressionType sets the payload compression type.
func (f *SnapshotFlag) SetCompressionType(compression format.CompressionType) error {
	if _, ok := validCompressionTypes[uint8(compression)]; !ok {
		return fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compression.String())
	}

	f.CompressionType = uint8(compression)

	return nil
}

// Validate checks the magic number and enum fields.
func (f SnapshotFlag) Validate() error {
	if f.GetMagicNumber() != MagicSnapshotV1Opt {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagic, f.GetMagicNumber())
	}

	if _, ok := validTokenizerTypes[f.TokenizerType]; !ok {
		return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidTokenizerType, f.TokenizerType)
	}

	if _, ok := validCompressionTypes[f.CompressionType]; !ok {
		return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidCompressionType, f.CompressionType)
	}

	return nil
}
