package blob

import (
	"fmt"
	"math"

	"github.com/coltok/coltok/compress"
	"github.com/coltok/coltok/errs"
	"github.com/coltok/coltok/format"
	"github.com/coltok/coltok/internal/hash"
	"github.com/coltok/coltok/internal/pool"
	"github.com/coltok/coltok/section"
	"github.com/coltok/coltok/tokenizer"
)

// MaxCategoryLength is the maximum byte length of a single vocabulary entry,
// bounded by the uint16 length prefix in the categorical payload.
const MaxCategoryLength = math.MaxUint16

// SnapshotOption configures a SnapshotEncoder.
type SnapshotOption func(*SnapshotEncoder) error

// WithSnapshotCompression selects the payload compression codec.
// The default is no compression; snapshot payloads without a vocabulary are
// a few dozen bytes and not worth compressing.
func WithSnapshotCompression(compression format.CompressionType) SnapshotOption {
	return func(e *SnapshotEncoder) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			e.compression = compression
			return nil
		default:
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compression.String())
		}
	}
}

// WithLittleEndian selects little-endian payload byte order (the default).
func WithLittleEndian() SnapshotOption {
	return func(e *SnapshotEncoder) error {
		e.bigEndian = false
		return nil
	}
}

// WithBigEndian selects big-endian payload byte order.
func WithBigEndian() SnapshotOption {
	return func(e *SnapshotEncoder) error {
		e.bigEndian = true
		return nil
	}
}

// SnapshotEncoder serializes fitted tokenizer state into snapshots.
//
// The encoder itself is cheap and reusable; each EncodeX call produces one
// complete, independent snapshot.
type SnapshotEncoder struct {
	compression format.CompressionType
	bigEndian   bool
}

// NewSnapshotEncoder creates a snapshot encoder with the given options.
func NewSnapshotEncoder(opts ...SnapshotOption) (*SnapshotEncoder, error) {
	e := &SnapshotEncoder{
		compression: format.CompressionNone,
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// newHeader creates a header carrying the encoder's endianness and
// compression settings, so payload encoding sees the final byte order.
func (e *SnapshotEncoder) newHeader(t format.TokenizerType) *section.SnapshotHeader {
	header := section.NewSnapshotHeader(t)
	if e.bigEndian {
		header.Flag.WithBigEndian()
	}
	// compression is validated by the option, so this cannot fail here
	_ = header.Flag.SetCompressionType(e.compression)

	return header
}

// EncodeNumeric snapshots a numeric tokenizer.
//
// Payload layout: numBits (uint8), fitted (uint8), token offset (int64),
// min (float64 bits), max (float64 bits).
func (e *SnapshotEncoder) EncodeNumeric(t *tokenizer.NumericTokenizer) ([]byte, error) {
	header := e.newHeader(format.TypeNumeric)

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	engine := header.Flag.GetEndianEngine()

	buf.B = append(buf.B, uint8(t.NumBits()), boolByte(t.Fitted()))
	buf.B = engine.AppendUint64(buf.B, uint64(int64(t.Offset()))) //nolint:gosec
	buf.B = engine.AppendUint64(buf.B, math.Float64bits(t.Min()))
	buf.B = engine.AppendUint64(buf.B, math.Float64bits(t.Max()))

	return e.finish(header, buf.Bytes())
}

// EncodeCategorical snapshots a categorical tokenizer.
//
// Payload layout: fitted (uint8), token offset (int64), entry count
// (uint32), then each vocabulary entry as a uint16 length prefix followed by
// raw bytes. Entries longer than MaxCategoryLength are rejected.
func (e *SnapshotEncoder) EncodeCategorical(t *tokenizer.CategoricalTokenizer) ([]byte, error) {
	header := e.newHeader(format.TypeCategorical)

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	engine := header.Flag.GetEndianEngine()
	vocab := t.Vocabulary()

	buf.B = append(buf.B, boolByte(t.Fitted()))
	buf.B = engine.AppendUint64(buf.B, uint64(int64(t.Offset()))) //nolint:gosec
	buf.B = engine.AppendUint32(buf.B, uint32(len(vocab)))        //nolint:gosec

	for _, category := range vocab {
		if len(category) > MaxCategoryLength {
			return nil, fmt.Errorf("%w: category length %d exceeds maximum %d",
				errs.ErrInvalidPayload, len(category), MaxCategoryLength)
		}
		buf.B = engine.AppendUint16(buf.B, uint16(len(category))) //nolint:gosec
		buf.B = append(buf.B, category...)
	}

	return e.finish(header, buf.Bytes())
}

// EncodeTimestamp snapshots a timestamp tokenizer.
//
// Payload layout: minYear (int32), maxYear (int32), token offset (int64).
func (e *SnapshotEncoder) EncodeTimestamp(t *tokenizer.TimestampTokenizer) ([]byte, error) {
	header := e.newHeader(format.TypeTimestamp)

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	engine := header.Flag.GetEndianEngine()

	buf.B = engine.AppendUint32(buf.B, uint32(int32(t.MinYear())))  //nolint:gosec
	buf.B = engine.AppendUint32(buf.B, uint32(int32(t.MaxYear())))  //nolint:gosec
	buf.B = engine.AppendUint64(buf.B, uint64(int64(t.Offset())))   //nolint:gosec

	return e.finish(header, buf.Bytes())
}

// finish compresses the payload, fills in the header and assembles the
// snapshot. The checksum always covers the uncompressed payload so
// corruption is detected after decompression as well.
func (e *SnapshotEncoder) finish(header *section.SnapshotHeader, payload []byte) ([]byte, error) {
	codec, err := compress.CreateCodec(e.compression, "snapshot")
	if err != nil {
		return nil, err
	}

	header.Checksum = hash.Sum64(payload)

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("snapshot payload compression failed: %w", err)
	}
	header.PayloadLength = uint32(len(compressed)) //nolint:gosec

	// finish is called while payload still aliases a pooled buffer, so the
	// header bytes and payload are copied into a fresh slice here.
	out := make([]byte, 0, section.HeaderSize+len(compressed))
	out = append(out, header.Bytes()...)
	out = append(out, compressed...)

	return out, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}

	return 0
}
