package blob

import (
	"fmt"
	"math"

	"github.com/coltok/coltok/compress"
	"github.com/coltok/coltok/errs"
	"github.com/coltok/coltok/format"
	"github.com/coltok/coltok/internal/hash"
	"github.com/coltok/coltok/section"
	"github.com/coltok/coltok/tokenizer"
)

// SnapshotDecoder restores a tokenizer from snapshot bytes.
//
// NewSnapshotDecoder validates framing eagerly: the header is parsed, the
// payload is decompressed and its checksum verified before any DecodeX
// method can run. A decoder therefore never holds corrupt state.
type SnapshotDecoder struct {
	header  section.SnapshotHeader
	payload []byte
}

// NewSnapshotDecoder parses and validates a snapshot.
//
// Returns:
//   - *SnapshotDecoder: Decoder ready for the DecodeX method matching TokenizerType()
//   - error: Wrapped errs sentinel describing the first framing defect found
func NewSnapshotDecoder(data []byte) (*SnapshotDecoder, error) {
	d := &SnapshotDecoder{}

	if err := d.header.Parse(data); err != nil {
		return nil, err
	}

	body := data[section.HeaderSize:]
	if len(body) < int(d.header.PayloadLength) {
		return nil, fmt.Errorf("%w: have %d bytes, header records %d",
			errs.ErrTruncatedPayload, len(body), d.header.PayloadLength)
	}
	body = body[:d.header.PayloadLength]

	codec, err := compress.CreateCodec(d.header.Flag.GetCompressionType(), "snapshot")
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	if sum := hash.Sum64(payload); sum != d.header.Checksum {
		return nil, fmt.Errorf("%w: computed 0x%016x, header records 0x%016x",
			errs.ErrChecksumMismatch, sum, d.header.Checksum)
	}

	d.payload = payload

	return d, nil
}

// TokenizerType returns which tokenizer this snapshot restores.
func (d *SnapshotDecoder) TokenizerType() format.TokenizerType {
	return d.header.Flag.GetTokenizerType()
}

// CompressionType returns the payload compression recorded in the header.
func (d *SnapshotDecoder) CompressionType() format.CompressionType {
	return d.header.Flag.GetCompressionType()
}

// DecodeNumeric restores a numeric tokenizer from the snapshot.
func (d *SnapshotDecoder) DecodeNumeric() (*tokenizer.NumericTokenizer, error) {
	if err := d.expectType(format.TypeNumeric); err != nil {
		return nil, err
	}

	const payloadSize = 1 + 1 + 8 + 8 + 8
	if len(d.payload) != payloadSize {
		return nil, fmt.Errorf("%w: numeric payload is %d bytes, want %d",
			errs.ErrInvalidPayload, len(d.payload), payloadSize)
	}

	engine := d.header.Flag.GetEndianEngine()

	numBits := int(d.payload[0])
	if numBits < 1 || numBits > 64 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidNumBits, numBits)
	}
	fitted := d.payload[1] != 0
	offset := int(int64(engine.Uint64(d.payload[2:10]))) //nolint:gosec
	minVal := math.Float64frombits(engine.Uint64(d.payload[10:18]))
	maxVal := math.Float64frombits(engine.Uint64(d.payload[18:26]))

	if !fitted {
		return tokenizer.NewNumericTokenizer(numBits, tokenizer.WithNumericTokenOffset(offset)), nil
	}

	return tokenizer.NewFittedNumericTokenizer(numBits, minVal, maxVal,
		tokenizer.WithNumericTokenOffset(offset)), nil
}

// DecodeCategorical restores a categorical tokenizer from the snapshot.
func (d *SnapshotDecoder) DecodeCategorical() (*tokenizer.CategoricalTokenizer, error) {
	if err := d.expectType(format.TypeCategorical); err != nil {
		return nil, err
	}

	const fixedSize = 1 + 8 + 4
	if len(d.payload) < fixedSize {
		return nil, fmt.Errorf("%w: categorical payload is %d bytes, want at least %d",
			errs.ErrInvalidPayload, len(d.payload), fixedSize)
	}

	engine := d.header.Flag.GetEndianEngine()

	fitted := d.payload[0] != 0
	offset := int(int64(engine.Uint64(d.payload[1:9]))) //nolint:gosec
	count := int(engine.Uint32(d.payload[9:13]))

	// Every entry needs at least its 2-byte length prefix; reject inflated
	// counts before sizing the vocabulary slice.
	if count*2 > len(d.payload)-fixedSize {
		return nil, fmt.Errorf("%w: vocabulary count %d exceeds payload capacity",
			errs.ErrInvalidPayload, count)
	}

	vocab := make([]string, 0, count)
	pos := fixedSize
	for i := 0; i < count; i++ {
		if pos+2 > len(d.payload) {
			return nil, fmt.Errorf("%w: vocabulary entry %d length prefix out of bounds",
				errs.ErrInvalidPayload, i)
		}
		entryLen := int(engine.Uint16(d.payload[pos : pos+2]))
		pos += 2
		if pos+entryLen > len(d.payload) {
			return nil, fmt.Errorf("%w: vocabulary entry %d data out of bounds",
				errs.ErrInvalidPayload, i)
		}
		vocab = append(vocab, string(d.payload[pos:pos+entryLen]))
		pos += entryLen
	}
	if pos != len(d.payload) {
		return nil, fmt.Errorf("%w: %d trailing bytes after vocabulary",
			errs.ErrInvalidPayload, len(d.payload)-pos)
	}

	opts := []tokenizer.CategoricalOption{tokenizer.WithCategoricalTokenOffset(offset)}
	if fitted {
		opts = append(opts, tokenizer.WithVocabulary(vocab))
	}

	return tokenizer.NewCategoricalTokenizer(opts...), nil
}

// DecodeTimestamp restores a timestamp tokenizer from the snapshot.
func (d *SnapshotDecoder) DecodeTimestamp() (*tokenizer.TimestampTokenizer, error) {
	if err := d.expectType(format.TypeTimestamp); err != nil {
		return nil, err
	}

	const payloadSize = 4 + 4 + 8
	if len(d.payload) != payloadSize {
		return nil, fmt.Errorf("%w: timestamp payload is %d bytes, want %d",
			errs.ErrInvalidPayload, len(d.payload), payloadSize)
	}

	engine := d.header.Flag.GetEndianEngine()

	minYear := int(int32(engine.Uint32(d.payload[0:4])))  //nolint:gosec
	maxYear := int(int32(engine.Uint32(d.payload[4:8])))  //nolint:gosec
	offset := int(int64(engine.Uint64(d.payload[8:16])))  //nolint:gosec

	if minYear > maxYear {
		return nil, fmt.Errorf("%w: [%d, %d]", errs.ErrInvalidYearRange, minYear, maxYear)
	}

	return tokenizer.NewTimestampTokenizer(minYear, maxYear,
		tokenizer.WithTimestampTokenOffset(offset)), nil
}

func (d *SnapshotDecoder) expectType(want format.TokenizerType) error {
	if got := d.TokenizerType(); got != want {
		return fmt.Errorf("%w: snapshot holds a %s tokenizer, not %s",
			errs.ErrInvalidTokenizerType, got.String(), want.String())
	}

	return nil
}
