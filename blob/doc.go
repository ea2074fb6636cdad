// Package blob serializes fitted tokenizer state into self-describing
// binary snapshots and restores tokenizers from them.
//
// A snapshot holds exactly one tokenizer. The format is a fixed 16-byte
// header (magic number, endianness, tokenizer type, compression type,
// payload length, xxHash64 checksum of the uncompressed payload) followed by
// the payload. Payloads carry only calibration state: numBits/offset/range
// for numeric, offset/vocabulary for categorical, year bounds/offset for
// timestamp. Encoded token data is never persisted here; what a caller does
// with token sequences is the caller's business.
//
// # Basic Usage
//
// Saving a fitted tokenizer:
//
//	enc, _ := blob.NewSnapshotEncoder(blob.WithSnapshotCompression(format.CompressionS2))
//	data, err := enc.EncodeCategorical(tok)
//
// Restoring it:
//
//	dec, err := blob.NewSnapshotDecoder(data)
//	tok, err := dec.DecodeCategorical()
//
// Corrupted input is rejected before any tokenizer is constructed: a bad
// magic number, unknown type byte, short payload, or checksum mismatch all
// surface as wrapped errs sentinels.
package blob
