// Package coltok converts scalar column values — real numbers, categorical
// strings, ISO-8601 timestamps — into fixed-vocabulary integer token
// sequences suitable as model input, and back.
//
// Three independent codecs cover the three column types:
//
//   - Numeric: recursive interval bisection of a fitted [min, max] range
//     into up to numBits bit-position tokens (tokenizer.NumericTokenizer).
//   - Categorical: a single token indexing a sorted vocabulary, with
//     sentinel tokens for missing and unknown input
//     (tokenizer.CategoricalTokenizer).
//   - Timestamp: exactly six tokens, one per calendar/clock component, each
//     drawn from a disjoint bucket of the token space
//     (tokenizer.TimestampTokenizer).
//
// # Basic Usage
//
// Fitting and encoding a numeric column:
//
//	tok := coltok.NewNumericTokenizer()
//	tok.Fit([]float64{0, 100})
//	tokens := tok.Encode(25.3)   // bit positions, e.g. [2 7]
//	value := tok.Decode(tokens)  // 25.3 within (max-min)/2^numBits
//
// Persisting fitted state:
//
//	data, err := coltok.SaveSnapshot(tok)
//	restored, err := coltok.LoadNumericSnapshot(data)
//
// Composing columns into one token space:
//
//	s, err := schema.NewBuilder().
//	    AddCategorical("color", []string{"red", "green", "blue"}).
//	    AddTimestamp("created_at", 2000, 2030).
//	    Build()
//
// # Package Structure
//
// This package provides convenient top-level wrappers with the original
// calibration defaults (8 bisection bits, years 2000-2100). For
// fine-grained control use the tokenizer, schema and blob packages directly.
package coltok

import (
	"fmt"

	"github.com/coltok/coltok/blob"
	"github.com/coltok/coltok/errs"
	"github.com/coltok/coltok/internal/hash"
	"github.com/coltok/coltok/tokenizer"
)

// NewNumericTokenizer creates an unfitted numeric tokenizer with the default
// bisection depth of 8 bits.
func NewNumericTokenizer() *tokenizer.NumericTokenizer {
	return tokenizer.NewNumericTokenizer(tokenizer.DefaultNumBits)
}

// NewCategoricalTokenizer creates an unfitted categorical tokenizer.
func NewCategoricalTokenizer() *tokenizer.CategoricalTokenizer {
	return tokenizer.NewCategoricalTokenizer()
}

// NewTimestampTokenizer creates a timestamp tokenizer accepting years
// 2000-2100.
func NewTimestampTokenizer() *tokenizer.TimestampTokenizer {
	return tokenizer.NewTimestampTokenizer(tokenizer.DefaultMinYear, tokenizer.DefaultMaxYear)
}

// ColumnID computes the xxHash64 identifier of a column name, as used by the
// schema package.
func ColumnID(name string) uint64 {
	return hash.ID(name)
}

// SaveSnapshot serializes a tokenizer's state with default snapshot options
// (little-endian, no compression). t must be one of the three tokenizer
// types.
func SaveSnapshot(t any) ([]byte, error) {
	enc, err := blob.NewSnapshotEncoder()
	if err != nil {
		return nil, err
	}

	switch tok := t.(type) {
	case *tokenizer.NumericTokenizer:
		return enc.EncodeNumeric(tok)
	case *tokenizer.CategoricalTokenizer:
		return enc.EncodeCategorical(tok)
	case *tokenizer.TimestampTokenizer:
		return enc.EncodeTimestamp(tok)
	default:
		return nil, fmt.Errorf("%w: %T", errs.ErrUnsupportedTokenizer, t)
	}
}

// LoadNumericSnapshot restores a numeric tokenizer from snapshot bytes.
func LoadNumericSnapshot(data []byte) (*tokenizer.NumericTokenizer, error) {
	dec, err := blob.NewSnapshotDecoder(data)
	if err != nil {
		return nil, err
	}

	return dec.DecodeNumeric()
}

// LoadCategoricalSnapshot restores a categorical tokenizer from snapshot bytes.
func LoadCategoricalSnapshot(data []byte) (*tokenizer.CategoricalTokenizer, error) {
	dec, err := blob.NewSnapshotDecoder(data)
	if err != nil {
		return nil, err
	}

	return dec.DecodeCategorical()
}

// LoadTimestampSnapshot restores a timestamp tokenizer from snapshot bytes.
func LoadTimestampSnapshot(data []byte) (*tokenizer.TimestampTokenizer, error) {
	dec, err := blob.NewSnapshotDecoder(data)
	if err != nil {
		return nil, err
	}

	return dec.DecodeTimestamp()
}
