package schema

import (
	"fmt"

	"github.com/coltok/coltok/errs"
	"github.com/coltok/coltok/format"
	"github.com/coltok/coltok/internal/hash"
	"github.com/coltok/coltok/tokenizer"
)

func columnID(name string) uint64 {
	return hash.ID(name)
}

type columnSpec struct {
	name    string
	kind    format.TokenizerType
	numBits int
	vocab   []string
	minYear int
	maxYear int
}

// Builder accumulates column declarations and assembles them into a Schema.
//
// Declaration order is layout order. Widths must be known at build time, so
// categorical columns take their vocabulary up front; numeric columns only
// need their bit count (fitting the value range later does not change the
// column's width).
type Builder struct {
	specs []columnSpec
}

// NewBuilder creates an empty schema builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddNumeric declares an interval-bisection column with the given bisection
// depth. The column's tokenizer starts unfitted.
func (b *Builder) AddNumeric(name string, numBits int) *Builder {
	b.specs = append(b.specs, columnSpec{
		name:    name,
		kind:    format.TypeNumeric,
		numBits: numBits,
	})

	return b
}

// AddCategorical declares a sorted-vocabulary column built from values
// (deduplicated and sorted at build time).
func (b *Builder) AddCategorical(name string, values []string) *Builder {
	b.specs = append(b.specs, columnSpec{
		name:  name,
		kind:  format.TypeCategorical,
		vocab: values,
	})

	return b
}

// AddTimestamp declares a six-bucket timestamp column accepting years in
// [minYear, maxYear].
func (b *Builder) AddTimestamp(name string, minYear, maxYear int) *Builder {
	b.specs = append(b.specs, columnSpec{
		name:    name,
		kind:    format.TypeTimestamp,
		minYear: minYear,
		maxYear: maxYear,
	})

	return b
}

// Build lays the declared columns out into one shared token space and
// returns the resulting Schema.
//
// Returns an error for an empty builder, a duplicate column name (or a
// hash-colliding pair of names), or a categorical column with an empty
// vocabulary.
func (b *Builder) Build() (*Schema, error) {
	if len(b.specs) == 0 {
		return nil, errs.ErrEmptySchema
	}

	s := &Schema{
		columns: make([]*Column, 0, len(b.specs)),
		byID:    make(map[uint64]*Column, len(b.specs)),
	}

	base := 0
	for _, spec := range b.specs {
		id := columnID(spec.name)
		if prev, ok := s.byID[id]; ok {
			return nil, fmt.Errorf("%w: %q collides with %q", errs.ErrDuplicateColumn, spec.name, prev.name)
		}

		col := &Column{
			name: spec.name,
			id:   id,
			kind: spec.kind,
			base: base,
		}

		switch spec.kind {
		case format.TypeNumeric:
			col.numeric = tokenizer.NewNumericTokenizer(spec.numBits,
				tokenizer.WithNumericTokenOffset(base))
			col.width = col.numeric.NumBits()
		case format.TypeCategorical:
			col.categorical = tokenizer.NewCategoricalTokenizer(
				tokenizer.WithCategoricalTokenOffset(base),
				tokenizer.WithVocabulary(spec.vocab))
			if !col.categorical.Fitted() {
				return nil, fmt.Errorf("%w: categorical column %q", errs.ErrEmptyVocabulary, spec.name)
			}
			col.width = col.categorical.TokenSpaceSize()
		case format.TypeTimestamp:
			col.timestamp = tokenizer.NewTimestampTokenizer(spec.minYear, spec.maxYear,
				tokenizer.WithTimestampTokenOffset(base))
			col.width = col.timestamp.TokenSpaceSize()
		}

		s.columns = append(s.columns, col)
		s.byID[id] = col
		base += col.width
	}

	s.total = base

	return s, nil
}
