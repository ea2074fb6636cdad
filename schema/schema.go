// Package schema composes per-column tokenizers into one shared token-id
// space.
//
// Each column owns a disjoint contiguous range of token ids, laid out in
// declaration order exactly the way the timestamp tokenizer lays out its
// component buckets: a column's base offset is the cumulative width of every
// preceding column. Any single token id therefore maps to exactly one
// column, which ResolveToken exploits.
//
// Columns are identified by the xxHash64 of their name. Lookup by name is a
// hash-map probe, not a string scan; two distinct names with colliding
// hashes are rejected at build time.
//
// A Schema holds no cross-column state; the tokenizers stay independent and
// a fitted Schema is safe to share across goroutines. Fitting the numeric
// columns (via Column.Numeric().Fit) is the caller's step and follows the
// same single-writer rule as the tokenizers themselves.
package schema

import (
	"fmt"
	"sort"

	"github.com/coltok/coltok/errs"
	"github.com/coltok/coltok/format"
	"github.com/coltok/coltok/tokenizer"
)

// Column is one named column inside a schema's token space.
type Column struct {
	name  string
	id    uint64
	kind  format.TokenizerType
	base  int
	width int

	numeric     *tokenizer.NumericTokenizer
	categorical *tokenizer.CategoricalTokenizer
	timestamp   *tokenizer.TimestampTokenizer
}

// Name returns the column name.
func (c *Column) Name() string {
	return c.name
}

// ID returns the xxHash64 of the column name.
func (c *Column) ID() uint64 {
	return c.id
}

// Kind returns which tokenizer type backs this column.
func (c *Column) Kind() format.TokenizerType {
	return c.kind
}

// TokenRange returns the column's inclusive token-id range.
func (c *Column) TokenRange() (lo, hi int) {
	return c.base, c.base + c.width - 1
}

// Width returns the column's token space width.
func (c *Column) Width() int {
	return c.width
}

// Numeric returns the column's numeric tokenizer, or nil for other kinds.
func (c *Column) Numeric() *tokenizer.NumericTokenizer {
	return c.numeric
}

// Categorical returns the column's categorical tokenizer, or nil for other kinds.
func (c *Column) Categorical() *tokenizer.CategoricalTokenizer {
	return c.categorical
}

// Timestamp returns the column's timestamp tokenizer, or nil for other kinds.
func (c *Column) Timestamp() *tokenizer.TimestampTokenizer {
	return c.timestamp
}

// Schema is an immutable ordered set of columns sharing one token space.
type Schema struct {
	columns []*Column
	byID    map[uint64]*Column
	total   int
}

// NumColumns returns the number of columns.
func (s *Schema) NumColumns() int {
	return len(s.columns)
}

// ColumnAt returns the i-th column in declaration order.
func (s *Schema) ColumnAt(i int) *Column {
	return s.columns[i]
}

// Column resolves a column by name.
func (s *Schema) Column(name string) (*Column, error) {
	col, ok := s.byID[columnID(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, name)
	}

	return col, nil
}

// ResolveToken returns the column whose token range contains token.
// The bool result is false for tokens outside the schema's token space.
func (s *Schema) ResolveToken(token int) (*Column, bool) {
	if len(s.columns) == 0 || token < s.columns[0].base || token >= s.columns[0].base+s.total {
		return nil, false
	}

	// Bases are sorted by construction; find the last column starting at or
	// before the token.
	i := sort.Search(len(s.columns), func(i int) bool {
		return s.columns[i].base > token
	})

	return s.columns[i-1], true
}

// TokenSpaceSize returns the combined width of all columns.
func (s *Schema) TokenSpaceSize() int {
	return s.total
}
