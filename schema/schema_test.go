package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coltok/coltok/errs"
	"github.com/coltok/coltok/format"
	"github.com/coltok/coltok/internal/hash"
)

func buildTestSchema(t *testing.T) *Schema {
	t.Helper()

	s, err := NewBuilder().
		AddNumeric("temperature", 8).
		AddCategorical("color", []string{"red", "green", "blue"}).
		AddTimestamp("observed_at", 2000, 2030).
		Build()
	require.NoError(t, err)

	return s
}

func TestBuilder_Layout(t *testing.T) {
	s := buildTestSchema(t)

	require.Equal(t, 3, s.NumColumns())

	temp := s.ColumnAt(0)
	require.Equal(t, "temperature", temp.Name())
	require.Equal(t, format.TypeNumeric, temp.Kind())
	lo, hi := temp.TokenRange()
	require.Equal(t, 0, lo)
	require.Equal(t, 7, hi)

	color := s.ColumnAt(1)
	require.Equal(t, format.TypeCategorical, color.Kind())
	lo, hi = color.TokenRange()
	require.Equal(t, 8, lo)
	require.Equal(t, 12, hi) // 3 categories + 2 sentinel slots

	observed := s.ColumnAt(2)
	require.Equal(t, format.TypeTimestamp, observed.Kind())
	lo, hi = observed.TokenRange()
	require.Equal(t, 13, lo)
	require.Equal(t, 13+observed.Width()-1, hi)

	require.Equal(t, 13+observed.Width(), s.TokenSpaceSize())
}

func TestBuilder_ColumnRangesDisjoint(t *testing.T) {
	s := buildTestSchema(t)

	prevHi := -1
	for i := 0; i < s.NumColumns(); i++ {
		lo, hi := s.ColumnAt(i).TokenRange()
		require.Equal(t, prevHi+1, lo)
		require.GreaterOrEqual(t, hi, lo)
		prevHi = hi
	}
	require.Equal(t, s.TokenSpaceSize()-1, prevHi)
}

func TestSchema_ColumnLookup(t *testing.T) {
	s := buildTestSchema(t)

	col, err := s.Column("color")
	require.NoError(t, err)
	require.Equal(t, "color", col.Name())
	require.Equal(t, hash.ID("color"), col.ID())

	_, err = s.Column("missing")
	require.ErrorIs(t, err, errs.ErrColumnNotFound)
}

func TestSchema_TokenizersCarryColumnOffsets(t *testing.T) {
	s := buildTestSchema(t)

	color, err := s.Column("color")
	require.NoError(t, err)
	lo, _ := color.TokenRange()
	require.Equal(t, lo, color.Categorical().Offset())
	// Sorted vocabulary ["blue", "green", "red"]: green is index 1.
	require.Equal(t, lo+3, color.Categorical().Encode("green"))

	temp, err := s.Column("temperature")
	require.NoError(t, err)
	require.Nil(t, temp.Categorical())
	require.NotNil(t, temp.Numeric())
	require.False(t, temp.Numeric().Fitted())

	temp.Numeric().Fit([]float64{0, 100})
	for _, tok := range temp.Numeric().Encode(73.2) {
		resolved, ok := s.ResolveToken(tok)
		require.True(t, ok)
		require.Equal(t, temp, resolved)
	}
}

func TestSchema_ResolveToken(t *testing.T) {
	s := buildTestSchema(t)

	// Every token in the space resolves to the column whose range holds it.
	for i := 0; i < s.NumColumns(); i++ {
		col := s.ColumnAt(i)
		lo, hi := col.TokenRange()
		for tok := lo; tok <= hi; tok++ {
			resolved, ok := s.ResolveToken(tok)
			require.True(t, ok)
			require.Equal(t, col, resolved)
		}
	}

	_, ok := s.ResolveToken(-1)
	require.False(t, ok)
	_, ok = s.ResolveToken(s.TokenSpaceSize())
	require.False(t, ok)
}

func TestSchema_RowRoundTrip(t *testing.T) {
	s := buildTestSchema(t)

	temp, err := s.Column("temperature")
	require.NoError(t, err)
	temp.Numeric().Fit([]float64{-40, 50})

	color, err := s.Column("color")
	require.NoError(t, err)
	observed, err := s.Column("observed_at")
	require.NoError(t, err)

	var row []int
	row = append(row, temp.Numeric().Encode(21.5)...)
	row = append(row, color.Categorical().Encode("red"))
	row = append(row, observed.Timestamp().Encode("2025-06-15T08:30:00")...)

	// The flat row splits back into columns purely by token value.
	var tempTokens, tsTokens []int
	colorToken := -1
	for _, tok := range row {
		col, ok := s.ResolveToken(tok)
		require.True(t, ok)
		switch col.Name() {
		case "temperature":
			tempTokens = append(tempTokens, tok)
		case "color":
			colorToken = tok
		case "observed_at":
			tsTokens = append(tsTokens, tok)
		}
	}

	require.InDelta(t, 21.5, temp.Numeric().Decode(tempTokens), temp.Numeric().Resolution())
	require.Equal(t, "red", color.Categorical().Decode(colorToken))
	require.Equal(t, "2025-06-15T08:30:00", observed.Timestamp().Decode(tsTokens))
}

func TestBuilder_Errors(t *testing.T) {
	t.Run("empty builder", func(t *testing.T) {
		_, err := NewBuilder().Build()
		require.ErrorIs(t, err, errs.ErrEmptySchema)
	})

	t.Run("duplicate column", func(t *testing.T) {
		_, err := NewBuilder().
			AddNumeric("x", 8).
			AddCategorical("x", []string{"a"}).
			Build()
		require.ErrorIs(t, err, errs.ErrDuplicateColumn)
	})

	t.Run("empty vocabulary", func(t *testing.T) {
		_, err := NewBuilder().
			AddCategorical("empty", nil).
			Build()
		require.ErrorIs(t, err, errs.ErrEmptyVocabulary)
	})
}
