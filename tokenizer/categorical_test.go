package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coltok/coltok/format"
)

func TestCategoricalTokenizer_FitSortsAndDeduplicates(t *testing.T) {
	tok := NewCategoricalTokenizer()
	tok.Fit([]string{"red", "green", "blue", "green", "red"})

	require.True(t, tok.Fitted())
	require.Equal(t, []string{"blue", "green", "red"}, tok.Vocabulary())
	require.Equal(t, 3, tok.NumCategories())
	require.Equal(t, 5, tok.TokenSpaceSize())
}

func TestCategoricalTokenizer_EncodeKnownValues(t *testing.T) {
	tok := NewCategoricalTokenizer(WithVocabulary([]string{"red", "green", "blue"}))

	// Sorted vocabulary is ["blue", "green", "red"].
	require.Equal(t, 2, tok.Encode("blue"))
	require.Equal(t, 3, tok.Encode("green"))
	require.Equal(t, 4, tok.Encode("red"))
}

func TestCategoricalTokenizer_EncodeSentinels(t *testing.T) {
	tok := NewCategoricalTokenizer(WithVocabulary([]string{"a", "b"}))

	require.Equal(t, MissingToken, tok.Encode(""))
	require.Equal(t, UnknownToken, tok.Encode("c"))
	// Exact equality only: no prefix or case-insensitive matching.
	require.Equal(t, UnknownToken, tok.Encode("A"))
	require.Equal(t, UnknownToken, tok.Encode("ab"))
}

func TestCategoricalTokenizer_EncodeUnfitted(t *testing.T) {
	tok := NewCategoricalTokenizer()

	require.Equal(t, MissingToken, tok.Encode(""))
	require.Equal(t, UnknownToken, tok.Encode("anything"))
}

func TestCategoricalTokenizer_Decode(t *testing.T) {
	tok := NewCategoricalTokenizer(WithVocabulary([]string{"red", "green", "blue"}))

	tests := []struct {
		name  string
		token int
		want  string
	}{
		{"missing", 0, format.MissingString},
		{"unknown", 1, format.UnknownString},
		{"first category", 2, "blue"},
		{"middle category", 3, "green"},
		{"last category", 4, "red"},
		{"past vocabulary", 5, format.InvalidString},
		{"negative", -1, format.InvalidString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tok.Decode(tt.token))
		})
	}
}

func TestCategoricalTokenizer_DecodeUnfitted(t *testing.T) {
	tok := NewCategoricalTokenizer()

	// Sentinel meanings do not depend on the vocabulary.
	require.Equal(t, format.MissingString, tok.Decode(0))
	require.Equal(t, format.UnknownString, tok.Decode(1))
	require.Equal(t, format.NotFittedString, tok.Decode(2))
	require.Equal(t, format.NotFittedString, tok.Decode(99))
}

func TestCategoricalTokenizer_RoundTrip(t *testing.T) {
	vocab := []string{"apple", "banana", "cherry", "date"}
	tok := NewCategoricalTokenizer(WithVocabulary(vocab))

	for _, s := range vocab {
		require.Equal(t, s, tok.Decode(tok.Encode(s)))
	}
}

func TestCategoricalTokenizer_FitEmptyLeavesUnfitted(t *testing.T) {
	tok := NewCategoricalTokenizer()
	tok.Fit(nil)
	require.False(t, tok.Fitted())

	tok.Fit([]string{"x"})
	require.True(t, tok.Fitted())

	// Empty refit clears the fitted flag but keeps the old vocabulary data
	// untouched underneath.
	tok.Fit([]string{})
	require.False(t, tok.Fitted())
	require.Equal(t, UnknownToken, tok.Encode("x"))
}

func TestCategoricalTokenizer_RefitReplacesVocabulary(t *testing.T) {
	tok := NewCategoricalTokenizer(WithVocabulary([]string{"old"}))
	require.Equal(t, 2, tok.Encode("old"))

	tok.Fit([]string{"new", "newer"})
	require.Equal(t, UnknownToken, tok.Encode("old"))
	require.Equal(t, 2, tok.Encode("new"))
	require.Equal(t, 3, tok.Encode("newer"))
}

func TestCategoricalTokenizer_TokenOffset(t *testing.T) {
	tok := NewCategoricalTokenizer(
		WithVocabulary([]string{"red", "green", "blue"}),
		WithCategoricalTokenOffset(100),
	)
	require.Equal(t, 100, tok.Offset())

	require.Equal(t, 100, tok.Encode(""))
	require.Equal(t, 101, tok.Encode("purple"))
	require.Equal(t, 103, tok.Encode("green"))

	require.Equal(t, format.MissingString, tok.Decode(100))
	require.Equal(t, "green", tok.Decode(103))
	require.Equal(t, format.InvalidString, tok.Decode(0))
}

func TestCategoricalTokenizer_Classify(t *testing.T) {
	tok := NewCategoricalTokenizer(WithVocabulary([]string{"a", "b"}))

	require.Equal(t, format.KindMissing, tok.Classify(0))
	require.Equal(t, format.KindUnknown, tok.Classify(1))
	require.Equal(t, format.KindValue, tok.Classify(2))
	require.Equal(t, format.KindValue, tok.Classify(3))
	require.Equal(t, format.KindInvalid, tok.Classify(4))
	require.Equal(t, format.KindInvalid, tok.Classify(-1))
}

func TestCategoricalTokenizer_EncodeDecodeSlice(t *testing.T) {
	tok := NewCategoricalTokenizer(WithVocabulary([]string{"red", "green", "blue"}))

	tokens := tok.EncodeSlice([]string{"green", "", "plaid", "blue"})
	require.Equal(t, []int{3, 0, 1, 2}, tokens)

	values := tok.DecodeSlice(tokens)
	require.Equal(t, []string{"green", format.MissingString, format.UnknownString, "blue"}, values)
}

func TestCategoricalTokenizer_VocabularyCopyIsIsolated(t *testing.T) {
	tok := NewCategoricalTokenizer(WithVocabulary([]string{"a", "b"}))

	vocab := tok.Vocabulary()
	vocab[0] = "mutated"
	require.Equal(t, []string{"a", "b"}, tok.Vocabulary())
}
