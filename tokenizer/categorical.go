package tokenizer

import (
	"sort"

	"github.com/coltok/coltok/format"
)

// Categorical sentinel tokens. Vocabulary entries start at
// CategoryTokenBase; tokens below it are reserved.
const (
	MissingToken      = 0 // MissingToken encodes null or empty input.
	UnknownToken      = 1 // UnknownToken encodes input absent from the vocabulary.
	CategoryTokenBase = 2 // CategoryTokenBase is the token of the first vocabulary entry.
)

// CategoricalTokenizer maps strings to integer tokens through a sorted,
// deduplicated vocabulary.
//
// Token space layout (before any offset):
//
//	0          missing (null/empty input)
//	1          unknown (present but not in the vocabulary)
//	2..len+1   vocabulary index + 2, in lexicographic order
//
// The vocabulary is immutable once built; Fit replaces it atomically by
// constructing the new vocabulary before discarding the old one. Sorting is
// byte-order lexicographic, not locale-aware, and lookup requires exact
// string equality.
type CategoricalTokenizer struct {
	vocab  []string
	offset int
	fitted bool
}

// CategoricalOption configures a CategoricalTokenizer at construction time.
type CategoricalOption func(*CategoricalTokenizer)

// WithVocabulary pre-builds the vocabulary from values (deduplicated and
// sorted) so the tokenizer is fitted without calling Fit. An empty slice is
// ignored.
func WithVocabulary(values []string) CategoricalOption {
	return func(t *CategoricalTokenizer) {
		t.Fit(values)
	}
}

// WithCategoricalTokenOffset shifts the entire token space, sentinels
// included, by n. Decode expects the same shift.
func WithCategoricalTokenOffset(n int) CategoricalOption {
	return func(t *CategoricalTokenizer) {
		t.offset = n
	}
}

// NewCategoricalTokenizer creates a categorical tokenizer. Without a
// WithVocabulary option it starts unfitted.
func NewCategoricalTokenizer(opts ...CategoricalOption) *CategoricalTokenizer {
	t := &CategoricalTokenizer{}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Fit builds the vocabulary from values: deduplicate, then sort
// lexicographically. Any prior vocabulary is replaced. An empty slice leaves
// the tokenizer unfitted without touching existing state.
func (t *CategoricalTokenizer) Fit(values []string) {
	if len(values) == 0 {
		t.fitted = false
		return
	}

	seen := make(map[string]struct{}, len(values))
	vocab := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		vocab = append(vocab, v)
	}

	sort.Strings(vocab)

	t.vocab = vocab
	t.fitted = true
}

// Encode converts a string into its integer token.
//
// An empty string encodes to the missing sentinel regardless of fit state.
// On an unfitted tokenizer, or when the value is not in the vocabulary, the
// unknown sentinel is returned. Otherwise the result is the vocabulary's
// binary-search index plus CategoryTokenBase. All results carry the
// configured offset.
func (t *CategoricalTokenizer) Encode(value string) int {
	if value == "" {
		return MissingToken + t.offset
	}
	if !t.fitted {
		return UnknownToken + t.offset
	}

	idx := sort.SearchStrings(t.vocab, value)
	if idx < len(t.vocab) && t.vocab[idx] == value {
		return idx + CategoryTokenBase + t.offset
	}

	return UnknownToken + t.offset
}

// EncodeSlice encodes each value independently.
func (t *CategoricalTokenizer) EncodeSlice(values []string) []int {
	tokens := make([]int, len(values))
	for i, v := range values {
		tokens[i] = t.Encode(v)
	}

	return tokens
}

// Decode converts a token back to its string form.
//
// Sentinel tokens decode to their fixed strings even before fitting, since
// their meaning does not depend on the vocabulary. Vocabulary tokens decode
// to "__not_fitted__" on an unfitted tokenizer and to "__invalid__" when out
// of range. Decode is a pure array index, O(1).
func (t *CategoricalTokenizer) Decode(token int) string {
	tok := token - t.offset

	switch {
	case tok == MissingToken:
		return format.MissingString
	case tok == UnknownToken:
		return format.UnknownString
	case !t.fitted:
		return format.NotFittedString
	case tok < 0 || tok-CategoryTokenBase >= len(t.vocab):
		return format.InvalidString
	default:
		return t.vocab[tok-CategoryTokenBase]
	}
}

// DecodeSlice decodes each token independently.
func (t *CategoricalTokenizer) DecodeSlice(tokens []int) []string {
	values := make([]string, len(tokens))
	for i, tok := range tokens {
		values[i] = t.Decode(tok)
	}

	return values
}

// Classify returns the tagged view of a token, per the mapping documented in
// the format package.
func (t *CategoricalTokenizer) Classify(token int) format.TokenKind {
	tok := token - t.offset

	switch {
	case tok == MissingToken:
		return format.KindMissing
	case tok == UnknownToken:
		return format.KindUnknown
	case t.fitted && tok >= CategoryTokenBase && tok-CategoryTokenBase < len(t.vocab):
		return format.KindValue
	default:
		return format.KindInvalid
	}
}

// NumCategories returns the vocabulary size, excluding sentinels.
func (t *CategoricalTokenizer) NumCategories() int {
	return len(t.vocab)
}

// TokenSpaceSize returns the total token space: vocabulary plus the two
// sentinel slots.
func (t *CategoricalTokenizer) TokenSpaceSize() int {
	return len(t.vocab) + CategoryTokenBase
}

// Vocabulary returns a copy of the sorted vocabulary.
func (t *CategoricalTokenizer) Vocabulary() []string {
	vocab := make([]string, len(t.vocab))
	copy(vocab, t.vocab)

	return vocab
}

// Offset returns the configured token offset.
func (t *CategoricalTokenizer) Offset() int {
	return t.offset
}

// Fitted reports whether a vocabulary is installed.
func (t *CategoricalTokenizer) Fitted() bool {
	return t.fitted
}
