package tokenizer

import (
	"fmt"

	"github.com/coltok/coltok/format"
)

// Default year bounds, matching the original calibration range.
const (
	DefaultMinYear = 2000
	DefaultMaxYear = 2100
)

// NumTimestampTokens is the number of tokens every timestamp encodes to.
const NumTimestampTokens = 6

// Component identifies one of the six timestamp components, in bucket order.
type Component int

const (
	ComponentYear Component = iota
	ComponentMonth
	ComponentDay
	ComponentHour
	ComponentMinute
	ComponentSecond

	// ComponentNone is returned by Classify for tokens outside every bucket.
	ComponentNone Component = -1
)

func (c Component) String() string {
	switch c {
	case ComponentYear:
		return "year"
	case ComponentMonth:
		return "month"
	case ComponentDay:
		return "day"
	case ComponentHour:
		return "hour"
	case ComponentMinute:
		return "minute"
	case ComponentSecond:
		return "second"
	default:
		return "none"
	}
}

// componentMins holds each component's minimum valid value: minYear is
// patched in per tokenizer.
var componentMins = [NumTimestampTokens]int{0, 1, 1, 0, 0, 0}

// TimestampTokenizer encodes ISO-8601 timestamps as exactly six integer
// tokens, one per component, each drawn from a disjoint contiguous bucket of
// the token-id space.
//
// Buckets are laid out in the fixed order {year, month, day, hour, minute,
// second}. Each bucket is one slot wider than its valid value count; the top
// slot is that bucket's invalid sentinel, so a malformed or out-of-range
// timestamp still encodes to six tokens and any single token value maps to
// exactly one component. Seconds accept 0-60 to tolerate leap seconds.
//
// Parsing is a single-pass fixed-width scan, not a calendar library: the
// date and time separator may be 'T' or a space, fractional seconds are
// truncated, and day-of-month validity beyond [1, 31] is deliberately NOT
// cross-checked against the month (e.g. "2025-02-30" parses successfully).
// Downstream consumers depend on that looseness.
//
// The tokenizer carries configuration only; there is no data-dependent Fit
// and instances are immutable after construction.
type TimestampTokenizer struct {
	minYear int
	maxYear int
	offset  int
	mins    [NumTimestampTokens]int
	bases   [NumTimestampTokens]int
	widths  [NumTimestampTokens]int
	total   int
}

// TimestampOption configures a TimestampTokenizer at construction time.
type TimestampOption func(*TimestampTokenizer)

// WithTimestampTokenOffset shifts all six buckets by n.
func WithTimestampTokenOffset(n int) TimestampOption {
	return func(t *TimestampTokenizer) {
		t.offset = n
	}
}

// NewTimestampTokenizer creates a timestamp tokenizer accepting years in
// [minYear, maxYear]. If the bounds are inverted they are swapped.
func NewTimestampTokenizer(minYear, maxYear int, opts ...TimestampOption) *TimestampTokenizer {
	if minYear > maxYear {
		minYear, maxYear = maxYear, minYear
	}

	t := &TimestampTokenizer{
		minYear: minYear,
		maxYear: maxYear,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.mins = componentMins
	t.mins[ComponentYear] = minYear

	// Each width is the valid value count plus one sentinel slot.
	t.widths = [NumTimestampTokens]int{
		maxYear - minYear + 2, // year
		13,                    // month 1-12
		32,                    // day 1-31
		25,                    // hour 0-23
		61,                    // minute 0-59
		62,                    // second 0-60, leap second tolerated
	}

	base := t.offset
	for i := range t.bases {
		t.bases[i] = base
		base += t.widths[i]
	}
	t.total = base - t.offset

	return t
}

// Encode converts an ISO-8601 timestamp into its six component tokens.
//
// On successful parse, token i is component_value - component_minimum +
// bucket_base. On any parse or range failure the result is the six
// per-bucket invalid sentinels; never a partial sequence.
func (t *TimestampTokenizer) Encode(iso string) []int {
	parts, ok := t.parse(iso)
	if !ok {
		return t.sentinels()
	}

	tokens := make([]int, NumTimestampTokens)
	for i := range tokens {
		tokens[i] = parts[i] - t.mins[i] + t.bases[i]
	}

	return tokens
}

// EncodeSlice encodes each timestamp independently.
func (t *TimestampTokenizer) EncodeSlice(timestamps []string) [][]int {
	sequences := make([][]int, len(timestamps))
	for i, ts := range timestamps {
		sequences[i] = t.Encode(ts)
	}

	return sequences
}

// Decode converts six component tokens back into the normalized
// "YYYY-MM-DDTHH:MM:SS" form.
//
// It returns "__invalid__" when the sequence is not exactly six tokens, when
// any token falls outside its expected bucket, or when any token is a
// bucket's sentinel.
func (t *TimestampTokenizer) Decode(tokens []int) string {
	if len(tokens) != NumTimestampTokens {
		return format.InvalidString
	}

	var parts [NumTimestampTokens]int
	for i, tok := range tokens {
		rel := tok - t.bases[i]
		// widths[i]-1 is the sentinel slot; only values below it are valid.
		if rel < 0 || rel >= t.widths[i]-1 {
			return format.InvalidString
		}
		parts[i] = rel + t.mins[i]
	}

	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		parts[ComponentYear], parts[ComponentMonth], parts[ComponentDay],
		parts[ComponentHour], parts[ComponentMinute], parts[ComponentSecond])
}

// DecodeSlice decodes each token sequence independently.
func (t *TimestampTokenizer) DecodeSlice(sequences [][]int) []string {
	values := make([]string, len(sequences))
	for i, seq := range sequences {
		values[i] = t.Decode(seq)
	}

	return values
}

// Classify returns which component owns a token and whether it is a valid
// value or a sentinel. Tokens outside every bucket yield (ComponentNone,
// KindInvalid).
func (t *TimestampTokenizer) Classify(token int) (Component, format.TokenKind) {
	for i := range t.bases {
		rel := token - t.bases[i]
		if rel < 0 || rel >= t.widths[i] {
			continue
		}
		if rel == t.widths[i]-1 {
			return Component(i), format.KindInvalid
		}

		return Component(i), format.KindValue
	}

	return ComponentNone, format.KindInvalid
}

// BucketRange returns the inclusive token-id range of a component's bucket.
// The upper bound is the bucket's sentinel slot.
func (t *TimestampTokenizer) BucketRange(c Component) (lo, hi int) {
	if c < ComponentYear || c > ComponentSecond {
		return 0, -1
	}

	return t.bases[c], t.bases[c] + t.widths[c] - 1
}

// TokenSpaceSize returns the total width of all six buckets.
func (t *TimestampTokenizer) TokenSpaceSize() int {
	return t.total
}

// MinYear returns the inclusive lower year bound.
func (t *TimestampTokenizer) MinYear() int {
	return t.minYear
}

// MaxYear returns the inclusive upper year bound.
func (t *TimestampTokenizer) MaxYear() int {
	return t.maxYear
}

// Offset returns the configured token offset.
func (t *TimestampTokenizer) Offset() int {
	return t.offset
}

// sentinels returns the whole-record invalid encoding: each bucket's
// reserved sentinel, one per component.
func (t *TimestampTokenizer) sentinels() []int {
	tokens := make([]int, NumTimestampTokens)
	for i := range tokens {
		tokens[i] = t.bases[i] + t.widths[i] - 1
	}

	return tokens
}

// parse is the single-pass fixed-width validator for
// "YYYY-MM-DD{T| }HH:MM:SS" with an optional fractional second suffix.
// It fails as a whole on the first bad byte; there is no partial success.
func (t *TimestampTokenizer) parse(iso string) ([NumTimestampTokens]int, bool) {
	var parts [NumTimestampTokens]int

	// The date segment must be exactly 10 characters, so the separator sits
	// at a fixed position.
	if len(iso) < 19 || (iso[10] != 'T' && iso[10] != ' ') {
		return parts, false
	}

	year, ok := scanDigits(iso[0:4])
	if !ok || iso[4] != '-' {
		return parts, false
	}
	month, ok := scanDigits(iso[5:7])
	if !ok || iso[7] != '-' {
		return parts, false
	}
	day, ok := scanDigits(iso[8:10])
	if !ok {
		return parts, false
	}

	hour, ok := scanDigits(iso[11:13])
	if !ok || iso[13] != ':' {
		return parts, false
	}
	minute, ok := scanDigits(iso[14:16])
	if !ok || iso[16] != ':' {
		return parts, false
	}
	second, ok := scanDigits(iso[17:19])
	if !ok {
		return parts, false
	}

	// Fractional seconds are tolerated and truncated.
	if len(iso) > 19 {
		if iso[19] != '.' || len(iso) == 20 {
			return parts, false
		}
		for i := 20; i < len(iso); i++ {
			if iso[i] < '0' || iso[i] > '9' {
				return parts, false
			}
		}
	}

	if year < t.minYear || year > t.maxYear ||
		month < 1 || month > 12 ||
		day < 1 || day > 31 ||
		hour < 0 || hour > 23 ||
		minute < 0 || minute > 59 ||
		second < 0 || second > 60 { // 60 accounts for leap seconds
		return parts, false
	}

	parts[ComponentYear] = year
	parts[ComponentMonth] = month
	parts[ComponentDay] = day
	parts[ComponentHour] = hour
	parts[ComponentMinute] = minute
	parts[ComponentSecond] = second

	return parts, true
}

// scanDigits parses a fixed-width run of ASCII digits.
func scanDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}

	return n, true
}
