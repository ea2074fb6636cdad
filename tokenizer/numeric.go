package tokenizer

import "math"

// DefaultNumBits is the bisection depth used when no explicit bit count is given.
const DefaultNumBits = 8

// NumericTokenizer encodes bounded real values as interval-bisection token
// sequences.
//
// The fitted range [min, max] is repeatedly halved; at each level the encoder
// records whether the value lies in the upper half by emitting that level's
// bit position. The emitted positions are strictly increasing, so the output
// is the unique binary-fraction representation of the value's position within
// the range at a resolution of (max-min) / 2^numBits.
//
// Values outside the fitted range, non-finite values, and any input on an
// unfitted tokenizer encode to an empty sequence. The encoding has no
// missing-value sentinel of its own: an empty sequence is the only signal,
// and it is indistinguishable from "legitimately unencodable".
type NumericTokenizer struct {
	min     float64
	max     float64
	numBits int
	offset  int
	fitted  bool
}

// NumericOption configures a NumericTokenizer at construction time.
type NumericOption func(*NumericTokenizer)

// WithNumericTokenOffset shifts every emitted bit position by n, placing the
// tokenizer's token space at [n, n+numBits). Decode expects the same shift.
func WithNumericTokenOffset(n int) NumericOption {
	return func(t *NumericTokenizer) {
		t.offset = n
	}
}

// NewNumericTokenizer creates an unfitted numeric tokenizer with the given
// bisection depth. A non-positive numBits falls back to DefaultNumBits.
func NewNumericTokenizer(numBits int, opts ...NumericOption) *NumericTokenizer {
	if numBits <= 0 {
		numBits = DefaultNumBits
	}

	t := &NumericTokenizer{
		min:     math.NaN(),
		max:     math.NaN(),
		numBits: numBits,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Fit computes the [min, max] range from values in a single linear scan and
// marks the tokenizer fitted. An empty slice leaves the tokenizer unfitted.
//
// NaN values never win a < or > comparison, so they are skipped by the scan.
// A slice containing only NaN values therefore fits an inverted range
// (min > max) under which every value is unencodable; this mirrors the
// behavior the encoding contract was built on and is deliberate.
func (t *NumericTokenizer) Fit(values []float64) {
	if len(values) == 0 {
		t.fitted = false
		return
	}

	minVal := math.MaxFloat64
	maxVal := -math.MaxFloat64

	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	t.min = minVal
	t.max = maxVal
	t.fitted = true
}

// Encode converts a value into its bisection token sequence.
//
// The returned positions are strictly increasing and each lies in
// [offset, offset+numBits). An unfitted tokenizer, a NaN value, or a value
// outside [min, max] produces an empty sequence.
func (t *NumericTokenizer) Encode(value float64) []int {
	if !t.fitted || math.IsNaN(value) {
		return nil
	}
	// Negated range check also rejects values when min > max (all-NaN fit).
	if !(value >= t.min && value <= t.max) {
		return nil
	}

	indices := make([]int, 0, t.numBits)
	center := (t.min + t.max) / 2.0
	width := (t.max - t.min) / 2.0

	for b := 0; b < t.numBits; b++ {
		if value > center {
			indices = append(indices, b+t.offset)
			center += width / 2.0
		} else {
			center -= width / 2.0
		}
		width /= 2.0
	}

	return indices
}

// EncodeSlice encodes each value independently and returns one token
// sequence per input value.
func (t *NumericTokenizer) EncodeSlice(values []float64) [][]int {
	sequences := make([][]int, len(values))
	for i, v := range values {
		sequences[i] = t.Encode(v)
	}

	return sequences
}

// Decode reconstructs a value from its bisection token sequence.
//
// Every bit level from 0 to numBits-1 contributes: +width/2 when the level's
// position is present in indices, -width/2 when absent. Absence is
// informative, not merely "no contribution". Returns NaN if the tokenizer is
// unfitted or indices is empty.
//
// The round-trip Decode(Encode(v)) recovers v to within Resolution(); exact
// equality is not guaranteed.
func (t *NumericTokenizer) Decode(indices []int) float64 {
	if !t.fitted || len(indices) == 0 {
		return math.NaN()
	}

	center := (t.min + t.max) / 2.0
	width := (t.max - t.min) / 2.0
	value := center

	for b := 0; b < t.numBits; b++ {
		if containsIndex(indices, b+t.offset) {
			value += width / 2.0
		} else {
			value -= width / 2.0
		}
		width /= 2.0
	}

	return value
}

// DecodeSlice decodes each token sequence independently.
func (t *NumericTokenizer) DecodeSlice(sequences [][]int) []float64 {
	values := make([]float64, len(sequences))
	for i, seq := range sequences {
		values[i] = t.Decode(seq)
	}

	return values
}

// Resolution returns the reconstruction error bound (max-min) / 2^numBits,
// or NaN if the tokenizer is unfitted.
func (t *NumericTokenizer) Resolution() float64 {
	if !t.fitted {
		return math.NaN()
	}

	return (t.max - t.min) / math.Pow(2, float64(t.numBits))
}

// NumBits returns the configured bisection depth.
func (t *NumericTokenizer) NumBits() int {
	return t.numBits
}

// MaxActiveFeatures returns the maximum number of tokens a single Encode can
// emit, which equals NumBits.
func (t *NumericTokenizer) MaxActiveFeatures() int {
	return t.numBits
}

// Offset returns the configured token offset.
func (t *NumericTokenizer) Offset() int {
	return t.offset
}

// Fitted reports whether a successful Fit has been applied.
func (t *NumericTokenizer) Fitted() bool {
	return t.fitted
}

// Min returns the lower bound of the fitted range (NaN before fitting).
func (t *NumericTokenizer) Min() float64 {
	return t.min
}

// Max returns the upper bound of the fitted range (NaN before fitting).
func (t *NumericTokenizer) Max() float64 {
	return t.max
}

// NewFittedNumericTokenizer creates a numeric tokenizer with its range
// already fitted, bypassing Fit. This is how the blob package reconstructs a
// tokenizer from a snapshot; it accepts any bounds, including the inverted
// range an all-NaN Fit produces.
func NewFittedNumericTokenizer(numBits int, minVal, maxVal float64, opts ...NumericOption) *NumericTokenizer {
	t := NewNumericTokenizer(numBits, opts...)
	t.min = minVal
	t.max = maxVal
	t.fitted = true

	return t
}

// containsIndex reports whether position b appears in indices. Sequences are
// at most numBits long, so a linear scan beats any set structure here.
func containsIndex(indices []int, b int) bool {
	for _, idx := range indices {
		if idx == b {
			return true
		}
	}

	return false
}
