// Package tokenizer converts scalar column values into fixed-vocabulary
// integer token sequences and back.
//
// Three independent codecs are provided, one per column type:
//
//   - NumericTokenizer: recursive interval bisection of a fitted [min, max]
//     range, emitting up to NumBits bit-position tokens per value.
//   - CategoricalTokenizer: a sorted, deduplicated string vocabulary with
//     integer sentinels for missing and unknown input.
//   - TimestampTokenizer: component-wise bucketing of ISO-8601 timestamps
//     into exactly six tokens drawn from disjoint sub-ranges.
//
// All three follow the same lifecycle: configure at construction, optionally
// Fit once against representative data, then treat the instance as read-only.
// A fitted tokenizer is safe to share across goroutines; Fit itself is not
// safe to call concurrently with Encode or Decode on the same instance.
//
// # Error Model
//
// Encode and Decode never return errors. Every invalid input resolves locally
// into a defined sentinel: an empty token sequence or NaN for numeric input,
// the reserved integer tokens 0 and 1 for categorical input, and per-bucket
// sentinel tokens for timestamps. Downstream model-training code depends on
// these fixed-length, fixed-meaning outputs, so the sentinel contract is
// strict. The Classify methods expose the tagged view of the same integers.
//
// # Token Offsets
//
// Each tokenizer accepts an optional token offset that shifts its entire
// token space. Offsets let a caller lay multiple columns out in one shared
// token-id space with disjoint per-column ranges; the schema package does
// exactly that.
package tokenizer
