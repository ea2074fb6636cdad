package format

type (
	TokenizerType   uint8
	CompressionType uint8
	TokenKind       uint8
)

const (
	TypeNumeric     TokenizerType = 0x1 // TypeNumeric represents the interval-bisection numeric tokenizer.
	TypeCategorical TokenizerType = 0x2 // TypeCategorical represents the sorted-vocabulary categorical tokenizer.
	TypeTimestamp   TokenizerType = 0x3 // TypeTimestamp represents the six-bucket timestamp tokenizer.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Token kinds classify the integer tokens produced by the tokenizers.
//
// The external boundary keeps raw integer sentinels for compatibility with
// already-trained models; TokenKind is the tagged view of the same values.
// The mapping for categorical tokens is:
//
//	0 -> KindMissing
//	1 -> KindUnknown
//	out of vocabulary range -> KindInvalid
//	everything else -> KindValue
//
// Timestamp tokens map to KindInvalid when they land on a bucket's reserved
// sentinel slot or outside every bucket, and to KindValue otherwise.
const (
	KindValue   TokenKind = 0x1 // KindValue represents a token carrying a real encoded value.
	KindMissing TokenKind = 0x2 // KindMissing represents the missing-input sentinel.
	KindUnknown TokenKind = 0x3 // KindUnknown represents the unknown-category sentinel.
	KindInvalid TokenKind = 0x4 // KindInvalid represents an invalid or out-of-range token.
)

// Sentinel strings returned by the decoders. These are part of the external
// contract and must stay bit-for-bit stable.
const (
	MissingString   = "__missing__"
	UnknownString   = "__unknown__"
	InvalidString   = "__invalid__"
	NotFittedString = "__not_fitted__"
)

func (t TokenizerType) String() string {
	switch t {
	case TypeNumeric:
		return "Numeric"
	case TypeCategorical:
		return "Categorical"
	case TypeTimestamp:
		return "Timestamp"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (k TokenKind) String() string {
	switch k {
	case KindValue:
		return "Value"
	case KindMissing:
		return "Missing"
	case KindUnknown:
		return "Unknown"
	case KindInvalid:
		return "Invalid"
	default:
		return "Undefined"
	}
}
