// Package errs defines the sentinel error values shared across coltok packages.
//
// Call sites wrap these with fmt.Errorf("%w: ...") to attach context while
// keeping errors.Is checks stable. The core tokenizers never return errors;
// these sentinels belong to the snapshot, schema and compression layers.
package errs

import "errors"

var (
	// ErrInvalidMagic indicates the snapshot data does not start with the coltok magic number.
	ErrInvalidMagic = errors.New("invalid snapshot magic")

	// ErrInvalidHeaderSize indicates the snapshot header is truncated or oversized.
	ErrInvalidHeaderSize = errors.New("invalid snapshot header size")

	// ErrUnsupportedVersion indicates the snapshot was written by an unknown format version.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrInvalidTokenizerType indicates an unknown tokenizer type byte in the snapshot header.
	ErrInvalidTokenizerType = errors.New("invalid tokenizer type")

	// ErrUnsupportedTokenizer indicates a value that is not one of the three tokenizer types.
	ErrUnsupportedTokenizer = errors.New("unsupported tokenizer")

	// ErrInvalidCompressionType indicates an unknown compression type byte in the snapshot header.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrChecksumMismatch indicates the snapshot payload does not match its recorded checksum.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")

	// ErrTruncatedPayload indicates the snapshot payload is shorter than its recorded length.
	ErrTruncatedPayload = errors.New("truncated snapshot payload")

	// ErrInvalidPayload indicates the snapshot payload bytes cannot be decoded.
	ErrInvalidPayload = errors.New("invalid snapshot payload")

	// ErrInvalidNumBits indicates a numeric tokenizer bit count outside [1, 64].
	ErrInvalidNumBits = errors.New("invalid numeric bit count")

	// ErrInvalidYearRange indicates a timestamp tokenizer with min year above max year.
	ErrInvalidYearRange = errors.New("invalid year range")

	// ErrDuplicateColumn indicates two schema columns share the same name.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrColumnNotFound indicates a schema lookup for a name that was never added.
	ErrColumnNotFound = errors.New("column not found")

	// ErrEmptySchema indicates a schema build with no columns.
	ErrEmptySchema = errors.New("schema has no columns")

	// ErrEmptyVocabulary indicates a categorical schema column declared without values.
	ErrEmptyVocabulary = errors.New("empty vocabulary")
)
