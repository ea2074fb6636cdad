// Package compress provides the compression codecs used for snapshot
// payloads.
//
// Snapshot payloads are small and string-heavy (vocabulary lists dominate),
// so the codecs favor low fixed overhead over streaming throughput. Four
// codecs are available: NoOp, S2, LZ4 and Zstd, selected through
// format.CompressionType in the snapshot flag byte.
//
// All codecs are stateless values; internal encoder/decoder instances are
// pooled where the underlying library benefits from reuse. Compress and
// Decompress return newly allocated slices owned by the caller (the NoOp
// codec passes its input through unchanged).
package compress
