// Package section defines the fixed-size binary sections of a tokenizer
// snapshot.
//
// A snapshot is a 16-byte header followed by one payload. The header packs a
// magic number, endianness flag, tokenizer type, compression type, payload
// length and an xxHash64 checksum of the uncompressed payload. The payload
// layout per tokenizer type is owned by the blob package.
package section
