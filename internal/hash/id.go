package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string. Schema columns are
// identified by the hash of their name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Sum64 computes the xxHash64 of raw bytes. Snapshot payloads record this as
// their integrity checksum.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
