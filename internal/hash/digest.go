package hash

import "github.com/cespare/xxhash/v2"

// Digest computes the xxHash64 of an encoded payload.
func Digest(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// DigestString computes the xxHash64 of a string without copying it.
func DigestString(data string) uint64 {
	return xxhash.Sum64String(data)
}
