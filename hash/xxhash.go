package hash

import "github.com/cespare/xxhash/v2"

// XXHash is the default, recommended hasher: the low 32 bits of xxhash's
// 64-bit digest, chosen for its throughput and wide use across the Go
// storage ecosystem.
func XXHash(key []byte) uint32 {
	return uint32(xxhash.Sum64(key))
}
