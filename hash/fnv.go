package hash

import "github.com/segmentio/fasthash/fnv1a"

// FNV1a is a second, independently implemented digest with a different
// avalanche pattern than XXHash. It is used to show that the table's
// correctness properties do not depend on which hash implementation it is
// built with.
func FNV1a(key []byte) uint32 {
	return fnv1a.HashBytes32(key)
}
