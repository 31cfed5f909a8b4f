package aht

import "bytes"

// bucket is the byte buffer associated with one hash-table index: zero or
// more slot records packed back to back, followed by one terminator byte.
// A nil bucket is the empty bucket (no buffer allocated).
type bucket []byte

// find scans b in insertion order for key, returning the byte offset of its
// value field on a hit. Ties cannot occur (invariant 3), so the first match
// is the only match.
func (b bucket) find(key []byte) (valueOff int, found bool) {
	i := 0
	for i < len(b) && b[i] != terminator {
		l, p := decodeLen(b[i:])
		recKey := b[i+p : i+p+l]
		if l == len(key) && bytes.Equal(recKey, key) {
			return i + p + l, true
		}
		i += p + l + valueSize
	}
	return 0, false
}

// appendRecord reallocates b to hold one additional record for key, in
// addition to whatever records b already held, and returns the new bucket
// along with the byte offset of the new record's value field. Passing a nil
// b creates a fresh one-record bucket.
func appendRecord(b bucket, key []byte) (bucket, int) {
	oldLen := 0
	if b != nil {
		oldLen = len(b) - 1 // bucket minus its terminator
	}
	recLen := prefixSize(len(key)) + len(key) + valueSize
	nb := make(bucket, oldLen+recLen+1)
	copy(nb, b[:oldLen])
	valueOff := oldLen + encodeRecord(nb[oldLen:oldLen+recLen], key)
	nb[len(nb)-1] = terminator
	return nb, valueOff
}
