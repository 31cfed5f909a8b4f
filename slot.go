package aht

import "encoding/binary"

const (
	// maxKeyLen is the largest key length the 15-bit length prefix can carry.
	maxKeyLen = 1<<15 - 1 // 32767

	// shortPrefixLimit is the smallest key length that needs the two-byte
	// length prefix instead of the one-byte form.
	shortPrefixLimit = 128

	// valueSize is sizeof(Value): Value is fixed at uint64 rather than a
	// type parameter, so every offset computation in this package is a
	// compile-time constant. See DESIGN.md.
	valueSize = 8

	// terminator marks the end of a bucket's record sequence. It is never
	// produced by encodeLen for any key in [1, maxKeyLen], which is what
	// lets a scanner tell a terminator apart from a real record.
	terminator = byte(0x00)
)

// Value is the fixed-width integer type stored for every key.
type Value = uint64

// prefixSize returns the number of bytes encodeLen will write for a key of
// length l.
func prefixSize(l int) int {
	if l < shortPrefixLimit {
		return 1
	}
	return 2
}

// encodeLen writes the length prefix for l into buf[0:] and returns the
// number of bytes written. l must be in [1, maxKeyLen].
func encodeLen(buf []byte, l int) int {
	if l < shortPrefixLimit {
		buf[0] = byte(l)
		return 1
	}
	buf[0] = 0x80 | byte(l>>8)
	buf[1] = byte(l)
	return 2
}

// decodeLen reads the length prefix starting at buf[0] and returns the
// decoded key length and the number of prefix bytes consumed. buf[0] must
// not be the terminator byte.
func decodeLen(buf []byte) (l int, n int) {
	if buf[0]&0x80 == 0 {
		return int(buf[0]), 1
	}
	return int(buf[0]&0x7f)<<8 | int(buf[1]), 2
}

// encodeRecord writes a full slot record for key into buf[0:], which must be
// exactly prefixSize(len(key))+len(key)+valueSize bytes long. The value
// field is zero-initialized. It returns the byte offset of the value field
// within buf.
func encodeRecord(buf, key []byte) (valueOff int) {
	p := encodeLen(buf, len(key))
	copy(buf[p:], key)
	valueOff = p + len(key)
	clear(buf[valueOff : valueOff+valueSize])
	return valueOff
}

// decodeAt decodes the record starting at buf[cursor], returning its key
// span, the byte offset of its value field, and the cursor of the record
// that follows it. buf[cursor] must not be the terminator byte.
func decodeAt(buf []byte, cursor int) (key []byte, valueOff int, next int) {
	l, p := decodeLen(buf[cursor:])
	keyOff := cursor + p
	valueOff = keyOff + l
	next = valueOff + valueSize
	return buf[keyOff:valueOff:valueOff], valueOff, next
}

// readValue reads the 8-byte little-endian value stored at buf[off:].
func readValue(buf []byte, off int) Value {
	return binary.LittleEndian.Uint64(buf[off:])
}

// writeValue writes v as an 8-byte little-endian value at buf[off:].
func writeValue(buf []byte, off int, v Value) {
	binary.LittleEndian.PutUint64(buf[off:], v)
}

// ValueRef is a mutable reference to the 8-byte value field of a live
// record. It aliases the bucket's backing array directly, so it is valid
// only until the next mutation of the table that produced it: any Get that
// inserts or finds a different key, any Clear, and any expansion may
// reallocate the bucket it points into, after which the ValueRef reads and
// writes stale memory. Callers must not retain a ValueRef across such a
// mutation.
type ValueRef []byte

// Load returns the referenced value.
func (v ValueRef) Load() Value {
	return readValue(v, 0)
}

// Store writes val to the referenced value.
func (v ValueRef) Store(val Value) {
	writeValue(v, 0, val)
}
