package aht

import "errors"

// ErrOversizeKey is returned by Get/TryGet when the key is longer than the
// 15-bit length prefix can represent.
var ErrOversizeKey = errors.New("aht: key length exceeds 32767 bytes")

// ErrZeroLengthKey is returned by Get/TryGet for a zero-length key. The
// encoding has no way to tell a zero-length key's one-byte length prefix
// (0x00) apart from the bucket terminator, so zero-length keys are rejected
// at the boundary rather than silently corrupting bucket layout.
var ErrZeroLengthKey = errors.New("aht: zero-length keys are not representable")

func checkKey(key []byte) error {
	switch {
	case len(key) == 0:
		return ErrZeroLengthKey
	case len(key) > maxKeyLen:
		return ErrOversizeKey
	default:
		return nil
	}
}
