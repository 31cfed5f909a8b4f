package aht

import (
	"testing"
)

func FuzzLenRoundTrip(f *testing.F) {
	for _, l := range []int{1, 2, 127, 128, 129, 32767} {
		f.Add(l)
	}
	f.Fuzz(func(t *testing.T, l int) {
		if l < 1 || l > maxKeyLen {
			t.Skip()
		}
		buf := make([]byte, 2)
		n := encodeLen(buf, l)
		got, decodedN := decodeLen(buf)
		if got != l || decodedN != n {
			t.Fatalf("encodeLen/decodeLen mismatch for l=%d: got l=%d n=%d", l, got, decodedN)
		}
		if n == 1 && buf[0] == terminator {
			t.Fatalf("length %d produced a terminator-colliding one-byte prefix", l)
		}
	})
}

func FuzzTableGetTryGet(f *testing.F) {
	f.Add([]byte("a"), uint64(1))
	f.Add([]byte("bb"), uint64(2))
	f.Fuzz(func(t *testing.T, key []byte, val uint64) {
		if len(key) == 0 || len(key) > maxKeyLen {
			t.Skip()
		}
		tbl := New(func(k []byte) uint32 { return 7 })

		ref, err := tbl.Get(key)
		if err != nil {
			t.Fatalf("Get rejected a valid key: %v", err)
		}
		ref.Store(Value(val))

		got, found, err := tbl.TryGet(key)
		if err != nil || !found {
			t.Fatalf("TryGet failed to find a key just inserted: found=%v err=%v", found, err)
		}
		if got.Load() != Value(val) {
			t.Fatalf("value mismatch: want %d got %d", val, got.Load())
		}
	})
}
