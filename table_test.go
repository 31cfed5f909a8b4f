package aht

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arrayhash/aht/hash"
)

// S1: basic insert/lookup.
func TestScenarioS1Basic(t *testing.T) {
	tbl := New(hash.XXHash)

	for _, kv := range []struct {
		key string
		val Value
	}{
		{"a", 1}, {"bb", 2}, {"ccc", 3},
	} {
		ref, err := tbl.Get([]byte(kv.key))
		require.NoError(t, err)
		ref.Store(kv.val)
	}

	require.Equal(t, 3, tbl.Size())

	for _, kv := range []struct {
		key string
		val Value
	}{
		{"a", 1}, {"bb", 2}, {"ccc", 3},
	} {
		ref, found, err := tbl.TryGet([]byte(kv.key))
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, kv.val, ref.Load())
	}

	_, found, err := tbl.TryGet([]byte("d"))
	require.NoError(t, err)
	require.False(t, found)
}

// S4: idempotent lookup and in-place mutation through a value handle.
func TestScenarioS4MutateThroughHandle(t *testing.T) {
	tbl := New(hash.XXHash)

	ref, err := tbl.Get([]byte("a"))
	require.NoError(t, err)
	ref.Store(5)

	ref2, err := tbl.Get([]byte("a"))
	require.NoError(t, err)
	ref2.Store(9)

	ref3, found, err := tbl.TryGet([]byte("a"))
	require.NoError(t, err)
	require.True(t, found)
	require.EqualValues(t, 9, ref3.Load())
	require.Equal(t, 1, tbl.Size())
}

// S6: clear resets the table.
func TestScenarioS6Clear(t *testing.T) {
	tbl := New(hash.XXHash)
	for i := 0; i < 100; i++ {
		ref, err := tbl.Get([]byte{byte(i), byte(i >> 8)})
		require.NoError(t, err)
		ref.Store(Value(i))
	}
	require.Equal(t, 100, tbl.Size())

	tbl.Clear()
	require.Equal(t, 0, tbl.Size())
	require.False(t, tbl.Iterator().Valid())
	require.Equal(t, initialBuckets, tbl.Buckets())

	ref, err := tbl.Get([]byte("z"))
	require.NoError(t, err)
	ref.Store(1)
	require.Equal(t, 1, tbl.Size())
}

func TestRejectsZeroLengthKey(t *testing.T) {
	tbl := New(hash.XXHash)

	_, err := tbl.Get([]byte{})
	require.ErrorIs(t, err, ErrZeroLengthKey)

	_, _, err = tbl.TryGet([]byte{})
	require.ErrorIs(t, err, ErrZeroLengthKey)

	require.Equal(t, 0, tbl.Size())
}

func TestRejectsOversizeKey(t *testing.T) {
	tbl := New(hash.XXHash)

	oversize := make([]byte, maxKeyLen+1)
	_, err := tbl.Get(oversize)
	require.ErrorIs(t, err, ErrOversizeKey)
	require.Equal(t, 0, tbl.Size())

	ok := make([]byte, maxKeyLen)
	_, err = tbl.Get(ok)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Size())
}

func TestCloneIsIndependent(t *testing.T) {
	tbl := New(hash.XXHash)
	ref, err := tbl.Get([]byte("a"))
	require.NoError(t, err)
	ref.Store(1)

	clone := tbl.Clone()

	// Mutate the original after cloning; the clone must be unaffected.
	ref2, err := tbl.Get([]byte("a"))
	require.NoError(t, err)
	ref2.Store(2)

	cloneRef, found, err := clone.TryGet([]byte("a"))
	require.NoError(t, err)
	require.True(t, found)
	require.EqualValues(t, 1, cloneRef.Load())

	origRef, found, err := tbl.TryGet([]byte("a"))
	require.NoError(t, err)
	require.True(t, found)
	require.EqualValues(t, 2, origRef.Load())

	// Freeing the original must not corrupt the clone's buckets.
	tbl.Free()
	cloneRef, found, err = clone.TryGet([]byte("a"))
	require.NoError(t, err)
	require.True(t, found)
	require.EqualValues(t, 1, cloneRef.Load())
}

func TestClonePreservesMetadata(t *testing.T) {
	tbl := New(hash.XXHash)
	tbl.Flag = 0x7
	tbl.C0 = 'x'
	tbl.C1 = 'y'

	clone := tbl.Clone()
	require.Equal(t, tbl.Flag, clone.Flag)
	require.Equal(t, tbl.C0, clone.C0)
	require.Equal(t, tbl.C1, clone.C1)
}

func TestNewSizedClampsToOne(t *testing.T) {
	tbl := NewSized(hash.XXHash, 0)
	require.Equal(t, 1, tbl.Buckets())

	tbl = NewSized(hash.XXHash, -5)
	require.Equal(t, 1, tbl.Buckets())
}
