package aht

import "github.com/arrayhash/aht/hash"

// initialBuckets is N for a table created with New.
const initialBuckets = 8

// loadFactor is the M/N ratio at or above which the next insert triggers an
// expansion.
const loadFactor = 5

// Table is an array hash table: a fixed-length array of buckets, dispatched
// by hash(key) mod N, that grows by doubling N whenever M would cross
// loadFactor*N.
//
// A Table is not safe for concurrent use: every operation assumes exclusive
// access, and nothing suspends, blocks, or yields.
type Table struct {
	buckets []bucket
	n       int
	m       int
	maxM    int
	hash    hash.Func

	// Flag, C0, and C1 are opaque per-table metadata reserved for an
	// embedding trie. The core never reads or interprets them; it only
	// preserves them verbatim through Clone.
	Flag byte
	C0   byte
	C1   byte
}

// New creates an empty table with the default initial bucket count (8),
// using h to route keys to buckets.
func New(h hash.Func) *Table {
	return NewSized(h, initialBuckets)
}

// NewSized creates an empty table with n initial buckets. n is clamped to
// at least 1.
func NewSized(h hash.Func, n int) *Table {
	if n < 1 {
		n = 1
	}
	return &Table{
		buckets: make([]bucket, n),
		n:       n,
		maxM:    maxM(n),
		hash:    h,
	}
}

func maxM(n int) int {
	return loadFactor * n
}

// Size returns M, the number of distinct keys currently stored.
func (t *Table) Size() int {
	return t.m
}

// Buckets returns N, the current bucket count. It exists so that
// consumers like the instrument package can detect that an expansion
// occurred; it does not change any core invariant.
func (t *Table) Buckets() int {
	return t.n
}

// Clear releases all buckets and returns the table to the initial empty
// state (N = 8, M = 0).
func (t *Table) Clear() {
	t.buckets = make([]bucket, initialBuckets)
	t.n = initialBuckets
	t.m = 0
	t.maxM = maxM(initialBuckets)
}

// Clone returns a table with an independent copy of every bucket buffer.
//
// The array hash table this design is drawn from copies its bucket-pointer
// array with a shallow memcpy, so its clone and original share bucket
// buffers and freeing either corrupts the other. This implementation
// resolves that hazard by deep-copying every bucket; see DESIGN.md.
func (t *Table) Clone() *Table {
	nb := make([]bucket, t.n)
	for i, b := range t.buckets {
		if b == nil {
			continue
		}
		cp := make(bucket, len(b))
		copy(cp, b)
		nb[i] = cp
	}
	return &Table{
		buckets: nb,
		n:       t.n,
		m:       t.m,
		maxM:    t.maxM,
		hash:    t.hash,
		Flag:    t.Flag,
		C0:      t.C0,
		C1:      t.C1,
	}
}

// Free drops the table's own references to its buckets. Go's garbage
// collector reclaims that memory once the table becomes unreachable; Free
// exists only for API parity with embedders porting code from a
// manual-memory implementation of this design, where freeing the table
// explicitly is mandatory.
func (t *Table) Free() {
	t.buckets = nil
	t.n = 0
	t.m = 0
	t.maxM = 0
}

func (t *Table) bucketIndex(key []byte) int {
	return int(t.hash(key) % uint32(t.n))
}
