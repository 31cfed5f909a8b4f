// Package probe layers a bloom filter in front of an aht.Table, the way a
// hat-trie embedder screens a leaf lookup with a per-block bloom filter
// before paying for an exact scan.
package probe

import (
	"github.com/willf/bloom"

	"github.com/arrayhash/aht"
	"github.com/arrayhash/aht/hash"
)

// Probe is a bloom-filter-accelerated front end over an *aht.Table.
//
// The filter never produces false negatives, so Probe's correctness does
// not depend on it: Get always behaves exactly like the wrapped table's
// Get, and TryGet only ever uses the filter to skip work on the definite-
// miss path, never to answer a hit.
type Probe struct {
	table  *aht.Table
	filter *bloom.BloomFilter
}

// New creates a Probe over a fresh table, with a bloom filter sized for
// expectedItems keys at the given target false-positive rate.
func New(h hash.Func, expectedItems uint, falsePositiveRate float64) *Probe {
	return &Probe{
		table:  aht.New(h),
		filter: bloom.NewWithEstimates(expectedItems, falsePositiveRate),
	}
}

// Get returns a handle to the value for key, inserting a zero value if
// absent, and records key in the bloom filter.
func (p *Probe) Get(key []byte) (aht.ValueRef, error) {
	ref, err := p.table.Get(key)
	if err != nil {
		return nil, err
	}
	p.filter.Add(key)
	return ref, nil
}

// TryGet looks up key without mutating the underlying table. When the
// filter reports key as definitely absent, TryGet returns immediately
// without touching bucket memory.
func (p *Probe) TryGet(key []byte) (aht.ValueRef, bool, error) {
	if !p.filter.Test(key) {
		return nil, false, nil
	}
	return p.table.TryGet(key)
}

// Size returns the number of distinct keys stored in the underlying table.
func (p *Probe) Size() int {
	return p.table.Size()
}

// Table returns the underlying table, for callers that need the full
// Table surface (Clear, Clone, Iterator, and so on). Mutating it directly
// bypasses the bloom filter update in Get: a key inserted through the
// returned table is not added to the filter, so Probe.TryGet can report it
// absent, while keys dropped by Clear stay in the filter and only cause
// extra false positives.
func (p *Probe) Table() *aht.Table {
	return p.table
}
