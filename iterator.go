package aht

// Iterator walks every (key, value) pair of a Table in bucket-index-
// ascending, then insertion order within each bucket.
//
// An Iterator holds a borrowed reference to the table it was built from. It
// is not resilient to concurrent mutation: mutating the table while an
// Iterator over it exists is undefined and must be avoided by the caller.
//
// The usual loop shape is:
//
//	for it := t.Iterator(); it.Valid(); it.Advance() {
//		key, val := it.Key(), it.Value()
//	}
type Iterator struct {
	t         *Table
	bucketIdx int
	cursor    int
	valid     bool
}

// Iterator returns a fresh Iterator already positioned at the table's first
// record, or positioned past the end (Valid() == false) if t is empty.
func (t *Table) Iterator() *Iterator {
	it := &Iterator{t: t, bucketIdx: -1}
	it.seekBucket(0)
	return it
}

// seekBucket advances to the first non-empty bucket at or after from,
// leaving the iterator exhausted if none remains.
func (it *Iterator) seekBucket(from int) {
	for i := from; i < it.t.n; i++ {
		if len(it.t.buckets[i]) > 0 {
			it.bucketIdx = i
			it.cursor = 0
			it.valid = true
			return
		}
	}
	it.valid = false
}

// Valid reports whether the iterator is positioned at a record. Key and
// Value return zero values once Valid is false.
func (it *Iterator) Valid() bool {
	return it.valid
}

// Key returns the key of the current record without advancing the
// iterator.
func (it *Iterator) Key() []byte {
	if !it.valid {
		return nil
	}
	key, _, _ := decodeAt(it.t.buckets[it.bucketIdx], it.cursor)
	return key
}

// Value returns a handle to the value of the current record without
// advancing the iterator. The returned ValueRef is subject to the same
// invalidation rules as one returned from Get or TryGet.
func (it *Iterator) Value() ValueRef {
	if !it.valid {
		return nil
	}
	_, valueOff, _ := decodeAt(it.t.buckets[it.bucketIdx], it.cursor)
	b := it.t.buckets[it.bucketIdx]
	return ValueRef(b[valueOff : valueOff+valueSize])
}

// Advance moves the iterator to the following record, or marks it exhausted
// if none remains.
func (it *Iterator) Advance() {
	if !it.valid {
		return
	}
	b := it.t.buckets[it.bucketIdx]
	_, _, next := decodeAt(b, it.cursor)
	if next >= len(b) || b[next] == terminator {
		it.seekBucket(it.bucketIdx + 1)
		return
	}
	it.cursor = next
}
