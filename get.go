package aht

// Get returns a handle to the value for key, inserting a zero value first if
// key is absent. It triggers an expansion before the insert if M has already
// reached maxM.
//
// The returned ValueRef is valid until the next mutation of t: a subsequent
// Get for a different key, Clear, or an expansion invalidates it.
func (t *Table) Get(key []byte) (ValueRef, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	if t.m >= t.maxM {
		t.expand()
	}

	b := t.bucketIndex(key)
	cur := t.buckets[b]
	if cur == nil {
		nb, off := appendRecord(nil, key)
		t.buckets[b] = nb
		t.m++
		return ValueRef(nb[off : off+valueSize]), nil
	}
	if off, ok := cur.find(key); ok {
		return ValueRef(cur[off : off+valueSize]), nil
	}
	nb, off := appendRecord(cur, key)
	t.buckets[b] = nb
	t.m++
	return ValueRef(nb[off : off+valueSize]), nil
}

// TryGet looks up key without mutating t. It returns found == false if key
// is absent, in which case the returned ValueRef is nil.
func (t *Table) TryGet(key []byte) (ref ValueRef, found bool, err error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}
	b := t.bucketIndex(key)
	cur := t.buckets[b]
	if cur == nil {
		return nil, false, nil
	}
	off, ok := cur.find(key)
	if !ok {
		return nil, false, nil
	}
	return ValueRef(cur[off : off+valueSize]), true, nil
}
