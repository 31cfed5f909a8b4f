package aht

// expand doubles the bucket count and rehashes every stored record into the
// new array. It is a two-pass algorithm chosen to avoid per-record
// reallocation during rehash:
//
//   - Pass 1 (sizing) walks every existing record, computes its destination
//     bucket under the doubled count, and accumulates the byte size each new
//     bucket will need.
//   - Pass 2 (placement) allocates each new bucket exactly once, at its
//     final size, then walks every existing record a second time, encoding
//     it directly into its destination bucket's next free offset.
//
// Re-hashing each key in both passes is unavoidable O(1) arithmetic, not a
// search; what the two-pass design avoids is re-scanning a bucket for a
// matching key during placement, which would be pointless since every key
// is already known distinct (invariant 3).
func (t *Table) expand() {
	newN := t.n * 2
	sizes := make([]int, newN)

	for _, b := range t.buckets {
		i := 0
		for i < len(b) && b[i] != terminator {
			l, p := decodeLen(b[i:])
			key := b[i+p : i+p+l]
			dst := int(t.hash(key) % uint32(newN))
			sizes[dst] += p + l + valueSize
			i += p + l + valueSize
		}
	}

	newBuckets := make([]bucket, newN)
	for idx, sz := range sizes {
		if sz == 0 {
			continue
		}
		nb := make(bucket, sz+1)
		nb[sz] = terminator
		newBuckets[idx] = nb
	}

	cursors := make([]int, newN)
	placed := 0
	for _, b := range t.buckets {
		i := 0
		for i < len(b) && b[i] != terminator {
			l, p := decodeLen(b[i:])
			key := b[i+p : i+p+l]
			valOff := i + p + l
			val := readValue(b, valOff)

			dst := int(t.hash(key) % uint32(newN))
			cur := cursors[dst]
			recLen := encodeLen(newBuckets[dst][cur:], l)
			copy(newBuckets[dst][cur+recLen:], key)
			writeValue(newBuckets[dst], cur+recLen+l, val)
			cursors[dst] = cur + recLen + l + valueSize
			placed++

			i += p + l + valueSize
		}
	}

	if placed != t.m {
		panic("aht: expansion placed a different number of records than M")
	}

	t.buckets = newBuckets
	t.n = newN
	t.maxM = maxM(newN)
}
