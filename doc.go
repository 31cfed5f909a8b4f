// Package aht implements an array hash table: a byte-packed bucket array
// mapping arbitrary byte-string keys to fixed-width uint64 values. A key
// lives in bucket hash(key) mod N; colliding keys share that bucket rather
// than probing into others.
//
// Each bucket is a single contiguous []byte holding its records back to
// back, terminated by a zero byte, rather than a linked chain of entries.
// This trades pointer-chasing for arithmetic over a packed buffer, the way
// the leaf level of a hat-trie does.
//
// The table is not safe for concurrent use, does not support removal of
// individual keys, and does not preserve value-pointer lifetimes across
// mutation; see Table and ValueRef for the exact contract.
package aht
