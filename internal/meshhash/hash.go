// Package meshhash provides byte-record hashing and comparison for vertex
// deduplication.
package meshhash

import (
	"bytes"
	"hash/fnv"
)

// Record hashes a fixed-size vertex record with FNV-1a, matching spec
// §4.1's "byte hash (e.g., FNV-1a or Murmur)" — FNV-1a needs no seed state
// and hash/fnv already ships the accumulator, so there is no reason to
// hand-roll Murmur3 here.
func Record(b []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(b) // fnv.Write never returns an error
	return h.Sum64()
}

// Equal reports whether two vertex records are byte-identical.
func Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}
