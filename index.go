package meshopt

import "github.com/gogpu/meshopt/internal/meshhash"

// GenerateIndexBuffer deduplicates an unindexed vertex stream. Two records
// are equal iff their vertexSize bytes are equal (spec §4.1). dst must have
// one entry per record in vertices (len(vertices)/vertexSize). Unique
// vertices are numbered in order of first appearance in the input stream;
// GenerateIndexBuffer returns that count.
//
// Deduplication uses an open-addressed hash table keyed by an FNV-1a hash
// of each record, with collisions resolved by byte-wise compare — the
// technique spec §4.1 names explicitly.
func GenerateIndexBuffer[I Index](dst []I, vertices []byte, vertexSize int) int {
	vertexCount := len(vertices) / vertexSize
	if vertexCount == 0 {
		return 0
	}

	tableSize := nextPowerOfTwo(vertexCount * 2)
	table := make([]int32, tableSize)
	for i := range table {
		table[i] = -1
	}
	mask := uint64(tableSize - 1)

	var next int32
	for i := 0; i < vertexCount; i++ {
		rec := vertices[i*vertexSize : (i+1)*vertexSize]
		slot := meshhash.Record(rec) & mask
		for {
			occupant := table[slot]
			if occupant < 0 {
				table[slot] = int32(i)
				dst[i] = I(next)
				next++
				break
			}
			occupantRec := vertices[int(occupant)*vertexSize : int(occupant)*vertexSize+vertexSize]
			if meshhash.Equal(occupantRec, rec) {
				dst[i] = dst[occupant]
				break
			}
			slot = (slot + 1) & mask
		}
	}
	return int(next)
}

// GenerateVertexBuffer materializes the inverse of the mapping established
// by GenerateIndexBuffer: for each unique index observed in indices, it
// writes the first record from vertices whose position produced that
// index. dst must hold (unique vertex count) * vertexSize bytes.
func GenerateVertexBuffer[I Index](dst []byte, indices []I, vertices []byte, vertexSize int) {
	unique := len(dst) / vertexSize
	written := make([]bool, unique)
	for i, idx := range indices {
		u := int(idx)
		if written[u] {
			continue
		}
		copy(dst[u*vertexSize:(u+1)*vertexSize], vertices[i*vertexSize:(i+1)*vertexSize])
		written[u] = true
	}
}

// nextPowerOfTwo returns the smallest power of two >= n, with a floor of 16
// so tiny meshes still get a usable table.
func nextPowerOfTwo(n int) int {
	p := 16
	for p < n {
		p <<= 1
	}
	return p
}
