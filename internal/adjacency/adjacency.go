// Package adjacency builds vertex-to-triangle adjacency tables as two
// parallel arrays (offsets and entries), per spec §9's "cyclic adjacency"
// design note: this avoids a pointer graph and any possibility of cycles.
package adjacency

// Table is a vertex -> incident-triangle adjacency table. For vertex v,
// its incident triangle numbers are Entries[Offsets[v]:Offsets[v+1]].
type Table struct {
	Offsets []int32
	Entries []int32
}

// Build constructs the adjacency table for a triangle list expressed as a
// flat index slice (3 indices per triangle) referencing vertexCount
// vertices. Live counts per vertex — how many of the vertex's incident
// triangles have not yet been emitted — are tracked separately by callers
// (see internal/tipsify) since they mutate during the reorder walk.
func Build[I ~uint16 | ~uint32](indices []I, vertexCount int) Table {
	triangleCount := len(indices) / 3

	counts := make([]int32, vertexCount+1)
	for _, idx := range indices {
		counts[int(idx)+1]++
	}
	for i := 1; i <= vertexCount; i++ {
		counts[i] += counts[i-1]
	}
	offsets := counts // counts now holds the prefix-summed offsets

	cursor := make([]int32, vertexCount)
	copy(cursor, offsets[:vertexCount])

	entries := make([]int32, triangleCount*3)
	for t := 0; t < triangleCount; t++ {
		for c := 0; c < 3; c++ {
			v := int(indices[t*3+c])
			entries[cursor[v]] = int32(t)
			cursor[v]++
		}
	}

	return Table{Offsets: offsets, Entries: entries}
}

// Degree returns the number of triangles incident to vertex v.
func (t Table) Degree(v int) int {
	return int(t.Offsets[v+1] - t.Offsets[v])
}

// Triangles returns the triangle numbers incident to vertex v.
func (t Table) Triangles(v int) []int32 {
	return t.Entries[t.Offsets[v]:t.Offsets[v+1]]
}
