package meshopt

import "log/slog"

// OptimizePreTransform reorders vertices so that the order in which
// indices first references them matches their order in destination,
// improving locality for a GPU's pre-transform vertex fetch (spec §4.6).
// Vertices never referenced by indices are appended at the end, in their
// original relative order.
//
// dstIndices receives indices rewritten to refer to the new vertex
// ordering; it must have the same length as indices and may alias it. destination
// must hold room for vertexCount records of vertexSize bytes and must
// not alias vertices.
func OptimizePreTransform[I Index](destination []byte, dstIndices, indices []I, vertices []byte, vertexCount, vertexSize int) {
	if vertexCount == 0 {
		return
	}

	src := append([]I(nil), indices...)

	remap := make([]int32, vertexCount)
	for i := range remap {
		remap[i] = -1
	}

	var next int32
	for _, idx := range src {
		v := int32(idx)
		if remap[v] < 0 {
			remap[v] = next
			next++
		}
	}
	for old := 0; old < vertexCount; old++ {
		if remap[old] < 0 {
			remap[old] = next
			next++
		}
	}

	for i, idx := range src {
		dstIndices[i] = I(remap[int32(idx)])
	}
	for old, nu := range remap {
		copy(destination[int(nu)*vertexSize:(int(nu)+1)*vertexSize], vertices[old*vertexSize:(old+1)*vertexSize])
	}

	Logger().Debug("meshopt: pre-transform optimize",
		slog.Int("vertex_count", vertexCount),
		slog.Int("vertex_size", vertexSize),
	)
}
