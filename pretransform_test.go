package meshopt

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestOptimizePreTransform_ReverseOrderRoundTrip(t *testing.T) {
	// Indices reference vertices in reverse order within each triangle's
	// traversal: optimizing should produce 0,1,2 for the first triangle
	// and copy vertices into destination in first-reference order.
	indices := []uint32{2, 1, 0}
	vertices := make([]byte, 3*12)
	copy(vertices[0:], packVec3(20, 20, 20)) // vertex 0
	copy(vertices[12:], packVec3(10, 10, 10)) // vertex 1
	copy(vertices[24:], packVec3(0, 0, 0))   // vertex 2

	dstIndices := make([]uint32, 3)
	dstVertices := make([]byte, 3*12)
	OptimizePreTransform(dstVertices, dstIndices, indices, vertices, 3, 12)

	want := []uint32{0, 1, 2}
	for i, v := range want {
		if dstIndices[i] != v {
			t.Errorf("dstIndices[%d] = %d, want %d", i, dstIndices[i], v)
		}
	}

	// New vertex 0 should be old vertex 2 (0,0,0), since it's referenced first.
	x, _, _ := decodeVec3ForTest(dstVertices[0:12])
	if x != 0 {
		t.Errorf("dstVertices[0].X = %v, want 0", x)
	}
}

func TestOptimizePreTransform_AppendsUnreferencedAtEnd(t *testing.T) {
	indices := []uint32{1, 1, 1}
	vertices := make([]byte, 3*12)
	copy(vertices[0:], packVec3(0, 0, 0))
	copy(vertices[12:], packVec3(1, 1, 1))
	copy(vertices[24:], packVec3(2, 2, 2))

	dstIndices := make([]uint32, 3)
	dstVertices := make([]byte, 3*12)
	OptimizePreTransform(dstVertices, dstIndices, indices, vertices, 3, 12)

	if dstIndices[0] != 0 {
		t.Errorf("remapped referenced vertex index = %d, want 0", dstIndices[0])
	}
	x0, _, _ := decodeVec3ForTest(dstVertices[0:12])
	if x0 != 1 {
		t.Errorf("new vertex 0 should be old vertex 1, got X=%v", x0)
	}
	x1, _, _ := decodeVec3ForTest(dstVertices[12:24])
	x2, _, _ := decodeVec3ForTest(dstVertices[24:36])
	if x1 != 0 || x2 != 2 {
		t.Errorf("unreferenced vertices not appended in original order: got X=%v, %v, want 0, 2", x1, x2)
	}
}

func TestOptimizePreTransform_ReducesOrMatchesOverfetch(t *testing.T) {
	indices := randomishMesh(400)
	vertexCount := randomishVertexCount(400)
	vertices := make([]byte, vertexCount*12)
	for i := 0; i < vertexCount; i++ {
		copy(vertices[i*12:], packVec3(float32(i), float32(i*2), float32(i*3)))
	}

	before := AnalyzePreTransform(indices, vertexCount, 12)

	dstIndices := make([]uint32, len(indices))
	dstVertices := make([]byte, len(vertices))
	OptimizePreTransform(dstVertices, dstIndices, indices, vertices, vertexCount, 12)

	after := AnalyzePreTransform(dstIndices, vertexCount, 12)
	if after.BytesFetched > before.BytesFetched {
		t.Errorf("BytesFetched after optimize (%d) > before (%d)", after.BytesFetched, before.BytesFetched)
	}
}

func decodeVec3ForTest(b []byte) (x, y, z float32) {
	x = math.Float32frombits(binary.LittleEndian.Uint32(b[0:4]))
	y = math.Float32frombits(binary.LittleEndian.Uint32(b[4:8]))
	z = math.Float32frombits(binary.LittleEndian.Uint32(b[8:12]))
	return
}
