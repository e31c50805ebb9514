package meshopt

import "github.com/gogpu/meshopt/internal/vcache"

// DirectMappedLineBytes and DirectMappedLineCount are the fixed
// direct-mapped fetch cache parameters spec §4.7 nominates: a 64-byte
// cache line, 16 lines resident.
const (
	DirectMappedLineBytes = 64
	DirectMappedLineCount = 16
)

// AnalyzePreTransform simulates a direct-mapped cache of
// [DirectMappedLineCount] lines of [DirectMappedLineBytes] bytes each over
// the byte ranges indices touches in order, and reports the resulting
// fetch-cache statistics (spec §4.7).
func AnalyzePreTransform[I Index](indices []I, vertexCount, vertexSize int) PreTransformStatistics {
	if len(indices) == 0 || vertexCount == 0 || vertexSize == 0 {
		return PreTransformStatistics{}
	}

	cache := vcache.NewDirectMapped(DirectMappedLineCount, DirectMappedLineBytes)
	var fetched uint32
	for _, idx := range indices {
		start := int(idx) * vertexSize
		fetched += cache.TouchRange(start, start+vertexSize)
	}

	return PreTransformStatistics{
		BytesFetched: fetched,
		Overfetch:    float32(fetched) / float32(vertexCount*vertexSize),
	}
}
