package meshopt

import "github.com/gogpu/meshopt/internal/vcache"

// DefaultPostTransformAnalyzeCacheSize is the default cache_size used by
// [AnalyzePostTransform] when the caller passes 0, per spec §6.
const DefaultPostTransformAnalyzeCacheSize = 32

// AnalyzePostTransform simulates a FIFO vertex cache of cacheSize entries
// over indices and reports the resulting cache-miss statistics. Results
// will not match actual GPU performance — see spec §4.3.
func AnalyzePostTransform[I Index](indices []I, vertexCount, cacheSize int) PostTransformStatistics {
	if len(indices) == 0 || vertexCount == 0 {
		return PostTransformStatistics{}
	}
	if cacheSize <= 0 {
		cacheSize = DefaultPostTransformAnalyzeCacheSize
	}

	fifo := vcache.NewFIFO(cacheSize)
	var transformed uint32
	for _, idx := range indices {
		if fifo.Touch(int32(idx)) {
			transformed++
		}
	}

	triangles := float32(len(indices) / 3)
	return PostTransformStatistics{
		VerticesTransformed: transformed,
		ACMR:                float32(transformed) / triangles,
		ATVR:                float32(transformed) / float32(vertexCount),
	}
}
