package meshopt

// Index is the constraint satisfied by the two index widths the original
// header overloads on (unsigned short and unsigned int). Every optimizer
// and analyzer in this package is written once against Index rather than
// duplicated per width, per spec §9 Design Notes.
type Index interface {
	~uint16 | ~uint32
}

// Cluster is a triangle offset into an index buffer, as produced by
// [OptimizePostTransform] and consumed by [OptimizeOverdraw]. Offsets are
// expressed in triangles, not indices: cluster i's first index is at
// indices[clusters[i]*3].
type Cluster = uint32

// PostTransformStatistics reports the result of simulating a FIFO vertex
// cache over an index buffer, as returned by [AnalyzePostTransform].
type PostTransformStatistics struct {
	VerticesTransformed uint32
	ACMR                float32 // transformed vertices / triangle count
	ATVR                float32 // transformed vertices / vertex count
}

// OverdrawStatistics reports the result of rasterizing a mesh from the six
// canonical view directions, as returned by [AnalyzeOverdraw].
type OverdrawStatistics struct {
	PixelsCovered uint32
	PixelsShaded  uint32
	Overdraw      float32 // shaded / covered; 1.0 if covered == 0 on a non-empty mesh, 0 on an empty one
}

// PreTransformStatistics reports the result of simulating a direct-mapped
// fetch cache over an index buffer, as returned by [AnalyzePreTransform].
type PreTransformStatistics struct {
	BytesFetched uint32
	Overfetch    float32 // bytes fetched / vertex buffer size
}
