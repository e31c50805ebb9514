package meshopt

import (
	"log/slog"

	"github.com/gogpu/meshopt/internal/tipsify"
)

// DefaultPostTransformCacheSize is the default cache_size used by
// [OptimizePostTransform] when the caller passes 0, per spec §6.
const DefaultPostTransformCacheSize = 16

// OptimizePostTransform reorders indices using the Tipsify algorithm
// (Sander, Nehab & Barczak 2007) so that successive triangles tend to
// reuse vertices still resident in a cacheSize-entry FIFO vertex cache.
// See spec §4.2 for the full algorithm description.
//
// dst must have the same length as indices and may alias it. If
// collectClusters is true, the returned slice holds the cluster boundary
// list required by [OptimizeOverdraw] (first entry always 0); otherwise
// it is nil. cacheSize <= 0 uses [DefaultPostTransformCacheSize].
func OptimizePostTransform[I Index](dst, indices []I, vertexCount, cacheSize int, collectClusters bool) []Cluster {
	if len(indices) == 0 {
		return nil
	}
	if cacheSize <= 0 {
		cacheSize = DefaultPostTransformCacheSize
	}

	// Copy first: dst may alias indices, and expansion below reads
	// triangles out of order relative to how they're written.
	src := append([]I(nil), indices...)

	res := tipsify.Optimize(src, vertexCount, cacheSize, collectClusters)
	for i, t := range res.Order {
		copy(dst[i*3:i*3+3], src[t*3:t*3+3])
	}

	Logger().Debug("meshopt: post-transform optimize",
		slog.Int("triangles", len(res.Order)),
		slog.Int("clusters", len(res.Clusters)),
	)

	return res.Clusters
}
