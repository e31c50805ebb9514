package meshopt

import (
	"log/slog"

	"github.com/gogpu/meshopt/internal/cluster"
	"github.com/gogpu/meshopt/internal/meshmath"
)

// DefaultOverdrawCacheSize is the default cache_size [OptimizeOverdraw]
// uses both to budget its ACMR regression guard and to measure the input
// ACMR it guards against.
const DefaultOverdrawCacheSize = 16

// DefaultOverdrawThreshold is the default threshold [OptimizeOverdraw]
// uses when the caller passes 0: no ACMR regression is tolerated unless
// the caller explicitly asks for one (spec §4.4, §6). A value like 1.05
// (5% regression tolerated) is a common explicit choice, not the default.
const DefaultOverdrawThreshold = 1.0

// OptimizeOverdraw reorders whole clusters of an already post-transform-
// optimized index buffer to reduce GPU overdraw, without regressing the
// post-transform vertex cache ACMR by more than threshold (spec §4.4).
//
// indices must already be post-transform-optimized, and clusters must be
// the boundary list [OptimizePostTransform] returned for it with
// collectClusters set. dst must have the same length as indices and may
// alias it. cacheSize <= 0 uses [DefaultOverdrawCacheSize]; threshold <=
// 0 uses [DefaultOverdrawThreshold].
func OptimizeOverdraw[I Index](dst, indices []I, clusters []Cluster, positions []byte, positionsStride, vertexCount, cacheSize int, threshold float32) {
	if len(indices) == 0 {
		return
	}
	if cacheSize <= 0 {
		cacheSize = DefaultOverdrawCacheSize
	}
	if threshold <= 0 {
		threshold = DefaultOverdrawThreshold
	}
	if len(clusters) == 0 {
		copy(dst, indices)
		return
	}

	src := append([]I(nil), indices...)

	flat := make([]int32, len(src))
	for i, v := range src {
		flat[i] = int32(v)
	}

	pts := make([]meshmath.Vec3, vertexCount)
	for i := 0; i < vertexCount; i++ {
		pts[i] = meshmath.ReadPosition(positions, positionsStride, i)
	}

	starts := make([]uint32, len(clusters))
	copy(starts, clusters)

	infos := cluster.Build(flat, pts, starts)
	inputACMR := AnalyzePostTransform(src, vertexCount, cacheSize).ACMR

	order := cluster.Reorder(flat, infos, cacheSize, threshold, inputACMR)

	pos := 0
	for _, ci := range order {
		info := infos[ci]
		n := int(info.End-info.Start) * 3
		copy(dst[pos:pos+n], src[info.Start*3:info.End*3])
		pos += n
	}

	Logger().Debug("meshopt: overdraw optimize",
		slog.Int("clusters", len(clusters)),
		slog.Float64("input_acmr", float64(inputACMR)),
		slog.Float64("threshold", float64(threshold)),
	)
}
