// Package cluster groups triangles into per-cluster geometry summaries and
// greedily reorders them to reduce overdraw (spec §4.4), the way the
// teacher's internal/cache package groups vertex cache bookkeeping behind
// a small value type. There is no teacher analogue for the geometry here
// (gogpu/gg never reorders 3D primitives); the centroid/normal math reuses
// internal/meshmath and the greedy-with-hard-constraint shape follows the
// teacher's habit (seen in its rasterizer_mode selection) of picking among
// a small enumerated set of candidates by score with a fallback rule.
package cluster

import (
	"sort"

	"github.com/gogpu/meshopt/internal/meshmath"
	"github.com/gogpu/meshopt/internal/vcache"
)

// Info summarizes one cluster's geometry: its triangle range into the
// (already post-transform-optimized) flattened index list, its centroid,
// and its average face normal.
type Info struct {
	Start, End int32
	Centroid   meshmath.Vec3
	Normal     meshmath.Vec3
}

// CanonicalViews mirrors raster.CanonicalViews. Duplicated rather than
// imported: cluster scoring and rasterization are independent concerns
// that happen to share the same six fixed directions spec §4.4 names.
var CanonicalViews = [6]meshmath.Vec3{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

// Build computes centroid and average normal for each cluster named by
// starts, a sorted list of triangle-index boundaries (as produced by
// OptimizePostTransform with collectClusters set).
func Build(indices []int32, positions []meshmath.Vec3, starts []uint32) []Info {
	triangleCount := int32(len(indices) / 3)
	infos := make([]Info, len(starts))
	for i, start := range starts {
		end := triangleCount
		if i+1 < len(starts) {
			end = int32(starts[i+1])
		}

		var centroidSum, normalSum meshmath.Vec3
		var count float32
		for t := int32(start); t < end; t++ {
			i0, i1, i2 := indices[t*3], indices[t*3+1], indices[t*3+2]
			p0, p1, p2 := positions[i0], positions[i1], positions[i2]
			centroidSum = centroidSum.Add(p0).Add(p1).Add(p2)
			normalSum = normalSum.Add(p1.Sub(p0).Cross(p2.Sub(p0)))
			count += 3
		}

		var centroid meshmath.Vec3
		if count > 0 {
			centroid = centroidSum.Div(count)
		}
		infos[i] = Info{Start: int32(start), End: end, Centroid: centroid, Normal: normalSum.Normalize()}
	}
	return infos
}

func penalty(normal meshmath.Vec3) float32 {
	var sum float32
	for _, view := range CanonicalViews {
		if d := view.Dot(normal); d > 0 {
			sum += d
		}
	}
	return sum
}

func dominantAxis(infos []Info) int {
	var lo, hi [3]float32
	for i, info := range infos {
		c := [3]float32{info.Centroid.X, info.Centroid.Y, info.Centroid.Z}
		if i == 0 {
			lo, hi = c, c
			continue
		}
		for a := 0; a < 3; a++ {
			if c[a] < lo[a] {
				lo[a] = c[a]
			}
			if c[a] > hi[a] {
				hi[a] = c[a]
			}
		}
	}
	best, bestSpread := 0, float32(-1)
	for a := 0; a < 3; a++ {
		if spread := hi[a] - lo[a]; spread > bestSpread {
			best, bestSpread = a, spread
		}
	}
	return best
}

func axisValue(v meshmath.Vec3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

type trial struct {
	index       int
	acmr        float32
	penalty     float32
	proximity   float32
	transformed uint32
	triCount    uint32
}

func betterTrial(a, b trial) bool {
	if a.penalty != b.penalty {
		return a.penalty < b.penalty
	}
	if a.proximity != b.proximity {
		return a.proximity < b.proximity
	}
	return a.index < b.index
}

// Reorder greedily sequences clusters to reduce overdraw (spec §4.4). It
// seeds from the cluster extremal along the dominant centroid axis, then
// repeatedly appends, among the remaining clusters, the one with the
// lowest view-averaged normal penalty — ties broken by proximity to the
// growing front along the dominant axis, then by original cluster index —
// subject to the hard constraint that the cumulative post-transform ACMR
// (simulated incrementally with a cacheSize-entry FIFO) never exceeds
// threshold*inputACMR. If every remaining candidate would violate the
// budget, the least-violating one is taken instead of stalling.
//
// It returns the chosen cluster order as indices into infos.
func Reorder(indices []int32, infos []Info, cacheSize int, threshold, inputACMR float32) []int {
	n := len(infos)
	if n == 0 {
		return nil
	}

	axis := dominantAxis(infos)
	seed := 0
	for i := 1; i < n; i++ {
		if axisValue(infos[i].Centroid, axis) < axisValue(infos[seed].Centroid, axis) {
			seed = i
		}
	}

	budget := threshold * inputACMR
	fifo := vcache.NewFIFO(cacheSize)
	var transformed, triangles uint32

	order := make([]int, 0, n)
	remaining := make(map[int]bool, n)
	for i := range infos {
		remaining[i] = true
	}

	commit := func(ci int) {
		info := infos[ci]
		for t := info.Start; t < info.End; t++ {
			for c := int32(0); c < 3; c++ {
				if fifo.Touch(indices[t*3+c]) {
					transformed++
				}
			}
			triangles++
		}
		order = append(order, ci)
		delete(remaining, ci)
	}

	commit(seed)

	for len(remaining) > 0 {
		candidates := make([]int, 0, len(remaining))
		for ci := range remaining {
			candidates = append(candidates, ci)
		}
		sort.Ints(candidates)

		front := infos[order[len(order)-1]].Centroid

		trials := make([]trial, len(candidates))
		for i, ci := range candidates {
			tFifo := fifo.Clone()
			var tTransformed, tTri uint32
			info := infos[ci]
			for t := info.Start; t < info.End; t++ {
				for c := int32(0); c < 3; c++ {
					if tFifo.Touch(indices[t*3+c]) {
						tTransformed++
					}
				}
				tTri++
			}
			acmr := float32(transformed+tTransformed) / float32(triangles+tTri)
			proximity := absf32(axisValue(info.Centroid, axis) - axisValue(front, axis))
			trials[i] = trial{
				index:       ci,
				acmr:        acmr,
				penalty:     penalty(info.Normal),
				proximity:   proximity,
				transformed: tTransformed,
				triCount:    tTri,
			}
		}

		best := -1
		for i, tr := range trials {
			if tr.acmr > budget+1e-6 {
				continue
			}
			if best < 0 || betterTrial(trials[i], trials[best]) {
				best = i
			}
		}
		if best < 0 {
			best = 0
			for i := 1; i < len(trials); i++ {
				if trials[i].acmr < trials[best].acmr {
					best = i
				}
			}
		}

		commit(trials[best].index)
	}

	return order
}
