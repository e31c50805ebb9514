package meshopt

import (
	"github.com/gogpu/meshopt/internal/meshmath"
	"github.com/gogpu/meshopt/internal/raster"
)

// AnalyzeOverdraw rasterizes the mesh under six fixed orthographic views
// (one per axis direction) and reports the ratio of shaded fragments to
// covered pixels, summed across views — spec §4.4's overdraw estimate.
// positions holds packed vertex records; positionsStride is the byte
// stride between records, and each record's first 12 bytes are read as an
// X, Y, Z float32 triple (spec §3).
func AnalyzeOverdraw[I Index](indices []I, positions []byte, positionsStride, vertexCount int) OverdrawStatistics {
	if len(indices) == 0 || vertexCount == 0 {
		return OverdrawStatistics{}
	}

	pts := make([]meshmath.Vec3, vertexCount)
	for i := 0; i < vertexCount; i++ {
		pts[i] = meshmath.ReadPosition(positions, positionsStride, i)
	}

	triCount := len(indices) / 3
	tris := make([]raster.Triangle, triCount)
	for t := 0; t < triCount; t++ {
		tris[t] = raster.Triangle{
			int32(indices[t*3]),
			int32(indices[t*3+1]),
			int32(indices[t*3+2]),
		}
	}

	covered, shaded := raster.Analyze(pts, tris, raster.Resolution)

	overdraw := float32(1.0)
	if covered > 0 {
		overdraw = float32(shaded) / float32(covered)
	}
	return OverdrawStatistics{PixelsCovered: covered, PixelsShaded: shaded, Overdraw: overdraw}
}
