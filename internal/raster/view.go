package raster

import "github.com/gogpu/meshopt/internal/meshmath"

// axesFor returns the two basis axes orthogonal to an axis-aligned view
// direction, used to project a 3D position onto that view's screen plane.
func axesFor(dir meshmath.Vec3) (u, v meshmath.Vec3) {
	switch {
	case dir.X != 0:
		return meshmath.V3(0, 1, 0), meshmath.V3(0, 0, 1)
	case dir.Y != 0:
		return meshmath.V3(1, 0, 0), meshmath.V3(0, 0, 1)
	default:
		return meshmath.V3(1, 0, 0), meshmath.V3(0, 1, 0)
	}
}

// fit holds the affine transform mapping a view's (u, v) projected extent
// onto a resolution x resolution screen, tight to the mesh's bounding box
// along that view (spec §4.4: "orthographic projection ... fit to the
// mesh bounding box").
type fit struct {
	minU, minV     float32
	scaleU, scaleV float32
}

func fitTo(minU, maxU, minV, maxV float32, resolution int) fit {
	const epsilon = 1e-6
	res := float32(resolution)

	f := fit{minU: minU, minV: minV}
	if maxU-minU > epsilon {
		f.scaleU = res / (maxU - minU)
	}
	if maxV-minV > epsilon {
		f.scaleV = res / (maxV - minV)
	}
	return f
}

func (f fit) project(p, dir, u, v meshmath.Vec3) Vertex2 {
	rawU := p.Dot(u)
	rawV := p.Dot(v)
	x := (rawU - f.minU) * f.scaleU
	y := (rawV - f.minV) * f.scaleV
	return Vertex2{X: x, Y: y, Z: p.Dot(dir)}
}

// Triangle is a flattened triangle's three vertex indices into a shared
// positions slice.
type Triangle [3]int32

// Analyze rasterizes every triangle under all six canonical views and
// returns the pixels-covered and pixels-shaded totals spec §4.4 defines,
// summed across views.
func Analyze(positions []meshmath.Vec3, triangles []Triangle, resolution int) (covered, shaded uint32) {
	if len(positions) == 0 || len(triangles) == 0 {
		return 0, 0
	}

	screen := NewScreen(resolution, resolution)
	for _, dir := range CanonicalViews {
		screen.Reset()
		u, v := axesFor(dir)

		var minU, maxU, minV, maxV float32
		initialized := false
		for _, tri := range triangles {
			for _, idx := range tri {
				p := positions[idx]
				rawU, rawV := p.Dot(u), p.Dot(v)
				if !initialized {
					minU, maxU, minV, maxV = rawU, rawU, rawV, rawV
					initialized = true
					continue
				}
				if rawU < minU {
					minU = rawU
				}
				if rawU > maxU {
					maxU = rawU
				}
				if rawV < minV {
					minV = rawV
				}
				if rawV > maxV {
					maxV = rawV
				}
			}
		}
		f := fitTo(minU, maxU, minV, maxV, resolution)

		for _, tri := range triangles {
			p0 := f.project(positions[tri[0]], dir, u, v)
			p1 := f.project(positions[tri[1]], dir, u, v)
			p2 := f.project(positions[tri[2]], dir, u, v)
			shaded += screen.RasterizeTriangle(p0, p1, p2)
		}
		covered += screen.Covered()
	}
	return covered, shaded
}
