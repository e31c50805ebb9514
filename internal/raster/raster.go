// Package raster implements the tiny orthographic software rasterizer the
// overdraw analyzer and optimizer use to estimate GPU overdraw (spec
// §4.4/§4.5). It plays the same structural role as the teacher's
// internal/raster scanline fill engine in gogpu/gg, but the fill rule,
// buffers, and projection are rewritten from scratch: the teacher rasterizes
// antialiased 2D vector paths into an 8-bit coverage mask, whereas this one
// rasterizes 3D triangles into a binary covered/shaded pixel count under six
// fixed orthographic views, with no color or antialiasing involved.
package raster

import (
	"math"

	"github.com/gogpu/meshopt/internal/meshmath"
)

// Resolution is the screen size spec §4.4 specifies for each of the six
// view rasterizations.
const Resolution = 256

// CanonicalViews are the six axis-aligned view directions the overdraw
// analyzer and optimizer sum statistics over.
var CanonicalViews = [6]meshmath.Vec3{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

// Screen is a reusable depth/coverage buffer for one view's rasterization
// pass. Reuse across views with Reset to avoid reallocating.
type Screen struct {
	width, height int
	depth         []float32
	touched       []bool
}

// NewScreen allocates a width x height screen.
func NewScreen(width, height int) *Screen {
	return &Screen{
		width:   width,
		height:  height,
		depth:   make([]float32, width*height),
		touched: make([]bool, width*height),
	}
}

// Reset clears coverage for a fresh view pass.
func (s *Screen) Reset() {
	for i := range s.touched {
		s.touched[i] = false
	}
}

// Covered returns the number of pixels touched by any triangle since the
// last Reset.
func (s *Screen) Covered() uint32 {
	var n uint32
	for _, t := range s.touched {
		if t {
			n++
		}
	}
	return n
}

// Vertex2 is a projected screen-space vertex: x, y in pixel coordinates,
// z the view-space depth used for the per-pixel depth test (lower wins).
type Vertex2 struct {
	X, Y, Z float32
}

func edge(a, b, p Vertex2) float32 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// isTopLeft reports whether edge a->b is a "top" edge (horizontal, going
// right) or a "left" edge (going toward smaller y, i.e. upward on screen,
// since the top edge is the one at the smallest y) under the standard top-left
// fill convention, used to break exact-zero ties deterministically so
// pixels on a shared edge between two adjacent triangles are rasterized
// by exactly one of them.
func isTopLeft(a, b Vertex2) bool {
	dy := b.Y - a.Y
	dx := b.X - a.X
	isTop := dy == 0 && dx > 0
	isLeft := dy < 0
	return isTop || isLeft
}

func include(w float32, topLeft bool) bool {
	switch {
	case w > 0:
		return true
	case w < 0:
		return false
	default:
		return topLeft
	}
}

// RasterizeTriangle fills s with one triangle's fragments, updating the
// depth buffer and coverage mask, and returns the number of fragments
// shaded (pixels whose depth test passed — spec's "pixels_shaded").
// Degenerate (zero-area) triangles are skipped entirely.
func (s *Screen) RasterizeTriangle(p0, p1, p2 Vertex2) uint32 {
	area := edge(p0, p1, p2)
	if area == 0 {
		return 0
	}
	if area < 0 {
		p1, p2 = p2, p1
		area = -area
	}

	minX := clampInt(int(math.Floor(float64(min3(p0.X, p1.X, p2.X)))), 0, s.width-1)
	maxX := clampInt(int(math.Ceil(float64(max3(p0.X, p1.X, p2.X)))), 0, s.width-1)
	minY := clampInt(int(math.Floor(float64(min3(p0.Y, p1.Y, p2.Y)))), 0, s.height-1)
	maxY := clampInt(int(math.Ceil(float64(max3(p0.Y, p1.Y, p2.Y)))), 0, s.height-1)

	topLeft01 := isTopLeft(p0, p1)
	topLeft12 := isTopLeft(p1, p2)
	topLeft20 := isTopLeft(p2, p0)

	var shaded uint32
	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			p := Vertex2{X: px, Y: py}

			w0 := edge(p1, p2, p) // barycentric weight of p0
			w1 := edge(p2, p0, p) // barycentric weight of p1
			w2 := edge(p0, p1, p) // barycentric weight of p2

			if !include(w0, topLeft12) || !include(w1, topLeft20) || !include(w2, topLeft01) {
				continue
			}

			z := (w0*p0.Z + w1*p1.Z + w2*p2.Z) / area
			idx := y*s.width + x
			if !s.touched[idx] {
				s.touched[idx] = true
				s.depth[idx] = math.MaxFloat32
			}
			if z < s.depth[idx] {
				s.depth[idx] = z
				shaded++
			}
		}
	}
	return shaded
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
