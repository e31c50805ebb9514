package raster

import "testing"

func TestRasterizeTriangle_HalfScreenTriangle(t *testing.T) {
	s := NewScreen(4, 4)
	s.Reset()
	shaded := s.RasterizeTriangle(
		Vertex2{X: 0, Y: 0, Z: 0},
		Vertex2{X: 4, Y: 0, Z: 0},
		Vertex2{X: 0, Y: 4, Z: 0},
	)
	if shaded == 0 {
		t.Fatal("expected some fragments shaded for a non-degenerate triangle")
	}
	if s.Covered() != shaded {
		t.Errorf("covered = %d, shaded = %d, want equal for a single non-overlapping triangle", s.Covered(), shaded)
	}
}

func TestRasterizeTriangle_Degenerate(t *testing.T) {
	s := NewScreen(4, 4)
	shaded := s.RasterizeTriangle(
		Vertex2{X: 1, Y: 1},
		Vertex2{X: 2, Y: 2},
		Vertex2{X: 3, Y: 3},
	)
	if shaded != 0 {
		t.Errorf("degenerate triangle shaded %d pixels, want 0", shaded)
	}
}

func TestRasterizeTriangle_ClockwiseAndCounterClockwiseCoverSamePixels(t *testing.T) {
	ccw := NewScreen(4, 4)
	cw := NewScreen(4, 4)

	ccw.RasterizeTriangle(Vertex2{X: 0, Y: 0}, Vertex2{X: 4, Y: 0}, Vertex2{X: 0, Y: 4})
	cw.RasterizeTriangle(Vertex2{X: 0, Y: 0}, Vertex2{X: 0, Y: 4}, Vertex2{X: 4, Y: 0})

	if ccw.Covered() != cw.Covered() {
		t.Errorf("winding changed coverage: ccw=%d cw=%d", ccw.Covered(), cw.Covered())
	}
}

func TestRasterizeTriangle_OverlapDoesNotDoubleCountCoverage(t *testing.T) {
	s := NewScreen(8, 8)
	s.RasterizeTriangle(Vertex2{X: 0, Y: 0}, Vertex2{X: 8, Y: 0}, Vertex2{X: 0, Y: 8})
	firstCovered := s.Covered()
	s.RasterizeTriangle(Vertex2{X: 0, Y: 0}, Vertex2{X: 8, Y: 0}, Vertex2{X: 0, Y: 8})
	if s.Covered() != firstCovered {
		t.Errorf("covered grew from %d to %d on a repeated identical triangle", firstCovered, s.Covered())
	}
}

func TestRasterizeTriangle_NearerTriangleShadesOverFarther(t *testing.T) {
	s := NewScreen(4, 4)
	far := s.RasterizeTriangle(Vertex2{X: 0, Y: 0, Z: 10}, Vertex2{X: 4, Y: 0, Z: 10}, Vertex2{X: 0, Y: 4, Z: 10})
	near := s.RasterizeTriangle(Vertex2{X: 0, Y: 0, Z: 1}, Vertex2{X: 4, Y: 0, Z: 1}, Vertex2{X: 0, Y: 4, Z: 1})
	if far == 0 || near == 0 {
		t.Fatalf("expected both passes to shade fragments, got far=%d near=%d", far, near)
	}
	farther := s.RasterizeTriangle(Vertex2{X: 0, Y: 0, Z: 100}, Vertex2{X: 4, Y: 0, Z: 100}, Vertex2{X: 0, Y: 4, Z: 100})
	if farther != 0 {
		t.Errorf("triangle farther than what's already resident shaded %d fragments, want 0", farther)
	}
}
