package shapedraw

import (
	"math"
	"testing"
)

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	tests := []struct {
		pt     Point
		distSq float64
		t      float64
	}{
		{Pt(5, 3), 9, 0.5},
		{Pt(-4, 3), 25, 0},
		{Pt(13, -4), 25, 1},
		{Pt(2, 0), 0, 0.2},
	}
	for _, tt := range tests {
		distSq, pt := l.Nearest(tt.pt, 0)
		diff(t, tt.distSq, distSq, approx)
		diff(t, tt.t, pt, approx)
	}

	// Degenerate lines measure the distance to their point.
	distSq, _ := Line{Pt(1, 1), Pt(1, 1)}.Nearest(Pt(4, 5), 0)
	diff(t, 25.0, distSq, approx)
}

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	if d := math.Abs(l.Length() - math.Sqrt2); d > 1e-12 {
		t.Errorf("length off by %g", d)
	}
	diff(t, Pt(0.25, 0.25), l.Eval(0.25), approx)
}

func TestLineBoundingBox(t *testing.T) {
	diff(t, Rect{-2, 1, 4, 3}, Line{Pt(4, 1), Pt(-2, 3)}.BoundingBox())
}
