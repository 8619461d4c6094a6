package shapedraw

import (
	"math/rand/v2"
	"testing"
)

func TestControlPointsStraightLine(t *testing.T) {
	got := ControlPoints([]Point{Pt(0, 0), Pt(10, 0)})
	want := []ControlPointPair{{First: Pt(0, 0), Second: Pt(10, 0)}}
	diff(t, want, got)
}

func TestControlPointsDegenerate(t *testing.T) {
	if got := ControlPoints(nil); len(got) != 0 {
		t.Errorf("got %v for no anchors, want nothing", got)
	}
	if got := ControlPoints([]Point{Pt(3, 4)}); len(got) != 0 {
		t.Errorf("got %v for a single anchor, want nothing", got)
	}
}

func TestControlPointsThreeAnchors(t *testing.T) {
	anchors := []Point{Pt(0, 0), Pt(5, 5), Pt(10, 0)}
	got := ControlPoints(anchors)
	want := []ControlPointPair{
		{First: Pt(5.0/3.0, 2.5), Second: Pt(10.0/3.0, 5)},
		{First: Pt(20.0/3.0, 5), Second: Pt(25.0/3.0, 2.5)},
	}
	diff(t, want, got, approx)

	// The incoming and outgoing control points are reflections about the
	// shared anchor.
	diff(t, anchors[1], got[0].Second.Midpoint(got[1].First), approx)
	diff(t, Point(Vec2(anchors[1]).Mul(2).Sub(Vec2(got[1].First))), got[0].Second, approx)
}

// randomAnchors returns n anchors that are at least one unit apart from
// their predecessor.
func randomAnchors(rng *rand.Rand, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		for {
			pts[i] = Pt(rng.Float64()*500, rng.Float64()*500)
			if i == 0 || pts[i].Distance(pts[i-1]) >= 1 {
				break
			}
		}
	}
	return pts
}

func segmentsOf(anchors []Point, pairs []ControlPointPair) []CubicBez {
	cs := make([]CubicBez, len(pairs))
	for i, cp := range pairs {
		cs[i] = CubicBez{anchors[i], cp.First, cp.Second, anchors[i+1]}
	}
	return cs
}

// secondDeriv returns the second derivative of c at t = 0 or t = 1, divided
// by 6.
func secondDeriv(c CubicBez, end bool) Vec2 {
	if end {
		return Vec2(c.P1).Sub(Vec2(c.P2).Mul(2)).Add(Vec2(c.P3))
	}
	return Vec2(c.P0).Sub(Vec2(c.P1).Mul(2)).Add(Vec2(c.P2))
}

func TestControlPointsContinuity(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	const epsilon = 1e-6
	for n := 2; n < 30; n++ {
		anchors := randomAnchors(rng, n)
		pairs := ControlPoints(anchors)
		if len(pairs) != n-1 {
			t.Fatalf("got %d pairs for %d anchors, want %d", len(pairs), n, n-1)
		}
		cs := segmentsOf(anchors, pairs)
		for i := 0; i+1 < len(cs); i++ {
			a, b := cs[i], cs[i+1]
			if a.End() != b.Start() {
				t.Errorf("n=%d: segment %d ends at %v, segment %d starts at %v", n, i, a.End(), i+1, b.Start())
			}
			if d := a.Deriv(1).Sub(b.Deriv(0)).Hypot(); d > epsilon {
				t.Errorf("n=%d: tangents at anchor %d differ by %g", n, i+1, d)
			}
			if d := secondDeriv(a, true).Sub(secondDeriv(b, false)).Hypot(); d > epsilon {
				t.Errorf("n=%d: curvature at anchor %d differs by %g", n, i+1, d)
			}
		}
		if n > 2 {
			// Natural boundary conditions: no curvature at the ends.
			if d := secondDeriv(cs[0], false).Hypot(); d > epsilon {
				t.Errorf("n=%d: curve starts with second derivative %g", n, d)
			}
			if d := secondDeriv(cs[len(cs)-1], true).Hypot(); d > epsilon {
				t.Errorf("n=%d: curve ends with second derivative %g", n, d)
			}
		}
	}
}

func TestControlPointsCoincidentAnchors(t *testing.T) {
	pairs := ControlPoints([]Point{Pt(0, 0), Pt(5, 5), Pt(5, 5), Pt(10, 0)})
	if len(pairs) != 3 {
		t.Fatalf("got %d pairs, want 3", len(pairs))
	}
	for _, cp := range pairs {
		if cp.First.IsInf() || cp.First.IsNaN() || cp.Second.IsInf() || cp.Second.IsNaN() {
			t.Errorf("got non-finite control points %v", cp)
		}
	}
}
