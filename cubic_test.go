package shapedraw

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestCubicEval(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(30, 100), Pt(70, -100), Pt(100, 0)}
	diff(t, c.P0, c.Eval(0), approx)
	diff(t, c.P3, c.Eval(1), approx)
	// B(½) = (P0 + 3·P1 + 3·P2 + P3) / 8
	diff(t, Pt(50, 0), c.Eval(0.5), approx)
}

func TestCubicDeriv(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(30, 100), Pt(70, -100), Pt(100, 0)}
	diff(t, c.P1.Sub(c.P0).Mul(3), c.Deriv(0), approx)
	diff(t, c.P3.Sub(c.P2).Mul(3), c.Deriv(1), approx)

	const h = 1e-6
	for _, tt := range []float64{0.1, 0.25, 0.5, 0.9} {
		want := c.Eval(tt + h).Sub(c.Eval(tt - h)).Div(2 * h)
		if d := c.Deriv(tt).Sub(want).Hypot(); d > 1e-3 {
			t.Errorf("t=%g: derivative off by %g", tt, d)
		}
	}
}

func TestCubicSubdivide(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(30, 100), Pt(70, -100), Pt(100, 0)}
	left, right := c.Subdivide()
	for _, tt := range []float64{0, 0.2, 0.5, 0.8, 1} {
		diff(t, c.Eval(tt/2), left.Eval(tt), approx)
		diff(t, c.Eval(0.5+tt/2), right.Eval(tt), approx)
	}
}

func TestCubicNearestStraight(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0)}
	distSq, tt := c.Nearest(Pt(15, 5), DefaultAccuracy)
	diff(t, 25.0, distSq, approx)
	diff(t, 0.5, tt, approx)

	distSq, tt = c.Nearest(Pt(-3, 4), DefaultAccuracy)
	diff(t, 25.0, distSq, approx)
	diff(t, 0.0, tt, approx)
}

func TestCubicNearest(t *testing.T) {
	curves := []CubicBez{
		{Pt(0, 0), Pt(30, 100), Pt(70, -100), Pt(100, 0)},
		{Pt(0, 0), Pt(100, 100), Pt(0, 100), Pt(100, 0)},
		{Pt(10, 10), Pt(10, 10), Pt(90, 90), Pt(90, 90)},
	}
	bruteForce := func(c CubicBez, pt Point) float64 {
		const n = 20000
		best := math.Inf(1)
		for i := range n + 1 {
			best = min(best, c.Eval(float64(i)/n).DistanceSquared(pt))
		}
		return math.Sqrt(best)
	}

	rng := rand.New(rand.NewPCG(1, 1))
	const accuracy = 0.05
	for _, c := range curves {
		for range 50 {
			pt := Pt(rng.Float64()*160-30, rng.Float64()*160-80)
			distSq, tt := c.Nearest(pt, accuracy)
			want := bruteForce(c, pt)
			if d := math.Abs(math.Sqrt(distSq) - want); d > accuracy+0.02 {
				t.Errorf("%v, %v: got distance %g, want %g", c, pt, math.Sqrt(distSq), want)
			}
			if tt < 0 || tt > 1 {
				t.Errorf("%v, %v: parameter %g out of range", c, pt, tt)
			}
		}
	}
}

func TestCubicNearestNaN(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(math.NaN(), 2)}
	if distSq, _ := c.Nearest(Pt(1, 0), DefaultAccuracy); !math.IsNaN(distSq) {
		t.Errorf("got distance %g, want NaN", distSq)
	}
	if pts := c.flatten(DefaultAccuracy, 0, nil); len(pts) != 1 {
		t.Errorf("got %d points, want 1", len(pts))
	}
}

func TestCubicFlatten(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(30, 100), Pt(70, -100), Pt(100, 0)}
	pts := c.flatten(0.1, 0, nil)
	if pts[len(pts)-1] != c.P3 {
		t.Errorf("flattened curve ends at %v, want %v", pts[len(pts)-1], c.P3)
	}
	prev := c.P0
	for _, pt := range pts {
		mid := prev.Midpoint(pt)
		if d, _ := c.Nearest(mid, 1e-3); math.Sqrt(d) > 0.1+1e-3 {
			t.Errorf("line %v-%v strays %g from the curve", prev, pt, math.Sqrt(d))
		}
		prev = pt
	}

	straight := CubicBez{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	diff(t, []Point{Pt(3, 0)}, straight.flatten(0.1, 0, nil))
}
