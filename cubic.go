package shapedraw

import (
	"iter"
	"math"
)

// maxNearestDepth bounds the subdivision depth of nearest point searches and
// flattening.
const maxNearestDepth = 24

// CubicBez is a cubic Bézier segment. Every segment of a fitted curve is one.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// PathElements returns the segment as a move followed by a single cubic.
func (c CubicBez) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(c.P0)) &&
			yield(CubicTo(c.P1, c.P2, c.P3))
	}
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv returns the first derivative of the curve at t.
func (c CubicBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	d01 := c.P1.Sub(c.P0).Mul(3 * mt * mt)
	d12 := c.P2.Sub(c.P1).Mul(6 * mt * t)
	d23 := c.P3.Sub(c.P2).Mul(3 * t * t)
	return d01.Add(d12).Add(d23)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// ControlBox returns the bounding box of the four control points, which
// conservatively encloses the curve.
func (c CubicBez) ControlBox() Rect {
	return NewRectFromPoints(c.P0, c.P0).
		UnionPoint(c.P1).
		UnionPoint(c.P2).
		UnionPoint(c.P3)
}

// flatness returns an upper bound for the distance between the curve and its
// chord, the line from P0 to P3.
func (c CubicBez) flatness() float64 {
	chord := Line{c.P0, c.P3}
	d1, _ := chord.Nearest(c.P1, 0)
	d2, _ := chord.Nearest(c.P2, 0)
	return math.Sqrt(max(d1, d2))
}

// Nearest finds the nearest point, using subdivision.
//
// The curve is split until each piece lies within accuracy of its chord;
// pieces whose control box is farther away than the best candidate so far
// are skipped.
func (c CubicBez) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	distSq = math.Inf(1)
	c.nearest(pt, accuracy, 0, 1, 0, &distSq, &t)
	return distSq, t
}

func (c CubicBez) nearest(pt Point, accuracy, t0, t1 float64, depth int, bestDistSq, bestT *float64) {
	if c.ControlBox().DistanceSquared(pt) > *bestDistSq {
		return
	}
	// NaN flatness stops subdividing right away.
	if depth >= maxNearestDepth || !(c.flatness() > accuracy) {
		d, lt := Line{c.P0, c.P3}.Nearest(pt, accuracy)
		if d < *bestDistSq || math.IsInf(*bestDistSq, 1) {
			*bestDistSq = d
			*bestT = t0 + lt*(t1-t0)
		}
		return
	}
	left, right := c.Subdivide()
	tm := 0.5 * (t0 + t1)
	// Visiting the closer half first lets the other one be pruned more often.
	if left.ControlBox().DistanceSquared(pt) <= right.ControlBox().DistanceSquared(pt) {
		left.nearest(pt, accuracy, t0, tm, depth+1, bestDistSq, bestT)
		right.nearest(pt, accuracy, tm, t1, depth+1, bestDistSq, bestT)
	} else {
		right.nearest(pt, accuracy, tm, t1, depth+1, bestDistSq, bestT)
		left.nearest(pt, accuracy, t0, tm, depth+1, bestDistSq, bestT)
	}
}

// flatten appends line endpoints approximating the curve to within tolerance,
// excluding P0.
func (c CubicBez) flatten(tolerance float64, depth int, out []Point) []Point {
	if depth >= maxNearestDepth || !(c.flatness() > tolerance) {
		return append(out, c.P3)
	}
	left, right := c.Subdivide()
	out = left.flatten(tolerance, depth+1, out)
	return right.flatten(tolerance, depth+1, out)
}

func (c CubicBez) Seg() PathSegment {
	return PathSegment{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}
