package shapedraw

import "fmt"

// ControlPointPair holds the two inner control points of the cubic Bézier
// segment connecting anchors i and i+1. Pairs are always derived from the
// anchors by [ControlPoints] and never edited on their own.
type ControlPointPair struct {
	First  Point
	Second Point
}

func (cp ControlPointPair) String() string {
	return fmt.Sprintf("{%s %s}", cp.First, cp.Second)
}

// Coefficients of the rows of the spline system. The unknown of row i is the
// first control point of segment i.
const (
	// First segment: 2·P1[0] + P1[1] = a[0] + 2·a[1]
	firstDiag  = 2.0
	firstSuper = 1.0

	// Interior segment: P1[i−1] + 4·P1[i] + P1[i+1] = 4·a[i] + 2·a[i+1]
	interiorSub   = 1.0
	interiorDiag  = 4.0
	interiorSuper = 1.0

	// Last segment: 2·P1[n−2] + 7·P1[n−1] = 8·a[n−1] + a[n]
	lastSub  = 2.0
	lastDiag = 7.0
)

// ControlPoints computes the control points of a piecewise cubic Bézier curve
// that passes through every anchor, with a continuous tangent at each interior
// anchor. It returns one pair per segment, len(anchors)−1 in total.
//
// With exactly two anchors the curve is a straight line and the pair is
// (anchors[0], anchors[1]). With fewer than two anchors there is nothing to
// draw and ControlPoints returns nil.
//
// The system is diagonally dominant, so any finite anchors produce finite
// control points. Coincident consecutive anchors are accepted and yield
// degenerate segments.
func ControlPoints(anchors []Point) []ControlPointPair {
	segments := len(anchors) - 1
	switch {
	case segments < 1:
		return nil
	case segments == 1:
		return []ControlPointPair{{First: anchors[0], Second: anchors[1]}}
	}

	bd := make([]float64, segments)
	d := make([]float64, segments)
	ad := make([]float64, segments)
	rhs := make([]Vec2, segments)
	for i := range segments {
		p0 := Vec2(anchors[i])
		p3 := Vec2(anchors[i+1])
		switch i {
		case 0:
			bd[i], d[i], ad[i] = 0, firstDiag, firstSuper
			rhs[i] = p0.Add(p3.Mul(2))
		case segments - 1:
			bd[i], d[i], ad[i] = lastSub, lastDiag, 0
			rhs[i] = p0.Mul(8).Add(p3)
		default:
			bd[i], d[i], ad[i] = interiorSub, interiorDiag, interiorSuper
			rhs[i] = p0.Mul(4).Add(p3.Mul(2))
		}
	}

	first := SolveTridiagonal(bd, d, ad, rhs)

	pairs := make([]ControlPointPair, segments)
	for i := range segments {
		fc := Point(first[i])
		var sc Point
		if i == segments-1 {
			sc = anchors[i+1].Midpoint(fc)
		} else {
			// Mirror the next segment's first control point about the shared
			// anchor so both tangents line up.
			sc = Point(first[i+1]).Reflect(anchors[i+1])
		}
		pairs[i] = ControlPointPair{First: fc, Second: sc}
	}
	return pairs
}
