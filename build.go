package shapedraw

import "fmt"

// BuildCurve returns the smooth curve through anchors: a MoveTo to the first
// anchor followed by one CubicTo per following anchor. It has no side effects
// and returns an empty path for fewer than two anchors.
func BuildCurve(anchors []Point) BezPath {
	return BuildPath(anchors, ControlPoints(anchors))
}

// BuildPath assembles the curve through anchors from precomputed control
// points, as returned by [ControlPoints]. It panics if there isn't exactly one
// pair per segment.
func BuildPath(anchors []Point, pairs []ControlPointPair) BezPath {
	if len(anchors) < 2 {
		return nil
	}
	if len(pairs) != len(anchors)-1 {
		panic(fmt.Sprintf("got %d control point pairs for %d anchors, want %d",
			len(pairs), len(anchors), len(anchors)-1))
	}
	p := make(BezPath, 0, len(anchors))
	p.MoveTo(anchors[0])
	for i, pt := range anchors[1:] {
		cp := pairs[i]
		p.CubicTo(cp.First, cp.Second, pt)
	}
	return p
}

// polygon returns the closed path through pts.
func polygon(pts []Point) BezPath {
	if len(pts) == 0 {
		return nil
	}
	p := make(BezPath, 0, len(pts)+1)
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	p.ClosePath()
	return p
}
