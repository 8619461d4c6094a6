package shapedraw

import "math"

// HitTester decides whether a tap at pt lands on the stroke of path, where
// tolerance is half the stroke width, possibly widened for touch input.
type HitTester interface {
	HitTest(path BezPath, pt Point, tolerance float64) bool
}

// StrokeHitTester hit-tests analytically, by computing the minimum distance
// between the tap and the path.
type StrokeHitTester struct {
	// Accuracy of the distance computation. Zero means [DefaultAccuracy].
	Accuracy float64
}

var _ HitTester = StrokeHitTester{}

func (h StrokeHitTester) HitTest(path BezPath, pt Point, tolerance float64) bool {
	accuracy := h.Accuracy
	if accuracy <= 0 {
		accuracy = DefaultAccuracy
	}
	distSq, _, ok := path.Nearest(pt, accuracy)
	return ok && distSq <= tolerance*tolerance
}

// NearestSegment returns the index at which a point tapped on the curve
// through anchors should be inserted.
//
// For every pair of consecutive anchors p0, p1 it computes twice the area of
// the triangle p0, pt, p1. The pair with the smallest area is the one pt is
// most nearly collinear with, and the returned index lies between them. Ties go
// to the earlier pair. With fewer than two anchors the point is appended and
// len(anchors) is returned.
//
// The heuristic is meant for taps already known to be on the curve; it ignores
// how far along the line through a pair the tap lies.
func NearestSegment(anchors []Point, pt Point) int {
	if len(anchors) < 2 {
		return len(anchors)
	}
	index := 1
	minArea := math.Inf(1)
	for i := range len(anchors) - 1 {
		p0 := anchors[i]
		p1 := anchors[i+1]
		area := math.Abs(p0.X*(pt.Y-p1.Y) + pt.X*(p1.Y-p0.Y) + p1.X*(p0.Y-pt.Y))
		if area < minArea {
			minArea = area
			index = i + 1
		}
	}
	return index
}
