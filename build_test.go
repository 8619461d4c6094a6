package shapedraw

import (
	"math/rand/v2"
	"testing"
)

func TestBuildCurveShape(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for n := 2; n < 12; n++ {
		anchors := randomAnchors(rng, n)
		p := BuildCurve(anchors)
		if len(p) != n {
			t.Fatalf("n=%d: got %d elements, want %d", n, len(p), n)
		}
		if p[0].Kind != MoveToKind || p[0].P0 != anchors[0] {
			t.Errorf("n=%d: path starts with %v, want a move to %v", n, p[0], anchors[0])
		}
		for i, el := range p[1:] {
			if el.Kind != CubicToKind {
				t.Errorf("n=%d: element %d is %v, want a cubic", n, i+1, el)
				continue
			}
			if el.P2 != anchors[i+1] {
				t.Errorf("n=%d: segment %d ends at %v, want %v", n, i, el.P2, anchors[i+1])
			}
		}
	}
}

func TestBuildCurveTooFewAnchors(t *testing.T) {
	if p := BuildCurve(nil); len(p) != 0 {
		t.Errorf("got %v, want empty path", p)
	}
	if p := BuildCurve([]Point{Pt(1, 2)}); len(p) != 0 {
		t.Errorf("got %v, want empty path", p)
	}
	if p := BuildCurve([]Point{Pt(1, 2)}); p.HasSegments() {
		t.Errorf("path %v has segments", p)
	}
}

func TestBuildCurveStraightLine(t *testing.T) {
	got := BuildCurve([]Point{Pt(0, 0), Pt(10, 0)})
	want := BezPath{
		MoveTo(Pt(0, 0)),
		CubicTo(Pt(0, 0), Pt(10, 0), Pt(10, 0)),
	}
	diff(t, want, got)
}

func TestBuildCurveIdempotent(t *testing.T) {
	anchors := []Point{Pt(10, 80), Pt(60, 20), Pt(120, 90), Pt(200, 40), Pt(260, 100)}
	diff(t, BuildCurve(anchors), BuildCurve(anchors))

	// The input isn't modified.
	want := []Point{Pt(10, 80), Pt(60, 20), Pt(120, 90), Pt(200, 40), Pt(260, 100)}
	diff(t, want, anchors)
}

func TestBuildPathMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	BuildPath([]Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}, []ControlPointPair{{}})
}

func TestPolygon(t *testing.T) {
	got := polygon([]Point{Pt(0, 0), Pt(4, 0), Pt(4, 3)})
	want := BezPath{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(4, 0)),
		LineTo(Pt(4, 3)),
		ClosePath(),
	}
	diff(t, want, got)
	if p := polygon(nil); p != nil {
		t.Errorf("got %v, want nil", p)
	}
}
