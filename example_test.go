package shapedraw_test

import (
	"fmt"

	"honnef.co/go/shapedraw"
)

func ExampleBuildCurve() {
	anchors := []shapedraw.Point{
		shapedraw.Pt(0, 0),
		shapedraw.Pt(5, 5),
		shapedraw.Pt(10, 0),
	}
	p := shapedraw.BuildCurve(anchors)
	fmt.Println(p.SVG(shapedraw.SVGOptions{MaxPrecision: 3}))
	// Output:
	// M0,0 C1.667,2.5 3.333,5 5,5 C6.667,5 8.333,2.5 10,0
}

func ExampleControlPoints() {
	pairs := shapedraw.ControlPoints([]shapedraw.Point{
		shapedraw.Pt(0, 0),
		shapedraw.Pt(10, 0),
	})
	fmt.Println(pairs)
	// Output:
	// [{(0, 0) (10, 0)}]
}

func ExampleAnchorEditor() {
	e := shapedraw.NewAnchorEditor()
	e.Initialize([]shapedraw.Point{shapedraw.Pt(0, 0), shapedraw.Pt(10, 0)})

	// A tap next to the curve inserts an anchor; one far away doesn't.
	_, ok := e.InsertAnchor(shapedraw.Pt(5, 0.1))
	fmt.Println(ok, e.Anchors())
	_, ok = e.InsertAnchor(shapedraw.Pt(5, 10))
	fmt.Println(ok, e.Len())
	// Output:
	// true [(0, 0) (5, 0.1) (10, 0)]
	// false 3
}

func ExampleQuadEditor() {
	q := shapedraw.NewQuadEditor(shapedraw.Sz(10, 10))
	_, frame := q.DragCorner(shapedraw.TopLeft, shapedraw.Pt(2, 3))
	fmt.Println(q.Corners(), frame)
	// Output:
	// [(2, 3) (10, 3) (10, 10) (2, 10)] 10×10
}

func ExampleFrameEditor() {
	f := shapedraw.NewFrameEditor(shapedraw.FrameRect, shapedraw.Rect{X0: 100, Y0: 100, X1: 300, Y1: 200})
	h := f.Begin(shapedraw.Pt(295, 195))
	r := f.Move(shapedraw.Pt(315, 225))
	f.End()
	fmt.Println(h, r.Size())
	// Output:
	// BottomRight 220×130
}
