package shapedraw

import (
	"fmt"
	"log/slog"
)

// Corner names one of the four corners of a [QuadEditor].
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomRight:
		return "BottomRight"
	case BottomLeft:
		return "BottomLeft"
	default:
		return fmt.Sprintf("Corner(%d)", int(c))
	}
}

func (c Corner) valid() bool {
	return c >= TopLeft && c <= BottomLeft
}

// QuadEditor edits a quadrilateral by dragging its corners.
//
// Dragging a corner also moves one coordinate of each neighbor: the neighbor
// sharing the horizontal edge takes over the new y, the one sharing the
// vertical edge the new x. The diagonal corner never moves. Nothing keeps the
// shape convex; asymmetric drags can make it self-intersecting.
type QuadEditor struct {
	cfg     config
	log     *slog.Logger
	corners [4]Point
	frame   Size
}

// NewQuadEditor returns an editor for the rectangle spanning size, with its
// top left corner at the origin.
func NewQuadEditor(size Size, opts ...Option) *QuadEditor {
	cfg := newConfig(opts)
	w, h := size.Splat()
	return &QuadEditor{
		cfg: cfg,
		log: cfg.logger,
		corners: [4]Point{
			TopLeft:     Pt(0, 0),
			TopRight:    Pt(w, 0),
			BottomRight: Pt(w, h),
			BottomLeft:  Pt(0, h),
		},
		frame: size,
	}
}

// DragCorner moves corner c to pt, updates the coupled coordinates of its
// neighbors and returns the new outline and frame size. The frame size is the
// position of the bottom right corner. It panics if c is not a valid corner.
func (q *QuadEditor) DragCorner(c Corner, pt Point) (BezPath, Size) {
	if !c.valid() {
		panic(fmt.Sprintf("invalid corner %v", c))
	}
	q.corners[c] = pt
	switch c {
	case TopLeft:
		q.corners[TopRight].Y = pt.Y
		q.corners[BottomLeft].X = pt.X
	case TopRight:
		q.corners[TopLeft].Y = pt.Y
		q.corners[BottomRight].X = pt.X
	case BottomRight:
		q.corners[TopRight].X = pt.X
		q.corners[BottomLeft].Y = pt.Y
	case BottomLeft:
		q.corners[TopLeft].X = pt.X
		q.corners[BottomRight].Y = pt.Y
	}
	br := q.corners[BottomRight]
	q.frame = Sz(br.X, br.Y)
	q.log.Debug("corner dragged", "corner", c, "point", pt, "frame", q.frame)
	return q.Path(), q.frame
}

// DragCornerBy moves corner c by delta, see [QuadEditor.DragCorner].
func (q *QuadEditor) DragCornerBy(c Corner, delta Vec2) (BezPath, Size) {
	if !c.valid() {
		panic(fmt.Sprintf("invalid corner %v", c))
	}
	return q.DragCorner(c, q.corners[c].Translate(delta))
}

// Corner returns the position of corner c.
func (q *QuadEditor) Corner(c Corner) Point {
	if !c.valid() {
		panic(fmt.Sprintf("invalid corner %v", c))
	}
	return q.corners[c]
}

// Corners returns the corners, indexed by [Corner].
func (q *QuadEditor) Corners() [4]Point {
	return q.corners
}

// Frame returns the size of the frame enclosing the quadrilateral.
func (q *QuadEditor) Frame() Size {
	return q.frame
}

// Path returns the closed outline, clockwise in a y-down space starting at the
// top left corner.
func (q *QuadEditor) Path() BezPath {
	return polygon(q.corners[:])
}

// CornerAt returns the corner whose marker contains pt. Later corners lie on
// top.
func (q *QuadEditor) CornerAt(pt Point) (Corner, bool) {
	for c := BottomLeft; c >= TopLeft; c-- {
		if markerBounds(q.corners[c], q.cfg.anchorStyle).Contains(pt) {
			return c, true
		}
	}
	return 0, false
}

// HitTest reports whether pt lies on the quadrilateral's border.
func (q *QuadEditor) HitTest(pt Point) bool {
	return q.cfg.hitTester.HitTest(q.Path(), pt, q.cfg.tolerance())
}

// Markers returns the markers of the four corners. Their IDs are the corners'
// [Corner] values.
func (q *QuadEditor) Markers() []Marker {
	ms := make([]Marker, len(q.corners))
	for c, pt := range q.corners {
		ms[c] = Marker{
			ID:     AnchorID(c),
			Center: pt,
			Bounds: markerBounds(pt, q.cfg.anchorStyle),
		}
	}
	return ms
}

// SetLineStyle changes the border's stroke and returns the outline for the
// host to redraw.
func (q *QuadEditor) SetLineStyle(s LineStyle) BezPath {
	q.cfg.lineStyle = s
	return q.Path()
}

// SetAnchorStyle changes the markers' style and returns the restyled markers.
func (q *QuadEditor) SetAnchorStyle(s AnchorStyle) []Marker {
	q.cfg.anchorStyle = s
	return q.Markers()
}
