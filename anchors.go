package shapedraw

import (
	"fmt"
	"log/slog"
	"slices"
)

// AnchorID identifies an anchor for as long as it exists, independent of its
// position in the sequence. IDs are never reused by an editor.
type AnchorID uint64

// Marker is the interactive handle the host draws at an anchor or corner.
type Marker struct {
	ID     AnchorID
	Center Point
	Bounds Rect
}

type anchor struct {
	id AnchorID
	pt Point
}

// AnchorEditor edits a smooth curve through an ordered sequence of anchors.
//
// Every mutation recomputes the control points and the path from scratch and
// returns the new path for the host to render. The editor is not safe for
// concurrent use; hosts deliver events from a single goroutine.
type AnchorEditor struct {
	cfg     config
	log     *slog.Logger
	anchors []anchor
	nextID  AnchorID

	pairs []ControlPointPair
	path  BezPath
}

// NewAnchorEditor returns an editor without anchors.
func NewAnchorEditor(opts ...Option) *AnchorEditor {
	cfg := newConfig(opts)
	return &AnchorEditor{
		cfg:    cfg,
		log:    cfg.logger,
		nextID: 1,
	}
}

// Initialize replaces all anchors with points, in order, assigning each a new
// ID. It returns the curve through them.
func (e *AnchorEditor) Initialize(points []Point) BezPath {
	e.anchors = make([]anchor, len(points))
	for i, pt := range points {
		e.anchors[i] = anchor{id: e.newID(), pt: pt}
	}
	e.log.Debug("anchors initialized", "count", len(points))
	return e.rebuild()
}

func (e *AnchorEditor) newID() AnchorID {
	id := e.nextID
	e.nextID++
	return id
}

// MoveAnchor moves the anchor at index to pt. It panics if index is out of
// range.
func (e *AnchorEditor) MoveAnchor(index int, pt Point) BezPath {
	if index < 0 || index >= len(e.anchors) {
		panic(fmt.Sprintf("anchor index %d out of range [0, %d)", index, len(e.anchors)))
	}
	e.anchors[index].pt = pt
	e.log.Debug("anchor moved", "id", e.anchors[index].id, "index", index, "point", pt)
	return e.rebuild()
}

// DragAnchor moves the anchor with the given ID by delta, as reported by a
// pan gesture. It returns false if no such anchor exists.
func (e *AnchorEditor) DragAnchor(id AnchorID, delta Vec2) (BezPath, bool) {
	i, ok := e.IndexOf(id)
	if !ok {
		return e.path, false
	}
	return e.MoveAnchor(i, e.anchors[i].pt.Translate(delta)), true
}

// HitTest reports whether pt lies on the stroke of the current curve.
func (e *AnchorEditor) HitTest(pt Point) bool {
	return e.cfg.hitTester.HitTest(e.path, pt, e.cfg.tolerance())
}

// InsertNearest inserts pt as a new anchor between the two consecutive anchors
// it is most nearly collinear with (see [NearestSegment]). It is meant to be
// called for taps that passed [AnchorEditor.HitTest].
func (e *AnchorEditor) InsertNearest(pt Point) BezPath {
	pts := e.Anchors()
	index := NearestSegment(pts, pt)
	id := e.newID()
	e.anchors = slices.Insert(e.anchors, index, anchor{id: id, pt: pt})
	e.log.Debug("anchor inserted", "id", id, "index", index, "point", pt)
	return e.rebuild()
}

// InsertAnchor handles a tap at pt: if it hits the curve, a new anchor is
// inserted there and the new curve is returned along with true. Otherwise the
// curve is left unchanged.
func (e *AnchorEditor) InsertAnchor(pt Point) (BezPath, bool) {
	if !e.HitTest(pt) {
		return e.path, false
	}
	return e.InsertNearest(pt), true
}

// RemoveAnchor removes the anchor with the given ID. It returns false if no
// such anchor exists.
func (e *AnchorEditor) RemoveAnchor(id AnchorID) (BezPath, bool) {
	i, ok := e.IndexOf(id)
	if !ok {
		return e.path, false
	}
	e.anchors = slices.Delete(e.anchors, i, i+1)
	e.log.Debug("anchor removed", "id", id, "index", i)
	return e.rebuild(), true
}

// IndexOf returns the current position of the anchor with the given ID.
func (e *AnchorEditor) IndexOf(id AnchorID) (int, bool) {
	i := slices.IndexFunc(e.anchors, func(a anchor) bool { return a.id == id })
	return i, i >= 0
}

// AnchorAt returns the anchor whose marker contains pt. Markers drawn later
// lie on top, so the last matching one wins.
func (e *AnchorEditor) AnchorAt(pt Point) (AnchorID, bool) {
	for i := len(e.anchors) - 1; i >= 0; i-- {
		a := e.anchors[i]
		if markerBounds(a.pt, e.cfg.anchorStyle).Contains(pt) {
			return a.id, true
		}
	}
	return 0, false
}

// Len returns the number of anchors.
func (e *AnchorEditor) Len() int { return len(e.anchors) }

// Anchors returns a copy of the anchor positions, in curve order.
func (e *AnchorEditor) Anchors() []Point {
	pts := make([]Point, len(e.anchors))
	for i, a := range e.anchors {
		pts[i] = a.pt
	}
	return pts
}

// Markers returns the markers of all anchors, in curve order.
func (e *AnchorEditor) Markers() []Marker {
	ms := make([]Marker, len(e.anchors))
	for i, a := range e.anchors {
		ms[i] = Marker{
			ID:     a.id,
			Center: a.pt,
			Bounds: markerBounds(a.pt, e.cfg.anchorStyle),
		}
	}
	return ms
}

// ControlPoints returns the control points of the current curve, one pair per
// segment.
func (e *AnchorEditor) ControlPoints() []ControlPointPair {
	return slices.Clone(e.pairs)
}

// Path returns the current curve.
func (e *AnchorEditor) Path() BezPath {
	return e.path
}

// SetLineStyle changes the curve's stroke and returns the curve for the host
// to redraw.
func (e *AnchorEditor) SetLineStyle(s LineStyle) BezPath {
	e.cfg.lineStyle = s
	return e.path
}

// SetAnchorStyle changes the markers' style and returns the restyled markers.
func (e *AnchorEditor) SetAnchorStyle(s AnchorStyle) []Marker {
	e.cfg.anchorStyle = s
	return e.Markers()
}

func (e *AnchorEditor) rebuild() BezPath {
	pts := e.Anchors()
	e.pairs = ControlPoints(pts)
	e.path = BuildPath(pts, e.pairs)
	if e.path.IsNaN() {
		e.log.Warn("curve has NaN coordinates", "anchors", len(pts))
	}
	return e.path
}

func markerBounds(center Point, s AnchorStyle) Rect {
	return NewRectFromCenter(center, s.Size)
}
