package shapedraw

import (
	"fmt"
	"log/slog"
)

// FrameShape is the shape drawn inside a [FrameEditor]'s frame.
type FrameShape int

const (
	// FrameRect fills the frame and is resized by its corners.
	FrameRect FrameShape = iota + 1
	// FrameOval is the ellipse inscribed in the frame and is resized by the
	// midpoints of its edges.
	FrameOval
)

// Handle is the part of a frame a touch grabbed.
type Handle int

const (
	HandleCenter Handle = iota
	HandleTopLeft
	HandleTopRight
	HandleBottomRight
	HandleBottomLeft
	HandleTop
	HandleRight
	HandleBottom
	HandleLeft
)

func (h Handle) String() string {
	switch h {
	case HandleCenter:
		return "Center"
	case HandleTopLeft:
		return "TopLeft"
	case HandleTopRight:
		return "TopRight"
	case HandleBottomRight:
		return "BottomRight"
	case HandleBottomLeft:
		return "BottomLeft"
	case HandleTop:
		return "Top"
	case HandleRight:
		return "Right"
	case HandleBottom:
		return "Bottom"
	case HandleLeft:
		return "Left"
	default:
		return fmt.Sprintf("Handle(%d)", int(h))
	}
}

// FrameEditor moves and resizes a rectangle or an oval with a single touch.
// A touch is a sequence of Begin, any number of Move, and End.
type FrameEditor struct {
	cfg    config
	log    *slog.Logger
	shape  FrameShape
	frame  Rect
	handle Handle
	last   Point
}

// NewFrameEditor returns an editor for shape inside frame. It panics if shape
// is not a valid FrameShape.
func NewFrameEditor(shape FrameShape, frame Rect, opts ...Option) *FrameEditor {
	if shape != FrameRect && shape != FrameOval {
		panic(fmt.Sprintf("invalid frame shape %d", shape))
	}
	cfg := newConfig(opts)
	return &FrameEditor{
		cfg:   cfg,
		log:   cfg.logger,
		shape: shape,
		frame: frame,
	}
}

// Begin starts a touch at pt and returns the handle it grabbed. A touch
// within the edge size of a handle grabs it; anything else grabs the center,
// which moves the whole frame.
func (f *FrameEditor) Begin(pt Point) Handle {
	f.last = pt
	f.handle = f.HandleAt(pt)
	return f.handle
}

// HandleAt classifies pt, in the frame's parent coordinates, without starting
// a touch.
func (f *FrameEditor) HandleAt(pt Point) Handle {
	e := f.cfg.edgeSize
	w, h := f.frame.Size().Splat()
	x, y := pt.Sub(f.frame.Origin()).Splat()
	near := func(v float64) bool { return v >= -e && v < e }

	switch f.shape {
	case FrameRect:
		switch {
		case near(w-x) && near(h-y):
			return HandleBottomRight
		case near(x) && near(y):
			return HandleTopLeft
		case near(w-x) && near(y):
			return HandleTopRight
		case near(x) && near(h-y):
			return HandleBottomLeft
		}
	case FrameOval:
		switch {
		case near(w/2-x) && near(h-y):
			return HandleBottom
		case near(w/2-x) && near(y):
			return HandleTop
		case near(w-x) && near(h/2-y):
			return HandleRight
		case near(x) && near(h/2-y):
			return HandleLeft
		}
	}
	return HandleCenter
}

// Move continues the touch at pt and returns the new frame. The grabbed
// handle moves by the distance the touch travelled since the previous event;
// the opposite edges stay put.
func (f *FrameEditor) Move(pt Point) Rect {
	d := pt.Sub(f.last)
	f.last = pt
	r := f.frame
	switch f.handle {
	case HandleCenter:
		r = r.Translate(d)
	case HandleTopLeft:
		r.X0 += d.X
		r.Y0 += d.Y
	case HandleTopRight:
		r.X1 += d.X
		r.Y0 += d.Y
	case HandleBottomRight:
		r.X1 += d.X
		r.Y1 += d.Y
	case HandleBottomLeft:
		r.X0 += d.X
		r.Y1 += d.Y
	case HandleTop:
		r.Y0 += d.Y
	case HandleRight:
		r.X1 += d.X
	case HandleBottom:
		r.Y1 += d.Y
	case HandleLeft:
		r.X0 += d.X
	}
	f.frame = r
	f.log.Debug("frame moved", "handle", f.handle, "frame", r)
	return r
}

// End finishes the touch.
func (f *FrameEditor) End() {
	f.handle = HandleCenter
}

// Frame returns the current frame.
func (f *FrameEditor) Frame() Rect {
	return f.frame
}

// Shape returns the shape drawn inside the frame.
func (f *FrameEditor) Shape() FrameShape {
	return f.shape
}

// Path returns the outline of the shape.
func (f *FrameEditor) Path() BezPath {
	switch f.shape {
	case FrameOval:
		return NewOval(f.frame).Path(f.cfg.accuracy)
	default:
		return f.frame.Path(f.cfg.accuracy)
	}
}

// Contains reports whether pt lies inside the shape.
func (f *FrameEditor) Contains(pt Point) bool {
	switch f.shape {
	case FrameOval:
		return NewOval(f.frame).Contains(pt)
	default:
		return f.frame.Abs().Contains(pt)
	}
}
