package shapedraw

import (
	"image"
	"image/draw"
	"iter"
	"math"

	"golang.org/x/image/vector"
)

// RasterHitTester hit-tests by rasterizing the stroked outline of the path in
// a small window around the tap and sampling the coverage of the tapped pixel.
// This mirrors how a renderer would decide what the user sees; for most
// purposes [StrokeHitTester] is cheaper and exact.
type RasterHitTester struct {
	// Tolerance used to flatten curves before stroking. Zero means
	// [DefaultAccuracy].
	Accuracy float64
	// Minimum coverage of the tapped pixel that counts as a hit. Zero means
	// half coverage, 0x80.
	Threshold uint8
}

var _ HitTester = RasterHitTester{}

func (h RasterHitTester) HitTest(path BezPath, pt Point, tolerance float64) bool {
	if tolerance <= 0 || !path.HasSegments() || path.IsNaN() || path.IsInf() {
		return false
	}
	if path.ControlBox().Inflate(tolerance, tolerance).DistanceSquared(pt) > 0 {
		return false
	}
	accuracy := h.Accuracy
	if accuracy <= 0 {
		accuracy = DefaultAccuracy
	}
	threshold := h.Threshold
	if threshold == 0 {
		threshold = 0x80
	}

	// The window is centered on pt, which maps to the center of pixel (r, r).
	r := int(math.Ceil(tolerance)) + 1
	window := Rect{
		X0: pt.X - float64(r) - 0.5,
		Y0: pt.Y - float64(r) - 0.5,
		X1: pt.X + float64(r) + 0.5,
		Y1: pt.Y + float64(r) + 0.5,
	}
	mask := rasterize(strokeOutline(path, tolerance, accuracy, window), window)
	return mask.AlphaAt(r, r).A >= threshold
}

// rasterize fills the outline, in the window's coordinates, into an alpha mask
// with one pixel per canvas unit. Subpaths are filled with the non-zero rule.
func rasterize(outline iter.Seq[PathElement], window Rect) *image.Alpha {
	w := int(math.Round(window.Width()))
	h := int(math.Round(window.Height()))
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src

	local := func(pt Point) (float32, float32) {
		return float32(pt.X - window.X0), float32(pt.Y - window.Y0)
	}
	for el := range outline {
		switch el.Kind {
		case MoveToKind:
			z.MoveTo(local(el.P0))
		case LineToKind:
			z.LineTo(local(el.P0))
		case CubicToKind:
			x0, y0 := local(el.P0)
			x1, y1 := local(el.P1)
			x2, y2 := local(el.P2)
			z.CubeTo(x0, y0, x1, y1, x2, y2)
		case ClosePathKind:
			z.ClosePath()
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// strokeOutline returns closed subpaths covering the stroke of path with the
// given half width and round joins and caps: one quadrilateral per flattened
// line and one circle per vertex. Only pieces that can reach the clip
// rectangle are emitted. All subpaths share the same orientation so that
// overlaps don't cancel under the non-zero rule.
func strokeOutline(path BezPath, halfWidth, tolerance float64, clip Rect) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		circle := func(c Point) bool {
			arc := Arc{
				Center:     c,
				Radii:      Vec(halfWidth, halfWidth),
				SweepAngle: -2 * math.Pi,
			}
			for el := range arc.PathElements(tolerance) {
				if !yield(el) {
					return false
				}
			}
			return true
		}

		for seg := range Segments(Flatten(path.Elements(), tolerance)) {
			a, b := seg.P0, seg.P1
			if !overlaps(seg.Line().BoundingBox().Inflate(halfWidth, halfWidth), clip) {
				continue
			}
			if a != b {
				n := b.Sub(a).Normalize().Turn90().Mul(halfWidth)
				if !(yield(MoveTo(a.Translate(n))) &&
					yield(LineTo(b.Translate(n))) &&
					yield(LineTo(b.Translate(n.Negate()))) &&
					yield(LineTo(a.Translate(n.Negate()))) &&
					yield(ClosePath())) {
					return
				}
			}
			if !circle(a) || !circle(b) {
				return
			}
		}
	}
}

// overlaps reports whether two rectangles with non-negative sizes share any
// point.
func overlaps(r, o Rect) bool {
	return r.X0 <= o.X1 && o.X0 <= r.X1 && r.Y0 <= o.Y1 && o.Y0 <= r.Y1
}
