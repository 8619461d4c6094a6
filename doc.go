// Package shapedraw implements the geometry behind interactively drawn and
// edited vector shapes: a smooth curve through user-placed anchors, a
// quadrilateral reshaped by its corners, and rectangles and ovals resized by
// their handles.
//
// The package doesn't render anything and knows nothing about views or
// gestures. A host translates its input events into calls on an editor and
// draws the [BezPath] the editor returns. Hosts own their editors; editors
// hold no reference back to the host.
//
// # Curve fitting
//
// [BuildCurve] turns a sequence of anchors into a path of cubic Béziers that
// passes through every anchor, with matching tangents where two segments
// meet. The inner control points come from [ControlPoints], which sets up one
// row of a tridiagonal linear system per segment and solves it with
// [SolveTridiagonal]:
//
//	first segment:    2·c[0]            + c[1]   = a[0] + 2·a[1]
//	interior segment:   c[i−1] + 4·c[i] + c[i+1] = 4·a[i] + 2·a[i+1]
//	last segment:     2·c[n−2] + 7·c[n−1]        = 8·a[n−1] + a[n]
//
// where a are the anchors and c the first control point of each segment. The
// second control point of a segment mirrors the next segment's first control
// point about their shared anchor; the last one lies halfway between the final
// anchor and its first control point. Two anchors produce a straight line,
// fewer produce nothing.
//
// # Editors
//
// [AnchorEditor] keeps the anchors of a curve. Anchors have stable
// [AnchorID]s, so hosts can map them to their markers without renumbering
// when anchors are inserted or removed. Taps are hit-tested against the
// stroke with a [HitTester]; a tap on the curve inserts a new anchor between
// the pair of anchors the tap is most nearly collinear with.
//
// [QuadEditor] keeps four corners and couples each corner with one coordinate
// of its two neighbors. [FrameEditor] moves and resizes a rectangle or an
// inscribed oval by corner or edge handles.
//
// Every mutation recomputes all derived state and returns it. Editors are
// meant to be driven from a single goroutine.
//
// # Logging
//
// Editors log through [log/slog]. The package is silent until [SetLogger] is
// called or an editor is created with [WithLogger].
package shapedraw
