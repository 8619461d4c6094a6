package shapedraw

import (
	"iter"
	"math"
	"slices"
)

// Arc is an axis-aligned elliptical arc. A sweep of ±2π describes a full
// ellipse; the sign of the sweep selects the direction of travel.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
}

// NewOval returns the full ellipse inscribed in r.
func NewOval(r Rect) Arc {
	r = r.Abs()
	return Arc{
		Center:     r.Center(),
		Radii:      r.Size().Scale(0.5).AsVec2(),
		StartAngle: 0,
		SweepAngle: 2 * math.Pi,
	}
}

func (a Arc) Path(tolerance float64) BezPath { return slices.Collect(a.PathElements(tolerance)) }

// PathElements approximates the arc with cubic Béziers, using as many as
// needed to stay within tolerance. Full ellipses are closed.
func (a Arc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		p0 := sampleEllipse(a.Radii, a.StartAngle)
		if !yield(MoveTo(a.Center.Translate(p0))) {
			return
		}

		scaledError := max(a.Radii.X, a.Radii.Y) / tolerance
		// Number of subdivisions per ellipse based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := math.Ceil(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
		angleStep := a.SweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)
		angle0 := a.StartAngle

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(sampleEllipse(a.Radii, angle0+math.Pi/2).Mul(armLen))
			p3 := sampleEllipse(a.Radii, angle1)
			p2 := p3.Sub(sampleEllipse(a.Radii, angle1+math.Pi/2).Mul(armLen))

			angle0 = angle1
			p0 = p3

			if !yield(CubicTo(
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			)) {
				return
			}
		}
		if math.Abs(a.SweepAngle) >= 2*math.Pi {
			yield(ClosePath())
		}
	}
}

// Contains reports whether pt lies inside the full ellipse of the arc.
func (a Arc) Contains(pt Point) bool {
	d := pt.Sub(a.Center)
	x := d.X / a.Radii.X
	y := d.Y / a.Radii.Y
	return x*x+y*y < 1
}

// sampleEllipse returns the point at angle on the ellipse with the given
// radii, relative to its center.
func sampleEllipse(radii Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: radii.X * cos,
		Y: radii.Y * sin,
	}
}
