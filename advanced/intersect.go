package advanced

import "math"

// Determinants (and direction components) smaller than this are treated as
// zero when intersecting lines.
const ParallelTolerance = 1e-3

// Solve p0 + m0*v0 = p1 + m1*v1 for m0 and m1. Lines whose directions are
// parallel (or too close to it to trust) report false with both coefficients
// NaN.
func LineLineIntersectionCoefficients(p0, v0, p1, v1 Point) (m0, m1 float64, ok bool) {
	det := v0.Cross(v1)
	if math.Abs(det) < ParallelTolerance {
		return math.NaN(), math.NaN(), false
	}

	// Cramer's rule for m0
	d := p1.Sub(p0)
	m0 = d.Cross(v1) / det

	// Back substitute for m1, dividing by whichever component of v1 is safely
	// away from zero.
	if math.Abs(v1.X) >= ParallelTolerance {
		m1 = (p0.X + m0*v0.X - p1.X) / v1.X
	} else {
		m1 = (p0.Y + m0*v0.Y - p1.Y) / v1.Y
	}
	return m0, m1, true
}

// The point where the two lines cross, or the NaN point if they are parallel.
// Check the result with Point.IsReal before using it.
func LineLineIntersection(p0, v0, p1, v1 Point) Point {
	m0, _, ok := LineLineIntersectionCoefficients(p0, v0, p1, v1)
	if !ok {
		return NaNPoint()
	}
	return p0.Add(v0.Mul(m0))
}

func (l Line) At(m float64) Point {
	return l.Point.Add(l.Direction.Mul(m))
}

func (l Line) Intersection(other Line) Point {
	return LineLineIntersection(l.Point, l.Direction, other.Point, other.Direction)
}
