package advanced

// Minimum determinant for a point to count as inside a circumcircle. Points
// within this margin of the circle are treated as outside, so cocircular
// configurations never flip back and forth.
const InCircleTolerance = 1e-6

// Is p strictly inside the circle through c0, c1 and c2? The points must wind
// counterclockwise or the sign of the determinant is inverted.
func InsideCircumcircle(p, c0, c1, c2 Point) bool {
	if debugChecks {
		checkCCW("InsideCircumcircle", c0, c1, c2)
	}
	a := c0.Sub(p)
	b := c1.Sub(p)
	c := c2.Sub(p)

	det := a.Dot(a)*b.Cross(c) -
		b.Dot(b)*a.Cross(c) +
		c.Dot(c)*a.Cross(b)

	return det > InCircleTolerance
}

func (t Triangle) CircumcircleContains(p Point) bool {
	return InsideCircumcircle(p, t.A, t.B, t.C)
}

// The center of the circle through c0, c1 and c2, found as the intersection of
// the perpendicular bisectors of c0-c1 and c1-c2. Collinear points have no
// circumcircle and give the NaN point.
func CircumcircleCenter(c0, c1, c2 Point) Point {
	mid0 := c0.Add(c1).Mul(0.5)
	mid1 := c1.Add(c2).Mul(0.5)
	dir0 := RotateRightAngle(c1.Sub(c0))
	dir1 := RotateRightAngle(c2.Sub(c1))
	return LineLineIntersection(mid0, dir0, mid1, dir1)
}

// Radius of the circumcircle, or NaN when the points are collinear.
func CircumcircleRadius(c0, c1, c2 Point) float64 {
	return CircumcircleCenter(c0, c1, c2).Distance(c0)
}

func (t Triangle) Circumcenter() Point {
	return CircumcircleCenter(t.A, t.B, t.C)
}
