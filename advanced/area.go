package advanced

// Rotate v by a quarter turn. The name is historical: (-y, x) is a
// counterclockwise rotation, and callers depend on that exact formula.
func RotateRightAngle(v Point) Point {
	return Point(v.vec().Ortho())
}

func TriangleCentroid(c0, c1, c2 Point) Point {
	return c0.Add(c1).Add(c2).Mul(1.0 / 3)
}

// Signed area by the shoelace formula. Counterclockwise polygons are
// positive, clockwise ones negative. Fewer than three points have no area.
func Area(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}
	var sum float64
	for i, p0 := range points {
		p1 := points[CircularIndex(i+1, len(points))]
		sum += p0.X*p1.Y - p1.X*p0.Y
	}
	return sum / 2
}

func (t Triangle) Centroid() Point {
	return TriangleCentroid(t.A, t.B, t.C)
}

func (t Triangle) SignedArea() float64 {
	return t.Polygon().Area()
}

func (t Triangle) Polygon() Polygon {
	return Polygon{Points: []Point{t.A, t.B, t.C}}
}

func IsCCW(t Triangle) bool {
	return t.SignedArea() > 0
}

func IsCW(t Triangle) bool {
	return t.SignedArea() < 0
}
