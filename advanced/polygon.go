package advanced

func (poly Polygon) Area() float64 {
	return Area(poly.Points)
}

func (poly Polygon) IsCCW() bool {
	return poly.Area() > 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Area weighted centroid. Degenerate polygons (zero area) fall back to the
// vertex mean so that the result is always a real point for real input.
func (poly Polygon) Centroid() Point {
	n := len(poly.Points)
	if n == 0 {
		return NaNPoint()
	}
	area := poly.Area()
	if Equal(area, 0) {
		var sum Point
		for _, p := range poly.Points {
			sum = sum.Add(p)
		}
		return sum.Mul(1 / float64(n))
	}

	var cx, cy float64
	for i, p0 := range poly.Points {
		p1 := poly.Points[CircularIndex(i+1, n)]
		cross := p0.X*p1.Y - p1.X*p0.Y
		cx += (p0.X + p1.X) * cross
		cy += (p0.Y + p1.Y) * cross
	}
	return Point{X: cx / (6 * area), Y: cy / (6 * area)}
}

// Winding rule point-in-polygon. Points on the boundary may land either way.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if vertex.Below(p) == nextVertex.Below(p) {
			continue
		}
		// The edge spans p vertically; count it if it passes to the right of p, which puts p on its left.
		lower, upper := vertex, nextVertex
		if upper.Below(lower) {
			lower, upper = upper, lower
		}
		if ToTheLeft(p, lower, upper) {
			crossingCount++
		}
	}
	return crossingCount
}
