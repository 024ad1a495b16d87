package advanced

// Orientation tests. These are the hot path of any incremental mesher, so
// they stay branch-light and allocation-free.

// Is p on or to the left of the directed line l0 -> l1? Collinear points count
// as left. Downstream code relies on that for tie-breaking, so this must
// never become a strict test.
func ToTheLeft(p, l0, l1 Point) bool {
	return l1.Sub(l0).Cross(p.Sub(l0)) >= 0
}

// The complement of ToTheLeft. A collinear point is never to the right.
func ToTheRight(p, l0, l1 Point) bool {
	return !ToTheLeft(p, l0, l1)
}

// Is p inside the triangle c0, c1, c2? Points on an edge or at a vertex are
// inside. The triangle must wind counterclockwise; a clockwise triangle gives
// a meaningless answer (and panics in debug builds).
func PointInTriangle(p, c0, c1, c2 Point) bool {
	if debugChecks {
		checkCCW("PointInTriangle", c0, c1, c2)
	}
	return ToTheLeft(p, c0, c1) && ToTheLeft(p, c1, c2) && ToTheLeft(p, c2, c0)
}

func (t Triangle) Contains(p Point) bool {
	return PointInTriangle(p, t.A, t.B, t.C)
}
