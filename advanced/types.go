package advanced

import "github.com/golang/geo/r2"

// Points double as positions and displacements. The underlying r2.Point
// supplies the vector arithmetic; the methods below only convert.
type Point r2.Point

type Point3 struct {
	X, Y, Z float64
}

// A line through Point heading along Direction. Predicates take the two
// values separately; this is only a carrier for callers that want one value.
type Line struct {
	Point     Point
	Direction Point
}

// Triangles are expected to wind counterclockwise. Nothing verifies that in a
// release build.
type Triangle struct {
	A, B, C Point
}

// Polygons are implicitly closed: the last point connects back to the first.
type Polygon struct {
	Points []Point
}
