package advanced

import (
	"math"

	"github.com/golang/geo/r2"
)

// Tolerance for fuzzy equality of coordinates.
const Tolerance = 1e-6

// Looser bound used when comparing derived values (areas, distances) in
// tests and in callers that accumulate error over several operations.
const Epsilon = 1e-9

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Two points are coincident when both components are Equal.
func AreCoincident(a, b Point) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// IsReal reports whether f is neither NaN nor infinite. Failed intersections
// and circumcenters are NaN, so this is how callers detect them.
func IsReal(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func NaNPoint() Point {
	return Point{X: math.NaN(), Y: math.NaN()}
}

func (p Point) IsReal() bool {
	return IsReal(p.X) && IsReal(p.Y)
}

func (p Point3) IsReal() bool {
	return IsReal(p.X) && IsReal(p.Y) && IsReal(p.Z)
}

// Lift into 3D on the z = 0 plane.
func (p Point) To3() Point3 {
	return Point3{X: p.X, Y: p.Y}
}

// Drop the z component.
func (p Point3) To2() Point {
	return Point{X: p.X, Y: p.Y}
}

func (p Point) vec() r2.Point {
	return r2.Point(p)
}

func (p Point) Add(q Point) Point {
	return Point(p.vec().Add(q.vec()))
}

func (p Point) Sub(q Point) Point {
	return Point(p.vec().Sub(q.vec()))
}

func (p Point) Mul(m float64) Point {
	return Point(p.vec().Mul(m))
}

// 2D cross product, the z component of the 3D cross of p and q.
func (p Point) Cross(q Point) float64 {
	return p.vec().Cross(q.vec())
}

func (p Point) Dot(q Point) float64 {
	return p.vec().Dot(q.vec())
}

func (p Point) Norm() float64 {
	return p.vec().Norm()
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Norm()
}

// A common convention in our geometry is that if two points have the same Y
// value, the one with the smaller X value is "lower". Callers sorting sites
// for sweep-style insertion use this to avoid ties.
func (p Point) Below(otherPoint Point) bool {
	if Equal(p.Y, otherPoint.Y) {
		return p.X < otherPoint.X
	}
	return p.Y < otherPoint.Y
}

func (p Point) Above(otherPoint Point) bool {
	return !p.Below(otherPoint)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
