// Geometric predicates for 2D mesh construction.
//
// This package answers the questions an incremental or flip-based Delaunay
// triangulator asks over and over: which side of a line a point is on,
// whether a point is inside a triangle or its circumcircle, where two lines
// cross, and where a triangle's circumcenter is. It also provides signed
// polygon area and random site generation.
//
// The functions here report failures as errors. The advanced package exposes
// the same operations with NaN results instead, for callers that want to skip
// the checks.
package predicates

import (
	"github.com/osuushi/predicates/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point
type Point3 = advanced.Point3
type Line = advanced.Line
type Triangle = advanced.Triangle
type Polygon = advanced.Polygon
type Sampler = advanced.Sampler

var (
	// The lines never meet, or are too close to parallel to say where.
	ErrParallel = errors.New("lines are parallel")
	// The triangle's points are collinear, so it has no circumcircle.
	ErrDegenerate = errors.New("triangle is degenerate")
)

// Is p on or to the left of the line l0 -> l1? Collinear points are left.
func ToTheLeft(p, l0, l1 Point) bool {
	return advanced.ToTheLeft(p, l0, l1)
}

func ToTheRight(p, l0, l1 Point) bool {
	return advanced.ToTheRight(p, l0, l1)
}

// Is p inside or on the boundary of the triangle?
//
// The triangle must be counterclockwise. Debug builds (-tags
// predicatesdebug) return an error when it isn't; release builds never do.
func PointInTriangle(p Point, t Triangle) (inside bool, err error) {
	defer func() {
		if recoveredErr := advanced.HandlePanicRecover(recover()); recoveredErr != nil {
			inside = false
			err = recoveredErr
		}
	}()
	return advanced.PointInTriangle(p, t.A, t.B, t.C), nil
}

// Is p strictly inside the circumcircle of the triangle? Points within a small
// tolerance of the circle count as outside. The same winding rules as
// PointInTriangle apply.
func InsideCircumcircle(p Point, t Triangle) (inside bool, err error) {
	defer func() {
		if recoveredErr := advanced.HandlePanicRecover(recover()); recoveredErr != nil {
			inside = false
			err = recoveredErr
		}
	}()
	return advanced.InsideCircumcircle(p, t.A, t.B, t.C), nil
}

// Find the parameters m0 and m1 at which the lines meet, so that
// l0.At(m0) == l1.At(m1).
func IntersectionCoefficients(l0, l1 Line) (m0, m1 float64, err error) {
	m0, m1, ok := advanced.LineLineIntersectionCoefficients(l0.Point, l0.Direction, l1.Point, l1.Direction)
	if !ok {
		return 0, 0, errors.Wrapf(ErrParallel, "intersecting %v and %v", l0, l1)
	}
	return m0, m1, nil
}

// The point where two lines cross.
func Intersection(l0, l1 Line) (Point, error) {
	m0, _, err := IntersectionCoefficients(l0, l1)
	if err != nil {
		return Point{}, err
	}
	return l0.At(m0), nil
}

func Circumcenter(t Triangle) (Point, error) {
	center := t.Circumcenter()
	if !center.IsReal() {
		return Point{}, errors.Wrapf(ErrDegenerate, "circumcenter of %v", t)
	}
	return center, nil
}

func Centroid(t Triangle) Point {
	return t.Centroid()
}

// Signed shoelace area; positive for counterclockwise polygons.
func Area(points []Point) float64 {
	return advanced.Area(points)
}

func RotateRightAngle(v Point) Point {
	return advanced.RotateRightAngle(v)
}

// Create a sampler whose draws start at the given seed. Unlike the package
// level RandomSite, a sampler owned by one goroutine produces the same sites
// every run.
func NewSampler(seed uint64) *Sampler {
	return advanced.NewSampler(seed)
}

// Scatter count sites around position using the process-wide sampler.
func RandomSite(position Point, count int) []Point {
	return advanced.RandomSite(position, count)
}

func NormalizedRandom(mean, stddev float64) float64 {
	return advanced.NormalizedRandom(mean, stddev)
}
