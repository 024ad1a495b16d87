package advanced

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/predicates/dbg"
)

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

func (l Line) String() string {
	return fmt.Sprintf("Line { %s + m%s }", l.Point, l.Direction)
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle %s { A: %s %s, B: %s %s, C: %s %s }",
		t.DbgName(),
		dbg.Name(t.A), t.A,
		dbg.Name(t.B), t.B,
		dbg.Name(t.C), t.C,
	)
}

// Name colored by winding: green for counterclockwise (what the predicates
// expect), red for clockwise, cyan for degenerate.
func (t Triangle) DbgName() string {
	name := dbg.Name(t)
	area := t.SignedArea()
	if Equal(area, 0) {
		name = aurora.Cyan(name).String()
	} else if area < 0 {
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}

func (poly Polygon) String() string {
	return fmt.Sprintf("Polygon <%d points, area %g>", len(poly.Points), poly.Area())
}
