//go:build predicatesdebug

package predicates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockwiseTriangleIsAnError(t *testing.T) {
	cw := Triangle{A: Point{X: 0, Y: 0}, B: Point{X: 0, Y: 1}, C: Point{X: 1, Y: 0}}

	inside, err := PointInTriangle(Point{X: 0.2, Y: 0.2}, cw)
	assert.Error(t, err)
	assert.False(t, inside)

	inside, err = InsideCircumcircle(Point{X: 0.2, Y: 0.2}, cw)
	assert.Error(t, err)
	assert.False(t, inside)
}
