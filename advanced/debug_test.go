//go:build predicatesdebug

package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugWindingChecks(t *testing.T) {
	a, b, c := Point{0, 0}, Point{1, 0}, Point{0, 1}

	assert.NotPanics(t, func() {
		PointInTriangle(Point{0.2, 0.2}, a, b, c)
		InsideCircumcircle(Point{0.2, 0.2}, a, b, c)
	})
	assert.Panics(t, func() {
		PointInTriangle(Point{0.2, 0.2}, a, c, b)
	})
	assert.Panics(t, func() {
		InsideCircumcircle(Point{0.2, 0.2}, a, c, b)
	})
}
