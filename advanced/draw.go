package advanced

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/predicates/dbg"
	"github.com/pkg/errors"
)

// This is for debugging purposes only. A Scene collects the inputs a mesher
// is feeding the predicates so they can be looked at.

// Padding around the scene so circumcircles near the edge stay visible
const dbgDrawPadding = 100

type Scene struct {
	Sites     []Point
	Triangles []Triangle
	Polygons  []Polygon
	// Draw the circumcircle of every triangle
	Circumcircles bool
	// Label triangles with their debug names
	Labels bool
}

func (s *Scene) bounds() (minX, minY, maxX, maxY float64) {
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	extend := func(p Point) {
		if !p.IsReal() {
			return
		}
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, p := range s.Sites {
		extend(p)
	}
	for _, t := range s.Triangles {
		extend(t.A)
		extend(t.B)
		extend(t.C)
	}
	for _, poly := range s.Polygons {
		for _, p := range poly.Points {
			extend(p)
		}
	}
	if minX > maxX { // Nothing to draw
		return 0, 0, 0, 0
	}
	return minX, minY, maxX, maxY
}

// Render the scene into a new context, with the origin at the bottom left.
func (s *Scene) Render(scale float64) *gg.Context {
	minX, minY, maxX, maxY := s.bounds()

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, poly := range s.Polygons {
		if len(poly.Points) == 0 {
			continue
		}
		c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	for _, t := range s.Triangles {
		s.drawTriangle(c, t)
	}

	c.SetRGB(1, 1, 0)
	for _, p := range s.Sites {
		c.DrawPoint(p.X, p.Y, 2)
		c.Fill()
	}
	return c
}

func (s *Scene) drawTriangle(c *gg.Context, t Triangle) {
	c.MoveTo(t.A.X, t.A.Y)
	c.LineTo(t.B.X, t.B.Y)
	c.LineTo(t.C.X, t.C.Y)
	c.ClosePath()
	if IsCW(t) {
		c.SetRGBA(1, 0.2, 0.2, 0.5)
	} else {
		c.SetRGBA(0.3, 0.2, 1, 0.5)
	}
	c.FillPreserve()
	c.SetRGB(0, 1, 0)
	c.Stroke()

	if s.Circumcircles {
		center := t.Circumcenter()
		if center.IsReal() {
			c.SetRGBA(1, 1, 1, 0.3)
			c.DrawCircle(center.X, center.Y, center.Distance(t.A))
			c.Stroke()
		}
	}

	if s.Labels {
		// Text has to be drawn in device space, or it comes out upside down
		centroid := t.Centroid()
		x, y := c.TransformPoint(centroid.X, centroid.Y)
		c.Push()
		c.Identity()
		c.SetRGB(1, 1, 1)
		c.DrawStringAnchored(dbg.Name(t), x, y, 0.5, 0.5)
		c.Pop()
	}
}

func (s *Scene) SavePNG(path string, scale float64) error {
	if err := s.Render(scale).SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving scene to %s", path)
	}
	return nil
}

// Draw the scene and print it to the terminal (iTerm only).
func (s *Scene) Cat(scale float64) error {
	f, err := os.CreateTemp("", "scene-*.png")
	if err != nil {
		return errors.Wrap(err, "creating scene file")
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := s.SavePNG(path, scale); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
