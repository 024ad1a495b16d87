package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/predicates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	a := newApp(&out)
	a.in = strings.NewReader(stdin)
	err := a.run(append([]string{"--no-color"}, args...))
	return strings.TrimSpace(out.String()), err
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("1.5,-2")
	require.NoError(t, err)
	assert.Equal(t, predicates.Point{X: 1.5, Y: -2}, p)

	p, err = parsePoint(" 3 , 4 ")
	require.NoError(t, err)
	assert.Equal(t, predicates.Point{X: 3, Y: 4}, p)

	for _, bad := range []string{"", "1", "1,2,3", "x,1", "1,y"} {
		_, err := parsePoint(bad)
		assert.Error(t, err, bad)
	}
}

func TestReadPolygons(t *testing.T) {
	input := "0 0\n1 0\n1 1\n\n\n5 5\n6 5\n5 6\n"
	polygons, err := readPolygons(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, polygons, 2)
	assert.Len(t, polygons[0].Points, 3)
	assert.Equal(t, predicates.Point{X: 5, Y: 6}, polygons[1].Points[2])

	_, err = readPolygons(strings.NewReader("0 0\n1\n"))
	assert.EqualError(t, err, `line 2: want "x y", got "1"`)
}

func TestReadSVGPolygon(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg"><polygon points="0,0 2,0 2,2 0,2" /></svg>`
	polygon, err := readSVGPolygon(strings.NewReader(svg))
	require.NoError(t, err)
	assert.InDelta(t, 4, polygon.Area(), 1e-9)

	_, err = readSVGPolygon(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`))
	assert.Error(t, err)
}

func TestCommands(t *testing.T) {
	cases := []struct {
		args     []string
		expected string
	}{
		{[]string{"orient", "0,1", "0,0", "1,0"}, "left"},
		{[]string{"orient", "0,-1", "0,0", "1,0"}, "right"},
		{[]string{"orient", "2,0", "0,0", "1,0"}, "left"},
		{[]string{"contains", "0.2,0.2", "0,0", "1,0", "0,1"}, "inside"},
		{[]string{"contains", "2,2", "0,0", "1,0", "0,1"}, "outside"},
		{[]string{"incircle", "1,1", "0,0", "2,0", "0,2"}, "inside"},
		{[]string{"incircle", "3,3", "0,0", "2,0", "0,2"}, "outside"},
		{[]string{"intersect", "2,0", "1,0", "3,-1", "0,1"}, "(3, 0)"},
		{[]string{"circumcenter", "0,0", "2,0", "0,2"}, "(1, 1)"},
		{[]string{"centroid", "0,0", "3,0", "0,3"}, "(1, 1)"},
	}
	for _, c := range cases {
		c := c
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			out, err := runApp(t, "", c.args...)
			require.NoError(t, err)
			assert.Equal(t, c.expected, out)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	_, err := runApp(t, "", "intersect", "0,0", "1,1", "5,0", "2,2")
	assert.Error(t, err)

	_, err = runApp(t, "", "circumcenter", "0,0", "1,1", "2,2")
	assert.Error(t, err)

	_, err = runApp(t, "", "orient", "0,0", "1,1")
	assert.EqualError(t, err, "expected 3 points, got 2")

	_, err = runApp(t, "", "orient", "0,0", "1,1", "nope")
	assert.Error(t, err)
}

func TestAreaCommand(t *testing.T) {
	out, err := runApp(t, "0 0\n1 0\n1 1\n0 1\n", "area")
	require.NoError(t, err)
	assert.Equal(t, "1", out)

	out, err = runApp(t, "0 0\n0 1\n1 1\n1 0\n", "area")
	require.NoError(t, err)
	assert.Equal(t, "-1", out)

	_, err = runApp(t, "", "area")
	assert.EqualError(t, err, "no polygon on stdin")

	path := filepath.Join(t.TempDir(), "triangle.svg")
	svg := `<svg xmlns="http://www.w3.org/2000/svg"><polygon points="0,0 4,0 0,3" /></svg>`
	require.NoError(t, os.WriteFile(path, []byte(svg), 0o644))
	out, err = runApp(t, "", "area", "--svg", path)
	require.NoError(t, err)
	assert.Equal(t, "6", out)
}

func TestSitesCommand(t *testing.T) {
	out, err := runApp(t, "", "sites", "1,1", "-n", "5", "--seed", "3")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 5)

	expected := predicates.NewSampler(3).RandomSite(predicates.Point{X: 1, Y: 1}, 5)
	polygons, err := readPolygons(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, polygons, 1)
	assert.Equal(t, expected, polygons[0].Points)

	draw := filepath.Join(t.TempDir(), "sites.png")
	_, err = runApp(t, "", "sites", "-n", "5", "--draw", draw)
	require.NoError(t, err)
	assert.FileExists(t, draw)

	_, err = runApp(t, "", "sites", "--count=-1")
	assert.Error(t, err)
}
