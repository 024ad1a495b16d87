package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/predicates"
	"github.com/osuushi/predicates/advanced"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

type app struct {
	kp  *kingpin.Application
	out io.Writer
	in  io.Reader

	logLevel *string
	color    *bool

	orient       *kingpin.CmdClause
	orientPoints *[]string

	contains       *kingpin.CmdClause
	containsPoints *[]string

	incircle       *kingpin.CmdClause
	incirclePoints *[]string

	intersect       *kingpin.CmdClause
	intersectPoints *[]string

	circumcenter       *kingpin.CmdClause
	circumcenterPoints *[]string

	centroid       *kingpin.CmdClause
	centroidPoints *[]string

	area    *kingpin.CmdClause
	areaSVG *string

	sites      *kingpin.CmdClause
	sitesAt    *string
	sitesCount *int
	sitesSeed  *uint64
	sitesDraw  *string
	sitesCat   *bool
	sitesScale *float64
}

func newApp(out io.Writer) *app {
	a := &app{out: out, in: os.Stdin}
	a.kp = kingpin.New("predicates", "Evaluate 2D geometric predicates.")
	a.logLevel = a.kp.Flag("log-level", "Logging level.").Default("info").Enum("debug", "info", "warn", "error")
	a.color = a.kp.Flag("color", "Color output.").Default("true").Bool()

	a.orient = a.kp.Command("orient", "Which side of the line L0 -> L1 is P on?")
	a.orientPoints = pointArgs(a.orient, "P", "L0", "L1")

	a.contains = a.kp.Command("contains", "Is P inside the counterclockwise triangle ABC?")
	a.containsPoints = pointArgs(a.contains, "P", "A", "B", "C")

	a.incircle = a.kp.Command("incircle", "Is P inside the circumcircle of the counterclockwise triangle ABC?")
	a.incirclePoints = pointArgs(a.incircle, "P", "A", "B", "C")

	a.intersect = a.kp.Command("intersect", "Where does the line P0 + m*V0 cross P1 + m*V1?")
	a.intersectPoints = pointArgs(a.intersect, "P0", "V0", "P1", "V1")

	a.circumcenter = a.kp.Command("circumcenter", "Center of the circle through A, B and C.")
	a.circumcenterPoints = pointArgs(a.circumcenter, "A", "B", "C")

	a.centroid = a.kp.Command("centroid", "Centroid of the triangle ABC.")
	a.centroidPoints = pointArgs(a.centroid, "A", "B", "C")

	a.area = a.kp.Command("area", "Signed area of a polygon read from stdin, one \"x y\" point per line.")
	a.areaSVG = a.area.Flag("svg", "Read the first <polygon> of this SVG file instead of stdin.").ExistingFile()

	a.sites = a.kp.Command("sites", "Scatter random sites around a point.")
	a.sitesAt = a.sites.Arg("center", "Center point.").Default("0,0").String()
	a.sitesCount = a.sites.Flag("count", "Number of sites.").Short('n').Default("10").Int()
	a.sitesSeed = a.sites.Flag("seed", "Seed counter start.").Envar("PREDICATES_SEED").Default(strconv.Itoa(advanced.DefaultSeed)).Uint64()
	a.sitesDraw = a.sites.Flag("draw", "Write a PNG of the sites to this file.").String()
	a.sitesCat = a.sites.Flag("cat", "Print a picture of the sites to the terminal (iTerm only).").Bool()
	a.sitesScale = a.sites.Flag("scale", "Pixels per unit when drawing.").Default("100").Float64()
	return a
}

func pointArgs(cmd *kingpin.CmdClause, names ...string) *[]string {
	help := strings.Join(names, " ")
	return cmd.Arg("points", help+" as x,y").Required().Strings()
}

func (a *app) run(args []string) error {
	command, err := a.kp.Parse(args)
	if err != nil {
		return err
	}
	level, err := logrus.ParseLevel(*a.logLevel)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	log.SetLevel(level)
	log.WithField("command", command).Debug("running")

	switch command {
	case a.orient.FullCommand():
		return a.runOrient()
	case a.contains.FullCommand():
		return a.runContains()
	case a.incircle.FullCommand():
		return a.runIncircle()
	case a.intersect.FullCommand():
		return a.runIntersect()
	case a.circumcenter.FullCommand():
		return a.runCircumcenter()
	case a.centroid.FullCommand():
		return a.runCentroid()
	case a.area.FullCommand():
		return a.runArea()
	case a.sites.FullCommand():
		return a.runSites()
	}
	return errors.Errorf("unknown command %q", command)
}

func (a *app) verdict(ok bool, yes, no string) string {
	if !*a.color {
		if ok {
			return yes
		}
		return no
	}
	if ok {
		return aurora.Green(yes).String()
	}
	return aurora.Red(no).String()
}

func (a *app) runOrient() error {
	points, err := parsePoints(*a.orientPoints, 3)
	if err != nil {
		return err
	}
	left := predicates.ToTheLeft(points[0], points[1], points[2])
	fmt.Fprintln(a.out, a.verdict(left, "left", "right"))
	return nil
}

func (a *app) runContains() error {
	points, err := parsePoints(*a.containsPoints, 4)
	if err != nil {
		return err
	}
	tri := predicates.Triangle{A: points[1], B: points[2], C: points[3]}
	warnIfClockwise(tri)
	inside, err := predicates.PointInTriangle(points[0], tri)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.verdict(inside, "inside", "outside"))
	return nil
}

func (a *app) runIncircle() error {
	points, err := parsePoints(*a.incirclePoints, 4)
	if err != nil {
		return err
	}
	tri := predicates.Triangle{A: points[1], B: points[2], C: points[3]}
	warnIfClockwise(tri)
	inside, err := predicates.InsideCircumcircle(points[0], tri)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.verdict(inside, "inside", "outside"))
	return nil
}

func (a *app) runIntersect() error {
	points, err := parsePoints(*a.intersectPoints, 4)
	if err != nil {
		return err
	}
	l0 := predicates.Line{Point: points[0], Direction: points[1]}
	l1 := predicates.Line{Point: points[2], Direction: points[3]}
	m0, m1, err := predicates.IntersectionCoefficients(l0, l1)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"m0": m0, "m1": m1}).Debug("intersection coefficients")
	fmt.Fprintln(a.out, l0.At(m0))
	return nil
}

func (a *app) runCircumcenter() error {
	points, err := parsePoints(*a.circumcenterPoints, 3)
	if err != nil {
		return err
	}
	tri := predicates.Triangle{A: points[0], B: points[1], C: points[2]}
	center, err := predicates.Circumcenter(tri)
	if err != nil {
		return err
	}
	log.WithField("radius", center.Distance(tri.A)).Debug("circumcircle")
	fmt.Fprintln(a.out, center)
	return nil
}

func (a *app) runCentroid() error {
	points, err := parsePoints(*a.centroidPoints, 3)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, predicates.Centroid(predicates.Triangle{A: points[0], B: points[1], C: points[2]}))
	return nil
}

func (a *app) runArea() error {
	var polygon predicates.Polygon
	if *a.areaSVG != "" {
		f, err := os.Open(*a.areaSVG)
		if err != nil {
			return errors.Wrap(err, "opening svg")
		}
		defer f.Close()
		polygon, err = readSVGPolygon(f)
		if err != nil {
			return errors.Wrapf(err, "reading %s", *a.areaSVG)
		}
	} else {
		polygons, err := readPolygons(a.in)
		if err != nil {
			return err
		}
		if len(polygons) == 0 {
			return errors.New("no polygon on stdin")
		}
		if len(polygons) > 1 {
			log.WithField("count", len(polygons)).Warn("more than one polygon read, using the first")
		}
		polygon = polygons[0]
	}
	log.WithField("points", len(polygon.Points)).Debug("read polygon")
	fmt.Fprintln(a.out, strconv.FormatFloat(polygon.Area(), 'g', -1, 64))
	return nil
}

func (a *app) runSites() error {
	center, err := parsePoint(*a.sitesAt)
	if err != nil {
		return err
	}
	if *a.sitesCount < 0 {
		return errors.Errorf("count must not be negative, got %d", *a.sitesCount)
	}
	sampler := predicates.NewSampler(*a.sitesSeed)
	sites := sampler.RandomSite(center, *a.sitesCount)
	log.WithFields(logrus.Fields{
		"count":    len(sites),
		"seed":     *a.sitesSeed,
		"nextSeed": sampler.Seed(),
	}).Debug("generated sites")

	for _, site := range sites {
		fmt.Fprintf(a.out, "%s %s\n",
			strconv.FormatFloat(site.X, 'g', -1, 64),
			strconv.FormatFloat(site.Y, 'g', -1, 64))
	}

	scene := &advanced.Scene{Sites: append(sites, center)}
	if *a.sitesDraw != "" {
		if err := scene.SavePNG(*a.sitesDraw, *a.sitesScale); err != nil {
			return err
		}
		log.WithField("file", *a.sitesDraw).Info("wrote scene")
	}
	if *a.sitesCat {
		return scene.Cat(*a.sitesScale)
	}
	return nil
}

func warnIfClockwise(tri predicates.Triangle) {
	if advanced.IsCW(tri) {
		log.WithField("triangle", tri).Warn("triangle is clockwise, result will be wrong")
	}
}

func parsePoints(args []string, n int) ([]predicates.Point, error) {
	if len(args) != n {
		return nil, errors.Errorf("expected %d points, got %d", n, len(args))
	}
	points := make([]predicates.Point, 0, n)
	for _, arg := range args {
		p, err := parsePoint(arg)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// Parse "x,y"
func parsePoint(s string) (predicates.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return predicates.Point{}, errors.Errorf("invalid point %q, want x,y", s)
	}
	return parseCoordinates(parts[0], parts[1])
}

func parseCoordinates(xs, ys string) (predicates.Point, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return predicates.Point{}, errors.Wrapf(err, "invalid x value %q", xs)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return predicates.Point{}, errors.Wrapf(err, "invalid y value %q", ys)
	}
	return predicates.Point{X: x, Y: y}, nil
}

// Input should be newline separated points in the form "x y", with each
// polygon separated by an extra newline.
func readPolygons(in io.Reader) ([]predicates.Polygon, error) {
	polygons := []predicates.Polygon{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []predicates.Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, predicates.Polygon{Points: points})
				points = []predicates.Point{}
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: want \"x y\", got %q", lineNumber, line)
		}
		point, err := parseCoordinates(fields[0], fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, predicates.Polygon{Points: points})
	}
	return polygons, nil
}

// This is not a full (or even correct) svg parser. It finds the first
// polygon element and reads its points attribute. Winding is preserved, so
// the sign of the area matches the file.
func readSVGPolygon(r io.Reader) (predicates.Polygon, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return predicates.Polygon{}, errors.Wrap(err, "parsing svg")
	}
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return predicates.Polygon{}, errors.New("no polygon element")
	}
	return parseSVGPoints(polygons[0].Attributes["points"])
}

func parseSVGPoints(pointString string) (predicates.Polygon, error) {
	pointStrings := strings.Fields(pointString)
	points := make([]predicates.Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		p, err := parsePoint(pointString)
		if err != nil {
			return predicates.Polygon{}, err
		}
		points = append(points, p)
	}
	return predicates.Polygon{Points: points}, nil
}
