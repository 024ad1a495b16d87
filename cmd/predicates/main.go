package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Command line front end to the predicates. Points are given as "x,y". The
// area command reads a polygon from an SVG file, or from stdin as newline
// separated "x y" points.

var log = logrus.New()

func main() {
	app := newApp(os.Stdout)
	if err := app.run(os.Args[1:]); err != nil {
		log.WithError(err).Fatal("predicates failed")
	}
}
