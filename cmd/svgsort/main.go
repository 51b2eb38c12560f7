package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/svgsort/svgsort"
	"github.com/svgsort/svgsort/svg"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/minify/v2"
	minifysvg "github.com/tdewolff/minify/v2/svg"
)

type SortOptions struct {
	Output   string   `short:"o" desc:"Output file, - or empty for standard output"`
	Strategy string   `short:"s" default:"start-end" desc:"Reorder strategy: start-end or centroid"`
	Origin   string   `default:"0,0" desc:"Starting reference point as x,y"`
	Split    bool     `desc:"Reorder subpaths independently"`
	Minify   bool     `short:"m" desc:"Minify the output SVG"`
	Inputs   []string `index:"*" desc:"Input SVG file, - or empty for standard input"`
}

var sortOptions SortOptions

func (opts *SortOptions) Run() error {
	return sortPaths(opts.Inputs)
}

func main() {
	root := argp.New("Reorder the paths of an SVG document to minimize travel distance")
	root.AddCmd(&sortOptions, "sort", "Reorder paths of an SVG file, or of standard input")

	root.Parse()
	root.PrintHelp()
}

func parseOrigin(v string) (svgsort.Coord, error) {
	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		return svgsort.Coord{}, fmt.Errorf("origin must be x,y: %s", v)
	}
	x, errX := decimal.NewFromString(strings.TrimSpace(parts[0]))
	y, errY := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return svgsort.Coord{}, fmt.Errorf("origin must be x,y: %s", v)
	}
	return svgsort.Coord{X: x, Y: y}, nil
}

func sortPaths(args []string) error {
	if 1 < len(args) {
		return fmt.Errorf("expected at most one input file")
	}

	strategy, err := svgsort.ParseStrategy(sortOptions.Strategy)
	if err != nil {
		return err
	}
	origin, err := parseOrigin(sortOptions.Origin)
	if err != nil {
		return err
	}

	in := io.Reader(os.Stdin)
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	doc, err := svg.Parse(in)
	if err != nil {
		return err
	}
	if sortOptions.Split {
		if err := doc.SplitSubpaths(); err != nil {
			return err
		}
	}
	if err := doc.Reorder(strategy, origin); err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if sortOptions.Output != "" && sortOptions.Output != "-" {
		f, err := os.Create(sortOptions.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return writeDocument(out, doc, sortOptions.Minify)
}

// writeDocument writes doc to out, optionally minified. The minify writer
// reports minification failures only on Close, so its error must be
// propagated rather than deferred away.
func writeDocument(out io.Writer, doc *svg.Document, minified bool) error {
	if !minified {
		return svg.Write(out, doc)
	}

	m := minify.New()
	m.AddFunc("image/svg+xml", minifysvg.Minify)
	w := m.Writer("image/svg+xml", out)
	err := svg.Write(w, doc)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return err
}
