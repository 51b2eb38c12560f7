// Package svg reads and writes SVG documents at the level needed to
// reorder their geometry: shape and path elements with transforms, defs
// and use references, unit and viewBox resolution. Styling, text and
// gradients are passed over.
package svg

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/svgsort/svgsort"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// Document is a parsed SVG document reduced to its path geometry. Width,
// Height and ViewBox hold the raw attribute values as authored so that
// writing the document back preserves them.
type Document struct {
	Width, Height string
	ViewBox       string
	Paths         []*svgsort.Path
}

// Reorder permutes the document's paths into a low-travel visiting order.
func (doc *Document) Reorder(strategy svgsort.Strategy, origin svgsort.Coord) error {
	paths, err := svgsort.Reorder(doc.Paths, strategy, origin)
	if err != nil {
		return err
	}
	doc.Paths = paths
	return nil
}

// SplitSubpaths replaces every path of the document by its subpaths, so
// that disjoint subpaths are reordered independently.
func (doc *Document) SplitSubpaths() error {
	var paths []*svgsort.Path
	for _, p := range doc.Paths {
		subpaths, err := p.Subpaths()
		if err != nil {
			return err
		}
		paths = append(paths, subpaths...)
	}
	doc.Paths = paths
	return nil
}

var (
	n4   = decimal.New(4, 0)
	n72  = decimal.New(72, 0)
	n96  = decimal.New(96, 0)
	n100 = decimal.New(100, 0)
	n960 = decimal.New(960, 0)
	inch = decimal.NewFromFloat(25.4) // millimeters
)

type svgParser struct {
	z   *parse.Input
	err error

	doc    *Document
	ctms   []svgsort.Matrix
	tags   []string
	indefs int
	defs   map[string][]*svgsort.Path
	width  decimal.Decimal
	height decimal.Decimal
	diag   decimal.Decimal
}

func (svg *svgParser) ctm() svgsort.Matrix {
	if len(svg.ctms) == 0 {
		return svgsort.Identity
	}
	return svg.ctms[len(svg.ctms)-1]
}

// parseDimension resolves a length with an optional unit to pixels, with
// percentages relative to parent.
func (svg *svgParser) parseDimension(v string, parent decimal.Decimal) decimal.Decimal {
	if len(v) == 0 {
		return decimal.Zero
	}

	nn, _ := parse.Dimension([]byte(v))
	num, err := decimal.NewFromString(v[:nn])
	if err != nil {
		if svg.err == nil {
			svg.err = parse.NewErrorLexer(svg.z, "bad dimension: %v: %s", err, v)
		}
		return decimal.Zero
	}

	switch strings.ToLower(v[nn:]) {
	case "cm":
		return num.Mul(n960).Div(inch)
	case "mm":
		return num.Mul(n96).Div(inch)
	case "q":
		return num.Mul(n96).Div(inch).Div(n4)
	case "in":
		return num.Mul(n96)
	case "pc":
		return num.Mul(n96).Div(decimal.New(6, 0))
	case "pt":
		return num.Mul(n96).Div(n72)
	case "", "px":
		return num
	case "%":
		return num.Mul(parent).Div(n100)
	}
	if svg.err == nil {
		svg.err = parse.NewErrorLexer(svg.z, "unknown dimension: %s", v[nn:])
	}
	return decimal.Zero
}

func (svg *svgParser) parsePoints(v string) []svgsort.Coord {
	fields := strings.FieldsFunc(v, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\n' || r == '\r' || r == '\t'
	})
	var pts []svgsort.Coord
	for i := 0; i+1 < len(fields); i += 2 {
		x, errX := decimal.NewFromString(fields[i])
		y, errY := decimal.NewFromString(fields[i+1])
		if errX != nil || errY != nil {
			if svg.err == nil {
				svg.err = parse.NewErrorLexer(svg.z, "bad points list: %s", v)
			}
			return nil
		}
		pts = append(pts, svgsort.Coord{X: x, Y: y})
	}
	return pts
}

// element builds the path for a shape or path element and routes it to the
// defs registry, the document output, or both. The local transform applies
// in both cases, the cumulative transformation m only on direct output; a
// use site supplies its own cumulative transformation instead.
func (svg *svgParser) element(tag string, attrs map[string]string, local, m svgsort.Matrix) {
	var p *svgsort.Path
	switch tag {
	case "path":
		var err error
		p, err = svgsort.ParsePath([]byte(attrs["d"]))
		if err != nil {
			if svg.err == nil {
				svg.err = parse.NewErrorLexer(svg.z, "bad path: %v", err)
			}
			return
		}
	case "circle":
		cx := svg.parseDimension(attrs["cx"], svg.width)
		cy := svg.parseDimension(attrs["cy"], svg.height)
		r := svg.parseDimension(attrs["r"], svg.diag)
		p = svgsort.Circle(cx, cy, r)
	case "ellipse":
		cx := svg.parseDimension(attrs["cx"], svg.width)
		cy := svg.parseDimension(attrs["cy"], svg.height)
		rx := svg.parseDimension(attrs["rx"], svg.width)
		ry := svg.parseDimension(attrs["ry"], svg.height)
		p = svgsort.Ellipse(cx, cy, rx, ry)
	case "rect":
		x := svg.parseDimension(attrs["x"], svg.width)
		y := svg.parseDimension(attrs["y"], svg.height)
		w := svg.parseDimension(attrs["width"], svg.width)
		h := svg.parseDimension(attrs["height"], svg.height)
		p = svgsort.Rectangle(x, y, w, h)
	case "line":
		x1 := svg.parseDimension(attrs["x1"], svg.width)
		y1 := svg.parseDimension(attrs["y1"], svg.height)
		x2 := svg.parseDimension(attrs["x2"], svg.width)
		y2 := svg.parseDimension(attrs["y2"], svg.height)
		p = svgsort.Line(x1, y1, x2, y2)
	case "polygon":
		p = svgsort.Polygon(svg.parsePoints(attrs["points"]))
	case "polyline":
		p = svgsort.Polyline(svg.parsePoints(attrs["points"]))
	default:
		return
	}

	if id := attrs["id"]; id != "" {
		svg.defs[id] = []*svgsort.Path{p.Transform(local)}
	}
	if svg.indefs == 0 {
		svg.doc.Paths = append(svg.doc.Paths, p.Transform(m))
	}
}

func (svg *svgParser) use(attrs map[string]string) {
	href := attrs["href"]
	if href == "" {
		href = attrs["xlink:href"]
	}
	if !strings.HasPrefix(href, "#") {
		return
	}
	paths, ok := svg.defs[href[1:]]
	if !ok {
		// forward or external references are not resolved
		return
	}

	x := svg.parseDimension(attrs["x"], svg.width)
	y := svg.parseDimension(attrs["y"], svg.height)
	local := svgsort.ParseTransform(attrs["transform"], svgsort.Identity)
	m := svg.ctm().Mul(local).Translate(x, y)
	if svg.indefs == 0 {
		for _, p := range paths {
			svg.doc.Paths = append(svg.doc.Paths, p.Transform(m))
		}
	}
}

func (svg *svgParser) root(attrs map[string]string) {
	svg.doc = &Document{
		Width:   attrs["width"],
		Height:  attrs["height"],
		ViewBox: attrs["viewBox"],
	}

	var viewbox [4]decimal.Decimal
	hasViewbox := false
	if v, ok := attrs["viewBox"]; ok {
		vals := svg.parsePoints(v)
		if len(vals) != 2 {
			if svg.err == nil {
				svg.err = parse.NewErrorLexer(svg.z, "bad viewBox: %s", v)
			}
		} else {
			viewbox = [4]decimal.Decimal{vals[0].X, vals[0].Y, vals[1].X, vals[1].Y}
			hasViewbox = true
		}
	}

	if v, ok := attrs["width"]; ok {
		svg.width = svg.parseDimension(v, decimal.Zero)
	} else if hasViewbox {
		svg.width = viewbox[2]
	}
	if v, ok := attrs["height"]; ok {
		svg.height = svg.parseDimension(v, decimal.Zero)
	} else if hasViewbox {
		svg.height = viewbox[3]
	}
	ww := svg.width.InexactFloat64()
	hh := svg.height.InexactFloat64()
	svg.diag = decimal.NewFromFloat(math.Sqrt((ww*ww + hh*hh) / 2.0))

	m := svgsort.Identity
	if hasViewbox && viewbox[2].IsPositive() && viewbox[3].IsPositive() &&
		svg.width.IsPositive() && svg.height.IsPositive() {
		m = m.Scale(svg.width.Div(viewbox[2]), svg.height.Div(viewbox[3])).
			Translate(viewbox[0].Neg(), viewbox[1].Neg())
	}
	svg.ctms = append(svg.ctms, m)
}

// Parse reads an SVG document and collects its geometry as one path per
// shape, each mapped through the cumulative transformation of its
// enclosing groups.
func Parse(r io.Reader) (*Document, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	l := xml.NewLexer(z)
	svg := svgParser{
		z:    z,
		defs: map[string][]*svgsort.Path{},
	}
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, l.Err()
			} else if svg.err != nil {
				return nil, svg.err
			} else if svg.doc == nil {
				return nil, fmt.Errorf("expected svg element")
			}
			return svg.doc, nil
		case xml.StartTagToken:
			attrs := map[string]string{}
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				val = val[1 : len(val)-1]
				attrs[string(l.Text())] = string(val)
			}

			tag := string(data[1:])
			switch tag {
			case "svg":
				if svg.doc != nil {
					if svg.err == nil {
						svg.err = parse.NewErrorLexer(svg.z, "expected exactly one svg element")
					}
					svg.ctms = append(svg.ctms, svg.ctm())
				} else {
					svg.root(attrs)
				}
			case "defs":
				svg.indefs++
				svg.ctms = append(svg.ctms, svg.ctm())
			case "use":
				svg.use(attrs)
				svg.ctms = append(svg.ctms, svg.ctm())
			default:
				local := svgsort.ParseTransform(attrs["transform"], svgsort.Identity)
				m := svg.ctm().Mul(local)
				svg.ctms = append(svg.ctms, m)
				svg.element(tag, attrs, local, m)
			}
			svg.tags = append(svg.tags, tag)

			if tt == xml.StartTagCloseVoidToken {
				svg.pop()
			}
		case xml.EndTagToken:
			svg.pop()
		}
	}
}

func (svg *svgParser) pop() {
	if len(svg.tags) == 0 {
		return
	}
	tag := svg.tags[len(svg.tags)-1]
	svg.tags = svg.tags[:len(svg.tags)-1]
	if 0 < len(svg.ctms) {
		svg.ctms = svg.ctms[:len(svg.ctms)-1]
	}
	if tag == "defs" {
		svg.indefs--
	}
}
