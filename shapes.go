package svgsort

import (
	"github.com/shopspring/decimal"
)

// Line returns a line segment from (x1,y1) to (x2,y2).
func Line(x1, y1, x2, y2 decimal.Decimal) *Path {
	p := &Path{}
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	return p
}

// Rectangle returns a rectangle at (x,y) of width w and height h.
func Rectangle(x, y, w, h decimal.Decimal) *Path {
	if w.IsZero() || h.IsZero() {
		return &Path{}
	}

	p := &Path{}
	p.MoveTo(x, y)
	p.LineTo(x.Add(w), y)
	p.LineTo(x.Add(w), y.Add(h))
	p.LineTo(x, y.Add(h))
	p.Close()
	return p
}

// Circle returns a circle at (cx,cy) of radius r.
func Circle(cx, cy, r decimal.Decimal) *Path {
	return Ellipse(cx, cy, r, r)
}

// Ellipse returns an ellipse at (cx,cy) with radii rx and ry, drawn as two
// half arcs.
func Ellipse(cx, cy, rx, ry decimal.Decimal) *Path {
	if !rx.IsPositive() || !ry.IsPositive() {
		return &Path{}
	}

	p := &Path{}
	p.MoveTo(cx.Add(rx), cy)
	p.ArcTo(rx, ry, zero, false, false, cx.Sub(rx), cy)
	p.ArcTo(rx, ry, zero, false, false, cx.Add(rx), cy)
	p.Close()
	return p
}

// Polyline returns the open polyline through pts.
func Polyline(pts []Coord) *Path {
	p := &Path{}
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	if 1 < len(pts) {
		rest := make([]Coord, len(pts)-1)
		copy(rest, pts[1:])
		p.cmds = append(p.cmds, Command{Letter: 'L', Coords: rest})
	}
	return p
}

// Polygon returns the closed polygon through pts.
func Polygon(pts []Coord) *Path {
	p := Polyline(pts)
	if !p.Empty() {
		p.Close()
	}
	return p
}
