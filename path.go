package svgsort

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformedPathStart is returned when a path's first command is not a
// moveto.
var ErrMalformedPathStart = errors.New("svgsort: path data must start with a moveto command")

// Cubic is one argument group of a cubic Bézier command.
type Cubic struct {
	C1, C2, End Coord
}

// Quad is one argument group of a quadratic Bézier or smooth cubic
// command, a single control point plus the endpoint.
type Quad struct {
	C, End Coord
}

// Arc is one argument group of an elliptical arc command. Radii are kept
// non-negative.
type Arc struct {
	Rx, Ry, Rot  decimal.Decimal
	Large, Sweep bool
	End          Coord
}

// Command is a single path command. Letter carries both the command
// variant and whether its arguments are relative (lowercase) or absolute
// (uppercase); only the argument slice matching the letter is set. Every
// command except Z/z carries at least one argument group.
type Command struct {
	Letter byte
	Coords []Coord           // M m L l T t
	Nums   []decimal.Decimal // H h V v
	Cubics []Cubic           // C c
	Quads  []Quad            // S s Q q
	Arcs   []Arc             // A a
}

// Relative returns true for lowercase command letters.
func (cmd Command) Relative() bool {
	return 'a' <= cmd.Letter
}

func (cmd Command) write(sb *strings.Builder) {
	sb.WriteByte(cmd.Letter)
	sep := func(i int) {
		if 0 < i {
			sb.WriteByte(' ')
		}
	}
	writeCoord := func(p Coord) {
		sb.WriteString(p.X.String())
		sb.WriteByte(' ')
		sb.WriteString(p.Y.String())
	}
	writeFlag := func(flag bool) {
		if flag {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	switch cmd.Letter {
	case 'M', 'm', 'L', 'l', 'T', 't':
		for i, p := range cmd.Coords {
			sep(i)
			writeCoord(p)
		}
	case 'H', 'h', 'V', 'v':
		for i, v := range cmd.Nums {
			sep(i)
			sb.WriteString(v.String())
		}
	case 'C', 'c':
		for i, g := range cmd.Cubics {
			sep(i)
			writeCoord(g.C1)
			sb.WriteByte(' ')
			writeCoord(g.C2)
			sb.WriteByte(' ')
			writeCoord(g.End)
		}
	case 'S', 's', 'Q', 'q':
		for i, g := range cmd.Quads {
			sep(i)
			writeCoord(g.C)
			sb.WriteByte(' ')
			writeCoord(g.End)
		}
	case 'A', 'a':
		for i, a := range cmd.Arcs {
			sep(i)
			sb.WriteString(a.Rx.String())
			sb.WriteByte(' ')
			sb.WriteString(a.Ry.String())
			sb.WriteByte(' ')
			sb.WriteString(a.Rot.String())
			sb.WriteByte(' ')
			writeFlag(a.Large)
			sb.WriteByte(' ')
			writeFlag(a.Sweep)
			sb.WriteByte(' ')
			writeCoord(a.End)
		}
	}
}

func (cmd Command) String() string {
	sb := strings.Builder{}
	cmd.write(&sb)
	return sb.String()
}

////////////////////////////////////////////////////////////////

// Path is an ordered sequence of path commands describing one or more
// subpaths, together with lazily computed derived values. A path must not
// be modified once built; all operations return new paths, which makes the
// memoized values safe without any invalidation.
type Path struct {
	cmds []Command

	abs          *Path
	start, end   *Coord
	centroid     *Coord
	centroidDone bool
}

// Empty returns true if the path has no commands.
func (p *Path) Empty() bool {
	return len(p.cmds) == 0
}

// Commands returns the path's command sequence. The returned slice must
// not be modified.
func (p *Path) Commands() []Command {
	return p.cmds
}

// Equals returns true if p and q serialize identically.
func (p *Path) Equals(q *Path) bool {
	return p.String() == q.String()
}

func (p *Path) String() string {
	sb := strings.Builder{}
	for _, cmd := range p.cmds {
		cmd.write(&sb)
	}
	return sb.String()
}

////////////////////////////////////////////////////////////////

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y decimal.Decimal) {
	p.cmds = append(p.cmds, Command{Letter: 'M', Coords: []Coord{{x, y}}})
}

// LineTo adds a line towards (x,y).
func (p *Path) LineTo(x, y decimal.Decimal) {
	p.cmds = append(p.cmds, Command{Letter: 'L', Coords: []Coord{{x, y}}})
}

// QuadTo adds a quadratic Bézier with control point (x1,y1) towards (x,y).
func (p *Path) QuadTo(x1, y1, x, y decimal.Decimal) {
	p.cmds = append(p.cmds, Command{Letter: 'Q', Quads: []Quad{{Coord{x1, y1}, Coord{x, y}}}})
}

// CubeTo adds a cubic Bézier with control points (x1,y1) and (x2,y2)
// towards (x,y).
func (p *Path) CubeTo(x1, y1, x2, y2, x, y decimal.Decimal) {
	p.cmds = append(p.cmds, Command{Letter: 'C', Cubics: []Cubic{{Coord{x1, y1}, Coord{x2, y2}, Coord{x, y}}}})
}

// ArcTo adds an elliptical arc with radii rx and ry, rotated by rot
// degrees, towards (x,y).
func (p *Path) ArcTo(rx, ry, rot decimal.Decimal, large, sweep bool, x, y decimal.Decimal) {
	p.cmds = append(p.cmds, Command{Letter: 'A', Arcs: []Arc{{rx.Abs(), ry.Abs(), rot, large, sweep, Coord{x, y}}}})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.cmds = append(p.cmds, Command{Letter: 'Z'})
}

////////////////////////////////////////////////////////////////

// advance returns the running point and subpath start point after cmd,
// given the running point (x,y) and subpath start (sx,sy) before it. Each
// argument group of a relative command accumulates onto the point left by
// the previous group, not the point at command start.
func advance(cmd Command, x, y, sx, sy decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	rel := cmd.Relative()
	switch cmd.Letter {
	case 'M', 'm':
		for i, c := range cmd.Coords {
			if rel {
				x, y = x.Add(c.X), y.Add(c.Y)
			} else {
				x, y = c.X, c.Y
			}
			if i == 0 {
				sx, sy = x, y
			}
		}
	case 'L', 'l', 'T', 't':
		for _, c := range cmd.Coords {
			if rel {
				x, y = x.Add(c.X), y.Add(c.Y)
			} else {
				x, y = c.X, c.Y
			}
		}
	case 'H', 'h':
		for _, v := range cmd.Nums {
			if rel {
				x = x.Add(v)
			} else {
				x = v
			}
		}
	case 'V', 'v':
		for _, v := range cmd.Nums {
			if rel {
				y = y.Add(v)
			} else {
				y = v
			}
		}
	case 'C', 'c':
		for _, g := range cmd.Cubics {
			if rel {
				x, y = x.Add(g.End.X), y.Add(g.End.Y)
			} else {
				x, y = g.End.X, g.End.Y
			}
		}
	case 'S', 's', 'Q', 'q':
		for _, g := range cmd.Quads {
			if rel {
				x, y = x.Add(g.End.X), y.Add(g.End.Y)
			} else {
				x, y = g.End.X, g.End.Y
			}
		}
	case 'A', 'a':
		for _, a := range cmd.Arcs {
			if rel {
				x, y = x.Add(a.End.X), y.Add(a.End.Y)
			} else {
				x, y = a.End.X, a.End.Y
			}
		}
	case 'Z', 'z':
		x, y = sx, sy
	}
	return x, y, sx, sy
}

// expandAxisCommands rewrites horizontal and vertical line commands into
// general line commands. A single-axis offset cannot stay single-axis
// under rotation or skew, so this must run before such transformations.
func (p *Path) expandAxisCommands() *Path {
	q := &Path{cmds: make([]Command, 0, len(p.cmds))}
	var x, y, sx, sy decimal.Decimal
	for _, cmd := range p.cmds {
		switch cmd.Letter {
		case 'H', 'V':
			coords := make([]Coord, len(cmd.Nums))
			for i, v := range cmd.Nums {
				if cmd.Letter == 'H' {
					coords[i] = Coord{v, y}
				} else {
					coords[i] = Coord{x, v}
				}
			}
			q.cmds = append(q.cmds, Command{Letter: 'L', Coords: coords})
		case 'h', 'v':
			coords := make([]Coord, len(cmd.Nums))
			for i, v := range cmd.Nums {
				if cmd.Letter == 'h' {
					coords[i] = Coord{v, zero}
				} else {
					coords[i] = Coord{zero, v}
				}
			}
			q.cmds = append(q.cmds, Command{Letter: 'l', Coords: coords})
		default:
			q.cmds = append(q.cmds, cmd)
		}
		x, y, sx, sy = advance(cmd, x, y, sx, sy)
	}
	return q
}

// Transform returns the path mapped through m. Coordinates of absolute
// commands are transformed with translation, arguments of relative
// commands as vectors without it, except that the first coordinate pair of
// any moveto anchors a new subpath in the current coordinate frame and is
// always transformed as a point. Elliptical arc radii and rotation go
// through TransformEllipse, and a reflection flips the sweep flag while
// the large-arc flag stays as it is.
func (p *Path) Transform(m Matrix) *Path {
	src := p
	if m.HasRotationOrSkew() {
		src = p.expandAxisCommands()
	}
	flip := !m.IsOrientationPreserving()

	q := &Path{cmds: make([]Command, 0, len(src.cmds))}
	for _, cmd := range src.cmds {
		rel := cmd.Relative()
		apply := func(c Coord) Coord {
			if rel {
				return m.DotVector(c)
			}
			return m.Dot(c)
		}
		out := Command{Letter: cmd.Letter}
		switch cmd.Letter {
		case 'M', 'm':
			out.Coords = make([]Coord, len(cmd.Coords))
			for i, c := range cmd.Coords {
				if i == 0 {
					out.Coords[i] = m.Dot(c)
				} else {
					out.Coords[i] = apply(c)
				}
			}
		case 'L', 'l', 'T', 't':
			out.Coords = make([]Coord, len(cmd.Coords))
			for i, c := range cmd.Coords {
				out.Coords[i] = apply(c)
			}
		case 'H', 'h':
			out.Nums = make([]decimal.Decimal, len(cmd.Nums))
			for i, v := range cmd.Nums {
				nv := m.A.Mul(v)
				if !rel {
					nv = nv.Add(m.E)
				}
				out.Nums[i] = nv
			}
		case 'V', 'v':
			out.Nums = make([]decimal.Decimal, len(cmd.Nums))
			for i, v := range cmd.Nums {
				nv := m.D.Mul(v)
				if !rel {
					nv = nv.Add(m.F)
				}
				out.Nums[i] = nv
			}
		case 'C', 'c':
			out.Cubics = make([]Cubic, len(cmd.Cubics))
			for i, g := range cmd.Cubics {
				out.Cubics[i] = Cubic{apply(g.C1), apply(g.C2), apply(g.End)}
			}
		case 'S', 's', 'Q', 'q':
			out.Quads = make([]Quad, len(cmd.Quads))
			for i, g := range cmd.Quads {
				out.Quads[i] = Quad{apply(g.C), apply(g.End)}
			}
		case 'A', 'a':
			out.Arcs = make([]Arc, len(cmd.Arcs))
			for i, a := range cmd.Arcs {
				rx, ry, rot := m.TransformEllipse(a.Rx, a.Ry, a.Rot)
				out.Arcs[i] = Arc{rx, ry, rot, a.Large, a.Sweep != flip, apply(a.End)}
			}
		}
		q.cmds = append(q.cmds, out)
	}
	return q
}

// Absolute returns the path with every command rewritten to its absolute
// form. The result is memoized.
func (p *Path) Absolute() *Path {
	if p.abs != nil {
		return p.abs
	}

	q := &Path{cmds: make([]Command, 0, len(p.cmds))}
	var x, y, sx, sy decimal.Decimal
	for _, cmd := range p.cmds {
		rel := cmd.Relative()
		out := Command{Letter: cmd.Letter &^ 0x20}
		switch out.Letter {
		case 'M', 'L', 'T':
			out.Coords = make([]Coord, len(cmd.Coords))
			for i, c := range cmd.Coords {
				if rel {
					c = Coord{x.Add(c.X), y.Add(c.Y)}
				}
				out.Coords[i] = c
				x, y = c.X, c.Y
				if out.Letter == 'M' && i == 0 {
					sx, sy = x, y
				}
			}
		case 'H':
			out.Nums = make([]decimal.Decimal, len(cmd.Nums))
			for i, v := range cmd.Nums {
				if rel {
					v = x.Add(v)
				}
				out.Nums[i] = v
				x = v
			}
		case 'V':
			out.Nums = make([]decimal.Decimal, len(cmd.Nums))
			for i, v := range cmd.Nums {
				if rel {
					v = y.Add(v)
				}
				out.Nums[i] = v
				y = v
			}
		case 'C':
			out.Cubics = make([]Cubic, len(cmd.Cubics))
			for i, g := range cmd.Cubics {
				if rel {
					g = Cubic{
						Coord{x.Add(g.C1.X), y.Add(g.C1.Y)},
						Coord{x.Add(g.C2.X), y.Add(g.C2.Y)},
						Coord{x.Add(g.End.X), y.Add(g.End.Y)},
					}
				}
				out.Cubics[i] = g
				x, y = g.End.X, g.End.Y
			}
		case 'S', 'Q':
			out.Quads = make([]Quad, len(cmd.Quads))
			for i, g := range cmd.Quads {
				if rel {
					g = Quad{
						Coord{x.Add(g.C.X), y.Add(g.C.Y)},
						Coord{x.Add(g.End.X), y.Add(g.End.Y)},
					}
				}
				out.Quads[i] = g
				x, y = g.End.X, g.End.Y
			}
		case 'A':
			out.Arcs = make([]Arc, len(cmd.Arcs))
			for i, a := range cmd.Arcs {
				if rel {
					a.End = Coord{x.Add(a.End.X), y.Add(a.End.Y)}
				}
				out.Arcs[i] = a
				x, y = a.End.X, a.End.Y
			}
		case 'Z':
			x, y = sx, sy
		}
		q.cmds = append(q.cmds, out)
	}
	q.abs = q
	p.abs = q
	return q
}

// Subpaths splits the path into one path per subpath, each starting at a
// moveto. The anchor of every subpath is resolved to an absolute moveto so
// that subpaths stand alone; all other commands are kept as they are. Per
// the path data grammar, coordinate pairs following the first pair of a
// moveto are an implicit lineto belonging to the new subpath.
func (p *Path) Subpaths() ([]*Path, error) {
	if p.Empty() {
		return nil, nil
	} else if c := p.cmds[0].Letter; c != 'M' && c != 'm' {
		return nil, ErrMalformedPathStart
	}

	var subpaths []*Path
	var cur *Path
	var x, y, sx, sy decimal.Decimal
	for _, cmd := range p.cmds {
		if cmd.Letter == 'M' || cmd.Letter == 'm' {
			if cur != nil {
				subpaths = append(subpaths, cur)
			}
			cur = &Path{}

			anchor := cmd.Coords[0]
			if cmd.Relative() {
				// x and y accumulate independently
				anchor = Coord{x.Add(anchor.X), y.Add(anchor.Y)}
			}
			cur.cmds = append(cur.cmds, Command{Letter: 'M', Coords: []Coord{anchor}})
			x, y = anchor.X, anchor.Y
			sx, sy = x, y

			if 1 < len(cmd.Coords) {
				letter := byte('L')
				if cmd.Relative() {
					letter = 'l'
				}
				tail := make([]Coord, len(cmd.Coords)-1)
				copy(tail, cmd.Coords[1:])
				cur.cmds = append(cur.cmds, Command{Letter: letter, Coords: tail})
				for _, c := range cmd.Coords[1:] {
					if cmd.Relative() {
						x, y = x.Add(c.X), y.Add(c.Y)
					} else {
						x, y = c.X, c.Y
					}
				}
			}
			continue
		}
		cur.cmds = append(cur.cmds, cmd)
		x, y, sx, sy = advance(cmd, x, y, sx, sy)
	}
	if cur != nil {
		subpaths = append(subpaths, cur)
	}
	return subpaths, nil
}

////////////////////////////////////////////////////////////////

// Start returns the first coordinate pair of the path's leading moveto, or
// (0,0) for paths that do not start with one. The result is memoized.
func (p *Path) Start() Coord {
	if p.start != nil {
		return *p.start
	}
	c := Coord{zero, zero}
	if !p.Empty() && (p.cmds[0].Letter == 'M' || p.cmds[0].Letter == 'm') {
		c = p.cmds[0].Coords[0]
	}
	p.start = &c
	return c
}

// End returns the coordinate implied by the last command of the absolute
// form of the path. The result is memoized.
func (p *Path) End() Coord {
	if p.end != nil {
		return *p.end
	}
	var x, y, sx, sy decimal.Decimal
	for _, cmd := range p.Absolute().cmds {
		x, y, sx, sy = advance(cmd, x, y, sx, sy)
	}
	c := Coord{x, y}
	p.end = &c
	return c
}

// Centroid returns the arithmetic mean of every vertex visited by the
// absolute form of the path: each coordinate pair of moveto, lineto and
// smooth quadratic commands, each horizontal/vertical value paired with
// the unmoved other axis, and the terminal point of each curve or arc
// group. Closepath visits no new vertex. This is a vertex average, not an
// area-weighted geometric centroid. An empty path has no centroid, which
// the second return value reports. The result is memoized.
func (p *Path) Centroid() (Coord, bool) {
	if p.centroidDone {
		if p.centroid == nil {
			return Coord{}, false
		}
		return *p.centroid, true
	}
	p.centroidDone = true

	sumX, sumY := zero, zero
	n := 0
	add := func(c Coord) {
		sumX = sumX.Add(c.X)
		sumY = sumY.Add(c.Y)
		n++
	}
	var x, y, sx, sy decimal.Decimal
	for _, cmd := range p.Absolute().cmds {
		switch cmd.Letter {
		case 'M', 'L', 'T':
			for _, c := range cmd.Coords {
				add(c)
			}
		case 'H':
			for _, v := range cmd.Nums {
				add(Coord{v, y})
			}
		case 'V':
			for _, v := range cmd.Nums {
				add(Coord{x, v})
			}
		case 'C':
			for _, g := range cmd.Cubics {
				add(g.End)
			}
		case 'S', 'Q':
			for _, g := range cmd.Quads {
				add(g.End)
			}
		case 'A':
			for _, a := range cmd.Arcs {
				add(a.End)
			}
		}
		x, y, sx, sy = advance(cmd, x, y, sx, sy)
	}
	if n == 0 {
		return Coord{}, false
	}
	count := decimal.NewFromInt(int64(n))
	c := Coord{sumX.Div(count), sumY.Div(count)}
	p.centroid = &c
	return c, true
}
