package svgsort

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tdewolff/parse/v2"
)

var (
	// ErrBadNumber is returned when a numeric argument cannot be scanned.
	ErrBadNumber = errors.New("svgsort: bad number")
	// ErrBadFlag is returned when an arc flag is not a single 0 or 1.
	ErrBadFlag = errors.New("svgsort: bad arc flag")
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

// parseDecimal scans the number token at the start of path with
// parse.Number, whose token grammar is [+-]?(digits[.digits]?|.digits)
// ([eE][+-]?digits)?, and constructs the decimal from the exact source
// substring so that no precision is lost to a float conversion.
func parseDecimal(path []byte) (decimal.Decimal, int, error) {
	i := skipCommaWhitespace(path)
	n := parse.Number(path[i:])
	if n == 0 {
		return decimal.Decimal{}, 0, ErrBadNumber
	}
	d, err := decimal.NewFromString(string(path[i : i+n]))
	if err != nil {
		return decimal.Decimal{}, 0, fmt.Errorf("%w: %v", ErrBadNumber, err)
	}
	return d, i + n, nil
}

// parseFlag scans a single arc flag. Flags are lexically one 0 or 1
// character, requested contextually by the parser so that the number
// scanner never swallows them as the start of a coordinate.
func parseFlag(path []byte) (bool, int, error) {
	i := skipCommaWhitespace(path)
	if i < len(path) && (path[i] == '0' || path[i] == '1') {
		return path[i] == '1', i + 1, nil
	}
	return false, 0, ErrBadFlag
}

// hasNumber returns true when another argument group follows.
func hasNumber(path []byte) bool {
	i := skipCommaWhitespace(path)
	return 0 < parse.Number(path[i:])
}

// ParsePath parses SVG path data into a path, keeping the commands'
// absolute/relative tags and argument grouping as written. Each command
// letter may be followed by several repetitions of its argument group. The
// first command must be a moveto.
func ParsePath(path []byte) (*Path, error) {
	p := &Path{}

	i := skipCommaWhitespace(path)
	if i < len(path) && path[i] != 'M' && path[i] != 'm' {
		return nil, ErrMalformedPathStart
	}
	for i < len(path) {
		letter := path[i]
		i++

		coordGroup := func() ([]Coord, error) {
			var coords []Coord
			for {
				x, n, err := parseDecimal(path[i:])
				if err != nil {
					return nil, err
				}
				i += n
				y, n, err := parseDecimal(path[i:])
				if err != nil {
					return nil, err
				}
				i += n
				coords = append(coords, Coord{x, y})
				if !hasNumber(path[i:]) {
					return coords, nil
				}
			}
		}

		var err error
		cmd := Command{Letter: letter}
		switch letter {
		case 'M', 'm', 'L', 'l', 'T', 't':
			cmd.Coords, err = coordGroup()
		case 'Z', 'z':
			// closepath carries no arguments
		case 'H', 'h', 'V', 'v':
			for {
				var v decimal.Decimal
				var n int
				if v, n, err = parseDecimal(path[i:]); err != nil {
					break
				}
				i += n
				cmd.Nums = append(cmd.Nums, v)
				if !hasNumber(path[i:]) {
					break
				}
			}
		case 'C', 'c':
			for err == nil {
				var g [3]Coord
				for j := 0; j < 3 && err == nil; j++ {
					var n int
					if g[j].X, n, err = parseDecimal(path[i:]); err == nil {
						i += n
						if g[j].Y, n, err = parseDecimal(path[i:]); err == nil {
							i += n
						}
					}
				}
				if err != nil {
					break
				}
				cmd.Cubics = append(cmd.Cubics, Cubic{g[0], g[1], g[2]})
				if !hasNumber(path[i:]) {
					break
				}
			}
		case 'S', 's', 'Q', 'q':
			for err == nil {
				var g [2]Coord
				for j := 0; j < 2 && err == nil; j++ {
					var n int
					if g[j].X, n, err = parseDecimal(path[i:]); err == nil {
						i += n
						if g[j].Y, n, err = parseDecimal(path[i:]); err == nil {
							i += n
						}
					}
				}
				if err != nil {
					break
				}
				cmd.Quads = append(cmd.Quads, Quad{g[0], g[1]})
				if !hasNumber(path[i:]) {
					break
				}
			}
		case 'A', 'a':
			for err == nil {
				var a Arc
				var n int
				if a.Rx, n, err = parseDecimal(path[i:]); err != nil {
					break
				}
				i += n
				if a.Ry, n, err = parseDecimal(path[i:]); err != nil {
					break
				}
				i += n
				if a.Rot, n, err = parseDecimal(path[i:]); err != nil {
					break
				}
				i += n
				if a.Large, n, err = parseFlag(path[i:]); err != nil {
					break
				}
				i += n
				if a.Sweep, n, err = parseFlag(path[i:]); err != nil {
					break
				}
				i += n
				if a.End.X, n, err = parseDecimal(path[i:]); err != nil {
					break
				}
				i += n
				if a.End.Y, n, err = parseDecimal(path[i:]); err != nil {
					break
				}
				i += n
				a.Rx, a.Ry = a.Rx.Abs(), a.Ry.Abs()
				cmd.Arcs = append(cmd.Arcs, a)
				if !hasNumber(path[i:]) {
					break
				}
			}
		default:
			return nil, fmt.Errorf("svgsort: unknown path command %q at offset %d", letter, i-1)
		}
		if err != nil {
			return nil, fmt.Errorf("%w at offset %d in command %q", err, i, letter)
		}
		p.cmds = append(p.cmds, cmd)

		i += skipCommaWhitespace(path[i:])
	}
	return p, nil
}

// MustParsePath is like ParsePath but panics on error, for tests and
// constants.
func MustParsePath(path string) *Path {
	p, err := ParsePath([]byte(path))
	if err != nil {
		panic(err)
	}
	return p
}
