package svgsort

import (
	"strings"

	"github.com/shopspring/decimal"
)

func isTransformSeparator(r rune) bool {
	return r == ' ' || r == ',' || r == '\n' || r == '\r' || r == '\t'
}

func parseNumberList(v string) ([]decimal.Decimal, bool) {
	fields := strings.FieldsFunc(v, isTransformSeparator)
	ds := make([]decimal.Decimal, 0, len(fields))
	for _, f := range fields {
		d, err := decimal.NewFromString(f)
		if err != nil {
			return nil, false
		}
		ds = append(ds, d)
	}
	return ds, true
}

// ParseTransform parses an SVG transform list of matrix, translate, scale,
// rotate, skewX and skewY functions and composes them left-to-right onto
// ctm. Transform attributes are decorative and treated permissively:
// invalid or unparseable syntax yields no transform at all, with ctm
// returned unchanged.
func ParseTransform(v string, ctm Matrix) Matrix {
	m := ctm
	i, j := 0, 0
	var fun string
	for i < len(v) {
		if v[i] == '(' {
			fun = strings.ToLower(strings.TrimFunc(v[j:i], isTransformSeparator))
			j = i + 1
		} else if v[i] == ')' {
			d, ok := parseNumberList(v[j:i])
			if !ok {
				return ctm
			}
			switch fun {
			case "matrix":
				if len(d) != 6 {
					return ctm
				}
				m = m.Mul(Matrix{A: d[0], B: d[1], C: d[2], D: d[3], E: d[4], F: d[5]})
			case "translate":
				if len(d) == 1 {
					m = m.Translate(d[0], zero)
				} else if len(d) == 2 {
					m = m.Translate(d[0], d[1])
				} else {
					return ctm
				}
			case "scale":
				if len(d) == 1 {
					m = m.Scale(d[0], d[0])
				} else if len(d) == 2 {
					m = m.Scale(d[0], d[1])
				} else {
					return ctm
				}
			case "rotate":
				if len(d) == 1 {
					m = m.Rotate(d[0].InexactFloat64())
				} else if len(d) == 3 {
					m = m.RotateAbout(d[0].InexactFloat64(), d[1], d[2])
				} else {
					return ctm
				}
			case "skewx":
				if len(d) != 1 {
					return ctm
				}
				m = m.ShearX(d[0].InexactFloat64())
			case "skewy":
				if len(d) != 1 {
					return ctm
				}
				m = m.ShearY(d[0].InexactFloat64())
			default:
				return ctm
			}
			fun = ""
			j = i + 1
		}
		i++
	}
	if strings.TrimFunc(v[j:], isTransformSeparator) != "" {
		// dangling function name or unclosed parenthesis
		return ctm
	}
	return m
}
