package svgsort

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var (
	zero = decimal.Zero
	one  = decimal.New(1, 0)
	two  = decimal.New(2, 0)
	four = decimal.New(4, 0)
)

func init() {
	// Repeated divisions (centroid averaging, viewBox scaling) must not
	// drift visibly at the comparison precision used by callers.
	if decimal.DivisionPrecision < 24 {
		decimal.DivisionPrecision = 24
	}
}

// dec converts the result of a transcendental function back into a decimal.
// Exact inputs should use decimal.New or decimal.NewFromString instead. An
// overflowed operand clamps to the largest finite float64, so distances
// between coordinates beyond its range still compare instead of panicking
// inside decimal.NewFromFloat.
func dec(f float64) decimal.Decimal {
	if math.IsInf(f, 0) {
		f = math.Copysign(math.MaxFloat64, f)
	}
	return decimal.NewFromFloat(f)
}

////////////////////////////////////////////////////////////////

// Coord is a coordinate in 2D space with arbitrary-precision decimal
// components. Decimals keep chained transforms and serialize/re-parse
// cycles free of binary rounding error, and always render in plain
// decimal notation as path data requires.
type Coord struct {
	X, Y decimal.Decimal
}

// XY returns the coordinate (x,y).
func XY(x, y float64) Coord {
	return Coord{decimal.NewFromFloat(x), decimal.NewFromFloat(y)}
}

// Add adds q to p.
func (p Coord) Add(q Coord) Coord {
	return Coord{p.X.Add(q.X), p.Y.Add(q.Y)}
}

// Sub subtracts q from p.
func (p Coord) Sub(q Coord) Coord {
	return Coord{p.X.Sub(q.X), p.Y.Sub(q.Y)}
}

// Equals returns true if p and q are exactly equal.
func (p Coord) Equals(q Coord) bool {
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// Distance returns the Euclidean distance between p and q.
func (p Coord) Distance(q Coord) decimal.Decimal {
	dx := p.X.Sub(q.X)
	dy := p.Y.Sub(q.Y)
	return dec(math.Sqrt(dx.Mul(dx).Add(dy.Mul(dy)).InexactFloat64()))
}

func (p Coord) String() string {
	return fmt.Sprintf("[%s; %s]", p.X, p.Y)
}
