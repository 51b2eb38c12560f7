package svgsort

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Matrix is an affine transformation [[A,C,E],[B,D,F],[0,0,1]] over decimal
// numbers, applied to homogeneous points. Be aware that concatenating
// transformations evaluates right-to-left, so Identity.Rotate(30).Translate(20,0)
// first translates and then rotates.
type Matrix struct {
	A, B, C, D, E, F decimal.Decimal
}

// Identity is the distinguished no-op transformation.
var Identity = Matrix{A: one, D: one}

// Mul returns the transformation that first applies q and then m.
func (m Matrix) Mul(q Matrix) Matrix {
	return Matrix{
		A: m.A.Mul(q.A).Add(m.C.Mul(q.B)),
		B: m.B.Mul(q.A).Add(m.D.Mul(q.B)),
		C: m.A.Mul(q.C).Add(m.C.Mul(q.D)),
		D: m.B.Mul(q.C).Add(m.D.Mul(q.D)),
		E: m.A.Mul(q.E).Add(m.C.Mul(q.F)).Add(m.E),
		F: m.B.Mul(q.E).Add(m.D.Mul(q.F)).Add(m.F),
	}
}

// Compose folds ms left-to-right into a single transformation, so that the
// last operand is applied first. An empty list yields Identity.
func Compose(ms ...Matrix) Matrix {
	m := Identity
	for _, q := range ms {
		m = m.Mul(q)
	}
	return m
}

// Dot applies m to the point p, translation included.
func (m Matrix) Dot(p Coord) Coord {
	return Coord{
		m.A.Mul(p.X).Add(m.C.Mul(p.Y)).Add(m.E),
		m.B.Mul(p.X).Add(m.D.Mul(p.Y)).Add(m.F),
	}
}

// DotVector applies the linear part of m to the vector p, leaving the
// translation out. Unanchored arguments such as relative offsets must be
// transformed this way.
func (m Matrix) DotVector(p Coord) Coord {
	return Coord{
		m.A.Mul(p.X).Add(m.C.Mul(p.Y)),
		m.B.Mul(p.X).Add(m.D.Mul(p.Y)),
	}
}

// Translate adds a translation by (x,y).
func (m Matrix) Translate(x, y decimal.Decimal) Matrix {
	return m.Mul(Matrix{A: one, D: one, E: x, F: y})
}

// Scale adds a scale by (x,y).
func (m Matrix) Scale(x, y decimal.Decimal) Matrix {
	return m.Mul(Matrix{A: x, D: y})
}

// Rotate adds a rotation by deg degrees counter clockwise.
func (m Matrix) Rotate(deg float64) Matrix {
	sintheta, costheta := math.Sincos(deg * math.Pi / 180.0)
	return m.Mul(Matrix{
		A: dec(costheta),
		B: dec(sintheta),
		C: dec(-sintheta),
		D: dec(costheta),
	})
}

// RotateAbout adds a rotation by deg degrees counter clockwise around (x,y).
func (m Matrix) RotateAbout(deg float64, x, y decimal.Decimal) Matrix {
	return m.Translate(x, y).Rotate(deg).Translate(x.Neg(), y.Neg())
}

// ShearX adds a horizontal shear by deg degrees.
func (m Matrix) ShearX(deg float64) Matrix {
	return m.Mul(Matrix{A: one, C: dec(math.Tan(deg * math.Pi / 180.0)), D: one})
}

// ShearY adds a vertical shear by deg degrees.
func (m Matrix) ShearY(deg float64) Matrix {
	return m.Mul(Matrix{A: one, B: dec(math.Tan(deg * math.Pi / 180.0)), D: one})
}

// Det returns the determinant of the linear part of m.
func (m Matrix) Det() decimal.Decimal {
	return m.A.Mul(m.D).Sub(m.B.Mul(m.C))
}

// HasRotationOrSkew returns true if m maps the coordinate axes onto lines
// that are no longer axis-aligned. Horizontal and vertical line commands
// cannot survive such a transformation and must be rewritten as general
// line commands first.
func (m Matrix) HasRotationOrSkew() bool {
	return !m.B.IsZero() || !m.C.IsZero()
}

// IsOrientationPreserving returns false for reflections, which reverse the
// traversal direction of elliptical arcs as seen by the sweep flag.
func (m Matrix) IsOrientationPreserving() bool {
	return !m.Det().IsNegative()
}

// TransformEllipse maps an ellipse with semi-axes rx,ry rotated by phi
// degrees through the linear part of m, and returns the semi-axes and
// rotation of the resulting ellipse. The linear part maps the unit circle
// onto the output ellipse via M = L·R(phi)·S(rx,ry); the eigenvalues of the
// symmetric matrix S = M·Mᵀ are the squared output semi-axes. Ellipses with
// a non-positive radius, or collapsed to a line or point by m, yield (0,0,0).
func (m Matrix) TransformEllipse(rx, ry, phi decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	if !rx.IsPositive() || !ry.IsPositive() {
		return zero, zero, zero
	}

	lin := Matrix{A: m.A, B: m.B, C: m.C, D: m.D}
	e := lin.Rotate(phi.InexactFloat64()).Scale(rx, ry)

	s00 := e.A.Mul(e.A).Add(e.C.Mul(e.C))
	s01 := e.A.Mul(e.B).Add(e.C.Mul(e.D))
	s11 := e.B.Mul(e.B).Add(e.D.Mul(e.D))

	tr := s00.Add(s11)
	det := s00.Mul(s11).Sub(s01.Mul(s01))
	disc := tr.Mul(tr).Sub(four.Mul(det))
	if disc.IsNegative() {
		// rounding may push the discriminant of a circle slightly below zero
		disc = zero
	}
	sq := dec(math.Sqrt(disc.InexactFloat64()))
	lambda1 := tr.Add(sq).Div(two)
	lambda2 := tr.Sub(sq).Div(two)
	if !lambda1.IsPositive() || !lambda2.IsPositive() {
		return zero, zero, zero
	}

	theta := math.Atan2(lambda1.Sub(s00).InexactFloat64(), s01.InexactFloat64())
	return dec(math.Sqrt(lambda1.InexactFloat64())),
		dec(math.Sqrt(lambda2.InexactFloat64())),
		dec(theta * 180.0 / math.Pi)
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%s, %s, %s; %s, %s, %s; 0, 0, 1]", m.A, m.C, m.E, m.B, m.D, m.F)
}
