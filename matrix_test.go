package svgsort

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/tdewolff/test"
)

func TestMatrixDot(t *testing.T) {
	m := Identity.Translate(dec(3), dec(4))
	test.That(t, m.Dot(XY(1.0, 1.0)).Equals(XY(4.0, 5.0)))
	test.That(t, m.DotVector(XY(1.0, 1.0)).Equals(XY(1.0, 1.0)))

	m = Identity.Scale(dec(2), dec(3))
	test.That(t, m.Dot(XY(1.0, 1.0)).Equals(XY(2.0, 3.0)))
	test.That(t, m.DotVector(XY(1.0, 1.0)).Equals(XY(2.0, 3.0)))
}

func TestMatrixMul(t *testing.T) {
	T := Identity.Translate(dec(2), dec(0))
	S := Identity.Scale(dec(3), dec(3))

	// the right-hand operand applies first
	test.That(t, T.Mul(S).Dot(XY(1.0, 1.0)).Equals(XY(5.0, 3.0)))
	test.That(t, S.Mul(T).Dot(XY(1.0, 1.0)).Equals(XY(9.0, 3.0)))

	test.That(t, Identity.Mul(T).Dot(XY(1.0, 1.0)).Equals(T.Dot(XY(1.0, 1.0))))
	test.That(t, T.Mul(Identity).Dot(XY(1.0, 1.0)).Equals(T.Dot(XY(1.0, 1.0))))
}

func TestMatrixCompose(t *testing.T) {
	A := Identity.Translate(dec(2), dec(-1))
	B := Identity.Scale(dec(3), dec(2))
	C := Matrix{A: one, B: one, D: one} // shear

	test.That(t, Compose().Dot(XY(7.0, 8.0)).Equals(XY(7.0, 8.0)))
	test.That(t, Compose(A).Dot(XY(7.0, 8.0)).Equals(A.Dot(XY(7.0, 8.0))))
	test.That(t, Compose(A, B, C).Dot(XY(1.0, 1.0)).Equals(A.Dot(B.Dot(C.Dot(XY(1.0, 1.0))))))

	// associativity
	p := XY(5.0, -3.0)
	test.That(t, A.Mul(B).Mul(C).Dot(p).Equals(A.Mul(B.Mul(C)).Dot(p)))
}

func TestMatrixRotate(t *testing.T) {
	p := Identity.Rotate(90.0).Dot(XY(1.0, 0.0))
	test.Float(t, p.X.InexactFloat64(), 0.0)
	test.Float(t, p.Y.InexactFloat64(), 1.0)

	p = Identity.RotateAbout(90.0, dec(5), dec(5)).Dot(XY(5.0, 0.0))
	test.Float(t, p.X.InexactFloat64(), 10.0)
	test.Float(t, p.Y.InexactFloat64(), 5.0)
}

func TestMatrixShear(t *testing.T) {
	p := Identity.ShearX(45.0).Dot(XY(0.0, 2.0))
	test.Float(t, p.X.InexactFloat64(), 2.0)
	test.Float(t, p.Y.InexactFloat64(), 2.0)

	p = Identity.ShearY(45.0).Dot(XY(2.0, 0.0))
	test.Float(t, p.X.InexactFloat64(), 2.0)
	test.Float(t, p.Y.InexactFloat64(), 2.0)
}

func TestMatrixDet(t *testing.T) {
	test.That(t, Identity.Det().Equal(one))
	test.That(t, Identity.Scale(dec(2), dec(3)).Det().Equal(decimal.New(6, 0)))
	test.That(t, Identity.Scale(dec(-1), dec(1)).Det().Equal(one.Neg()))
}

func TestMatrixHasRotationOrSkew(t *testing.T) {
	test.That(t, !Identity.HasRotationOrSkew())
	test.That(t, !Identity.Translate(dec(5), dec(5)).HasRotationOrSkew())
	test.That(t, !Identity.Scale(dec(2), dec(-3)).HasRotationOrSkew())
	test.That(t, Identity.Rotate(30.0).HasRotationOrSkew())
	test.That(t, Identity.ShearX(10.0).HasRotationOrSkew())
	test.That(t, Identity.ShearY(10.0).HasRotationOrSkew())
}

func TestMatrixIsOrientationPreserving(t *testing.T) {
	test.That(t, Identity.IsOrientationPreserving())
	test.That(t, Identity.Rotate(135.0).IsOrientationPreserving())
	test.That(t, !Identity.Scale(dec(-1), dec(1)).IsOrientationPreserving())
	test.That(t, !Identity.Scale(dec(1), dec(-1)).IsOrientationPreserving())
	test.That(t, Identity.Scale(dec(-1), dec(-1)).IsOrientationPreserving())
}

func TestTransformEllipse(t *testing.T) {
	// axis-aligned cases stay exact
	rx, ry, rot := Identity.TransformEllipse(dec(5), dec(3), zero)
	test.T(t, rx.String(), "5")
	test.T(t, ry.String(), "3")
	test.T(t, rot.String(), "0")

	rx, ry, rot = Identity.Scale(dec(2), dec(2)).TransformEllipse(dec(5), dec(3), zero)
	test.T(t, rx.String(), "10")
	test.T(t, ry.String(), "6")
	test.T(t, rot.String(), "0")

	// a reflection does not change the ellipse outline
	rx, ry, rot = Identity.Scale(dec(-1), dec(1)).TransformEllipse(dec(2), dec(1), zero)
	test.T(t, rx.String(), "2")
	test.T(t, ry.String(), "1")
	test.T(t, rot.String(), "0")

	// rotation carries over into the ellipse rotation
	rx, ry, rot = Identity.Rotate(90.0).TransformEllipse(dec(2), dec(1), zero)
	test.Float(t, rx.InexactFloat64(), 2.0)
	test.Float(t, ry.InexactFloat64(), 1.0)
	test.Float(t, rot.InexactFloat64(), 90.0)

	// translation leaves radii and rotation alone
	rx, ry, rot = Identity.Translate(dec(100), dec(-50)).TransformEllipse(dec(2), dec(1), dec(30))
	test.Float(t, rx.InexactFloat64(), 2.0)
	test.Float(t, ry.InexactFloat64(), 1.0)
	test.Float(t, rot.InexactFloat64(), 30.0)
}

func TestTransformEllipseDegenerate(t *testing.T) {
	var tts = []struct {
		m      Matrix
		rx, ry decimal.Decimal
	}{
		{Identity, zero, one},
		{Identity, one, zero},
		{Identity, one.Neg(), one},
		{Identity.Scale(zero, one), one, one},
		{Identity.Scale(one, zero), one, one},
		{Matrix{A: one, B: one, C: one, D: one}, one, one}, // rank 1
	}
	for _, tt := range tts {
		rx, ry, rot := tt.m.TransformEllipse(tt.rx, tt.ry, zero)
		test.That(t, rx.IsZero())
		test.That(t, ry.IsZero())
		test.That(t, rot.IsZero())
	}
}
