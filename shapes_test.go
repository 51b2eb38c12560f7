package svgsort

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestShapes(t *testing.T) {
	test.T(t, Line(dec(1), dec(2), dec(3), dec(4)).String(), "M1 2L3 4")
	test.T(t, Rectangle(dec(1), dec(2), dec(3), dec(4)).String(), "M1 2L4 2L4 6L1 6Z")
	test.T(t, Circle(dec(0), dec(0), dec(5)).String(), "M5 0A5 5 0 0 0 -5 0A5 5 0 0 0 5 0Z")
	test.T(t, Ellipse(dec(1), dec(1), dec(2), dec(1)).String(), "M3 1A2 1 0 0 0 -1 1A2 1 0 0 0 3 1Z")

	pts := []Coord{XY(0.0, 0.0), XY(1.0, 1.0), XY(2.0, 0.0)}
	test.T(t, Polyline(pts).String(), "M0 0L1 1 2 0")
	test.T(t, Polygon(pts).String(), "M0 0L1 1 2 0Z")
	test.T(t, Polyline(pts[:1]).String(), "M0 0")
}

func TestShapesDegenerate(t *testing.T) {
	test.That(t, Rectangle(dec(0), dec(0), dec(0), dec(5)).Empty())
	test.That(t, Rectangle(dec(0), dec(0), dec(5), dec(0)).Empty())
	test.That(t, Circle(dec(0), dec(0), dec(0)).Empty())
	test.That(t, Circle(dec(0), dec(0), dec(-1)).Empty())
	test.That(t, Ellipse(dec(0), dec(0), dec(1), dec(0)).Empty())
	test.That(t, Polyline(nil).Empty())
	test.That(t, Polygon(nil).Empty())
}
