package physics

import (
	"testing"

	"github.com/marblekit/marblepath/internal/geom"
)

func TestInBoundsInclusiveEdge(t *testing.T) {
	b := Bounds{MinX: -10, MaxX: 10, MinY: -8, MaxY: 8}

	m := NewMarble(geom.Vec(-10, 0))
	if !m.InBounds(b) {
		t.Error("marble exactly on MinX should be in bounds")
	}

	m.Pos.X = -10 - 1e-9
	if m.InBounds(b) {
		t.Error("marble just past MinX should be out of bounds")
	}

	m.Pos = geom.Vec(0, 8)
	if !m.InBounds(b) {
		t.Error("marble exactly on MaxY should be in bounds")
	}
}

func TestCollidesStrictOverlap(t *testing.T) {
	m := NewMarble(geom.Vec(0, 0))
	m.Radius = 0.15
	s := Star{Pos: geom.Vec(0.45, 0), Radius: 0.3}

	// Exactly touching at the summed radii: no collision.
	if m.Collides(&s) {
		t.Error("touching at summed radii must not collide")
	}

	s.Pos.X = 0.45 - 1e-9
	if !m.Collides(&s) {
		t.Error("any overlap must collide")
	}
}
