package physics

import (
	"github.com/marblekit/marblepath/internal/eq"
	"github.com/marblekit/marblepath/internal/geom"
)

// Path is a curve a marble can snap onto and follow.
type Path struct {
	ID string
	Eq eq.Equation
}

// Star is a collectible goal. Collected is flipped by the caller's collision
// pass, never by a marble's own update.
type Star struct {
	Pos       geom.Vec2
	Radius    float64
	Collected bool
}

func NewStar(x, y float64) Star {
	return Star{Pos: geom.Vec(x, y), Radius: DefaultStarRadius}
}

// Marble is a point-mass body that free-falls until it finds a path within
// PathThreshold, then follows the path's tangent.
type Marble struct {
	Pos    geom.Vec2
	Vel    geom.Vec2
	Radius float64

	OnPath      bool
	CurrentPath *Path

	PathThreshold float64
	TimeOffPath   int

	Trail *Trail
}

func NewMarble(pos geom.Vec2) *Marble {
	return &Marble{
		Pos:           pos,
		Radius:        DefaultMarbleRadius,
		PathThreshold: DefaultPathThreshold,
		Trail:         NewTrail(DefaultMaxTrail),
	}
}

// Reset returns the marble to pos at rest, clearing path state and trail.
func (m *Marble) Reset(pos geom.Vec2) {
	m.Pos = pos
	m.Vel = geom.Vec2{}
	m.OnPath = false
	m.CurrentPath = nil
	m.TimeOffPath = 0
	m.Trail.Clear()
}

// Clone copies the marble, including its trail.
func (m *Marble) Clone() *Marble {
	c := *m
	c.Trail = m.Trail.Clone()
	return &c
}
