package physics

import (
	"github.com/marblekit/marblepath/internal/geom"
)

// Bounds is the playable world rectangle.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Contains reports whether p lies inside the rectangle, boundary inclusive.
func (b Bounds) Contains(p geom.Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// InBounds reports whether the marble's center is inside b.
func (m *Marble) InBounds(b Bounds) bool {
	return b.Contains(m.Pos)
}

// Collides reports whether the marble overlaps the star. Touching exactly at
// the summed radii does not count.
func (m *Marble) Collides(s *Star) bool {
	return m.Pos.DistanceTo(s.Pos) < m.Radius+s.Radius
}
