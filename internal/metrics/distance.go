package metrics

import (
	"github.com/marblekit/marblepath/internal/geom"
	"github.com/marblekit/marblepath/internal/physics"
)

// Distance accumulates the total path length traveled by all observed
// marbles, keyed by marble pointer so interleaved observations don't mix
// trajectories.
type Distance struct {
	last  map[*physics.Marble]geom.Vec2
	total float64
}

func NewDistance() *Distance {
	return &Distance{last: make(map[*physics.Marble]geom.Vec2)}
}

func (d *Distance) Name() string {
	return "distance"
}

func (d *Distance) Observe(m *physics.Marble, t float64) {
	if prev, ok := d.last[m]; ok {
		d.total += prev.DistanceTo(m.Pos)
	}
	d.last[m] = m.Pos
}

func (d *Distance) Value() float64 {
	return d.total
}

func (d *Distance) Reset() {
	d.last = make(map[*physics.Marble]geom.Vec2)
	d.total = 0
}
