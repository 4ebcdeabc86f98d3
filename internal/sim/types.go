package sim

import (
	"github.com/marblekit/marblepath/internal/geom"
	"github.com/marblekit/marblepath/internal/physics"
)

// World is one level instance: marbles, the curves they can follow, the
// stars to collect, and the playable bounds. Paths and bounds are read-only
// during a run; stars are mutated only by the simulator's collection pass.
type World struct {
	Marbles []*physics.Marble
	Paths   []*physics.Path
	Stars   []physics.Star
	Bounds  physics.Bounds
	Tuning  physics.Tuning
}

// Clone deep-copies marbles and stars. Paths are shared: equations are
// immutable.
func (w *World) Clone() *World {
	c := &World{
		Paths:   w.Paths,
		Bounds:  w.Bounds,
		Tuning:  w.Tuning,
		Marbles: make([]*physics.Marble, len(w.Marbles)),
		Stars:   make([]physics.Star, len(w.Stars)),
	}
	for i, m := range w.Marbles {
		c.Marbles[i] = m.Clone()
	}
	copy(c.Stars, w.Stars)
	return c
}

// Step advances every marble one tick, then runs the serialized star
// collection pass. All marbles move before any star is awarded, so two
// marbles can never race for the same star within a tick. Returns the
// number of stars collected.
func (w *World) Step(tun physics.Tuning) int {
	for _, m := range w.Marbles {
		m.Update(tun, w.Paths, w.Stars)
	}
	collected := 0
	for _, m := range w.Marbles {
		for i := range w.Stars {
			if !w.Stars[i].Collected && m.Collides(&w.Stars[i]) {
				w.Stars[i].Collected = true
				collected++
			}
		}
	}
	return collected
}

// Uncollected counts stars still in play.
func (w *World) Uncollected() int {
	n := 0
	for _, s := range w.Stars {
		if !s.Collected {
			n++
		}
	}
	return n
}

// Metric observes every marble once per tick and reduces to a single value.
type Metric interface {
	Name() string
	Observe(m *physics.Marble, t float64)
	Value() float64
	Reset()
}

// Observer is notified after each completed tick.
type Observer interface {
	OnTick(w *World, t float64)
}

type Config struct {
	Ticks       int
	Dt          float64
	Seed        int64
	StopOnClear bool // end the run once every star is collected
}

// Frame is a per-tick snapshot of all marble positions.
type Frame struct {
	Time      float64
	Positions []geom.Vec2
	OnPath    []bool
}

type Result struct {
	Frames     []Frame
	TicksTaken int
	Collected  int
	Cleared    bool
	Escaped    int // marbles outside bounds when the run ended
	Metrics    map[string]float64
	Errors     []error
}
