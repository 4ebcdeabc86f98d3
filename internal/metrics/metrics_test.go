package metrics

import (
	"math"
	"testing"

	"github.com/marblekit/marblepath/internal/geom"
	"github.com/marblekit/marblepath/internal/physics"
)

func TestPathAdherence(t *testing.T) {
	a := NewPathAdherence()
	m := physics.NewMarble(geom.Vec(0, 0))

	m.OnPath = true
	a.Observe(m, 0)
	m.OnPath = false
	a.Observe(m, 1)

	if v := a.Value(); math.Abs(v-0.5) > 1e-12 {
		t.Errorf("expected 0.5, got %f", v)
	}

	a.Reset()
	if a.Value() != 0 {
		t.Error("expected 0 after reset")
	}
}

func TestDistance(t *testing.T) {
	d := NewDistance()
	m := physics.NewMarble(geom.Vec(0, 0))

	d.Observe(m, 0)
	m.Pos = geom.Vec(3, 4)
	d.Observe(m, 1)

	if v := d.Value(); math.Abs(v-5) > 1e-12 {
		t.Errorf("expected 5, got %f", v)
	}
}

func TestDistanceSeparatesMarbles(t *testing.T) {
	d := NewDistance()
	a := physics.NewMarble(geom.Vec(0, 0))
	b := physics.NewMarble(geom.Vec(100, 0))

	d.Observe(a, 0)
	d.Observe(b, 0)
	a.Pos = geom.Vec(1, 0)
	b.Pos = geom.Vec(101, 0)
	d.Observe(a, 1)
	d.Observe(b, 1)

	if v := d.Value(); math.Abs(v-2) > 1e-12 {
		t.Errorf("interleaved marbles should not cross-count: expected 2, got %f", v)
	}
}

func TestPeakSpeed(t *testing.T) {
	p := NewPeakSpeed()
	m := physics.NewMarble(geom.Vec(0, 0))

	m.Vel = geom.Vec(3, 4)
	p.Observe(m, 0)
	m.Vel = geom.Vec(1, 0)
	p.Observe(m, 1)

	if v := p.Value(); math.Abs(v-5) > 1e-12 {
		t.Errorf("expected 5, got %f", v)
	}
}
