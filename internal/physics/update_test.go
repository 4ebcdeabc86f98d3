package physics

import (
	"math"
	"testing"

	"github.com/marblekit/marblepath/internal/eq"
	"github.com/marblekit/marblepath/internal/geom"
)

func flatPath() *Path {
	return &Path{ID: "flat", Eq: &eq.ExplicitY{F: func(x float64) float64 { return 0 }}}
}

func TestUpdateFreefall(t *testing.T) {
	tun := DefaultTuning()
	m := NewMarble(geom.Vec(0, 5))

	m.Update(tun, nil, nil)

	if m.OnPath {
		t.Error("no paths, marble should free-fall")
	}
	if m.TimeOffPath != 1 {
		t.Errorf("expected TimeOffPath 1, got %d", m.TimeOffPath)
	}
	// gravity, then air resistance and friction damping
	wantVy := DefaultGravity * DefaultAirResistance * DefaultFriction
	if math.Abs(m.Vel.Y-wantVy) > 1e-9 {
		t.Errorf("expected vy %f, got %f", wantVy, m.Vel.Y)
	}
	if m.Pos.Y >= 5 {
		t.Error("marble should have fallen")
	}
}

func TestUpdateSnapsOntoPath(t *testing.T) {
	tun := DefaultTuning()
	m := NewMarble(geom.Vec(0, 0.5))

	m.Update(tun, []*Path{flatPath()}, nil)

	if !m.OnPath {
		t.Fatal("marble within threshold should snap on")
	}
	if m.CurrentPath == nil || m.CurrentPath.ID != "flat" {
		t.Error("current path not recorded")
	}
	if m.TimeOffPath != 0 {
		t.Errorf("TimeOffPath should reset, got %d", m.TimeOffPath)
	}
	// Snap is exponential, not a teleport: 0.5 → ~0.35 before integration.
	if m.Pos.Y > 0.5 {
		t.Errorf("snap should pull toward the path, got y=%f", m.Pos.Y)
	}
}

func TestUpdateLosesPathBeyondThreshold(t *testing.T) {
	tun := DefaultTuning()
	m := NewMarble(geom.Vec(0, 0.5))

	m.Update(tun, []*Path{flatPath()}, nil)
	if !m.OnPath {
		t.Fatal("setup: expected on path")
	}

	m.Pos = geom.Vec(0, 5)
	m.Update(tun, []*Path{flatPath()}, nil)

	if m.OnPath {
		t.Error("marble beyond threshold should drop to freefall")
	}
	if m.CurrentPath != nil {
		t.Error("current path should clear on freefall")
	}
}

func TestUpdateBlendStrengthens(t *testing.T) {
	tun := DefaultTuning()
	tun.Gravity = 0 // isolate the blend

	m := NewMarble(geom.Vec(0, 0.2))
	path := []*Path{flatPath()}

	// Tangent velocity on the flat path is (FollowSpeed, 0).
	target := tun.FollowSpeed

	m.Update(tun, path, nil)
	gapAfterFirst := math.Abs(m.Vel.X - target)

	m.Update(tun, path, nil)
	gapAfterSecond := math.Abs(m.Vel.X - target)

	// First tick blends at 0.5, later ticks at 0.8: convergence accelerates.
	if gapAfterSecond >= gapAfterFirst {
		t.Errorf("expected faster convergence once on path: %f then %f", gapAfterFirst, gapAfterSecond)
	}
}

func TestUpdateAntiStallNudge(t *testing.T) {
	tun := DefaultTuning()
	tun.Gravity = 0

	m := NewMarble(geom.Vec(0, 5))
	m.Vel = geom.Vec(0.0005, -0.0003)

	preX := m.Vel.X * tun.AirResistance * tun.Friction
	m.Update(tun, nil, nil)

	if math.Abs(m.Vel.X-(preX+stallNudge)) > 1e-12 {
		t.Errorf("expected nudge of exactly %g, got vx=%f (pre %f)", stallNudge, m.Vel.X, preX)
	}
}

func TestUpdateNoNudgeWhenMoving(t *testing.T) {
	tun := DefaultTuning()
	m := NewMarble(geom.Vec(0, 5))
	m.Vel = geom.Vec(0.5, 0)

	m.Update(tun, nil, nil)

	want := 0.5 * tun.AirResistance * tun.Friction
	if math.Abs(m.Vel.X-want) > 1e-12 {
		t.Errorf("moving marble should not be nudged: want %f, got %f", want, m.Vel.X)
	}
}

func TestUpdateTrailBounded(t *testing.T) {
	tun := DefaultTuning()
	m := NewMarble(geom.Vec(0, 100))

	for i := 0; i < DefaultMaxTrail*3; i++ {
		m.Update(tun, nil, nil)
		if m.Trail.Len() > DefaultMaxTrail {
			t.Fatalf("trail exceeded capacity at tick %d: %d", i, m.Trail.Len())
		}
	}
	if m.Trail.Len() != DefaultMaxTrail {
		t.Errorf("expected full trail, got %d", m.Trail.Len())
	}
}

func TestUpdateVelocityStaysFinite(t *testing.T) {
	tun := DefaultTuning()

	// A curve that is NaN everywhere must not poison the marble.
	bad := &Path{ID: "bad", Eq: &eq.ExplicitY{F: func(x float64) float64 { return math.NaN() }}}

	m := NewMarble(geom.Vec(0, 0.2))
	for i := 0; i < 50; i++ {
		m.Update(tun, []*Path{bad}, nil)
		if !m.Vel.IsFinite() || !m.Pos.IsFinite() {
			t.Fatalf("non-finite state at tick %d: pos=%+v vel=%+v", i, m.Pos, m.Vel)
		}
	}
}

func TestUpdateFollowsParabola(t *testing.T) {
	tun := DefaultTuning()
	p := &Path{ID: "parabola", Eq: parabola()}

	m := NewMarble(geom.Vec(0, 0.3))
	for i := 0; i < 30; i++ {
		m.Update(tun, []*Path{p}, nil)
	}

	if !m.OnPath {
		t.Fatal("marble should stay snapped to the parabola")
	}
	// Adherence may drift from blending, but stays well inside the threshold.
	if y := m.Pos.X * m.Pos.X; math.Abs(m.Pos.Y-y) > m.PathThreshold {
		t.Errorf("marble drifted off the curve: pos=(%f, %f)", m.Pos.X, m.Pos.Y)
	}
}

func TestReset(t *testing.T) {
	tun := DefaultTuning()
	m := NewMarble(geom.Vec(0, 0.3))
	m.Update(tun, []*Path{flatPath()}, nil)

	m.Reset(geom.Vec(1, 2))

	if m.Pos != geom.Vec(1, 2) || m.Vel != (geom.Vec2{}) {
		t.Error("reset should restore position and zero velocity")
	}
	if m.OnPath || m.CurrentPath != nil || m.TimeOffPath != 0 || m.Trail.Len() != 0 {
		t.Error("reset should clear path state and trail")
	}
}
