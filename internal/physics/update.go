package physics

import (
	"math"
)

// Update advances the marble by one tick against the given paths and stars.
// The marble either snaps onto and follows the best candidate path, or
// free-falls. Only the marble's own fields are mutated; failures inside a
// curve skip that curve, never the tick.
func (m *Marble) Update(tun Tuning, paths []*Path, stars []Star) {
	m.Trail.Push(m.Pos)

	wasOnPath := m.OnPath

	var cands []Candidate
	for _, p := range paths {
		pd, ok := ClosestPoint(m.Pos, p.Eq, tun.SearchRadius)
		if !ok || pd.Distance >= m.PathThreshold {
			continue
		}
		cands = append(cands, Candidate{Path: p, Closest: pd.Point, Distance: pd.Distance})
	}

	if sel, ok := SelectPath(m, cands, stars); ok {
		m.OnPath = true
		m.CurrentPath = sel.Path
		m.TimeOffPath = 0

		// Exponential approach toward the path, not a teleport.
		m.Pos = m.Pos.Add(sel.Closest.Sub(m.Pos).Scale(tun.SnapStrength))

		pv := PathVelocity(sel.Path.Eq, sel.Closest, tun.FollowSpeed)
		blend := blendSnapOn
		if wasOnPath {
			blend = blendOnPath
		}
		m.Vel.X = m.Vel.X*(1-blend) + pv.X*blend
		m.Vel.Y = m.Vel.Y*(1-blend) + pv.Y*blend

		// Damped gravity keeps on-path motion visually grounded.
		m.Vel.Y += tun.Gravity * onPathGravityScale
	} else {
		m.OnPath = false
		m.CurrentPath = nil
		m.TimeOffPath++

		m.Vel.Y += tun.Gravity
		m.Vel = m.Vel.Scale(tun.AirResistance)
	}

	m.Vel = m.Vel.Scale(tun.Friction)

	if !m.Vel.IsFinite() {
		m.Vel.X = 0
		m.Vel.Y = 0
	}

	m.Pos = m.Pos.Add(m.Vel.Scale(tun.Dt))

	// The blended system has a numerically unstable rest point at zero
	// velocity; nudge out of it rather than letting marbles freeze.
	if math.Abs(m.Vel.X) < stallSpeed && math.Abs(m.Vel.Y) < stallSpeed {
		m.Vel.X += stallNudge
	}
}
