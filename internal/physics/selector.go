package physics

import (
	"math"

	"github.com/marblekit/marblepath/internal/eq"
	"github.com/marblekit/marblepath/internal/geom"
)

// Candidate is a path within detection threshold of a marble during one
// tick. Candidates are rebuilt every tick and never persisted.
type Candidate struct {
	Path     *Path
	Closest  geom.Vec2
	Distance float64
}

// SelectPath picks the candidate worth following. A single candidate wins
// outright; with several, each is scored against the uncollected stars and
// the strict maximum wins, so ties keep the first-seen candidate.
func SelectPath(m *Marble, cands []Candidate, stars []Star) (Candidate, bool) {
	switch len(cands) {
	case 0:
		return Candidate{}, false
	case 1:
		return cands[0], true
	}

	best := cands[0]
	bestScore := scorePath(m, cands[0], stars)
	for _, c := range cands[1:] {
		if s := scorePath(m, c, stars); s > bestScore {
			best = c
			bestScore = s
		}
	}
	return best, true
}

// scorePath rates a candidate by how close its lookahead samples pass to
// uncollected stars, plus a heading bonus when the path tangent points at a
// star. A greedy single-tick heuristic; it is recomputed every tick.
func scorePath(m *Marble, c Candidate, stars []Star) float64 {
	active := stars[:0:0]
	for _, s := range stars {
		if !s.Collected {
			active = append(active, s)
		}
	}
	if len(active) == 0 {
		return 0
	}

	samples := lookahead(c.Path.Eq, m)
	tangent := PathVelocity(c.Path.Eq, c.Closest, 1.0)

	score := 0.0
	for _, s := range active {
		minDist := math.Inf(1)
		for _, p := range samples {
			if d := p.DistanceTo(s.Pos); d < minDist {
				minDist = d
			}
		}
		if minDist < StarAttractRange {
			score += (StarAttractRange - minDist) * ProximityWeight
		}
		if dot := s.Pos.Sub(m.Pos).Dot(tangent); dot > 0 {
			score += HeadingWeight * dot
		}
	}
	return score
}

// lookahead samples LookaheadSamples points ahead of the marble along the
// curve, spanning a LookaheadWindow-unit stretch in the direction of travel.
func lookahead(e eq.Equation, m *Marble) []geom.Vec2 {
	pts := make([]geom.Vec2, 0, LookaheadSamples)
	step := LookaheadWindow / float64(LookaheadSamples)

	switch e.Kind() {
	case eq.ExplicitYKind, eq.PiecewiseKind:
		dir := travelSign(m.Vel.X)
		for i := 0; i < LookaheadSamples; i++ {
			x := m.Pos.X + dir*float64(i)*step
			y := e.Eval(x)
			if !finite(y) {
				continue
			}
			pts = append(pts, geom.Vec(x, y))
		}
	case eq.ExplicitXKind:
		dir := travelSign(m.Vel.Y)
		for i := 0; i < LookaheadSamples; i++ {
			y := m.Pos.Y + dir*float64(i)*step
			x := e.Eval(y)
			if !finite(x) {
				continue
			}
			pts = append(pts, geom.Vec(x, y))
		}
	case eq.ImplicitKind:
		dir := travelSign(m.Vel.X)
		win := eq.Window{
			MinX: math.Min(m.Pos.X, m.Pos.X+dir*LookaheadWindow),
			MaxX: math.Max(m.Pos.X, m.Pos.X+dir*LookaheadWindow),
			MinY: m.Pos.Y - LookaheadWindow/2,
			MaxY: m.Pos.Y + LookaheadWindow/2,
		}
		pts = e.Points(win, LookaheadSamples)
	}
	return pts
}

// travelSign is the direction of motion along an axis, defaulting forward
// when the marble is at rest.
func travelSign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
