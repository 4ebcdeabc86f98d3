package physics

import (
	"testing"

	"github.com/marblekit/marblepath/internal/eq"
	"github.com/marblekit/marblepath/internal/geom"
)

func candidateFor(p *Path, pos geom.Vec2) Candidate {
	pd, ok := ClosestPoint(pos, p.Eq, DefaultSearchRadius)
	if !ok {
		panic("test curve produced no closest point")
	}
	return Candidate{Path: p, Closest: pd.Point, Distance: pd.Distance}
}

func TestSelectPathNoCandidates(t *testing.T) {
	m := NewMarble(geom.Vec(0, 0))

	if _, ok := SelectPath(m, nil, nil); ok {
		t.Error("expected no selection from empty candidates")
	}
}

func TestSelectPathSingleCandidateSkipsScoring(t *testing.T) {
	m := NewMarble(geom.Vec(0, 0))
	p := &Path{ID: "flat", Eq: &eq.ExplicitY{F: func(x float64) float64 { return 0 }}}

	// No stars at all: scoring would yield 0 but a lone candidate wins anyway.
	sel, ok := SelectPath(m, []Candidate{candidateFor(p, m.Pos)}, nil)
	if !ok || sel.Path != p {
		t.Error("single candidate should be returned directly")
	}
}

func TestSelectPathPrefersStarwardPath(t *testing.T) {
	m := NewMarble(geom.Vec(0, 0))
	m.Vel = geom.Vec(0.1, 0)

	// Both pass through the origin; only the flat one runs through the star.
	toward := &Path{ID: "toward", Eq: &eq.ExplicitY{F: func(x float64) float64 { return 0 }}}
	away := &Path{ID: "away", Eq: &eq.ExplicitY{F: func(x float64) float64 { return -3 * x }}}

	stars := []Star{NewStar(3, 0)}
	cands := []Candidate{candidateFor(away, m.Pos), candidateFor(toward, m.Pos)}

	sel, ok := SelectPath(m, cands, stars)
	if !ok {
		t.Fatal("expected a selection")
	}
	if sel.Path != toward {
		t.Errorf("expected starward path, got %s", sel.Path.ID)
	}

	if sToward, sAway := scorePath(m, cands[1], stars), scorePath(m, cands[0], stars); sToward <= sAway {
		t.Errorf("starward score %f should strictly exceed %f", sToward, sAway)
	}
}

func TestSelectPathIgnoresCollectedStars(t *testing.T) {
	m := NewMarble(geom.Vec(0, 0))
	p := &Path{ID: "flat", Eq: &eq.ExplicitY{F: func(x float64) float64 { return 0 }}}

	stars := []Star{{Pos: geom.Vec(3, 0), Radius: DefaultStarRadius, Collected: true}}
	if s := scorePath(m, candidateFor(p, m.Pos), stars); s != 0 {
		t.Errorf("collected stars must not score, got %f", s)
	}
}

func TestSelectPathTieKeepsFirst(t *testing.T) {
	m := NewMarble(geom.Vec(0, 0))

	// Identical curves score identically; strict > keeps the first.
	mk := func(id string) *Path {
		return &Path{ID: id, Eq: &eq.ExplicitY{F: func(x float64) float64 { return 0 }}}
	}
	first, second := mk("first"), mk("second")
	cands := []Candidate{candidateFor(first, m.Pos), candidateFor(second, m.Pos)}

	sel, ok := SelectPath(m, cands, []Star{NewStar(3, 0)})
	if !ok || sel.Path != first {
		t.Error("tie should keep the first-seen candidate")
	}
}

func TestLookaheadFollowsTravelDirection(t *testing.T) {
	m := NewMarble(geom.Vec(0, 0))
	m.Vel = geom.Vec(-0.1, 0)

	e := &eq.ExplicitY{F: func(x float64) float64 { return 0 }}
	for _, p := range lookahead(e, m) {
		if p.X > 1e-9 {
			t.Errorf("lookahead ran against travel direction: x=%f", p.X)
		}
	}
}
