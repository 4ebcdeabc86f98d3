package metrics

import (
	"github.com/marblekit/marblepath/internal/physics"
)

// PathAdherence measures the fraction of observed marble-ticks spent on a
// path.
type PathAdherence struct {
	onPath  int
	samples int
}

func NewPathAdherence() *PathAdherence {
	return &PathAdherence{}
}

func (a *PathAdherence) Name() string {
	return "path_adherence"
}

func (a *PathAdherence) Observe(m *physics.Marble, t float64) {
	a.samples++
	if m.OnPath {
		a.onPath++
	}
}

func (a *PathAdherence) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return float64(a.onPath) / float64(a.samples)
}

func (a *PathAdherence) Reset() {
	a.onPath = 0
	a.samples = 0
}
