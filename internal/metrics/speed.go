package metrics

import (
	"github.com/marblekit/marblepath/internal/physics"
)

// PeakSpeed tracks the highest marble speed seen during a run.
type PeakSpeed struct {
	max float64
}

func NewPeakSpeed() *PeakSpeed {
	return &PeakSpeed{}
}

func (p *PeakSpeed) Name() string {
	return "peak_speed"
}

func (p *PeakSpeed) Observe(m *physics.Marble, t float64) {
	if s := m.Vel.Length(); s > p.max {
		p.max = s
	}
}

func (p *PeakSpeed) Value() float64 {
	return p.max
}

func (p *PeakSpeed) Reset() {
	p.max = 0
}
