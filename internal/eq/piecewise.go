package eq

import (
	"math"

	"github.com/marblekit/marblepath/internal/geom"
)

// Piece is one interval of a piecewise curve, defined for Min <= x < Max.
type Piece struct {
	Min, Max float64
	F        func(x float64) float64
}

// Piecewise is a curve assembled from interval pieces. Outside every piece
// the curve is undefined and Eval returns NaN.
type Piecewise struct {
	Pieces []Piece
}

func (e *Piecewise) Kind() Kind { return PiecewiseKind }

func (e *Piecewise) Eval(x float64) float64 {
	for _, p := range e.Pieces {
		if x >= p.Min && x < p.Max {
			return p.F(x)
		}
	}
	return math.NaN()
}

func (e *Piecewise) Points(win Window, resolution int) []geom.Vec2 {
	if resolution < 2 {
		resolution = 2
	}
	pts := make([]geom.Vec2, 0, resolution)
	step := (win.MaxX - win.MinX) / float64(resolution-1)
	for i := 0; i < resolution; i++ {
		x := win.MinX + float64(i)*step
		p := geom.Vec(x, e.Eval(x))
		if !p.IsFinite() {
			continue
		}
		pts = append(pts, p)
	}
	return pts
}
