package eq

import (
	"github.com/marblekit/marblepath/internal/geom"
)

// ExplicitY is a curve of the form y = f(x).
type ExplicitY struct {
	F func(x float64) float64
}

func (e *ExplicitY) Kind() Kind { return ExplicitYKind }

func (e *ExplicitY) Eval(x float64) float64 { return e.F(x) }

func (e *ExplicitY) Points(win Window, resolution int) []geom.Vec2 {
	if resolution < 2 {
		resolution = 2
	}
	pts := make([]geom.Vec2, 0, resolution)
	step := (win.MaxX - win.MinX) / float64(resolution-1)
	for i := 0; i < resolution; i++ {
		x := win.MinX + float64(i)*step
		p := geom.Vec(x, e.F(x))
		if !p.IsFinite() {
			continue
		}
		pts = append(pts, p)
	}
	return pts
}

// ExplicitX is a curve of the form x = f(y), a sideways graph.
type ExplicitX struct {
	F func(y float64) float64
}

func (e *ExplicitX) Kind() Kind { return ExplicitXKind }

func (e *ExplicitX) Eval(y float64) float64 { return e.F(y) }

func (e *ExplicitX) Points(win Window, resolution int) []geom.Vec2 {
	if resolution < 2 {
		resolution = 2
	}
	pts := make([]geom.Vec2, 0, resolution)
	step := (win.MaxY - win.MinY) / float64(resolution-1)
	for i := 0; i < resolution; i++ {
		y := win.MinY + float64(i)*step
		p := geom.Vec(e.F(y), y)
		if !p.IsFinite() {
			continue
		}
		pts = append(pts, p)
	}
	return pts
}
