package eq

import (
	"math"

	"github.com/marblekit/marblepath/internal/geom"
)

// DefaultContourTol is the |f(x,y)| threshold under which a grid sample is
// considered to lie on an implicit curve.
const DefaultContourTol = 0.1

// Implicit is a curve of the form f(x, y) = 0, sampled as the set of grid
// points where |f| falls below the contour tolerance.
type Implicit struct {
	F   func(x, y float64) float64
	Tol float64 // contour tolerance; DefaultContourTol if zero
}

func (e *Implicit) Kind() Kind { return ImplicitKind }

// Eval always returns NaN: an implicit curve has no single-valued form.
func (e *Implicit) Eval(float64) float64 { return math.NaN() }

func (e *Implicit) Points(win Window, resolution int) []geom.Vec2 {
	if resolution < 2 {
		resolution = 2
	}
	tol := e.Tol
	if tol == 0 {
		tol = DefaultContourTol
	}
	stepX := (win.MaxX - win.MinX) / float64(resolution-1)
	stepY := (win.MaxY - win.MinY) / float64(resolution-1)

	var pts []geom.Vec2
	for i := 0; i < resolution; i++ {
		x := win.MinX + float64(i)*stepX
		for j := 0; j < resolution; j++ {
			y := win.MinY + float64(j)*stepY
			v := e.F(x, y)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if math.Abs(v) < tol {
				pts = append(pts, geom.Vec(x, y))
			}
		}
	}
	return pts
}
