package physics

import (
	"math"

	"github.com/marblekit/marblepath/internal/eq"
	"github.com/marblekit/marblepath/internal/geom"
)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DerivativeY estimates dy/dx at x by central difference. A non-finite
// sample on either side yields 0: undefined regions contribute no slope.
func DerivativeY(e eq.Equation, x, h float64) float64 {
	if h <= 0 {
		h = DerivativeStep
	}
	hi := e.Eval(x + h/2)
	lo := e.Eval(x - h/2)
	if !finite(hi) || !finite(lo) {
		return 0
	}
	return (hi - lo) / h
}

// DerivativeX estimates dx/dy at y for explicit-x curves.
func DerivativeX(e eq.Equation, y, h float64) float64 {
	if h <= 0 {
		h = DerivativeStep
	}
	hi := e.Eval(y + h/2)
	lo := e.Eval(y - h/2)
	if !finite(hi) || !finite(lo) {
		return 0
	}
	return (hi - lo) / h
}

// PathVelocity returns the unit tangent of e at the given curve point scaled
// by speed. Degenerate estimates fall back to (speed, 0); a non-finite
// result collapses to the zero vector so it can never poison a velocity.
func PathVelocity(e eq.Equation, at geom.Vec2, speed float64) geom.Vec2 {
	var v geom.Vec2
	switch e.Kind() {
	case eq.ExplicitYKind, eq.PiecewiseKind:
		d := DerivativeY(e, at.X, DerivativeStep)
		n := math.Sqrt(1 + d*d)
		v = geom.Vec(speed/n, speed*d/n)
	case eq.ExplicitXKind:
		dxdy := DerivativeX(e, at.Y, DerivativeStep)
		var d float64
		if dxdy != 0 {
			d = 1 / dxdy
		}
		n := math.Sqrt(1 + d*d)
		v = geom.Vec(speed/n, speed*d/n)
	case eq.ImplicitKind:
		v = implicitTangent(e, at, speed)
	default:
		v = geom.Vec(speed, 0)
	}
	if !v.IsFinite() {
		return geom.Vec2{}
	}
	return v
}

// implicitTangent estimates the tangent of an implicit curve from a local
// point cloud: among consecutive sample pairs, the pair whose first point is
// closest in x to the query sets the direction.
func implicitTangent(e eq.Equation, at geom.Vec2, speed float64) geom.Vec2 {
	win := eq.Window{
		MinX: at.X - 1, MaxX: at.X + 1,
		MinY: at.Y - 1, MaxY: at.Y + 1,
	}
	pts := columnize(e.Points(win, 20), at.Y)
	if len(pts) < 2 {
		return geom.Vec(speed, 0)
	}

	best := 0
	bestDx := math.Abs(pts[0].X - at.X)
	for i := 1; i < len(pts)-1; i++ {
		dx := math.Abs(pts[i].X - at.X)
		if dx < bestDx {
			best = i
			bestDx = dx
		}
	}

	dir := pts[best+1].Sub(pts[best]).Normalize()
	if dir.Length() == 0 {
		return geom.Vec(speed, 0)
	}
	return dir.Scale(speed)
}

// columnize collapses an x-major grid cloud to one point per x column, the
// one nearest refY. Pairs of surviving points then span adjacent columns and
// follow the local branch of the curve instead of its vertical thickness.
func columnize(pts []geom.Vec2, refY float64) []geom.Vec2 {
	out := pts[:0:0]
	for _, p := range pts {
		n := len(out)
		if n > 0 && out[n-1].X == p.X {
			if math.Abs(p.Y-refY) < math.Abs(out[n-1].Y-refY) {
				out[n-1] = p
			}
			continue
		}
		out = append(out, p)
	}
	return out
}
