package physics

import (
	"math"

	"github.com/marblekit/marblepath/internal/eq"
	"github.com/marblekit/marblepath/internal/geom"
)

// PointDistance is a nearest point on a curve and its distance to the query.
type PointDistance struct {
	Point    geom.Vec2
	Distance float64
}

// ClosestPoint searches for the nearest point of e within searchRadius of
// pos. Explicit curves are scanned at SearchStep resolution, clipped to
// [-SearchClip, SearchClip]; implicit curves are sampled over a square
// window. The second return is false when the curve produced no usable
// point inside the window.
func ClosestPoint(pos geom.Vec2, e eq.Equation, searchRadius float64) (PointDistance, bool) {
	if searchRadius <= 0 {
		searchRadius = DefaultSearchRadius
	}

	switch e.Kind() {
	case eq.ExplicitYKind, eq.PiecewiseKind:
		lo := math.Max(-SearchClip, pos.X-searchRadius)
		hi := math.Min(SearchClip, pos.X+searchRadius)
		return scanExplicit(pos, lo, hi, func(x float64) (geom.Vec2, bool) {
			y := e.Eval(x)
			return geom.Vec(x, y), finite(y)
		})
	case eq.ExplicitXKind:
		lo := math.Max(-SearchClip, pos.Y-searchRadius)
		hi := math.Min(SearchClip, pos.Y+searchRadius)
		return scanExplicit(pos, lo, hi, func(y float64) (geom.Vec2, bool) {
			x := e.Eval(y)
			return geom.Vec(x, y), finite(x)
		})
	case eq.ImplicitKind:
		win := eq.Window{
			MinX: pos.X - searchRadius, MaxX: pos.X + searchRadius,
			MinY: pos.Y - searchRadius, MaxY: pos.Y + searchRadius,
		}
		return nearestSample(pos, e.Points(win, ImplicitResolution))
	default:
		return PointDistance{}, false
	}
}

func scanExplicit(pos geom.Vec2, lo, hi float64, sample func(float64) (geom.Vec2, bool)) (PointDistance, bool) {
	best := PointDistance{Distance: math.Inf(1)}
	found := false
	for v := lo; v <= hi; v += SearchStep {
		p, ok := sample(v)
		if !ok {
			continue
		}
		d := pos.DistanceTo(p)
		if d < best.Distance {
			best = PointDistance{Point: p, Distance: d}
			found = true
		}
	}
	return best, found
}

func nearestSample(pos geom.Vec2, pts []geom.Vec2) (PointDistance, bool) {
	best := PointDistance{Distance: math.Inf(1)}
	found := false
	for _, p := range pts {
		d := pos.DistanceTo(p)
		if d < best.Distance {
			best = PointDistance{Point: p, Distance: d}
			found = true
		}
	}
	return best, found
}
