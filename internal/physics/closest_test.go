package physics

import (
	"math"
	"testing"

	"github.com/marblekit/marblepath/internal/eq"
	"github.com/marblekit/marblepath/internal/geom"
)

func TestClosestPointParabolaVertex(t *testing.T) {
	pd, ok := ClosestPoint(geom.Vec(0, 0), parabola(), 2.0)
	if !ok {
		t.Fatal("expected a closest point")
	}

	if math.Abs(pd.Point.X) > 1e-6 || math.Abs(pd.Point.Y) > 1e-6 {
		t.Errorf("expected closest point near origin, got (%f, %f)", pd.Point.X, pd.Point.Y)
	}
	if pd.Distance > 1e-6 {
		t.Errorf("expected distance near 0, got %f", pd.Distance)
	}
}

func TestClosestPointIdempotent(t *testing.T) {
	e := &eq.ExplicitY{F: func(x float64) float64 { return math.Sin(x) }}
	pos := geom.Vec(1.3, 0.2)

	a, okA := ClosestPoint(pos, e, 2.0)
	b, okB := ClosestPoint(pos, e, 2.0)

	if okA != okB || a != b {
		t.Errorf("repeated queries disagree: %+v vs %+v", a, b)
	}
}

func TestClosestPointHonorsRadius(t *testing.T) {
	// Line y = x + 100 is far above; nothing within the window is close,
	// but a minimizing sample still exists.
	e := &eq.ExplicitY{F: func(x float64) float64 { return x + 100 }}

	pd, ok := ClosestPoint(geom.Vec(0, 0), e, 2.0)
	if !ok {
		t.Fatal("expected a minimizing sample")
	}
	if pd.Distance < 90 {
		t.Errorf("unexpectedly close point: %f", pd.Distance)
	}
}

func TestClosestPointUndefinedEverywhere(t *testing.T) {
	e := &eq.ExplicitY{F: func(x float64) float64 { return math.NaN() }}

	if _, ok := ClosestPoint(geom.Vec(0, 0), e, 2.0); ok {
		t.Error("expected no closest point on an undefined curve")
	}
}

func TestClosestPointClipsToWorld(t *testing.T) {
	var minSeen, maxSeen float64 = math.Inf(1), math.Inf(-1)
	e := &eq.ExplicitY{F: func(x float64) float64 {
		if x < minSeen {
			minSeen = x
		}
		if x > maxSeen {
			maxSeen = x
		}
		return 0
	}}

	ClosestPoint(geom.Vec(9.5, 0.1), e, 2.0)
	if maxSeen > SearchClip {
		t.Errorf("scan escaped clip bound: %f", maxSeen)
	}
	if minSeen < 9.5-2.0-1e-9 {
		t.Errorf("scan exceeded search radius: %f", minSeen)
	}
}

func TestClosestPointExplicitX(t *testing.T) {
	// x = y^2, query right of the vertex.
	e := &eq.ExplicitX{F: func(y float64) float64 { return y * y }}

	pd, ok := ClosestPoint(geom.Vec(0.5, 0), e, 2.0)
	if !ok {
		t.Fatal("expected a closest point")
	}
	// The true closest point is the vertex, 0.5 units away.
	if math.Abs(pd.Distance-0.5) > 0.01 {
		t.Errorf("expected distance near 0.5, got %f", pd.Distance)
	}
}

func TestClosestPointImplicit(t *testing.T) {
	e := &eq.Implicit{F: func(x, y float64) float64 { return math.Hypot(x, y) - 3 }}

	pd, ok := ClosestPoint(geom.Vec(3.2, 0), e, 2.0)
	if !ok {
		t.Fatal("expected contour samples in window")
	}
	if pd.Distance > 0.5 {
		t.Errorf("expected a nearby contour point, got distance %f", pd.Distance)
	}
}

func TestClosestPointImplicitNoSamples(t *testing.T) {
	e := &eq.Implicit{F: func(x, y float64) float64 { return 1 }}

	if _, ok := ClosestPoint(geom.Vec(0, 0), e, 2.0); ok {
		t.Error("expected no result from an empty point cloud")
	}
}
