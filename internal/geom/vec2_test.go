package geom

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	v := Vec(3, 4).Normalize()

	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("expected unit length, got %f", v.Length())
	}

	if math.Abs(v.X-0.6) > 1e-12 || math.Abs(v.Y-0.8) > 1e-12 {
		t.Errorf("expected (0.6, 0.8), got (%f, %f)", v.X, v.Y)
	}
}

func TestNormalizeZero(t *testing.T) {
	v := Vec2{}.Normalize()
	if v.X != 0 || v.Y != 0 {
		t.Errorf("zero vector should normalize to zero, got (%f, %f)", v.X, v.Y)
	}
}

func TestIsFinite(t *testing.T) {
	if !Vec(1, -2).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	if (Vec2{X: math.NaN()}).IsFinite() {
		t.Error("NaN component reported finite")
	}
	if (Vec2{Y: math.Inf(1)}).IsFinite() {
		t.Error("Inf component reported finite")
	}
}

func TestDistanceTo(t *testing.T) {
	d := Vec(1, 1).DistanceTo(Vec(4, 5))
	if math.Abs(d-5.0) > 1e-12 {
		t.Errorf("expected distance 5, got %f", d)
	}
}
