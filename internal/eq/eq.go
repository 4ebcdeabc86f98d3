package eq

import (
	"github.com/marblekit/marblepath/internal/geom"
)

// Kind identifies the evaluation strategy of a curve.
type Kind int

const (
	ExplicitYKind Kind = iota // y = f(x)
	ExplicitXKind             // x = f(y)
	ImplicitKind              // f(x, y) = 0
	PiecewiseKind             // y = f_i(x) over disjoint intervals
)

func (k Kind) String() string {
	switch k {
	case ExplicitYKind:
		return "explicit_y"
	case ExplicitXKind:
		return "explicit_x"
	case ImplicitKind:
		return "implicit"
	case PiecewiseKind:
		return "piecewise"
	default:
		return "unknown"
	}
}

// Window is an axis-aligned sampling region in world coordinates.
type Window struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Equation is a user-authored curve. Eval maps the free coordinate to the
// dependent one (x→y for explicit-y and piecewise, y→x for explicit-x) and
// returns NaN where the curve is undefined; implicit curves have no
// single-valued form and always return NaN from Eval. Points samples curve
// points inside win at the given per-axis resolution.
type Equation interface {
	Kind() Kind
	Eval(v float64) float64
	Points(win Window, resolution int) []geom.Vec2
}
