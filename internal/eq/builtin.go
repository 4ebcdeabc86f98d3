package eq

import (
	"fmt"
	"math"
	"sort"
)

// Builtin curves stand in for user-authored equations in the CLI. The parser
// that turns equation strings into evaluators lives upstream; these are the
// compiled forms it would hand us.
var builtins = map[string]func() Equation{
	"parabola": func() Equation {
		return &ExplicitY{F: func(x float64) float64 { return 0.1*x*x - 2 }}
	},
	"bowl": func() Equation {
		return &ExplicitY{F: func(x float64) float64 { return 0.25*x*x - 4 }}
	},
	"line": func() Equation {
		return &ExplicitY{F: func(x float64) float64 { return -0.5 * x }}
	},
	"sine": func() Equation {
		return &ExplicitY{F: func(x float64) float64 { return math.Sin(x) - 1 }}
	},
	"sqrt": func() Equation {
		// Undefined for x < 0; exercises NaN-at-boundary handling.
		return &ExplicitY{F: func(x float64) float64 { return math.Sqrt(x) - 3 }}
	},
	"sideways": func() Equation {
		return &ExplicitX{F: func(y float64) float64 { return 0.2 * y * y }}
	},
	"circle": func() Equation {
		// Signed-distance form keeps the contour band a constant width.
		return &Implicit{F: func(x, y float64) float64 {
			return math.Hypot(x, y) - 3
		}}
	},
	"vee": func() Equation {
		return &Piecewise{Pieces: []Piece{
			{Min: -10, Max: 0, F: func(x float64) float64 { return -x - 3 }},
			{Min: 0, Max: 10, F: func(x float64) float64 { return x - 3 }},
		}}
	},
	"steps": func() Equation {
		return &Piecewise{Pieces: []Piece{
			{Min: -10, Max: -3, F: func(x float64) float64 { return 2 }},
			{Min: -3, Max: 3, F: func(x float64) float64 { return 0 }},
			{Min: 3, Max: 10, F: func(x float64) float64 { return -2 }},
		}}
	},
}

// Lookup returns the named builtin curve.
func Lookup(name string) (Equation, error) {
	mk, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown curve: %s", name)
	}
	return mk(), nil
}

// Names lists the builtin curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
