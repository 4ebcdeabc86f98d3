package config

import "sort"

var defaultBounds = BoundsConfig{MinX: -10, MaxX: 10, MinY: -10, MaxY: 10}

// Levels is the stock level catalog. Star layouts assume the default
// physics tuning.
var Levels = map[string]*LevelConfig{
	"parabola-run": {
		Name:   "parabola-run",
		Curves: []string{"parabola"},
		Spawn:  PointConfig{X: -4, Y: 0},
		Stars: []PointConfig{
			{X: 0, Y: -2},
			{X: 3, Y: -1.1},
		},
		Bounds: defaultBounds,
	},
	"sine-garden": {
		Name:   "sine-garden",
		Curves: []string{"sine"},
		Spawn:  PointConfig{X: -6, Y: 0},
		Stars: []PointConfig{
			{X: -3.1, Y: -1},
			{X: 0, Y: -1},
			{X: 3.1, Y: -1},
		},
		Bounds: defaultBounds,
	},
	"crossroads": {
		// Two curves cross near the spawn; the selector has to pick the
		// one that leads to the stars.
		Name:   "crossroads",
		Curves: []string{"line", "parabola"},
		Spawn:  PointConfig{X: -1, Y: 0.6},
		Stars: []PointConfig{
			{X: 4, Y: -2},
			{X: 6, Y: -3},
		},
		Bounds: defaultBounds,
	},
	"orbit": {
		Name:   "orbit",
		Curves: []string{"circle"},
		Spawn:  PointConfig{X: 0, Y: 3.4},
		Stars: []PointConfig{
			{X: 3, Y: 0},
			{X: -3, Y: 0},
		},
		Bounds: defaultBounds,
	},
	"vee-drop": {
		Name:   "vee-drop",
		Curves: []string{"vee"},
		Spawn:  PointConfig{X: -5, Y: 3},
		Stars: []PointConfig{
			{X: 0, Y: -3},
			{X: 4, Y: 1},
		},
		Bounds: defaultBounds,
	},
	"sidewinder": {
		Name:   "sidewinder",
		Curves: []string{"sideways"},
		Spawn:  PointConfig{X: 1, Y: 2.5},
		Stars: []PointConfig{
			{X: 0.2, Y: 1},
			{X: 1.8, Y: -3},
		},
		Bounds: defaultBounds,
	},
}

func GetLevel(name string) *LevelConfig {
	return Levels[name]
}

func ListLevels() []string {
	names := make([]string, 0, len(Levels))
	for name := range Levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
