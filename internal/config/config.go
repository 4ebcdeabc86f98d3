package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/marblekit/marblepath/internal/physics"
)

const (
	DefaultTicks = 600
	DefaultDt    = 1.0
)

type Config struct {
	Level   string        `yaml:"level"`
	Ticks   int           `yaml:"ticks"`
	Dt      float64       `yaml:"dt"`
	Seed    int64         `yaml:"seed"`
	Physics PhysicsConfig `yaml:"physics"`
}

// PhysicsConfig mirrors physics.Tuning plus the per-marble parameters.
// Defaults must match the physics package constants: they define the feel.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	Friction      float64 `yaml:"friction"`
	AirResistance float64 `yaml:"air_resistance"`
	SnapStrength  float64 `yaml:"snap_strength"`
	FollowSpeed   float64 `yaml:"follow_speed"`
	PathThreshold float64 `yaml:"path_threshold"`
	MaxTrail      int     `yaml:"max_trail"`
	SearchRadius  float64 `yaml:"search_radius"`
}

type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BoundsConfig struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// LevelConfig describes one playable level: the curves in play, where the
// marble spawns, and the stars to collect.
type LevelConfig struct {
	Name   string        `yaml:"name"`
	Curves []string      `yaml:"curves"`
	Spawn  PointConfig   `yaml:"spawn"`
	Stars  []PointConfig `yaml:"stars"`
	Bounds BoundsConfig  `yaml:"bounds"`
}

func DefaultConfig() *Config {
	return &Config{
		Level: "parabola-run",
		Ticks: DefaultTicks,
		Dt:    DefaultDt,
		Physics: PhysicsConfig{
			Gravity:       physics.DefaultGravity,
			Friction:      physics.DefaultFriction,
			AirResistance: physics.DefaultAirResistance,
			SnapStrength:  physics.DefaultSnapStrength,
			FollowSpeed:   physics.DefaultFollowSpeed,
			PathThreshold: physics.DefaultPathThreshold,
			MaxTrail:      physics.DefaultMaxTrail,
			SearchRadius:  physics.DefaultSearchRadius,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Tuning converts the yaml view into the physics parameters.
func (p PhysicsConfig) Tuning() physics.Tuning {
	return physics.Tuning{
		Gravity:       p.Gravity,
		Friction:      p.Friction,
		AirResistance: p.AirResistance,
		SnapStrength:  p.SnapStrength,
		FollowSpeed:   p.FollowSpeed,
		SearchRadius:  p.SearchRadius,
		Dt:            1.0,
	}
}
