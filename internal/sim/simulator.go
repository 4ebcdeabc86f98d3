package sim

import (
	"context"
	"fmt"

	"github.com/marblekit/marblepath/internal/geom"
)

// Simulator drives a World tick by tick. Marbles all move first; star
// collection then runs as a single serialized pass so two marbles can never
// race for the same star within one tick.
type Simulator struct {
	world     *World
	metrics   []Metric
	observers []Observer
}

func New(w *World) *Simulator {
	return &Simulator{world: w}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) World() *World { return s.world }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validate(cfg); err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result := &Result{
		Frames:  make([]Frame, 0, cfg.Ticks),
		Metrics: make(map[string]float64),
	}

	w := s.world
	tun := w.Tuning
	tun.Dt = cfg.Dt

	for tick := 0; tick < cfg.Ticks; tick++ {
		select {
		case <-ctx.Done():
			s.finish(result)
			return result, ctx.Err()
		default:
		}

		t := float64(tick) * cfg.Dt

		result.Collected += w.Step(tun)

		for _, mt := range s.metrics {
			for _, m := range w.Marbles {
				mt.Observe(m, t)
			}
		}
		for _, obs := range s.observers {
			obs.OnTick(w, t)
		}

		result.Frames = append(result.Frames, s.snapshot(t))
		result.TicksTaken++

		if broken := s.checkStates(result, tick); broken {
			break
		}

		if cfg.StopOnClear && len(w.Stars) > 0 && w.Uncollected() == 0 {
			result.Cleared = true
			break
		}
	}

	s.finish(result)
	return result, nil
}

// RunWithCallback steps the world, invoking cb after every tick. Returning
// false from cb stops the run early.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, cb func(w *World, tick int) bool) error {
	if err := s.validate(cfg); err != nil {
		return err
	}

	w := s.world
	tun := w.Tuning
	tun.Dt = cfg.Dt

	for tick := 0; tick < cfg.Ticks; tick++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		w.Step(tun)

		if !cb(w, tick) {
			return nil
		}
	}
	return nil
}

func (s *Simulator) validate(cfg Config) error {
	if len(s.world.Marbles) == 0 {
		return ErrNoMarbles
	}
	if len(s.world.Paths) == 0 {
		return ErrNoPaths
	}
	if cfg.Ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", cfg.Ticks)
	}
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	return nil
}

func (s *Simulator) snapshot(t float64) Frame {
	f := Frame{
		Time:      t,
		Positions: make([]geom.Vec2, len(s.world.Marbles)),
		OnPath:    make([]bool, len(s.world.Marbles)),
	}
	for i, m := range s.world.Marbles {
		f.Positions[i] = m.Pos
		f.OnPath[i] = m.OnPath
	}
	return f
}

// checkStates is a belt on top of the core's finite-velocity guarantee;
// a non-finite marble ends the run with a recorded error.
func (s *Simulator) checkStates(result *Result, tick int) bool {
	for i, m := range s.world.Marbles {
		if !m.Pos.IsFinite() || !m.Vel.IsFinite() {
			result.Errors = append(result.Errors, &SimError{Tick: tick, Marble: i, Wrapped: ErrInvalidState})
			return true
		}
	}
	return false
}

func (s *Simulator) finish(result *Result) {
	for _, m := range s.world.Marbles {
		if !m.InBounds(s.world.Bounds) {
			result.Escaped++
		}
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
