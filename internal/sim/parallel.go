package sim

import (
	"context"
	"math/rand"
	"sync"
)

// Ensemble runs the same level many times with jittered marble spawns,
// one world clone per run. Useful for probing whether a level is solvable
// from nearby starting points.
type Ensemble struct {
	base      *World
	numRuns   int
	seedStart int64
	spread    float64
}

func NewEnsemble(w *World, numRuns int, seedStart int64, spread float64) *Ensemble {
	return &Ensemble{base: w, numRuns: numRuns, seedStart: seedStart, spread: spread}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(e.seedStart + int64(idx)))
			w := e.base.Clone()
			for _, m := range w.Marbles {
				m.Pos.X += (rng.Float64()*2 - 1) * e.spread
				m.Pos.Y += (rng.Float64()*2 - 1) * e.spread
			}

			cfgCopy := cfg
			cfgCopy.Seed = e.seedStart + int64(idx)

			results[idx], errs[idx] = New(w).Run(ctx, cfgCopy)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// ClearRate is the fraction of ensemble runs that collected every star.
func ClearRate(results []*Result) float64 {
	if len(results) == 0 {
		return 0
	}
	cleared := 0
	for _, r := range results {
		if r.Cleared {
			cleared++
		}
	}
	return float64(cleared) / float64(len(results))
}
