package model

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-dla/utils"
)

// Result summarizes one headless run
type Result struct {
	Run        int
	Seed       int64
	Steps      int
	Frozen     int
	Flying     int
	BoundsArea int
	Terminated bool
}

/*
RunBatch runs config.Runs independent simulations in parallel, at most
config.Workers at a time, with no rendering or pacing. Run i is seeded with
DeriveSeed(baseSeed, i) so a batch replays exactly from its base seed.

A run that hits config.MaxSteps is reported with Terminated false rather than
as an error. Results are ordered by run index.
*/
func RunBatch(ctx context.Context, config utils.Config, baseSeed int64, pool *GridPool) ([]Result, error) {
	results := make([]Result, config.Runs)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(config.Workers, 1))

	for i := range config.Runs {
		eg.Go(func() error {
			seed := DeriveSeed(baseSeed, uint64(i))
			rng := NewRandomSource(seed)

			g := pool.Get(config.Width, config.Height)
			defer pool.Put(g)
			Seed(g, config.FlyingCells, rng)

			sim := NewSimulationFromGrid(g, rng, config)
			err := sim.Run(ctx, NopRenderer{}, NewFramePacer(0), nil)
			if err != nil && !errors.Is(err, ErrStepLimit) {
				return errors.Wrapf(err, "[RunBatch] run %d failed", i)
			}

			results[i] = Result{
				Run:        i,
				Seed:       seed,
				Steps:      sim.Steps(),
				Frozen:     g.Count(Frozen),
				Flying:     g.Count(Flying),
				BoundsArea: g.GetBoundingBoxSize(),
				Terminated: sim.State() == Terminated,
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
