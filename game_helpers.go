package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/sheikhrachel/go-dla/model"
	"github.com/sheikhrachel/go-dla/utils"
)

// initializeGame sets up the simulation and its collaborators
func initializeGame(config utils.Config, seed int64) (
	*model.Simulation,
	model.Renderer,
	*utils.Stats,
	error,
) {
	var (
		renderer model.Renderer
		err      error
	)
	switch config.Renderer {
	case utils.RendererScreen:
		renderer, err = model.NewScreenRenderer()
		if err != nil {
			return nil, nil, nil, err
		}
	default:
		renderer = model.NewTerminalRenderer()
	}

	sim := model.NewSimulation(config, model.NewRandomSource(seed))
	return sim, renderer, utils.NewStats(), nil
}

// displayGameInfo logs the starting parameters
func displayGameInfo(config utils.Config, seed int64, sim *model.Simulation, pacer *model.FramePacer) {
	log.WithFields(log.Fields{
		"width":   config.Width,
		"height":  config.Height,
		"flying":  sim.Flying(),
		"seed":    seed,
		"fps":     config.FPS,
		"delay":   pacer.Delay(),
		"maxStep": config.MaxSteps,
	}).Info("starting aggregation")
}

// statusReporter returns the per-frame status line and keeps stats current
func statusReporter(stats *utils.Stats) func(*model.Simulation) string {
	var (
		lastFrame   = time.Now()
		warnedStale bool
	)
	return func(sim *model.Simulation) string {
		now := time.Now()
		g := sim.Grid()
		stats.Update(sim.Steps(), sim.Flying(), g.Count(model.Frozen), g.GetBoundingBoxSize(), now.Sub(lastFrame))
		lastFrame = now

		if sim.Stagnant() && !warnedStale {
			warnedStale = true
			log.WithField("step", sim.Steps()).Warn("grid unchanged for several steps; remaining flying cells may never freeze")
		}

		return fmt.Sprintf("Step: %d | Flying: %d | Frozen: %d | Bounding box: %d | %.1f steps/sec | %s",
			stats.TotalSteps, stats.Flying, stats.Frozen, stats.BoundingBoxSize, stats.StepsPerSecond, sim.State())
	}
}

// runInteractive renders a single run until every cell has frozen
func runInteractive(ctx context.Context, config utils.Config, seed int64) error {
	sim, renderer, stats, err := initializeGame(config, seed)
	if err != nil {
		return err
	}
	pacer := model.NewFramePacer(config.FrameDelay())
	displayGameInfo(config, seed, sim, pacer)

	// Full-screen renderers swallow Ctrl+C as a key press
	ctx, cancel := model.WatchInterrupts(ctx, renderer)
	defer cancel()

	err = sim.Run(ctx, renderer, pacer, statusReporter(stats))
	if cerr := renderer.Close(); cerr != nil && err == nil {
		err = cerr
	}
	fields := log.Fields{
		"steps":   sim.Steps(),
		"frozen":  sim.Grid().Count(model.Frozen),
		"flying":  sim.Grid().Count(model.Flying),
		"elapsed": stats.Elapsed().Round(time.Millisecond),
	}
	switch {
	case err == nil:
		log.WithFields(fields).Info("all cells frozen")
		return nil
	case errors.Is(err, model.ErrStepLimit):
		log.WithFields(fields).Warn("stopped at step limit")
		return nil
	case errors.Is(err, context.Canceled):
		log.WithFields(fields).Info("run cancelled")
		return nil
	default:
		return err
	}
}

// runBatch runs headless simulations in parallel and logs a summary
func runBatch(ctx context.Context, config utils.Config, seed int64) error {
	stats := utils.NewStats()
	log.WithFields(log.Fields{
		"runs":    config.Runs,
		"workers": config.Workers,
		"seed":    seed,
	}).Info("starting batch")

	results, err := model.RunBatch(ctx, config, seed, model.NewGridPool())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("batch cancelled")
			return nil
		}
		return err
	}

	var totalSteps, totalFrozen, terminated int
	for _, r := range results {
		log.WithFields(log.Fields{
			"run":        r.Run,
			"seed":       r.Seed,
			"steps":      r.Steps,
			"frozen":     r.Frozen,
			"flying":     r.Flying,
			"bounds":     r.BoundsArea,
			"terminated": r.Terminated,
		}).Debug("run finished")
		totalSteps += r.Steps
		totalFrozen += r.Frozen
		if r.Terminated {
			terminated++
		}
	}

	n := float64(len(results))
	log.WithFields(log.Fields{
		"runs":       len(results),
		"terminated": terminated,
		"avgSteps":   fmt.Sprintf("%.1f", float64(totalSteps)/n),
		"avgFrozen":  fmt.Sprintf("%.1f", float64(totalFrozen)/n),
		"elapsed":    stats.Elapsed().Round(time.Millisecond),
	}).Info("batch finished")
	return nil
}
