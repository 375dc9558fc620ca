package model

import (
	"context"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-dla/utils"
)

// ErrStepLimit is returned by Run when the configured step cap is reached
// while flying cells remain
var ErrStepLimit = errors.New("simulation: step limit reached before all cells froze")

// State is the driver's lifecycle state
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "Terminated"
	}
	return "Running"
}

/*
Simulation owns the grid and the random source for a single run.

Each step makes one in-place pass over the grid, so a cell visited later in
the pass sees writes made earlier in the same pass. The run terminates after
the first step that finds no flying cells. Nothing guarantees that this ever
happens: flying cells can wander or sit hemmed in indefinitely. A step cap or
context cancellation ends such runs.
*/
type Simulation struct {
	grid     *Grid
	rng      RandomSource
	state    State
	steps    int
	flying   int
	maxSteps int
	window   int
}

// Seed places the frozen seed at the center and then scatters flying cells
// uniformly with replacement. Later placements overwrite earlier ones,
// including the seed.
func Seed(g *Grid, flyingCells int, rng RandomSource) {
	g.Set(g.Center(), Frozen)
	for range flyingCells {
		row := rng.IntN(g.height)
		col := rng.IntN(g.width)
		g.Set(Coord{Row: row, Col: col}, Flying)
	}
}

// NewSimulation builds a freshly seeded grid from config
func NewSimulation(config utils.Config, rng RandomSource) *Simulation {
	g := NewGrid(config.Width, config.Height)
	Seed(g, config.FlyingCells, rng)
	return NewSimulationFromGrid(g, rng, config)
}

// NewSimulationFromGrid runs on an already populated grid
func NewSimulationFromGrid(g *Grid, rng RandomSource, config utils.Config) *Simulation {
	return &Simulation{
		grid:     g,
		rng:      rng,
		state:    Running,
		flying:   g.Count(Flying),
		maxSteps: config.MaxSteps,
		window:   config.StagnationThreshold,
	}
}

// Grid returns the live grid; callers must treat it as read-only
func (s *Simulation) Grid() *Grid { return s.grid }

// State returns the lifecycle state
func (s *Simulation) State() State { return s.state }

// Steps returns the number of completed steps
func (s *Simulation) Steps() int { return s.steps }

// Flying returns the flying count observed by the last step, or the initial
// count before the first step
func (s *Simulation) Flying() int { return s.flying }

// Stagnant reports whether the grid has not changed over the stagnation window
func (s *Simulation) Stagnant() bool { return s.grid.IsStagnant(s.window) }

// Step advances the simulation by one pass and returns the number of flying
// cells visited. A terminated simulation does nothing.
func (s *Simulation) Step() int {
	if s.state == Terminated {
		return 0
	}
	s.flying = s.grid.Step(s.rng)
	s.steps++
	if s.flying == 0 {
		s.state = Terminated
	}
	if s.window > 1 {
		s.grid.UpdateHistory(s.window)
	}
	return s.flying
}

// Run pauses, renders and steps until termination, then pauses and renders the
// final grid once more. status, if non-nil, supplies a line shown under each
// frame.
func (s *Simulation) Run(ctx context.Context, r Renderer, p Pacer, status func(*Simulation) string) error {
	for s.state == Running {
		if s.maxSteps > 0 && s.steps >= s.maxSteps {
			return ErrStepLimit
		}
		if err := p.Pause(ctx); err != nil {
			return err
		}
		if err := s.render(r, status); err != nil {
			return err
		}
		s.Step()
	}
	if err := p.Pause(ctx); err != nil {
		return err
	}
	return s.render(r, status)
}

func (s *Simulation) render(r Renderer, status func(*Simulation) string) error {
	if err := r.Clear(); err != nil {
		return err
	}
	if err := r.Display(s.grid); err != nil {
		return err
	}
	if status == nil {
		return nil
	}
	return r.Status(status(s))
}
