package utils

import (
	"encoding/json"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
)

const (
	RendererText   = "text"
	RendererScreen = "screen"
)

var (
	// ErrInvalidDimensions indicates a non-positive width or height
	ErrInvalidDimensions = errors.New("config: width and height must be positive")
	// ErrInvalidFlyingCells indicates a negative flying cell count
	ErrInvalidFlyingCells = errors.New("config: flying_cells must not be negative")
	// ErrInvalidRuns indicates a non-positive run or worker count
	ErrInvalidRuns = errors.New("config: runs and workers must be positive")
	// ErrUnknownRenderer indicates a renderer name other than text or screen
	ErrUnknownRenderer = errors.New("config: renderer must be \"text\" or \"screen\"")
)

// Config holds the configuration for a run
type Config struct {
	Width               int    `json:"width"`
	Height              int    `json:"height"`
	FlyingCells         int    `json:"flying_cells"`
	FPS                 int    `json:"fps"`
	Seed                int64  `json:"seed"`      // 0 picks a time-based seed
	MaxSteps            int    `json:"max_steps"` // 0 runs until no flying cells remain
	StagnationThreshold int    `json:"stagnation_threshold"`
	Renderer            string `json:"renderer"`
	Runs                int    `json:"runs"`
	Workers             int    `json:"workers"`
	LogLevel            string `json:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               16,
		Height:              8,
		FlyingCells:         5,
		FPS:                 10,
		StagnationThreshold: 20,
		Renderer:            RendererText,
		Runs:                1,
		Workers:             runtime.NumCPU(),
		LogLevel:            "info",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values a run cannot start without
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return ErrInvalidDimensions
	}
	if c.FlyingCells < 0 {
		return ErrInvalidFlyingCells
	}
	if c.Runs <= 0 || c.Workers <= 0 {
		return ErrInvalidRuns
	}
	if c.Renderer != RendererText && c.Renderer != RendererScreen {
		return ErrUnknownRenderer
	}
	return nil
}

// FrameDelay is the pause before each frame, 1,000,000µs / fps
func (c Config) FrameDelay() time.Duration {
	if c.FPS <= 0 {
		return 0
	}
	return time.Duration(1_000_000/c.FPS) * time.Microsecond
}

// ResolveSeed returns the configured seed, or a time-based one when unset
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
