package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 16, c.Width)
	assert.Equal(t, 8, c.Height)
	assert.Equal(t, 5, c.FlyingCells)
	assert.Zero(t, c.MaxSteps)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Equal(t, DefaultConfig(), c)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"width": 40, "height": 20, "flying_cells": 60, "renderer": "screen", "seed": 7}`)

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 40, c.Width)
	assert.Equal(t, 20, c.Height)
	assert.Equal(t, 60, c.FlyingCells)
	assert.Equal(t, RendererScreen, c.Renderer)
	assert.Equal(t, int64(7), c.ResolveSeed())
	assert.Equal(t, DefaultConfig().FPS, c.FPS)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		body string
		want error
	}{
		{`{"width": 0}`, ErrInvalidDimensions},
		{`{"height": -3}`, ErrInvalidDimensions},
		{`{"flying_cells": -1}`, ErrInvalidFlyingCells},
		{`{"runs": 0}`, ErrInvalidRuns},
		{`{"renderer": "gpu"}`, ErrUnknownRenderer},
	}
	for _, tt := range tests {
		_, err := LoadConfig(writeConfig(t, tt.body))
		require.ErrorIs(t, err, tt.want, tt.body)
	}

	_, err := LoadConfig(writeConfig(t, `{"width": `))
	require.Error(t, err)
}

func TestConfig_FrameDelay(t *testing.T) {
	c := DefaultConfig()
	c.FPS = 10
	assert.Equal(t, 100*time.Millisecond, c.FrameDelay())
	c.FPS = 3
	assert.Equal(t, 333333*time.Microsecond, c.FrameDelay())
	c.FPS = 0
	assert.Zero(t, c.FrameDelay())
}

func TestStats_Update(t *testing.T) {
	s := NewStats()
	s.Update(1, 10, 1, 1, 100*time.Millisecond)
	assert.InDelta(t, 10.0, s.StepsPerSecond, 1e-9)
	assert.InDelta(t, 10.0, s.AverageFlying, 1e-9)

	s.Update(2, 0, 11, 9, 0)
	assert.Equal(t, 2, s.TotalSteps)
	assert.Equal(t, 11, s.Frozen)
	assert.Equal(t, 9, s.BoundingBoxSize)
	assert.InDelta(t, 9.0, s.AverageFlying, 1e-9)
}

func TestConfigureLogging(t *testing.T) {
	require.NoError(t, ConfigureLogging(os.Stderr, "debug"))
	require.Error(t, ConfigureLogging(os.Stderr, "loud"))
	require.NoError(t, ConfigureLogging(os.Stderr, "info"))
}
