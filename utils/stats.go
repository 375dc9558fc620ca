package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	StepsPerSecond  float64
	AverageFlying   float64
	TotalSteps      int
	StartTime       time.Time
	Flying          int
	Frozen          int
	BoundingBoxSize int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(step, flying, frozen, bounds int, duration time.Duration) {
	s.TotalSteps = step
	s.Flying = flying
	s.Frozen = frozen
	s.BoundingBoxSize = bounds
	if duration > 0 {
		s.StepsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average of flying cells
	if s.AverageFlying == 0 {
		s.AverageFlying = float64(flying)
	} else {
		s.AverageFlying = (s.AverageFlying * 0.9) + (float64(flying) * 0.1)
	}
}

// Elapsed returns the time since the stats were created
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
