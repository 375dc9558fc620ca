package model

import (
	"context"
	"time"
)

// Pacer spaces out frames; it has no effect on the simulation itself
type Pacer interface {
	Pause(ctx context.Context) error
}

// FramePacer sleeps a fixed frame interval
type FramePacer struct {
	delay time.Duration
}

// NewFramePacer pauses delay before each frame; zero disables pausing
func NewFramePacer(delay time.Duration) *FramePacer {
	return &FramePacer{delay: delay}
}

// Delay returns the pause taken before each frame
func (p *FramePacer) Delay() time.Duration {
	return p.delay
}

// Pause waits one frame interval or until ctx is done
func (p *FramePacer) Pause(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
