package model

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFramePacer(t *testing.T) {
	require.NoError(t, NewFramePacer(0).Pause(context.Background()))

	p := NewFramePacer(5 * time.Millisecond)
	start := time.Now()
	require.NoError(t, p.Pause(context.Background()))
	require.GreaterOrEqual(t, time.Since(start), p.Delay())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, NewFramePacer(time.Hour).Pause(ctx), context.Canceled)
}
