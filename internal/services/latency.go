package services

import (
	"context"
	"time"
)

// FixedDelay waits a constant duration before every mutation, mirroring the
// fixed timers the dashboard used to simulate a backend.
type FixedDelay struct {
	D time.Duration
}

func (d FixedDelay) Wait(ctx context.Context) error {
	if d.D <= 0 {
		return nil
	}
	t := time.NewTimer(d.D)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NoDelay resolves immediately.
type NoDelay struct{}

func (NoDelay) Wait(ctx context.Context) error { return nil }
