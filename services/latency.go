// ABOUTME: Simulated backend latency for the mock services
// ABOUTME: Injectable delay boundary so tests run without wall-clock sleeps
package services

import (
	"context"
	"time"
)

// Delayer is the async boundary every service operation crosses before
// touching its store. The production implementation sleeps to model
// network latency; tests inject NopDelayer.
type Delayer interface {
	Delay(ctx context.Context, d time.Duration) error
}

// ClockDelayer sleeps for the requested duration, scaled by Scale.
// A Scale of 0 disables the delay entirely.
type ClockDelayer struct {
	Scale float64
}

func (c ClockDelayer) Delay(ctx context.Context, d time.Duration) error {
	if c.Scale <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(time.Duration(float64(d) * c.Scale))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NopDelayer completes immediately. Used in tests and the CLI, where
// simulated latency is noise.
type NopDelayer struct{}

func (NopDelayer) Delay(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
