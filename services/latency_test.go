// ABOUTME: Tests for the simulated latency boundary
// ABOUTME: Covers scale-0 disabling, scaling, and context cancellation
package services

import (
	"context"
	"testing"
	"time"
)

func TestClockDelayerScaleZeroDisablesLatency(t *testing.T) {
	d := ClockDelayer{Scale: 0}

	start := time.Now()
	if err := d.Delay(context.Background(), 200*time.Millisecond); err != nil {
		t.Fatalf("Delay failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("scale 0 slept %v, want an immediate return", elapsed)
	}
}

func TestClockDelayerScaleShortensDelay(t *testing.T) {
	d := ClockDelayer{Scale: 0.01}

	start := time.Now()
	if err := d.Delay(context.Background(), 100*time.Millisecond); err != nil {
		t.Fatalf("Delay failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("scaled delay took %v, want around 1ms", elapsed)
	}
}

func TestClockDelayerHonorsCancellation(t *testing.T) {
	d := ClockDelayer{Scale: 1}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := d.Delay(ctx, time.Hour); err != context.Canceled {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestNopDelayerReturnsImmediately(t *testing.T) {
	if err := (NopDelayer{}).Delay(context.Background(), time.Hour); err != nil {
		t.Errorf("Delay failed: %v", err)
	}
}
