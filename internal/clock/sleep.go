// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepFunc has the shape of SleepWithContext so pollers can be driven
// without real delays.
type SleepFunc func(ctx context.Context, d time.Duration) error

// NowFunc returns the current time.
type NowFunc func() time.Time

// SleepWithContext waits for the duration or returns early if the context is canceled.
// A non-positive duration only checks the context.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Remaining is the time left until deadline, never negative.
func Remaining(now, deadline time.Time) time.Duration {
	if d := deadline.Sub(now); d > 0 {
		return d
	}
	return 0
}

// NextInterval caps interval by what is left until deadline.
func NextInterval(now, deadline time.Time, interval time.Duration) time.Duration {
	if left := Remaining(now, deadline); left < interval {
		return left
	}
	return interval
}
