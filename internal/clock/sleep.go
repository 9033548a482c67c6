// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Remaining returns how long to wait after work that took elapsed so that
// runs start period apart. It never returns a negative duration.
func Remaining(period, elapsed time.Duration) time.Duration {
	if elapsed >= period {
		return 0
	}
	return period - elapsed
}
