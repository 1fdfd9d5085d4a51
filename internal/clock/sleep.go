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

// Poll calls probe up to attempts times, sleeping interval between failures.
// It returns nil on the first successful probe, otherwise the last probe error.
func Poll(ctx context.Context, attempts int, interval time.Duration, probe func(attempt int) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = probe(attempt); err == nil {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if attempt == attempts {
			break
		}
		if sleepErr := SleepWithContext(ctx, interval); sleepErr != nil {
			return sleepErr
		}
	}
	return err
}
