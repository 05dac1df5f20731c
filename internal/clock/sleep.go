// Package clock holds the timing helpers shared by the node's background
// loops.
package clock

import (
	"context"
	"time"
)

// SleepWithContext blocks for d or until ctx ends, whichever comes first.
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

// Every calls fn once per period until ctx ends. The first call happens after
// one full period. A non-positive period returns immediately.
func Every(ctx context.Context, period time.Duration, fn func(ctx context.Context)) {
	if period <= 0 {
		return
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}
