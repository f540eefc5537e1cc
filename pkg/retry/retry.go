// Package retry provides a bounded exponential-backoff wrapper for
// data-source calls. Validation errors are never retried.
package retry

import (
	"context"
	"math"
	"time"

	"MacroPulse/internal/domain/econerr"
	applogger "MacroPulse/pkg/logger"
)

// Options controls the retry schedule.
type Options struct {
	MaxAttempts   int
	BackoffFactor float64
	InitialDelay  time.Duration
}

// DefaultOptions: 3 attempts, delays 500ms then 1s.
func DefaultOptions() Options {
	return Options{MaxAttempts: 3, BackoffFactor: 2, InitialDelay: 500 * time.Millisecond}
}

// sleepFn is swapped out in tests to observe the schedule.
var sleepFn = func(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do invokes fn, retrying on failure up to opts.MaxAttempts total attempts.
// The delay before retry i is InitialDelay * BackoffFactor^(i-1). Validation
// errors propagate immediately; on exhaustion the last error is returned
// unchanged. Each retry attempt is logged with the operation name.
func Do[T any](ctx context.Context, l *applogger.Logger, name string, opts Options, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	if opts.BackoffFactor <= 0 {
		opts.BackoffFactor = 2
	}

	var lastErr error
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if econerr.IsValidation(err) {
			return zero, err
		}
		if attempt == opts.MaxAttempts {
			break
		}

		delay := time.Duration(float64(opts.InitialDelay) * math.Pow(opts.BackoffFactor, float64(attempt-1)))
		if l != nil {
			l.Warn("retrying after failure",
				applogger.String("op", name),
				applogger.Int("attempt", attempt),
				applogger.Duration("delay_ms", delay),
				applogger.Error(err),
			)
		}
		if err := sleepFn(ctx, delay); err != nil {
			return zero, err
		}
	}
	return zero, lastErr
}
