package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"MacroPulse/internal/domain/econerr"

	"github.com/stretchr/testify/require"
)

func captureSleeps(t *testing.T) *[]time.Duration {
	t.Helper()
	var slept []time.Duration
	orig := sleepFn
	sleepFn = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	t.Cleanup(func() { sleepFn = orig })
	return &slept
}

func TestDoSucceedsAfterTwoFailures(t *testing.T) {
	slept := captureSleeps(t)

	calls := 0
	opts := Options{MaxAttempts: 3, BackoffFactor: 2, InitialDelay: 100 * time.Millisecond}
	got, err := Do(context.Background(), nil, "flaky", opts, func(context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, got)
	require.Equal(t, 3, calls)

	require.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, *slept)
}

func TestDoExhaustionReturnsLastError(t *testing.T) {
	captureSleeps(t)

	last := errors.New("still down")
	calls := 0
	opts := Options{MaxAttempts: 3, BackoffFactor: 2, InitialDelay: time.Millisecond}
	_, err := Do(context.Background(), nil, "down", opts, func(context.Context) (int, error) {
		calls++
		return 0, last
	})
	require.ErrorIs(t, err, last)
	require.Equal(t, 3, calls)
}

func TestDoValidationErrorNotRetried(t *testing.T) {
	slept := captureSleeps(t)

	calls := 0
	opts := DefaultOptions()
	_, err := Do(context.Background(), nil, "bad-input", opts, func(context.Context) (int, error) {
		calls++
		return 0, econerr.New(econerr.KindInvalidDateRange, "start after end")
	})
	require.Error(t, err)
	require.Equal(t, 1, calls)
	require.Empty(t, *slept)
	require.Equal(t, econerr.KindInvalidDateRange, econerr.KindOf(err))
}

func TestDoContextCancelAbortsSleep(t *testing.T) {
	orig := sleepFn
	sleepFn = func(ctx context.Context, _ time.Duration) error { return ctx.Err() }
	t.Cleanup(func() { sleepFn = orig })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := Do(ctx, nil, "cancelled", DefaultOptions(), func(context.Context) (int, error) {
		calls++
		return 0, errors.New("transient")
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, calls)
}
