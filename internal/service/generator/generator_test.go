package generator

import (
	"context"
	"testing"
	"time"

	"MacroPulse/internal/domain/econerr"
	"MacroPulse/pkg/cache"

	"github.com/stretchr/testify/require"
)

func newTestGenerator(withCache bool) *Generator {
	var c *cache.MemoryCache
	if withCache {
		c = cache.NewMemoryCache(cache.WithMemoryCleanup(0))
	}
	if c == nil {
		return New(nil, nil, nil, time.Minute)
	}
	return New(c, nil, nil, time.Minute)
}

func TestGenerateValidation(t *testing.T) {
	g := newTestGenerator(false)
	ctx := context.Background()

	_, err := g.Generate(ctx, "", "monthly", "2020-01-01", "2020-06-01")
	require.Equal(t, econerr.KindInvalidInput, econerr.KindOf(err))

	_, err = g.Generate(ctx, "UNRATE", "", "2020-01-01", "2020-06-01")
	require.Equal(t, econerr.KindInvalidInput, econerr.KindOf(err))

	_, err = g.Generate(ctx, "UNRATE", "monthly", "not-a-date", "2020-06-01")
	require.Equal(t, econerr.KindInvalidDateFormat, econerr.KindOf(err))

	_, err = g.Generate(ctx, "UNRATE", "monthly", "2020-06-01", "2020-01-01")
	require.Equal(t, econerr.KindInvalidDateRange, econerr.KindOf(err))
}

func TestGenerateDatesStrictlyIncreasingAndBounded(t *testing.T) {
	g := newTestGenerator(false)
	s, err := g.Generate(context.Background(), "CPIAUCSL", "monthly", "2015-01-01", "2018-12-01")
	require.NoError(t, err)
	require.NotEmpty(t, s.Points)

	start := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2018, 12, 1, 0, 0, 0, 0, time.UTC)
	for i, p := range s.Points {
		require.False(t, p.Date.Before(start), "point %d before range", i)
		require.False(t, p.Date.After(end), "point %d after range", i)
		if i > 0 {
			require.True(t, s.Points[i-1].Date.Before(p.Date), "dates not strictly increasing at %d", i)
		}
	}
}

func TestGenerateUnknownFrequencyDefaultsToMonthly(t *testing.T) {
	g := newTestGenerator(false)
	s, err := g.Generate(context.Background(), "UNRATE", "fortnightly", "2020-01-01", "2020-12-01")
	require.NoError(t, err)
	require.Len(t, s.Points, 12)
}

func TestGenerateDeterministic(t *testing.T) {
	g := newTestGenerator(false)
	a, err := g.Generate(context.Background(), "GDP", "quarterly", "2010-01-01", "2015-01-01")
	require.NoError(t, err)
	b, err := g.Generate(context.Background(), "GDP", "quarterly", "2010-01-01", "2015-01-01")
	require.NoError(t, err)
	require.Equal(t, a.Values(), b.Values())
}

func TestGenerateCacheHitReturnsPriorResultVerbatim(t *testing.T) {
	g := newTestGenerator(true)
	ctx := context.Background()

	first, err := g.Generate(ctx, "UNRATE", "monthly", "2019-01-01", "2019-12-01")
	require.NoError(t, err)
	second, err := g.Generate(ctx, "UNRATE", "monthly", "2019-01-01", "2019-12-01")
	require.NoError(t, err)
	require.Same(t, first, second)
}

func TestGenerateUnemploymentStaysInBounds(t *testing.T) {
	g := newTestGenerator(false)
	s, err := g.Generate(context.Background(), "UNRATE", "monthly", "1985-01-01", "2023-01-01")
	require.NoError(t, err)
	for _, p := range s.Points {
		require.GreaterOrEqual(t, p.Value, 0.0)
		require.LessOrEqual(t, p.Value, 25.0)
	}
}

// Regression: during the 2008-09 window the policy rate must sit at the
// zero lower bound, not at its base value.
func TestGenerateFedFundsPinnedAtZeroLowerBoundIn2009(t *testing.T) {
	g := newTestGenerator(false)
	s, err := g.Generate(context.Background(), "FEDFUNDS", "monthly", "2009-01-01", "2009-06-01")
	require.NoError(t, err)
	require.Len(t, s.Points, 6)
	for _, p := range s.Points {
		require.GreaterOrEqual(t, p.Value, 0.05)
		require.LessOrEqual(t, p.Value, 0.25, "rate not pinned near floor at %s", p.Date)
	}
}

func TestGenerateUnemploymentRisesThroughRecession(t *testing.T) {
	g := newTestGenerator(false)
	s, err := g.Generate(context.Background(), "UNRATE", "monthly", "2007-11-01", "2009-06-01")
	require.NoError(t, err)
	require.NotEmpty(t, s.Points)
	first := s.Points[0].Value
	last := s.Points[len(s.Points)-1].Value
	require.Greater(t, last, first, "countercyclical indicator should rise through a crisis window")
}
