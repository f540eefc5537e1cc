package signals

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"MacroPulse/internal/domain/models"
	applogger "MacroPulse/pkg/logger"
)

func mkSeries(t *testing.T, values []float64) *models.Series {
	t.Helper()
	start := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]models.DataPoint, len(values))
	for i, v := range values {
		points[i] = models.DataPoint{Date: start.AddDate(0, i, 0), Value: v}
	}
	return &models.Series{ID: "TEST", Frequency: models.Monthly, Points: points}
}

func TestGenerateNilSeries(t *testing.T) {
	g := New(DefaultConfig(), applogger.Nop())
	require.Nil(t, g.Generate(nil, nil))
}

func TestGenerateWarmupNeutral(t *testing.T) {
	values := make([]float64, 120)
	for i := range values {
		values[i] = 100 + float64(i)
	}
	g := New(DefaultConfig(), applogger.Nop())

	out := g.Generate(mkSeries(t, values), nil)
	require.Len(t, out, 120)
	for i := 0; i < warmup; i++ {
		require.Equal(t, models.Neutral, out[i].SignalType, "point %d", i)
		require.Zero(t, out[i].SignalValue, "point %d", i)
		require.Empty(t, out[i].DetailedSignals, "point %d", i)
	}
}

func TestGenerateMonotoneIncreaseNeverMACDSell(t *testing.T) {
	values := make([]float64, 300)
	for i := range values {
		values[i] = 100 + float64(i)*1.5
	}
	g := New(DefaultConfig(), applogger.Nop())

	out := g.Generate(mkSeries(t, values), []models.Metric{models.MetricMACD})
	for i, sp := range out {
		for _, d := range sp.DetailedSignals {
			require.NotEqual(t, models.ActionSell, d.Action, "point %d", i)
		}
	}
}

func TestGenerateRSIOverboughtSell(t *testing.T) {
	// Long steady climb keeps Wilder RSI pinned above any sell threshold.
	values := make([]float64, 100)
	for i := range values {
		values[i] = 50 + float64(i)
	}
	g := New(DefaultConfig(), applogger.Nop())

	out := g.Generate(mkSeries(t, values), []models.Metric{models.MetricRSI})
	last := out[len(out)-1]
	require.Len(t, last.DetailedSignals, 1)
	require.Equal(t, models.ActionSell, last.DetailedSignals[0].Action)
	require.Equal(t, models.StrongSell, last.SignalType)
	require.InDelta(t, -100.0, last.SignalValue, 1e-9)
}

func TestGenerateCompositeBuckets(t *testing.T) {
	require.Equal(t, models.StrongBuy, models.BucketSignal(50))
	require.Equal(t, models.StrongBuy, models.BucketSignal(100))
	require.Equal(t, models.Buy, models.BucketSignal(25))
	require.Equal(t, models.Neutral, models.BucketSignal(0))
	require.Equal(t, models.Sell, models.BucketSignal(-25))
	require.Equal(t, models.StrongSell, models.BucketSignal(-50))
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	s := mkSeries(t, values)
	// shuffle dates so sorting would reorder
	s.Points[0].Date, s.Points[2].Date = s.Points[2].Date, s.Points[0].Date

	g := New(DefaultConfig(), applogger.Nop())
	g.Generate(s, nil)

	require.Equal(t, 3.0, s.Points[0].Value)
	require.Equal(t, 1.0, s.Points[1].Value)
	require.Equal(t, 2.0, s.Points[2].Value)
}

func TestGenerateShortSeriesStaysNeutral(t *testing.T) {
	values := make([]float64, 60)
	for i := range values {
		values[i] = 100 + math.Sin(float64(i))
	}
	g := New(DefaultConfig(), applogger.Nop())

	// SMA cross needs 200 points, so it must report no verdict here.
	out := g.Generate(mkSeries(t, values), []models.Metric{models.MetricSMACross})
	for i, sp := range out {
		require.Empty(t, sp.DetailedSignals, "point %d", i)
		require.Equal(t, models.Neutral, sp.SignalType, "point %d", i)
	}
}

func TestNewZeroConfigDefaults(t *testing.T) {
	g := New(Config{}, applogger.Nop())
	require.Equal(t, DefaultConfig(), g.cfg)
}
