package transform

import (
	"testing"
	"time"

	"MacroPulse/internal/domain/models"

	"github.com/stretchr/testify/require"
)

func mkSeries(points ...models.DataPoint) *models.Series {
	return &models.Series{ID: "TEST", Frequency: models.Monthly, Points: points}
}

func pt(date string, v float64) models.DataPoint {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.DataPoint{Date: t, Value: v}
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("")
	require.True(t, ok)
	require.Equal(t, Raw, k)

	_, ok = ParseKind("wow")
	require.False(t, ok)
}

func TestRawIsIdentityCopy(t *testing.T) {
	e := New(nil, nil)
	in := mkSeries(pt("2023-01-01", 100), pt("2023-02-01", 110))
	out := e.Apply(in, Raw)

	require.NotSame(t, in, out)
	require.Equal(t, in.Values(), out.Values())
}

func TestMoMPctExample(t *testing.T) {
	e := New(nil, nil)
	in := mkSeries(pt("2023-01-01", 100), pt("2023-02-01", 110))
	out := e.Apply(in, MoMPct)

	require.Len(t, out.Points, 2)
	require.Equal(t, 100.0, out.Points[0].Value)
	require.InDelta(t, 10.0, out.Points[1].Value, 1e-9)
	require.NotNil(t, out.Points[1].RawValue)
	require.Equal(t, 110.0, *out.Points[1].RawValue)
}

func TestMoMSameMonthPassesThrough(t *testing.T) {
	e := New(nil, nil)
	in := mkSeries(pt("2023-01-01", 100), pt("2023-01-15", 104), pt("2023-02-01", 110))
	out := e.Apply(in, MoM)

	// same length, same-month point keeps its original value
	require.Len(t, out.Points, 3)
	require.Equal(t, 104.0, out.Points[1].Value)
	require.Equal(t, 6.0, out.Points[2].Value)
}

func TestMoMPctZeroPreviousYieldsZero(t *testing.T) {
	e := New(nil, nil)
	in := mkSeries(pt("2023-01-01", 0), pt("2023-02-01", 5))
	out := e.Apply(in, MoMPct)
	require.Equal(t, 0.0, out.Points[1].Value)
}

func TestMoMDoesNotMutateInput(t *testing.T) {
	e := New(nil, nil)
	in := mkSeries(pt("2023-02-01", 110), pt("2023-01-01", 100))
	_ = e.Apply(in, MoM)

	// input order and values untouched
	require.Equal(t, []float64{110, 100}, in.Values())
}

func TestQoQPctAcrossQuarterBoundary(t *testing.T) {
	e := New(nil, nil)
	in := mkSeries(pt("2023-02-01", 200), pt("2023-03-01", 210), pt("2023-04-01", 220))
	out := e.Apply(in, QoQPct)

	// Feb->Mar is intra-quarter, Mar->Apr crosses Q1->Q2
	require.Equal(t, 210.0, out.Points[1].Value)
	require.InDelta(t, (220.0-210.0)/210.0*100, out.Points[2].Value, 1e-9)
}

func TestYoYDropsLeadEdge(t *testing.T) {
	e := New(nil, nil)
	points := make([]models.DataPoint, 0, 24)
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 24; i++ {
		points = append(points, models.DataPoint{Date: start.AddDate(0, i, 0), Value: 100 + float64(i)})
	}
	in := mkSeries(points...)
	out := e.Apply(in, YoY)

	// the first 12 points have no year-ago match and are dropped
	require.Len(t, out.Points, 12)
	for _, p := range out.Points {
		require.False(t, p.Value == 0 && p.RawValue == nil)
	}
	// 2021-01 vs 2020-01: (112-100)/100*100 = 12%
	require.InDelta(t, 12.0, out.Points[0].Value, 1e-9)

	dropped := len(in.Points) - len(out.Points)
	require.Equal(t, 12, dropped)
}

func TestYoYZeroBaseDropped(t *testing.T) {
	e := New(nil, nil)
	in := mkSeries(pt("2020-01-01", 0), pt("2021-01-01", 50))
	out := e.Apply(in, YoY)
	require.Empty(t, out.Points)
}

func TestUnknownKindReturnsOriginal(t *testing.T) {
	e := New(nil, nil)
	in := mkSeries(pt("2023-01-01", 100))
	out := e.Apply(in, Kind("sideways"))
	require.Same(t, in, out)
}

// Successive transforms must be well-defined even when the composition is
// not meaningful.
func TestMoMOfMoMDoesNotPanic(t *testing.T) {
	e := New(nil, nil)
	in := mkSeries(pt("2023-01-01", 100), pt("2023-02-01", 110), pt("2023-03-01", 121))
	out := e.Apply(e.Apply(in, MoM), MoM)
	require.Len(t, out.Points, 3)
}
