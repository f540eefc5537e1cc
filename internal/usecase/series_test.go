package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"MacroPulse/internal/domain/econerr"
	"MacroPulse/internal/domain/models"
	domrepo "MacroPulse/internal/domain/repository"
	"MacroPulse/internal/service/signals"
	"MacroPulse/internal/service/transform"
	"MacroPulse/pkg/cache"
	applogger "MacroPulse/pkg/logger"
	"MacroPulse/pkg/retry"
)

type fakeSource struct {
	calls    int32
	failures int32
	err      error
	series   func(seriesID string) *models.Series
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) Fetch(_ context.Context, seriesID string, freq models.Frequency, _, _ time.Time) (*models.Series, error) {
	n := atomic.AddInt32(&f.calls, 1)
	if n <= f.failures {
		return nil, f.err
	}
	if f.series != nil {
		return f.series(seriesID), nil
	}
	return monthlySeries(seriesID, freq, 24), nil
}

type nopMetrics struct{}

func (nopMetrics) RecordSeriesRequest(string, string)      {}
func (nopMetrics) RecordCacheHit(string)                   {}
func (nopMetrics) RecordCacheMiss(string)                  {}
func (nopMetrics) RecordError(string)                      {}
func (nopMetrics) RecordTransformFallback(string)          {}
func (nopMetrics) RecordGenerationLatency(string, float64) {}
func (nopMetrics) RecordSignalEvent(string, string)        {}

type capturePublisher struct {
	events []*models.SignalEvent
}

func (p *capturePublisher) PublishSignal(_ context.Context, e *models.SignalEvent) error {
	p.events = append(p.events, e)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func monthlySeries(id string, freq models.Frequency, n int) *models.Series {
	start := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]models.DataPoint, n)
	for i := range points {
		points[i] = models.DataPoint{Date: start.AddDate(0, i, 0), Value: 100 + float64(i)}
	}
	return &models.Series{ID: id, Frequency: freq, Points: points}
}

func newService(t *testing.T, src *fakeSource, pub *capturePublisher) *SeriesService {
	t.Helper()
	l := applogger.Nop()
	mem := cache.NewMemoryCache(cache.WithMemoryCleanup(0))
	t.Cleanup(func() { _ = mem.Close() })

	var publisher domrepo.SignalPublisher
	if pub != nil {
		publisher = pub
	}

	return NewSeriesService(
		src,
		mem,
		transform.New(l, nopMetrics{}),
		signals.New(signals.DefaultConfig(), l),
		publisher,
		nopMetrics{},
		retry.Options{MaxAttempts: 3, BackoffFactor: 2, InitialDelay: time.Millisecond},
		time.Hour,
		l,
	)
}

func TestGetSeriesRawWithStats(t *testing.T) {
	src := &fakeSource{}
	svc := newService(t, src, nil)

	result, err := svc.GetSeries(context.Background(), models.SeriesRequest{
		SeriesID:  "UNRATE",
		Frequency: "monthly",
		Start:     "2019-01-01",
		End:       "2020-12-01",
		Transform: "raw",
	})
	require.NoError(t, err)
	require.Equal(t, "raw", result.Transform)
	require.Len(t, result.Series.Points, 24)
	require.Equal(t, 24, result.Statistics.Count)
	require.Equal(t, 100.0, result.Statistics.Min)
	require.Equal(t, 123.0, result.Statistics.Max)
}

func TestGetSeriesInvalidDates(t *testing.T) {
	svc := newService(t, &fakeSource{}, nil)

	_, err := svc.GetSeries(context.Background(), models.SeriesRequest{
		SeriesID: "UNRATE", Start: "01/02/2020", End: "2020-12-01", Transform: "raw",
	})
	require.Equal(t, econerr.KindInvalidDateFormat, econerr.KindOf(err))

	_, err = svc.GetSeries(context.Background(), models.SeriesRequest{
		SeriesID: "UNRATE", Start: "2021-01-01", End: "2020-12-01", Transform: "raw",
	})
	require.Equal(t, econerr.KindInvalidDateRange, econerr.KindOf(err))
}

func TestGetSeriesUnknownTransform(t *testing.T) {
	svc := newService(t, &fakeSource{}, nil)

	_, err := svc.GetSeries(context.Background(), models.SeriesRequest{
		SeriesID: "UNRATE", Start: "2019-01-01", End: "2020-12-01", Transform: "bogus",
	})
	require.Equal(t, econerr.KindInvalidInput, econerr.KindOf(err))
}

func TestGetSeriesRetriesTransientFailures(t *testing.T) {
	src := &fakeSource{
		failures: 2,
		err:      econerr.New(econerr.KindNetwork, "connection reset"),
	}
	svc := newService(t, src, nil)

	result, err := svc.GetSeries(context.Background(), models.SeriesRequest{
		SeriesID: "GDP", Start: "2019-01-01", End: "2020-12-01", Transform: "raw",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.EqualValues(t, 3, atomic.LoadInt32(&src.calls))
}

func TestGetSeriesSecondCallHitsCache(t *testing.T) {
	src := &fakeSource{}
	svc := newService(t, src, nil)

	req := models.SeriesRequest{
		SeriesID: "CPIAUCSL", Start: "2019-01-01", End: "2020-12-01", Transform: "mom_pct",
	}
	first, err := svc.GetSeries(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.GetSeries(context.Background(), req)
	require.NoError(t, err)

	require.EqualValues(t, 1, atomic.LoadInt32(&src.calls))
	require.Equal(t, first.Statistics, second.Statistics)
}

func TestGetSignalsPublishesLatestEvent(t *testing.T) {
	src := &fakeSource{
		series: func(id string) *models.Series { return monthlySeries(id, models.Monthly, 120) },
	}
	pub := &capturePublisher{}
	svc := newService(t, src, pub)

	points, err := svc.GetSignals(context.Background(), models.SignalsRequest{
		SeriesID: "FEDFUNDS",
		Start:    "2010-01-01",
		End:      "2020-01-01",
		Metrics:  "rsi,macd",
	})
	require.NoError(t, err)
	require.Len(t, points, 120)
	require.Len(t, pub.events, 1)
	require.Equal(t, "FEDFUNDS", pub.events[0].SeriesID)
	require.Equal(t, points[len(points)-1].SignalValue, pub.events[0].SignalValue)
}

func TestGetSignalsUnknownMetric(t *testing.T) {
	svc := newService(t, &fakeSource{}, nil)

	_, err := svc.GetSignals(context.Background(), models.SignalsRequest{
		SeriesID: "GDP", Start: "2019-01-01", End: "2020-12-01", Metrics: "stochastic",
	})
	require.Equal(t, econerr.KindInvalidInput, econerr.KindOf(err))
}

func TestGetBatchPartialFailure(t *testing.T) {
	svc := newService(t, &fakeSource{}, nil)
	svc.source = &selectiveSource{failID: "BROKEN"}

	out, err := svc.GetBatch(context.Background(), models.BatchRequest{
		SeriesIDs: "GDP, BROKEN ,UNRATE",
		Start:     "2019-01-01",
		End:       "2020-12-01",
		Transform: "raw",
	})
	require.NoError(t, err)
	require.Len(t, out.Results, 2)
	require.Contains(t, out.Results, "GDP")
	require.Contains(t, out.Results, "UNRATE")
	require.Contains(t, out.Errors, "BROKEN")
}

func TestGetBatchEmptyIDs(t *testing.T) {
	svc := newService(t, &fakeSource{}, nil)

	_, err := svc.GetBatch(context.Background(), models.BatchRequest{
		SeriesIDs: " , ,", Start: "2019-01-01", End: "2020-12-01", Transform: "raw",
	})
	require.Equal(t, econerr.KindInvalidInput, econerr.KindOf(err))
}

type selectiveSource struct {
	failID string
}

func (s *selectiveSource) Name() string { return "selective" }

func (s *selectiveSource) Fetch(_ context.Context, seriesID string, freq models.Frequency, _, _ time.Time) (*models.Series, error) {
	if seriesID == s.failID {
		return nil, econerr.Newf(econerr.KindDataSource, "%s unavailable", seriesID)
	}
	return monthlySeries(seriesID, freq, 12), nil
}
