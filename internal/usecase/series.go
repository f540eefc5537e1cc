package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"MacroPulse/internal/domain/econerr"
	"MacroPulse/internal/domain/models"
	domrepo "MacroPulse/internal/domain/repository"
	"MacroPulse/internal/service/crisis"
	"MacroPulse/internal/service/signals"
	"MacroPulse/internal/service/stats"
	"MacroPulse/internal/service/transform"
	"MacroPulse/pkg/cache"
	applogger "MacroPulse/pkg/logger"
	"MacroPulse/pkg/retry"
	"MacroPulse/pkg/util"
)

const batchConcurrency = 4

// SeriesService drives the pipeline: fetch (with retry and cache),
// transform, annotate crises, compute statistics, score signals.
type SeriesService struct {
	source      domrepo.SeriesSource
	cache       domrepo.Cache
	transformer *transform.Engine
	signals     *signals.Generator
	publisher   domrepo.SignalPublisher
	metrics     domrepo.Metrics
	retryOpts   retry.Options
	ttl         time.Duration
	l           *applogger.Logger
}

// NewSeriesService wires the pipeline. publisher may be nil when signal
// events are disabled.
func NewSeriesService(
	source domrepo.SeriesSource,
	c domrepo.Cache,
	transformer *transform.Engine,
	sig *signals.Generator,
	publisher domrepo.SignalPublisher,
	metrics domrepo.Metrics,
	retryOpts retry.Options,
	ttl time.Duration,
	l *applogger.Logger,
) *SeriesService {
	if ttl == 0 {
		ttl = time.Hour
	}
	return &SeriesService{
		source:      source,
		cache:       c,
		transformer: transformer,
		signals:     sig,
		publisher:   publisher,
		metrics:     metrics,
		retryOpts:   retryOpts,
		ttl:         ttl,
		l:           l,
	}
}

// GetSeries returns the transformed, crisis-annotated series with its
// statistics.
func (s *SeriesService) GetSeries(ctx context.Context, req models.SeriesRequest) (*models.SeriesResult, error) {
	start, end, err := util.ParseRange(req.Start, req.End)
	if err != nil {
		return nil, err
	}
	kind, ok := transform.ParseKind(req.Transform)
	if !ok {
		return nil, econerr.Newf(econerr.KindInvalidInput, "unknown transform %q", req.Transform)
	}
	freq := models.NormalizeFrequency(req.Frequency)

	key := cache.SeriesKey("result", req.SeriesID, string(freq), req.Start, req.End, string(kind))
	var cached models.SeriesResult
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		s.metrics.RecordCacheHit("result")
		return &cached, nil
	}
	s.metrics.RecordCacheMiss("result")

	raw, err := s.fetch(ctx, req.SeriesID, freq, start, end)
	if err != nil {
		return nil, err
	}

	transformed := s.transformer.Apply(raw, kind)
	crisis.Annotate(transformed)

	result := &models.SeriesResult{
		Series:     transformed,
		Transform:  string(kind),
		Statistics: stats.Calculate(transformed),
	}

	if err := s.cache.Set(ctx, key, result, s.ttl); err != nil {
		s.l.Warn("result cache set failed",
			applogger.String("key", key),
			applogger.Error(err),
		)
	}

	return result, nil
}

// GetSignals scores the series against the requested metrics and, when a
// publisher is configured, emits the latest composite signal.
func (s *SeriesService) GetSignals(ctx context.Context, req models.SignalsRequest) ([]models.SignalPoint, error) {
	start, end, err := util.ParseRange(req.Start, req.End)
	if err != nil {
		return nil, err
	}
	metrics, err := parseMetrics(req.Metrics)
	if err != nil {
		return nil, err
	}
	freq := models.NormalizeFrequency(req.Frequency)

	raw, err := s.fetch(ctx, req.SeriesID, freq, start, end)
	if err != nil {
		return nil, err
	}

	points := s.signals.Generate(raw, metrics)

	if s.publisher != nil && len(points) > 0 {
		last := points[len(points)-1]
		event := &models.SignalEvent{
			SeriesID:    req.SeriesID,
			Date:        util.FormatDate(last.Date),
			SignalValue: last.SignalValue,
			SignalType:  last.SignalType,
			Metrics:     last.DetailedSignals,
		}
		if err := s.publisher.PublishSignal(ctx, event); err != nil {
			s.l.Warn("signal publish failed",
				applogger.String("series", req.SeriesID),
				applogger.Error(err),
			)
		}
	}

	return points, nil
}

// BatchResult holds per-series outcomes of a batch request. A series that
// failed appears in Errors instead of Results.
type BatchResult struct {
	Results map[string]*models.SeriesResult `json:"results"`
	Errors  map[string]string               `json:"errors,omitempty"`
}

// GetBatch fetches several series concurrently. One series failing does not
// fail the batch.
func (s *SeriesService) GetBatch(ctx context.Context, req models.BatchRequest) (*BatchResult, error) {
	ids := splitIDs(req.SeriesIDs)
	if len(ids) == 0 {
		return nil, econerr.New(econerr.KindInvalidInput, "series_ids is empty")
	}

	out := &BatchResult{
		Results: make(map[string]*models.SeriesResult, len(ids)),
		Errors:  make(map[string]string),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for _, id := range ids {
		id := id
		g.Go(func() error {
			result, err := s.GetSeries(gctx, models.SeriesRequest{
				SeriesID:  id,
				Frequency: req.Frequency,
				Start:     req.Start,
				End:       req.End,
				Transform: req.Transform,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				// validation errors apply to the whole batch
				if econerr.IsValidation(err) {
					return err
				}
				out.Errors[id] = err.Error()
				return nil
			}
			out.Results[id] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(out.Errors) == 0 {
		out.Errors = nil
	}
	return out, nil
}

// fetch pulls raw observations through the retry wrapper.
func (s *SeriesService) fetch(ctx context.Context, seriesID string, freq models.Frequency, start, end time.Time) (*models.Series, error) {
	s.metrics.RecordSeriesRequest(s.source.Name(), seriesID)
	return retry.Do(ctx, s.l, "fetch "+seriesID, s.retryOpts, func(ctx context.Context) (*models.Series, error) {
		return s.source.Fetch(ctx, seriesID, freq, start, end)
	})
}

func parseMetrics(csv string) ([]models.Metric, error) {
	if csv == "" {
		return nil, nil
	}
	parts := splitIDs(csv)
	metrics := make([]models.Metric, 0, len(parts))
	for _, p := range parts {
		m := models.Metric(p)
		known := false
		for _, k := range models.AllMetrics {
			if m == k {
				known = true
				break
			}
		}
		if !known {
			return nil, econerr.Newf(econerr.KindInvalidInput, "unknown metric %q", p)
		}
		metrics = append(metrics, m)
	}
	return metrics, nil
}

func splitIDs(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
