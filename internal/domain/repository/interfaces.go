package repository

import (
	"context"
	"time"

	"MacroPulse/internal/domain/models"
)

// SeriesSource produces raw observations for a series over a date range.
// Implementations: the synthetic generator and the provider REST clients.
type SeriesSource interface {
	Name() string
	Fetch(ctx context.Context, seriesID string, freq models.Frequency, start, end time.Time) (*models.Series, error)
}

// Cache is the injectable cache surface the pipeline depends on.
// pkg/cache implementations (memory, redis, layered) satisfy it.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// SignalPublisher emits composite signal events for downstream consumers.
type SignalPublisher interface {
	PublishSignal(ctx context.Context, event *models.SignalEvent) error
	Close() error
}

// Metrics records domain-level counters and latencies.
type Metrics interface {
	RecordSeriesRequest(source, seriesID string)
	RecordCacheHit(scope string)
	RecordCacheMiss(scope string)
	RecordError(kind string)
	RecordTransformFallback(kind string)
	RecordGenerationLatency(seriesID string, seconds float64)
	RecordSignalEvent(seriesID, signalType string)
}
