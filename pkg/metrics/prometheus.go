package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	seriesRequests     *prometheus.CounterVec
	cacheHits          *prometheus.CounterVec
	cacheMisses        *prometheus.CounterVec
	errorsTotal        *prometheus.CounterVec
	transformFallbacks *prometheus.CounterVec
	signalEvents       *prometheus.CounterVec
	generationLatency  *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		seriesRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "macropulse_series_requests_total",
				Help: "Total number of series fetches by data source",
			},
			[]string{"source", "series"},
		),
		cacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "macropulse_cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"scope"},
		),
		cacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "macropulse_cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"scope"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "macropulse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		transformFallbacks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "macropulse_transform_fallbacks_total",
				Help: "Total number of transforms that fell back to the raw series",
			},
			[]string{"kind"},
		),
		signalEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "macropulse_signal_events_total",
				Help: "Total number of composite signal events emitted",
			},
			[]string{"series", "signal"},
		),
		generationLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "macropulse_generation_duration_seconds",
				Help:    "Duration of series generation in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"series"},
		),
	}
}

// RecordSeriesRequest records a series fetch against a data source.
func (r *Recorder) RecordSeriesRequest(source, seriesID string) {
	r.seriesRequests.WithLabelValues(source, seriesID).Inc()
}

// RecordCacheHit records a cache hit for a scope (series, signals, ...).
func (r *Recorder) RecordCacheHit(scope string) {
	r.cacheHits.WithLabelValues(scope).Inc()
}

// RecordCacheMiss records a cache miss for a scope.
func (r *Recorder) RecordCacheMiss(scope string) {
	r.cacheMisses.WithLabelValues(scope).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordTransformFallback records a transform that returned the raw series.
func (r *Recorder) RecordTransformFallback(kind string) {
	r.transformFallbacks.WithLabelValues(kind).Inc()
}

// RecordGenerationLatency records series generation latency in seconds.
func (r *Recorder) RecordGenerationLatency(seriesID string, seconds float64) {
	r.generationLatency.WithLabelValues(seriesID).Observe(seconds)
}

// RecordSignalEvent records an emitted composite signal.
func (r *Recorder) RecordSignalEvent(seriesID, signalType string) {
	r.signalEvents.WithLabelValues(seriesID, signalType).Inc()
}
