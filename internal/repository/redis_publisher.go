package repository

import (
	"context"

	"MacroPulse/internal/domain/models"
	domainrepo "MacroPulse/internal/domain/repository"
	"MacroPulse/pkg/queue"
)

// RedisSignalPublisher pushes signal events onto a Redis list for
// deployments without a Kafka cluster.
type RedisSignalPublisher struct {
	q       *queue.RedisQueue
	topic   string
	metrics domainrepo.Metrics
}

// NewRedisSignalPublisher creates a publisher bound to a topic (list name).
func NewRedisSignalPublisher(q *queue.RedisQueue, topic string, metrics domainrepo.Metrics) *RedisSignalPublisher {
	return &RedisSignalPublisher{q: q, topic: topic, metrics: metrics}
}

// PublishSignal sends one signal event.
func (p *RedisSignalPublisher) PublishSignal(ctx context.Context, event *models.SignalEvent) error {
	if event == nil {
		return nil
	}
	if err := p.q.Enqueue(ctx, p.topic, event); err != nil {
		if p.metrics != nil {
			p.metrics.RecordError("redis_publish")
		}
		return err
	}
	if p.metrics != nil {
		p.metrics.RecordSignalEvent(event.SeriesID, string(event.SignalType))
	}
	return nil
}

// PublishMessage implements the log collector Publisher interface.
func (p *RedisSignalPublisher) PublishMessage(ctx context.Context, topic string, payload interface{}) error {
	return p.q.PublishMessage(ctx, topic, payload)
}

// Close releases the underlying queue.
func (p *RedisSignalPublisher) Close() error {
	return p.q.Stop()
}
