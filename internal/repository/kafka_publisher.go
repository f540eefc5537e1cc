package repository

import (
	"context"

	"MacroPulse/internal/domain/models"
	domainrepo "MacroPulse/internal/domain/repository"
	"MacroPulse/pkg/kafka"
)

// KafkaSignalPublisher emits composite signal events to a Kafka topic,
// keyed by series ID for per-series ordering. It also satisfies the log
// collector's Publisher interface so aggregated error batches can ride the
// same producer.
type KafkaSignalPublisher struct {
	producer *kafka.Producer
	topic    string
	metrics  domainrepo.Metrics
}

// NewKafkaSignalPublisher creates a publisher bound to a topic.
func NewKafkaSignalPublisher(producer *kafka.Producer, topic string, metrics domainrepo.Metrics) *KafkaSignalPublisher {
	return &KafkaSignalPublisher{producer: producer, topic: topic, metrics: metrics}
}

// PublishSignal sends one signal event.
func (p *KafkaSignalPublisher) PublishSignal(ctx context.Context, event *models.SignalEvent) error {
	if event == nil {
		return nil
	}
	if err := p.producer.Publish(ctx, p.topic, []byte(event.SeriesID), event); err != nil {
		if p.metrics != nil {
			p.metrics.RecordError("kafka_publish")
		}
		return err
	}
	if p.metrics != nil {
		p.metrics.RecordSignalEvent(event.SeriesID, string(event.SignalType))
	}
	return nil
}

// PublishMessage implements the log collector Publisher interface.
func (p *KafkaSignalPublisher) PublishMessage(ctx context.Context, topic string, payload interface{}) error {
	return p.producer.Publish(ctx, topic, nil, payload)
}

// Close releases the underlying producer.
func (p *KafkaSignalPublisher) Close() error {
	return p.producer.Close()
}
