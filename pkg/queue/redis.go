package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"MacroPulse/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// RedisQueue is a Redis-list backed publisher. Consumers (the dashboard's
// notification workers) pop from the same list out of process.
type RedisQueue struct {
	logger    *logger.Logger
	client    *redis.Client
	mu        sync.RWMutex
	isRunning bool
	keyPrefix string
}

// RedisQueueOption configures RedisQueue.
type RedisQueueOption func(*RedisQueue)

// WithKeyPrefix sets custom key prefix.
func WithKeyPrefix(prefix string) RedisQueueOption {
	return func(r *RedisQueue) {
		r.keyPrefix = prefix
	}
}

// NewRedisQueue creates a new Redis queue publisher.
func NewRedisQueue(lgr *logger.Logger, client *redis.Client, opts ...RedisQueueOption) *RedisQueue {
	rq := &RedisQueue{
		logger:    lgr,
		client:    client,
		keyPrefix: "macropulse:queue",
	}

	for _, opt := range opts {
		opt(rq)
	}

	return rq
}

// Start verifies connectivity and marks the queue running.
func (r *RedisQueue) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.isRunning {
		return fmt.Errorf("queue already running")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}

	r.isRunning = true
	r.logger.Info("redis publisher started",
		logger.String("addr", r.client.Options().Addr))
	return nil
}

// Stop marks the queue stopped and releases the client.
func (r *RedisQueue) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.isRunning {
		return nil
	}
	r.isRunning = false
	return r.client.Close()
}

// Enqueue pushes a message onto the list for msgType.
func (r *RedisQueue) Enqueue(ctx context.Context, msgType string, payload interface{}) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.isRunning {
		return fmt.Errorf("queue not running")
	}

	msg := Message{
		ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	msgData, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	if err := r.client.LPush(ctx, r.getQueueKey(msgType), msgData).Err(); err != nil {
		return fmt.Errorf("lpush: %w", err)
	}

	return nil
}

// PublishMessage publishes a message (implements QueueService).
func (r *RedisQueue) PublishMessage(ctx context.Context, msgType string, payload interface{}) error {
	return r.Enqueue(ctx, msgType, payload)
}

func (r *RedisQueue) getQueueKey(msgType string) string {
	return r.keyPrefix + ":" + msgType
}
