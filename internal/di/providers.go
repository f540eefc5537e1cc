package di

import (
	"fmt"
	"time"

	domrepo "MacroPulse/internal/domain/repository"
	"MacroPulse/internal/handler/api"
	internalrepo "MacroPulse/internal/repository"
	"MacroPulse/internal/service/generator"
	"MacroPulse/internal/service/providers"
	"MacroPulse/internal/service/signals"
	"MacroPulse/internal/service/transform"
	"MacroPulse/internal/usecase"
	pkgcache "MacroPulse/pkg/cache"
	"MacroPulse/pkg/config"
	xhttp "MacroPulse/pkg/http"
	pkgkafka "MacroPulse/pkg/kafka"
	applogger "MacroPulse/pkg/logger"
	"MacroPulse/pkg/metrics"
	"MacroPulse/pkg/queue"
	"MacroPulse/pkg/retry"
	"MacroPulse/pkg/server"

	"github.com/redis/go-redis/v9"
)

// ProvideLogger creates the structured logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	format := "json"
	if cfg.Logging.Pretty {
		format = "console"
	}
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: format,
		Output: "stdout",
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideCache builds the configured cache service.
func ProvideCache(cfg *config.Config) (pkgcache.Service, error) {
	memOpts := []pkgcache.MemoryOption{
		pkgcache.WithMemoryDefaultTTL(cfg.Cache.SeriesTTL),
	}
	if cfg.Cache.Memory.MaxSize > 0 {
		memOpts = append(memOpts, pkgcache.WithMemoryMaxSize(cfg.Cache.Memory.MaxSize))
	}
	if cfg.Cache.Memory.CleanupInterval > 0 {
		memOpts = append(memOpts, pkgcache.WithMemoryCleanup(cfg.Cache.Memory.CleanupInterval))
	}

	switch cfg.Cache.Type {
	case "memory":
		return pkgcache.NewMemoryCache(memOpts...), nil
	case "redis", "layered":
		rc, err := pkgcache.NewRedisCache(
			pkgcache.WithRedisHost(cfg.Cache.Redis.Host),
			pkgcache.WithRedisPort(cfg.Cache.Redis.Port),
			pkgcache.WithRedisPassword(cfg.Cache.Redis.Password),
			pkgcache.WithRedisDB(cfg.Cache.Redis.DB),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		if cfg.Cache.Type == "redis" {
			return rc, nil
		}
		return pkgcache.NewLayeredCache(rc, memOpts...), nil
	}
	return nil, fmt.Errorf("unknown cache type %q", cfg.Cache.Type)
}

// ProvideSource selects the data source configured in source.type.
func ProvideSource(cfg *config.Config, c pkgcache.Service, m domrepo.Metrics, l *applogger.Logger) (domrepo.SeriesSource, error) {
	client := xhttp.NewClient(xhttp.WithTimeout(cfg.Source.Timeout))

	switch cfg.Source.Type {
	case "mock":
		return generator.New(c, l, m, cfg.Cache.SeriesTTL), nil
	case "fred":
		return providers.NewFRED(client, cfg.Source.FRED.BaseURL, cfg.Source.FRED.APIKey, l), nil
	case "bls":
		return providers.NewBLS(client, cfg.Source.BLS.BaseURL, cfg.Source.BLS.APIKey, l), nil
	case "treasury":
		return providers.NewTreasury(client, cfg.Source.Treasury.BaseURL, l), nil
	}
	return nil, fmt.Errorf("unknown source type %q", cfg.Source.Type)
}

// ProvideKafkaProducer creates a Kafka producer, or nil when the kafka
// publisher is not selected.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if cfg.Events.Publisher != "kafka" {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Linger),
		pkgkafka.WithWriteTimeout(cfg.Kafka.WriteTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Async),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvidePublisher builds the configured signal publisher. With publisher
// "none" it returns nil, which disables event emission.
func ProvidePublisher(producer *pkgkafka.Producer, cfg *config.Config, m domrepo.Metrics, l *applogger.Logger) (domrepo.SignalPublisher, error) {
	var pub interface {
		domrepo.SignalPublisher
		applogger.Publisher
	}

	switch cfg.Events.Publisher {
	case "kafka":
		pub = internalrepo.NewKafkaSignalPublisher(producer, cfg.Events.Topic, m)
	case "redis":
		q := queue.NewRedisQueue(l, redis.NewClient(&redis.Options{
			Addr:     cfg.Events.Redis.Addr,
			Password: cfg.Events.Redis.Password,
			DB:       cfg.Events.Redis.DB,
		}))
		if err := q.Start(); err != nil {
			return nil, fmt.Errorf("redis queue: %w", err)
		}
		pub = internalrepo.NewRedisSignalPublisher(q, cfg.Events.Topic, m)
	default:
		return nil, nil
	}

	// aggregated error batches ride the same publisher
	l.AddCollector(&applogger.CollectionConfig{
		TimeInterval:   time.Minute,
		CountThreshold: 100,
		Topic:          cfg.Events.Topic + ".errors",
		Publisher:      pub,
	})
	return pub, nil
}

// ProvideSeriesService builds the pipeline use case.
func ProvideSeriesService(
	cfg *config.Config,
	source domrepo.SeriesSource,
	c pkgcache.Service,
	publisher domrepo.SignalPublisher,
	m domrepo.Metrics,
	l *applogger.Logger,
) *usecase.SeriesService {
	return usecase.NewSeriesService(
		source,
		c,
		transform.New(l, m),
		signals.New(signals.Config{
			RSIBuyThreshold:  cfg.Signals.RSIBuyThreshold,
			RSISellThreshold: cfg.Signals.RSISellThreshold,
		}, l),
		publisher,
		m,
		retry.Options{
			MaxAttempts:   cfg.Retry.MaxAttempts,
			BackoffFactor: cfg.Retry.BackoffFactor,
			InitialDelay:  cfg.Retry.InitialDelay,
		},
		cfg.Cache.SeriesTTL,
		l,
	)
}

// ProvideHTTPHandler bundles the REST and websocket handlers.
func ProvideHTTPHandler(svc *usecase.SeriesService, l *applogger.Logger) xhttp.Handler {
	return api.NewRouter(
		api.NewSeriesHandler(svc, l),
		api.NewStreamHandler(svc, l),
	)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	handler xhttp.Handler,
	c pkgcache.Service,
	publisher domrepo.SignalPublisher,
) *server.App {
	return server.New(cfg, l, handler, c, publisher)
}
