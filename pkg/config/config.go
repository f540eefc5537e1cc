package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Host            string        `yaml:"host"`
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		CORS            bool          `yaml:"cors"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
	Source struct {
		// mock generates synthetic data locally; fred, bls and treasury
		// proxy the corresponding public APIs.
		Type    string        `yaml:"type"`
		Timeout time.Duration `yaml:"timeout"`
		FRED    struct {
			APIKey  string `yaml:"api_key"`
			BaseURL string `yaml:"base_url"`
		} `yaml:"fred"`
		BLS struct {
			APIKey  string `yaml:"api_key"`
			BaseURL string `yaml:"base_url"`
		} `yaml:"bls"`
		Treasury struct {
			BaseURL string `yaml:"base_url"`
		} `yaml:"treasury"`
	} `yaml:"source"`
	Retry struct {
		MaxAttempts   int           `yaml:"max_attempts"`
		InitialDelay  time.Duration `yaml:"initial_delay"`
		BackoffFactor float64       `yaml:"backoff_factor"`
	} `yaml:"retry"`
	Cache struct {
		// memory, redis or layered (memory in front of redis)
		Type      string        `yaml:"type"`
		SeriesTTL time.Duration `yaml:"series_ttl"`
		Memory    struct {
			MaxSize         int           `yaml:"max_size"`
			CleanupInterval time.Duration `yaml:"cleanup_interval"`
		} `yaml:"memory"`
		Redis struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Signals struct {
		RSIBuyThreshold  float64 `yaml:"rsi_buy_threshold"`
		RSISellThreshold float64 `yaml:"rsi_sell_threshold"`
	} `yaml:"signals"`
	Events struct {
		// none, kafka or redis
		Publisher string `yaml:"publisher"`
		Topic     string `yaml:"topic"`
		Redis     struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"events"`
	Kafka struct {
		Brokers      []string      `yaml:"brokers"`
		RequiredAcks int           `yaml:"required_acks"`
		Compression  string        `yaml:"compression"`
		MaxAttempts  int           `yaml:"max_attempts"`
		Linger       time.Duration `yaml:"linger"`
		BatchBytes   int           `yaml:"batch_bytes"`
		BatchSize    int           `yaml:"batch_size"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		Async        bool          `yaml:"async"`
	} `yaml:"kafka"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("FRED_API_KEY"); v != "" {
		c.Source.FRED.APIKey = v
	}
	if v := os.Getenv("BLS_API_KEY"); v != "" {
		c.Source.BLS.APIKey = v
	}
	if v := os.Getenv("SOURCE"); v != "" {
		c.Source.Type = v
	}
	if v := os.Getenv("CACHE"); v != "" {
		c.Cache.Type = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Cache.Redis.Host = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("EVENTS_TOPIC"); v != "" {
		c.Events.Topic = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Source.Type == "" {
		c.Source.Type = "mock"
	}
	if c.Source.Timeout == 0 {
		c.Source.Timeout = 30 * time.Second
	}
	if c.Retry.MaxAttempts == 0 {
		c.Retry.MaxAttempts = 3
	}
	if c.Retry.InitialDelay == 0 {
		c.Retry.InitialDelay = 500 * time.Millisecond
	}
	if c.Retry.BackoffFactor == 0 {
		c.Retry.BackoffFactor = 2
	}
	if c.Cache.Type == "" {
		c.Cache.Type = "memory"
	}
	if c.Cache.SeriesTTL == 0 {
		c.Cache.SeriesTTL = time.Hour
	}
	if c.Signals.RSIBuyThreshold == 0 {
		c.Signals.RSIBuyThreshold = 30
	}
	if c.Signals.RSISellThreshold == 0 {
		c.Signals.RSISellThreshold = 70
	}
	if c.Events.Publisher == "" {
		c.Events.Publisher = "none"
	}
	if c.Events.Topic == "" {
		c.Events.Topic = "macropulse.signals"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	switch c.Source.Type {
	case "mock", "fred", "bls", "treasury":
	default:
		return fmt.Errorf("source.type must be one of mock, fred, bls, treasury, got '%s'", c.Source.Type)
	}
	if c.Source.Type == "fred" && c.Source.FRED.APIKey == "" {
		return fmt.Errorf("source.fred.api_key is required for the fred source")
	}
	switch c.Cache.Type {
	case "memory", "redis", "layered":
	default:
		return fmt.Errorf("cache.type must be one of memory, redis, layered, got '%s'", c.Cache.Type)
	}
	if c.Cache.Type != "memory" && c.Cache.Redis.Host == "" {
		return fmt.Errorf("cache.redis.host is required for the %s cache", c.Cache.Type)
	}
	switch c.Events.Publisher {
	case "none":
	case "kafka":
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers cannot be empty for the kafka publisher")
		}
	case "redis":
		if c.Events.Redis.Addr == "" {
			return fmt.Errorf("events.redis.addr is required for the redis publisher")
		}
	default:
		return fmt.Errorf("events.publisher must be one of none, kafka, redis, got '%s'", c.Events.Publisher)
	}
	return nil
}
