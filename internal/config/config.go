package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig controls the demo HTTP server's listen address.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// HTTPClientConfig tunes the fetcher every engine adapter shares.
type HTTPClientConfig struct {
	TimeoutMs int    `yaml:"timeoutMs"`
	UserAgent string `yaml:"userAgent"` // not read: engines always pick from their own random pool
}

// EngineConfig toggles one of the built-in engine adapters by name.
type EngineConfig struct {
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
}

// AggregatorConfig tunes the fan-out/merge/score pipeline.
type AggregatorConfig struct {
	TimeoutMs    int `yaml:"timeoutMs"`
	ParseWorkers int `yaml:"parseWorkers"` // 0 means runtime.NumCPU()
}

// RefinerConfig describes an optional external reranking collaborator.
// Sieve ships no refiner implementation of its own. Validate checks these
// fields when Enabled; cmd/sieve-server does not read them and installs
// no refiner.
type RefinerConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Endpoint   string `yaml:"endpoint"`
	MaxResults int    `yaml:"maxResults"`
	TimeoutMs  int    `yaml:"timeoutMs"`
}

// RedisConfig backs the demo server's rate limiter.
type RedisConfig struct {
	URL string `yaml:"url"`
}

// RateLimitConfig bounds how many searches a client may issue.
type RateLimitConfig struct {
	Enabled          bool `yaml:"enabled"`
	DefaultPerMinute int  `yaml:"defaultPerMinute"`
}

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	HTTPClient HTTPClientConfig `yaml:"httpClient"`
	Engines    []EngineConfig   `yaml:"engines"`
	Aggregator AggregatorConfig `yaml:"aggregator"`
	Refiner    RefinerConfig    `yaml:"refiner"`
	Redis      RedisConfig      `yaml:"redis"`
	RateLimit  RateLimitConfig  `yaml:"ratelimit"`
}

// Load reads and decodes the YAML config file at path, fatally exiting on
// any error so misconfiguration is caught at startup rather than mid-run.
func Load(path string) *Config {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("failed to open config file: %v", err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		log.Fatalf("failed to decode config: %v", err)
	}

	return &cfg
}

// AggregatorTimeout returns the configured per-engine timeout, defaulting
// to 10 seconds when unset.
func (cfg *Config) AggregatorTimeout() time.Duration {
	if cfg.Aggregator.TimeoutMs <= 0 {
		return 10 * time.Second
	}
	return time.Duration(cfg.Aggregator.TimeoutMs) * time.Millisecond
}

// EnabledEngineNames returns the names of every engine entry with
// Enabled set, in configuration order.
func (cfg *Config) EnabledEngineNames() []string {
	names := make([]string, 0, len(cfg.Engines))
	for _, e := range cfg.Engines {
		if e.Enabled {
			names = append(names, e.Name)
		}
	}
	return names
}

// Validate performs basic sanity checks on the loaded configuration.
// It focuses on making sure the pipeline has something to do and the
// optional refiner collaborator is fully configured when turned on,
// so obviously broken setups fail fast at startup rather than on the
// first search.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if len(cfg.EnabledEngineNames()) == 0 {
		return errors.New("no engines are enabled; at least one entry under engines must have enabled: true")
	}

	if cfg.Refiner.Enabled {
		if strings.TrimSpace(cfg.Refiner.Endpoint) == "" {
			return errors.New("refiner.enabled is true but refiner.endpoint is empty")
		}
		if cfg.Refiner.MaxResults <= 0 {
			return fmt.Errorf("refiner.maxResults must be positive, got %d", cfg.Refiner.MaxResults)
		}
	}

	if cfg.RateLimit.Enabled && strings.TrimSpace(cfg.Redis.URL) == "" {
		return errors.New("ratelimit.enabled is true but redis.url is empty")
	}

	return nil
}
