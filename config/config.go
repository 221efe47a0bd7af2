// Package config loads service configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the configuration settings for the service.
type Config struct {
	Mongo         MongoConfig         `yaml:"mongo"`
	NATS          NATSConfig          `yaml:"nats"`
	HTTP          HTTPConfig          `yaml:"http"`
	Handicap      HandicapConfig      `yaml:"handicap"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// MongoConfig holds MongoDB configuration.
type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// NATSConfig holds NATS configuration. An empty URL selects the
// in-process event bus.
type NATSConfig struct {
	URL string `yaml:"url"`
}

// HTTPConfig holds the API server configuration.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
	// SubmitRatePerSecond bounds round submissions per client; zero
	// disables rate limiting.
	SubmitRatePerSecond float64 `yaml:"submit_rate_per_second"`
	SubmitBurst         int     `yaml:"submit_burst"`
}

// HandicapConfig holds the handicap engine parameters.
type HandicapConfig struct {
	// WindowSize is the number of most recent rounds considered when
	// recomputing the handicap index.
	WindowSize int `yaml:"window_size"`
}

// ObservabilityConfig holds configuration for observability components.
type ObservabilityConfig struct {
	MetricsAddress string `yaml:"metrics_address"`
	Environment    string `yaml:"environment"`
}

// LoadConfig loads configuration from a YAML file, then applies
// environment variable overrides. A missing file is not an error; the
// configuration is then built from environment and defaults alone.
func LoadConfig(filename string) (*Config, error) {
	cfg := &Config{}

	if data, err := os.ReadFile(filename); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if v := os.Getenv("MONGODB_URI"); v != "" {
		cfg.Mongo.URI = v
	}
	if v := os.Getenv("MONGODB_DATABASE"); v != "" {
		cfg.Mongo.Database = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Observability.MetricsAddress = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	if v := os.Getenv("HANDICAP_WINDOW_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid HANDICAP_WINDOW_SIZE %q: %w", v, err)
		}
		cfg.Handicap.WindowSize = n
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Mongo.URI == "" {
		cfg.Mongo.URI = "mongodb://localhost:27017"
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "fore_database"
	}
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.HTTP.SubmitBurst == 0 {
		cfg.HTTP.SubmitBurst = 5
	}
	if cfg.Handicap.WindowSize == 0 {
		cfg.Handicap.WindowSize = 20
	}
	if cfg.Observability.MetricsAddress == "" {
		cfg.Observability.MetricsAddress = ":9090"
	}
	if cfg.Observability.Environment == "" {
		cfg.Observability.Environment = "development"
	}
}
