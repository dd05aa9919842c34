package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds all configuration for the CLI.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Nova Poshta
	APIKey  string        `envconfig:"NOVAPOST_API_KEY"`
	BaseURL string        `envconfig:"NOVAPOST_BASE_URL" default:"https://api.novaposhta.ua/v2.0/json/"`
	Timeout time.Duration `envconfig:"NOVAPOST_TIMEOUT" default:"30s"`
	UseMock bool          `envconfig:"NOVAPOST_USE_MOCK" default:"false"`

	// Telemetry
	OTELEnabled  bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTELEndpoint string `envconfig:"OTEL_ENDPOINT" default:"localhost:4318"`
	ServiceName  string `envconfig:"SERVICE_NAME" default:"parcelbridge-novapost"`
	Version      string `envconfig:"SERVICE_VERSION" default:"0.0.1"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// Attributes returns OpenTelemetry attributes for this configuration.
func (c *Config) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
		attribute.String("service.version", c.Version),
		attribute.Bool("novapost.use_mock", c.UseMock),
	}
}
