package main

import (
	"context"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel"

	"github.com/parcelbridge/novapost/internal/config"
	"github.com/parcelbridge/novapost/internal/telemetry"
	"github.com/parcelbridge/novapost/pkg/novapost"
)

func loadConfig() (*config.Config, error) {
	return config.Load()
}

func initLogger(level string) (*otelzap.Logger, error) {
	return telemetry.NewLogger(level)
}

func initTracer(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	if !cfg.OTELEnabled {
		return func(context.Context) error { return nil }, nil
	}

	_, shutdown, err := telemetry.InitTracer(ctx, cfg.OTELEndpoint, cfg.ServiceName, cfg.Version)
	return shutdown, err
}

func initClient(cfg *config.Config, logger *otelzap.Logger) *novapost.Client {
	tracer := otel.GetTracerProvider().Tracer(cfg.ServiceName)

	return novapost.New(novapost.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		UseMock: cfg.UseMock,
		Metrics: telemetry.NewMetrics(),
	}, logger, tracer)
}
