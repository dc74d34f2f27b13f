package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"

	"newsportal/config"
	"newsportal/logging"
)

const instrumentationName = "newsportal"

// Telemetry owns the meter provider and the Prometheus registry that backs
// the /metrics endpoint.
type Telemetry struct {
	Metrics  *Metrics
	handler  http.Handler
	shutdown func(context.Context) error
}

// Init builds the meter provider. With metrics disabled the returned
// Telemetry records into a no-op meter and serves no handler.
func Init(cfg *config.TelemetryConfig) (*Telemetry, error) {
	if !cfg.MetricsEnabled {
		logging.L().Info("Metrics disabled")
		m, err := NewMetrics(noop.NewMeterProvider().Meter(instrumentationName))
		if err != nil {
			return nil, err
		}
		return &Telemetry{Metrics: m, shutdown: func(context.Context) error { return nil }}, nil
	}

	res, err := resource.New(context.Background(),
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	m, err := NewMetrics(mp.Meter(instrumentationName))
	if err != nil {
		return nil, err
	}

	logging.L().Info("Prometheus exporter initialized", zap.String("service", cfg.ServiceName))

	return &Telemetry{
		Metrics:  m,
		handler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		shutdown: mp.Shutdown,
	}, nil
}

// Handler serves the Prometheus exposition, or nil when metrics are off.
func (t *Telemetry) Handler() http.Handler {
	return t.handler
}

func (t *Telemetry) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := t.shutdown(ctx); err != nil {
		logging.L().Error("Error shutting down telemetry", zap.Error(err))
	}
}
