// Package metrics records authentication outcomes and HTTP traffic through OpenTelemetry and
// exposes them in Prometheus format.
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// Provider owns the meter provider and the Prometheus registry it exports to.
type Provider struct {
	namespace     string
	meterProvider *metric.MeterProvider
	registry      *prometheus.Registry
}

// NewProvider builds a meter provider backed by a private registry. Besides the OpenTelemetry
// instruments the registry carries the Go runtime collector and a process collector prefixed
// with namespace, so a single scrape covers both the auth metrics and the process health.
func NewProvider(namespace string) (*Provider, error) {
	registry := prometheus.NewRegistry()

	if err := registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("failed to register go collector: %w", err)
	}
	processCollector := collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace})
	if err := registry.Register(processCollector); err != nil {
		return nil, fmt.Errorf("failed to register process collector: %w", err)
	}

	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	// Exported as target_info{service_name="<namespace>"}.
	res := resource.NewSchemaless(attribute.String("service.name", namespace))

	return &Provider{
		namespace: namespace,
		meterProvider: metric.NewMeterProvider(
			metric.WithReader(exporter),
			metric.WithResource(res),
		),
		registry: registry,
	}, nil
}

// Namespace is the prefix applied to every metric name.
func (p *Provider) Namespace() string {
	return p.namespace
}

// Handler serves the registry in Prometheus exposition format.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

func (p *Provider) MeterProvider() *metric.MeterProvider {
	return p.meterProvider
}

// Shutdown flushes and stops the meter provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	return p.meterProvider.Shutdown(ctx)
}
