// Package metrics wires OpenTelemetry instruments to a Prometheus registry.
// The dashboard has no HTTP listener, so collected metrics are exported by
// writing the registry to a node-exporter compatible textfile.
package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Provider bundles an OpenTelemetry MeterProvider with the Prometheus registry
// its exporter feeds.
type Provider struct {
	*sdkmetric.MeterProvider

	registry *prometheus.Registry
}

// NewProvider creates a MeterProvider whose readings are exposed through a
// fresh Prometheus registry.
func NewProvider() (*Provider, error) {
	registry := prometheus.NewRegistry()

	exp, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return &Provider{
		MeterProvider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)),
		registry:      registry,
	}, nil
}

// Registry returns the Prometheus registry backing the provider.
func (p *Provider) Registry() *prometheus.Registry { return p.registry }

// WriteTextfile writes the current state of all instruments to path in the
// Prometheus text exposition format. The file is replaced atomically.
func (p *Provider) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, p.registry); err != nil {
		return fmt.Errorf("could not write metrics textfile: %w", err)
	}

	return nil
}

// Shutdown flushes and stops the MeterProvider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if err := p.MeterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not shutdown meter provider: %w", err)
	}

	return nil
}
