// Package tracing manages the OpenTelemetry tracer provider for the catalog
// CLI. When tracing is disabled it hands out a no-op tracer so callers never
// branch on the configuration.
package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "catalog"

// Provider wraps the underlying TracerProvider and provides convenient
// methods for getting tracers and shutting down cleanly.
type Provider struct {
	sdkProvider *sdktrace.TracerProvider
}

// NewProvider creates a tracing provider. When enabled is false the provider
// is inert and Tracer returns a no-op tracer. When enabled, spans are
// exported to stdout in a pretty-printed form.
func NewProvider(enabled bool) (*Provider, error) {
	if !enabled {
		return &Provider{}, nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("creating stdout span exporter: %w", err)
	}

	sdkProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
	)

	return &Provider{sdkProvider: sdkProvider}, nil
}

// Tracer returns a tracer for catalog operations.
func (p *Provider) Tracer() trace.Tracer {
	if p.sdkProvider == nil {
		return noop.NewTracerProvider().Tracer(tracerName)
	}

	return p.sdkProvider.Tracer(tracerName)
}

// Enabled reports whether spans are actually exported.
func (p *Provider) Enabled() bool {
	return p.sdkProvider != nil
}

// Shutdown flushes pending spans and releases resources.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.sdkProvider == nil {
		return nil
	}

	return p.sdkProvider.Shutdown(ctx)
}
