// Package tracing configures the OpenTelemetry tracer provider.
package tracing

import (
	"context"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config controls tracer provider setup.
type Config struct {
	Enabled     bool
	ServiceName string
	// Writer receives exported spans. Defaults to stdout.
	Writer io.Writer
}

// Provider wraps the tracer provider and its shutdown hook.
type Provider struct {
	enabled bool
	tp      trace.TracerProvider
	sdk     *sdktrace.TracerProvider
}

// New builds a Provider. A disabled config yields a no-op provider and leaves
// the otel globals untouched.
func New(cfg Config) (*Provider, error) {
	if !cfg.Enabled {
		return &Provider{tp: noop.NewTracerProvider()}, nil
	}

	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, err
	}

	res := resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName))

	sdk := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(sdk)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Provider{
		enabled: true,
		tp:      sdk,
		sdk:     sdk,
	}, nil
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool { return p.enabled }

// TracerProvider returns the provider to hand to instrumentation.
func (p *Provider) TracerProvider() trace.TracerProvider { return p.tp }

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.sdk == nil {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}
