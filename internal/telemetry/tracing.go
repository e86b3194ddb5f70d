// Package telemetry wires OpenTelemetry tracing and Prometheus metrics
// around each scan phase, the observability half of the ambient stack: a
// span and a counter per phase internal/scan opens (discover, resolve,
// callgraph, entrypoints), in the style of
// the teacher's pkg/tracing and pkg/poolstats, updated onto the current
// otel/sdk API in place of the pre-1.0 jaeger-exporter API those packages
// were written against.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/reachlab/depscan"

var provider *sdktrace.TracerProvider

// Bootstrap wires the process-wide tracer provider: an OTLP/gRPC exporter
// against endpoint when enabled, or a never-sample provider otherwise.
// Mirrors the teacher's Bootstrap(enabled, agentHostPort) shape; the
// returned func flushes and shuts the provider down and should be deferred
// by the caller.
func Bootstrap(ctx context.Context, enabled bool, endpoint string) (func(context.Context) error, error) {
	if !enabled {
		provider = sdktrace.NewTracerProvider(sdktrace.WithSampler(sdktrace.NeverSample()))
		otel.SetTracerProvider(provider)
		return func(context.Context) error { return nil }, nil
	}

	exp, err := otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(endpoint), otlptracegrpc.WithInsecure())
	if err != nil {
		return nil, fmt.Errorf("telemetry: build otlp exporter: %w", err)
	}
	provider = sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exp),
	)
	otel.SetTracerProvider(provider)
	return provider.Shutdown, nil
}

// Tracer returns the process tracer, falling back to the global no-op
// tracer if Bootstrap has not run (e.g. in tests).
func Tracer() trace.Tracer {
	if provider == nil {
		return otel.Tracer(tracerName)
	}
	return provider.Tracer(tracerName)
}

// HandleError records err on span and marks it failed, matching the
// teacher's HandleError helper.
func HandleError(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
