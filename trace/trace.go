// Package trace selects the tracer graphql-go reports query and field spans
// to and, for OpenTelemetry, installs an OTLP exporter.
package trace

import (
	"context"
	"fmt"

	otelgraphql "github.com/graph-gophers/graphql-go/trace/otel"
	opentracinggraphql "github.com/graph-gophers/graphql-go/trace/opentracing"
	"github.com/graph-gophers/graphql-go/trace/tracer"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/starwars-explorer/swapi-graphql/config"
)

// Tracer names accepted in config.Tracing.
const (
	None        = "none"
	OTel        = "otel"
	OpenTracing = "opentracing"
)

const instrumentation = "github.com/starwars-explorer/swapi-graphql"

// ShutdownFunc flushes and stops whatever Setup started.
type ShutdownFunc func(context.Context) error

func noShutdown(context.Context) error { return nil }

// Setup returns the GraphQL tracer cfg selects, nil for None. With OTel and an
// endpoint, spans are batched to an OTLP/HTTP collector through a tracer
// provider that is installed globally, so upstream request spans join the
// same traces.
func Setup(ctx context.Context, cfg config.Tracing, logger *zap.Logger) (tracer.Tracer, ShutdownFunc, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch cfg.Tracer {
	case None, "":
		return nil, noShutdown, nil

	case OpenTracing:
		logger.Info("tracing with the global opentracing tracer")
		return opentracinggraphql.Tracer{}, noShutdown, nil

	case OTel:
		shutdown := ShutdownFunc(noShutdown)
		if cfg.Endpoint != "" {
			exp, err := otlptracehttp.New(ctx,
				otlptracehttp.WithEndpoint(cfg.Endpoint),
				otlptracehttp.WithInsecure(),
			)
			if err != nil {
				return nil, nil, fmt.Errorf("create otlp exporter: %w", err)
			}
			tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))
			otel.SetTracerProvider(tp)
			shutdown = tp.Shutdown
			logger.Info("exporting traces", zap.String("endpoint", cfg.Endpoint))
		}
		return &otelgraphql.Tracer{Tracer: otel.Tracer(instrumentation)}, shutdown, nil

	default:
		return nil, nil, fmt.Errorf("unknown tracer %q", cfg.Tracer)
	}
}
