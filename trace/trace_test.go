package trace_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	otelgraphql "github.com/graph-gophers/graphql-go/trace/otel"
	opentracinggraphql "github.com/graph-gophers/graphql-go/trace/opentracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/starwars-explorer/swapi-graphql/config"
	"github.com/starwars-explorer/swapi-graphql/schema"
	"github.com/starwars-explorer/swapi-graphql/trace"
)

func TestSetup(t *testing.T) {
	ctx := context.Background()

	tr, shutdown, err := trace.Setup(ctx, config.Tracing{Tracer: trace.None}, nil)
	require.NoError(t, err)
	assert.Nil(t, tr)
	assert.NoError(t, shutdown(ctx))

	tr, _, err = trace.Setup(ctx, config.Tracing{Tracer: trace.OpenTracing}, nil)
	require.NoError(t, err)
	assert.IsType(t, opentracinggraphql.Tracer{}, tr)

	tr, shutdown, err = trace.Setup(ctx, config.Tracing{Tracer: trace.OTel}, nil)
	require.NoError(t, err)
	assert.IsType(t, &otelgraphql.Tracer{}, tr)
	assert.NoError(t, shutdown(ctx))

	_, _, err = trace.Setup(ctx, config.Tracing{Tracer: "zipkin"}, nil)
	assert.Error(t, err)
}

func TestSetupExporter(t *testing.T) {
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer collector.Close()

	prev := otel.GetTracerProvider()
	defer otel.SetTracerProvider(prev)

	ctx := context.Background()
	tr, shutdown, err := trace.Setup(ctx, config.Tracing{
		Tracer:   trace.OTel,
		Endpoint: strings.TrimPrefix(collector.URL, "http://"),
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, tr)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	assert.NoError(t, shutdown(ctx))
}

func TestTracerOption(t *testing.T) {
	for _, name := range []string{trace.OTel, trace.OpenTracing} {
		tr, _, err := trace.Setup(context.Background(), config.Tracing{Tracer: name}, nil)
		require.NoError(t, err)
		_, err = schema.New(schema.Options{Tracer: tr})
		assert.NoError(t, err, name)
	}
}
