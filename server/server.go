// Package server exposes the schema over HTTP together with the playground,
// Prometheus metrics and a liveness probe.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/graph-gophers/graphql-go/trace/tracer"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/starwars-explorer/swapi-graphql/config"
	"github.com/starwars-explorer/swapi-graphql/loader"
	"github.com/starwars-explorer/swapi-graphql/playground"
	"github.com/starwars-explorer/swapi-graphql/schema"
	"github.com/starwars-explorer/swapi-graphql/swapi"
)

// GraphQLPath is where queries are served.
const GraphQLPath = "/graphql"

const shutdownTimeout = 10 * time.Second

type Server struct {
	cfg     *config.Config
	logger  *zap.Logger
	handler http.Handler
}

// New wires the upstream client, the schema and the HTTP routes. tr may be
// nil.
func New(cfg *config.Config, logger *zap.Logger, tr tracer.Tracer) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	client := swapi.NewClient(cfg.Upstream.BaseURL,
		swapi.WithTimeout(cfg.Upstream.Timeout),
		swapi.WithMetrics(swapi.NewMetrics(reg)),
	)
	s, err := schema.New(schema.Options{
		Client:               client,
		CacheMaxAge:          cfg.HTTP.CacheMaxAge,
		Logger:               logger,
		MaxParallelism:       cfg.GraphQL.MaxParallelism,
		MaxDepth:             cfg.GraphQL.MaxDepth,
		DisableIntrospection: !cfg.GraphQL.Introspection,
		Tracer:               tr,
	})
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle(GraphQLPath, &Handler{
		Schema:  s,
		Fetcher: client,
		Loader: loader.Options{
			Wait:               cfg.Loader.Wait,
			BatchCapacity:      cfg.Loader.BatchCapacity,
			MaxParallelFetches: cfg.Loader.MaxParallelFetches,
		},
		Logger: logger,
	})
	if cfg.HTTP.Playground {
		pg, err := playground.Handler(GraphQLPath)
		if err != nil {
			return nil, err
		}
		mux.Handle("GET /{$}", pg)
	}
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})

	return &Server{cfg: cfg, logger: logger, handler: mux}, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address until ctx is done, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.HTTP.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", ln.Addr().String()))
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != http.ErrServerClosed {
		return err
	}
	return nil
}
