package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/starwars-explorer/swapi-graphql/config"
	"github.com/starwars-explorer/swapi-graphql/log"
	"github.com/starwars-explorer/swapi-graphql/server"
	"github.com/starwars-explorer/swapi-graphql/trace"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "serve the GraphQL endpoint over HTTP",
	Example: "swapi-graphql serve --addr :8080 --upstream https://swapi.dev/api",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.BindFlags(v, cmd.Flags()); err != nil {
			return err
		}
		cfg, err := config.Load(v, configFile)
		if err != nil {
			return err
		}

		logger, err := log.New(cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		tr, shutdownTracing, err := trace.Setup(ctx, cfg.Tracing, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdownTracing(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("flushing traces", zap.Error(err))
			}
		}()

		s, err := server.New(cfg, logger, tr)
		if err != nil {
			return err
		}
		logger.Info("starting",
			zap.String("upstream", cfg.Upstream.BaseURL),
			zap.String("tracer", cfg.Tracing.Tracer),
		)
		return s.Run(ctx)
	},
}

func init() {
	d := config.Default()
	serveCmd.Flags().String("addr", d.HTTP.Addr, "listen address")
	serveCmd.Flags().String("upstream", d.Upstream.BaseURL, "SWAPI base url")
	serveCmd.Flags().String("log-level", d.Log.Level, "log level (debug, info, warn, error)")
	serveCmd.Flags().String("tracer", d.Tracing.Tracer, "tracer (none, otel, opentracing)")
	rootCmd.AddCommand(serveCmd)
}
