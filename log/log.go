// Package log builds the service's zap logger, carries request-scoped loggers
// through contexts and adapts zap to the graphql-go panic logger.
package log

import (
	"context"

	gqllog "github.com/graph-gophers/graphql-go/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger at the given level ("debug", "info", ...) using the
// "json" or "console" encoding.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	return cfg.Build()
}

type ctxKey struct{}

// With attaches l to ctx.
func With(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From returns the logger attached to ctx, or a no-op logger.
func From(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return zap.NewNop()
}

// PanicLogger logs panics recovered during query execution. The request
// logger in the context is preferred so the entry carries the request id.
type PanicLogger struct {
	Logger *zap.Logger
}

// LogPanic implements the graphql-go log.Logger interface.
func (l *PanicLogger) LogPanic(ctx context.Context, value interface{}) {
	logger, ok := ctx.Value(ctxKey{}).(*zap.Logger)
	if !ok || logger == nil {
		logger = l.Logger
	}
	if logger == nil {
		return
	}
	logger.Error("graphql: panic occurred", zap.Any("panic", value), zap.Stack("stack"))
}

var _ gqllog.Logger = (*PanicLogger)(nil)
