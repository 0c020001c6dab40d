// Package loader implements the request-scoped cache in front of the SWAPI
// fetcher. Loads of the same url within one GraphQL operation share a single
// upstream request; distinct urls requested within the batch window are
// dispatched together.
//
// A Loader must not outlive the operation it was created for. The server
// creates one per request and attaches it to the context with With.
package loader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/starwars-explorer/swapi-graphql/errors"
	"github.com/starwars-explorer/swapi-graphql/swapi"
)

// Options tune batching.
type Options struct {
	// Wait is how long the loader collects keys before dispatching a batch.
	Wait time.Duration
	// BatchCapacity caps the number of urls per batch.
	BatchCapacity int
	// MaxParallelFetches bounds concurrent upstream requests within a batch.
	MaxParallelFetches int
	Logger             *zap.Logger
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		Wait:               2 * time.Millisecond,
		BatchCapacity:      100,
		MaxParallelFetches: 8,
	}
}

// Loader deduplicates and batches fetches by exact url.
type Loader struct {
	dl          *dataloader.Loader[string, []byte]
	fetcher     swapi.Fetcher
	maxParallel int
	logger      *zap.Logger
}

// New returns an empty Loader backed by fetcher.
func New(fetcher swapi.Fetcher, opts Options) *Loader {
	l := &Loader{
		fetcher:     fetcher,
		maxParallel: opts.MaxParallelFetches,
		logger:      opts.Logger,
	}
	if l.maxParallel <= 0 {
		l.maxParallel = DefaultOptions().MaxParallelFetches
	}
	if l.logger == nil {
		l.logger = zap.NewNop()
	}

	dlOpts := []dataloader.Option[string, []byte]{
		dataloader.WithWait[string, []byte](opts.Wait),
	}
	if opts.BatchCapacity > 0 {
		dlOpts = append(dlOpts, dataloader.WithBatchCapacity[string, []byte](opts.BatchCapacity))
	}
	l.dl = dataloader.NewBatchedLoader(l.batch, dlOpts...)
	return l
}

// Load returns the document at url, fetching it at most once per Loader.
func (l *Loader) Load(ctx context.Context, url string) ([]byte, error) {
	return l.dl.Load(ctx, url)()
}

// LoadThunk enqueues url and returns a function that blocks for its result.
// Enqueue every url first and call the thunks afterwards so they share a
// batch.
func (l *Loader) LoadThunk(ctx context.Context, url string) func() ([]byte, error) {
	return l.dl.Load(ctx, url)
}

func (l *Loader) batch(ctx context.Context, urls []string) []*dataloader.Result[[]byte] {
	l.logger.Debug("dispatching upstream batch", zap.Int("size", len(urls)))

	results := make([]*dataloader.Result[[]byte], len(urls))
	var g errgroup.Group
	g.SetLimit(l.maxParallel)
	for i, url := range urls {
		g.Go(func() error {
			body, err := l.fetcher.Get(ctx, url)
			results[i] = &dataloader.Result[[]byte]{Data: body, Error: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

type ctxKey struct{}

// With attaches l to ctx.
func With(ctx context.Context, l *Loader) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// For returns the Loader attached to ctx. Resolving without one is a wiring
// bug and is reported as a configuration error.
func For(ctx context.Context) (*Loader, error) {
	l, ok := ctx.Value(ctxKey{}).(*Loader)
	if !ok || l == nil {
		return nil, errors.Configf("no loader in request context")
	}
	return l, nil
}
