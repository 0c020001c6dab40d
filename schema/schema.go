// Package schema exposes SWAPI as a Relay compliant GraphQL schema.
//
// Every resource kind is an object type implementing Node, reachable through
// a singular root field, an all* connection field and the node field. Link
// lists between resources are connections resolved through the request's
// loader, which must be attached to the context of every execution with
// loader.With.
package schema

import (
	_ "embed"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/trace/tracer"
	"go.uber.org/zap"

	"github.com/starwars-explorer/swapi-graphql/log"
	"github.com/starwars-explorer/swapi-graphql/swapi"
)

// SDL is the schema definition the resolvers implement.
//
//go:embed schema.graphql
var SDL string

// Options configure New. Client is required.
type Options struct {
	Client *swapi.Client
	// CacheMaxAge is the max age root fields hint for the Cache-Control
	// header.
	CacheMaxAge time.Duration
	Logger      *zap.Logger

	MaxParallelism       int
	MaxDepth             int
	DisableIntrospection bool
	Tracer               tracer.Tracer
}

// New parses SDL against the root resolver.
func New(opts Options) (*graphql.Schema, error) {
	if err := checkTypes(SDL); err != nil {
		return nil, err
	}
	if opts.Client == nil {
		opts.Client = swapi.NewClient(swapi.DefaultBaseURL)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	schemaOpts := []graphql.SchemaOpt{
		graphql.Logger(&log.PanicLogger{Logger: opts.Logger}),
	}
	if opts.MaxParallelism > 0 {
		schemaOpts = append(schemaOpts, graphql.MaxParallelism(opts.MaxParallelism))
	}
	if opts.MaxDepth > 0 {
		schemaOpts = append(schemaOpts, graphql.MaxDepth(opts.MaxDepth))
	}
	if opts.DisableIntrospection {
		schemaOpts = append(schemaOpts, graphql.DisableIntrospection())
	}
	if opts.Tracer != nil {
		schemaOpts = append(schemaOpts, graphql.Tracer(opts.Tracer))
	}

	root := &Resolver{client: opts.Client, cacheMaxAge: opts.CacheMaxAge}
	return graphql.ParseSchema(SDL, root, schemaOpts...)
}
