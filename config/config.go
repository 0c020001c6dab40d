// Package config holds the service configuration. Values come from defaults,
// an optional YAML file, SWAPI_GRAPHQL_* environment variables and command
// line flags, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/starwars-explorer/swapi-graphql/swapi"
)

// EnvPrefix prefixes every environment variable, e.g.
// SWAPI_GRAPHQL_UPSTREAM_BASEURL.
const EnvPrefix = "SWAPI_GRAPHQL"

type Config struct {
	HTTP     HTTP     `mapstructure:"http"`
	Upstream Upstream `mapstructure:"upstream"`
	Loader   Loader   `mapstructure:"loader"`
	GraphQL  GraphQL  `mapstructure:"graphql"`
	Tracing  Tracing  `mapstructure:"tracing"`
	Log      Log      `mapstructure:"log"`
}

type HTTP struct {
	Addr string `mapstructure:"addr"`
	// CacheMaxAge is the Cache-Control max-age advertised for GET queries.
	CacheMaxAge time.Duration `mapstructure:"cacheMaxAge"`
	Playground  bool          `mapstructure:"playground"`
}

type Upstream struct {
	BaseURL string `mapstructure:"baseURL"`
	// Timeout applies to each upstream request. Zero disables it.
	Timeout time.Duration `mapstructure:"timeout"`
}

type Loader struct {
	Wait               time.Duration `mapstructure:"wait"`
	BatchCapacity      int           `mapstructure:"batchCapacity"`
	MaxParallelFetches int           `mapstructure:"maxParallelFetches"`
}

type GraphQL struct {
	MaxParallelism int `mapstructure:"maxParallelism"`
	// MaxDepth limits query depth; zero means unlimited.
	MaxDepth      int  `mapstructure:"maxDepth"`
	Introspection bool `mapstructure:"introspection"`
}

type Tracing struct {
	// Tracer is one of "none", "otel" or "opentracing".
	Tracer string `mapstructure:"tracer"`
	// Endpoint is an OTLP/HTTP collector (host:port). Empty keeps the global
	// otel provider.
	Endpoint string `mapstructure:"endpoint"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		HTTP: HTTP{
			Addr:        ":8080",
			CacheMaxAge: time.Hour,
			Playground:  true,
		},
		Upstream: Upstream{
			BaseURL: swapi.DefaultBaseURL,
			Timeout: 30 * time.Second,
		},
		Loader: Loader{
			Wait:               2 * time.Millisecond,
			BatchCapacity:      100,
			MaxParallelFetches: 8,
		},
		GraphQL: GraphQL{
			MaxParallelism: 10,
			Introspection:  true,
		},
		Tracing: Tracing{Tracer: "none"},
		Log:     Log{Level: "info", Format: "json"},
	}
}

// SetDefaults registers Default() with v so that every key is known to
// viper's environment lookup.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("http.addr", d.HTTP.Addr)
	v.SetDefault("http.cacheMaxAge", d.HTTP.CacheMaxAge)
	v.SetDefault("http.playground", d.HTTP.Playground)
	v.SetDefault("upstream.baseURL", d.Upstream.BaseURL)
	v.SetDefault("upstream.timeout", d.Upstream.Timeout)
	v.SetDefault("loader.wait", d.Loader.Wait)
	v.SetDefault("loader.batchCapacity", d.Loader.BatchCapacity)
	v.SetDefault("loader.maxParallelFetches", d.Loader.MaxParallelFetches)
	v.SetDefault("graphql.maxParallelism", d.GraphQL.MaxParallelism)
	v.SetDefault("graphql.maxDepth", d.GraphQL.MaxDepth)
	v.SetDefault("graphql.introspection", d.GraphQL.Introspection)
	v.SetDefault("tracing.tracer", d.Tracing.Tracer)
	v.SetDefault("tracing.endpoint", d.Tracing.Endpoint)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// BindFlags binds the flags the serve command exposes to their keys.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, flag := range map[string]string{
		"http.addr":        "addr",
		"upstream.baseURL": "upstream",
		"log.level":        "log-level",
		"tracing.tracer":   "tracer",
	} {
		if f := fs.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Load reads the configuration from v. If file is non-empty it is merged in
// first.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects configurations the service cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Upstream.BaseURL == "":
		return fmt.Errorf("upstream.baseURL must not be empty")
	case c.Loader.BatchCapacity <= 0:
		return fmt.Errorf("loader.batchCapacity must be positive, got %d", c.Loader.BatchCapacity)
	case c.Loader.MaxParallelFetches <= 0:
		return fmt.Errorf("loader.maxParallelFetches must be positive, got %d", c.Loader.MaxParallelFetches)
	case c.Loader.Wait < 0:
		return fmt.Errorf("loader.wait must not be negative")
	case c.Upstream.Timeout < 0:
		return fmt.Errorf("upstream.timeout must not be negative")
	}
	switch c.Tracing.Tracer {
	case "none", "otel", "opentracing":
	default:
		return fmt.Errorf("tracing.tracer must be one of none, otel, opentracing; got %q", c.Tracing.Tracer)
	}
	return nil
}
