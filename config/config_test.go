package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
http:
  addr: ":9000"
  cacheMaxAge: 5m
upstream:
  baseURL: http://localhost:8000/api
loader:
  wait: 5ms
  maxParallelFetches: 4
log:
  level: debug
`), 0o600))
	t.Setenv("SWAPI_GRAPHQL_LOADER_BATCHCAPACITY", "25")

	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	fs.String("addr", "", "")
	fs.String("upstream", "", "")
	fs.String("log-level", "", "")
	fs.String("tracer", "", "")
	require.NoError(t, fs.Parse([]string{"--tracer=otel"}))

	v := viper.New()
	require.NoError(t, BindFlags(v, fs))
	c, err := Load(v, file)
	require.NoError(t, err)

	assert.Equal(t, ":9000", c.HTTP.Addr)
	assert.Equal(t, 5*time.Minute, c.HTTP.CacheMaxAge)
	assert.Equal(t, "http://localhost:8000/api", c.Upstream.BaseURL)
	assert.Equal(t, 5*time.Millisecond, c.Loader.Wait)
	assert.Equal(t, 4, c.Loader.MaxParallelFetches)
	assert.Equal(t, 25, c.Loader.BatchCapacity)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "otel", c.Tracing.Tracer)
	assert.Equal(t, 30*time.Second, c.Upstream.Timeout)
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"empty base url":      func(c *Config) { c.Upstream.BaseURL = "" },
		"zero batch capacity": func(c *Config) { c.Loader.BatchCapacity = 0 },
		"zero parallel":       func(c *Config) { c.Loader.MaxParallelFetches = 0 },
		"negative wait":       func(c *Config) { c.Loader.Wait = -time.Millisecond },
		"unknown tracer":      func(c *Config) { c.Tracing.Tracer = "zipkin" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
	assert.NoError(t, Default().Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
