package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starwars-explorer/swapi-graphql/config"
	"github.com/starwars-explorer/swapi-graphql/swapi/swapitest"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *httptest.Server {
	t.Helper()
	upstream := swapitest.NewServer(swapitest.Fixtures())
	t.Cleanup(upstream.Close)

	cfg := config.Default()
	cfg.Upstream.BaseURL = upstream.BaseURL()
	if mutate != nil {
		mutate(cfg)
	}
	s, err := New(cfg, nil, nil)
	require.NoError(t, err)

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestRoutes(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := get(t, ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok\n", body)

	status, body = get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "GraphQLPlayground.init")

	status, _ = get(t, ts.URL+"/nope")
	assert.Equal(t, http.StatusNotFound, status)

	resp, err := http.Post(ts.URL+GraphQLPath, "application/json", strings.NewReader(`{"query": "{ planet(planetID: \"1\") { name } }"}`))
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.JSONEq(t, `{"data": {"planet": {"name": "Tatooine"}}}`, string(b))

	status, body = get(t, ts.URL+"/metrics")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `swapi_graphql_upstream_requests_total{code="200",kind="planets"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestPlaygroundDisabled(t *testing.T) {
	ts := newTestServer(t, func(c *config.Config) {
		c.HTTP.Playground = false
	})
	status, _ := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestIntrospectionDisabled(t *testing.T) {
	ts := newTestServer(t, func(c *config.Config) {
		c.GraphQL.Introspection = false
	})
	resp, err := http.Post(ts.URL+GraphQLPath, "application/json", strings.NewReader(`{"query": "{ __schema { queryType { name } } }"}`))
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.NotContains(t, string(b), `"Query"`)
}

func TestServeShutdown(t *testing.T) {
	cfg := config.Default()
	s, err := New(cfg, nil, nil)
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Serve(ctx, ln)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not shut down")
	}
}
