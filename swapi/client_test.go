package swapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starwars-explorer/swapi-graphql/errors"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/people/1/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{"name":"Luke Skywalker","url":"http://example/api/people/1/"}`))
	})
	mux.HandleFunc("/api/people/2/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	})
	mux.HandleFunc("/api/people/3/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientGet(t *testing.T) {
	srv := newTestServer(t)
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	c := NewClient(srv.URL+"/api/", WithMetrics(metrics))

	assert.Equal(t, srv.URL+"/api/people/", c.URL(KindPeople))
	assert.Equal(t, srv.URL+"/api/people/1/", c.ObjectURL(KindPeople, "1"))

	body, err := c.Get(context.Background(), c.ObjectURL(KindPeople, "1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Luke Skywalker","url":"http://example/api/people/1/"}`, string(body))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues("people", "200")))

	t.Run("not found", func(t *testing.T) {
		_, err := c.Get(context.Background(), c.ObjectURL(KindPeople, "999"))
		var fe *errors.FetchError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, http.StatusNotFound, fe.StatusCode)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("server error", func(t *testing.T) {
		_, err := c.Get(context.Background(), c.ObjectURL(KindPeople, "3"))
		var fe *errors.FetchError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, http.StatusInternalServerError, fe.StatusCode)
		assert.False(t, errors.IsNotFound(err))
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := c.Get(context.Background(), c.ObjectURL(KindPeople, "2"))
		var fe *errors.FetchError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, http.StatusOK, fe.StatusCode)
		assert.Contains(t, err.Error(), "not valid JSON")
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := c.Get(ctx, c.ObjectURL(KindPeople, "1"))
		var fe *errors.FetchError
		require.ErrorAs(t, err, &fe)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
