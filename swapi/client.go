// Package swapi talks to the Star Wars REST API: it fetches JSON documents,
// normalizes resource payloads and converts SWAPI's string-encoded values.
package swapi

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/starwars-explorer/swapi-graphql/errors"
)

// DefaultBaseURL is the public SWAPI endpoint.
const DefaultBaseURL = "https://swapi.dev/api"

// maxBodySize bounds a single upstream document.
const maxBodySize = 8 << 20

// Fetcher retrieves the JSON document at a url.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client is the backend fetcher. It holds no cache; deduplication is the job
// of the request-scoped loader.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *Metrics
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets a per-request timeout on the default http.Client. Zero
// disables it.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient = &http.Client{Timeout: d}
	}
}

// WithMetrics records every GET on m.
func WithMetrics(m *Metrics) Option {
	return func(client *Client) {
		client.metrics = m
	}
}

// NewClient returns a Client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		tracer:     otel.Tracer("github.com/starwars-explorer/swapi-graphql/swapi"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the listing url of a collection.
func (c *Client) URL(kind Kind) string {
	return c.baseURL + "/" + kind.Path() + "/"
}

// ObjectURL returns the url of a single resource.
func (c *Client) ObjectURL(kind Kind, id string) string {
	return c.baseURL + "/" + kind.Path() + "/" + id + "/"
}

// Get issues a GET for url and returns the body. Non-success statuses,
// transport failures and bodies that are not JSON are reported as
// *errors.FetchError.
func (c *Client) Get(ctx context.Context, url string) (body []byte, err error) {
	kind := "unknown"
	if k, kerr := KindFromURL(url); kerr == nil {
		kind = k.String()
	} else if k, ok := listingKind(url); ok {
		kind = k.String()
	}

	ctx, span := c.tracer.Start(ctx, "swapi.Get", trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(attribute.String("http.url", url), attribute.String("swapi.kind", kind))
	start := time.Now()
	status := 0
	defer func() {
		c.metrics.observe(kind, status, time.Since(start))
		if status != 0 {
			span.SetAttributes(attribute.Int("http.status_code", status))
		}
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &errors.FetchError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errors.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &errors.FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &errors.FetchError{URL: url, StatusCode: resp.StatusCode, Err: errors.Wrap(err, "read body")}
	}
	if !gjson.ValidBytes(body) {
		return nil, &errors.FetchError{URL: url, StatusCode: resp.StatusCode, Err: errors.New("response body is not valid JSON")}
	}
	return body, nil
}

// listingKind recognizes collection urls such as ".../films/?page=2".
func listingKind(rawURL string) (Kind, bool) {
	segs, err := pathSegments(rawURL)
	if err != nil || len(segs) == 0 {
		return "", false
	}
	return ParseKind(segs[len(segs)-1])
}

var _ Fetcher = (*Client)(nil)
