package server

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"github.com/starwars-explorer/swapi-graphql/cache"
	"github.com/starwars-explorer/swapi-graphql/loader"
	"github.com/starwars-explorer/swapi-graphql/log"
	"github.com/starwars-explorer/swapi-graphql/swapi"
)

// RequestIDHeader carries the request id. An incoming value is kept, otherwise
// a ksuid is generated.
const RequestIDHeader = "X-Request-Id"

const (
	contentTypeJSON    = "application/json"
	contentTypeGraphQL = "application/graphql"
	contentTypeForm    = "application/x-www-form-urlencoded"
)

const maxRequestSize = 1 << 20

// Handler executes GraphQL operations. Every request gets its own loader, so
// nothing fetched upstream outlives the operation.
type Handler struct {
	Schema  *graphql.Schema
	Fetcher swapi.Fetcher
	Loader  loader.Options
	Logger  *zap.Logger
}

type params struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// compatParams accepts variables sent as a JSON encoded string.
type compatParams struct {
	Query         string `json:"query"`
	OperationName string `json:"operationName"`
	Variables     string `json:"variables"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(RequestIDHeader)
	if id == "" {
		id = ksuid.New().String()
	}
	w.Header().Set(RequestIDHeader, id)

	logger := h.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("request_id", id))

	p, err := parseRequest(w, r)
	if err != nil {
		logger.Debug("rejecting request", zap.Error(err))
		status := http.StatusBadRequest
		if r.Method != http.MethodGet && r.Method != http.MethodPost {
			status = http.StatusMethodNotAllowed
		}
		http.Error(w, err.Error(), status)
		return
	}

	opts := h.Loader
	opts.Logger = logger
	ctx := log.With(r.Context(), logger)
	ctx = loader.With(ctx, loader.New(h.Fetcher, opts))
	ctx, resolve := cache.Hintable(ctx)

	start := time.Now()
	response := h.Schema.Exec(ctx, p.Query, p.OperationName, p.Variables)
	hint := resolve()
	logger.Info("graphql request",
		zap.String("operation", p.OperationName),
		zap.Int("errors", len(response.Errors)),
		zap.Duration("duration", time.Since(start)),
	)

	responseJSON, err := json.Marshal(response)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	switch {
	case len(response.Errors) > 0:
		w.Header().Set("Cache-Control", "no-store")
	case r.Method == http.MethodGet:
		w.Header().Set("Cache-Control", hint.String())
	}
	w.Header().Set("Content-Type", contentTypeJSON)
	w.Write(responseJSON)
}

func parseRequest(w http.ResponseWriter, r *http.Request) (params, error) {
	switch r.Method {
	case http.MethodGet:
		return fromValues(r.URL.Query().Get)
	case http.MethodPost:
		return parseBody(w, r)
	default:
		return params{}, fmt.Errorf("unsupported HTTP method: %s", r.Method)
	}
}

func parseBody(w http.ResponseWriter, r *http.Request) (params, error) {
	body := http.MaxBytesReader(w, r.Body, maxRequestSize)
	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch contentType {
	case contentTypeGraphQL:
		b, err := io.ReadAll(body)
		if err != nil {
			return params{}, err
		}
		return params{Query: string(b)}, nil

	case contentTypeForm:
		r.Body = body
		if err := r.ParseForm(); err != nil {
			return params{}, err
		}
		return fromValues(r.PostForm.Get)

	default:
		b, err := io.ReadAll(body)
		if err != nil {
			return params{}, err
		}
		var p params
		if err := json.Unmarshal(b, &p); err != nil {
			var compat compatParams
			if json.Unmarshal(b, &compat) != nil {
				return params{}, fmt.Errorf("invalid request body: %w", err)
			}
			p = params{Query: compat.Query, OperationName: compat.OperationName}
			if err := decodeVariables(compat.Variables, &p); err != nil {
				return params{}, err
			}
		}
		if p.Query == "" {
			return params{}, fmt.Errorf("a non-empty 'query' member is required")
		}
		return p, nil
	}
}

func fromValues(get func(string) string) (params, error) {
	p := params{Query: get("query"), OperationName: get("operationName")}
	if p.Query == "" {
		return params{}, fmt.Errorf("a non-empty 'query' parameter is required")
	}
	if err := decodeVariables(get("variables"), &p); err != nil {
		return params{}, err
	}
	return p, nil
}

func decodeVariables(s string, p *params) error {
	if s == "" || s == "null" {
		return nil
	}
	if err := json.Unmarshal([]byte(s), &p.Variables); err != nil {
		return fmt.Errorf("invalid variables: %w", err)
	}
	return nil
}
