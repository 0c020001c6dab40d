// Package swapitest provides an in-memory SWAPI for tests.
package swapitest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Placeholder is replaced with the server's base url in every fixture.
const Placeholder = "{{base}}"

// Server serves fixtures keyed by request path and query, e.g.
// "/films/?page=2". Unknown paths answer 404.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	fixtures map[string]string
	statuses map[string]int
	hits     map[string]int
}

// NewServer starts a Server with the given fixtures. Call Close when done.
func NewServer(fixtures map[string]string) *Server {
	s := &Server{
		fixtures: make(map[string]string, len(fixtures)),
		statuses: make(map[string]int),
		hits:     make(map[string]int),
	}
	for k, v := range fixtures {
		s.fixtures[k] = v
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	return s
}

// BaseURL is the API root to hand to swapi.NewClient.
func (s *Server) BaseURL() string {
	return s.URL
}

// Set adds or replaces a fixture.
func (s *Server) Set(path, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fixtures[path] = body
}

// Fail makes path answer with status instead of its fixture.
func (s *Server) Fail(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[path] = status
}

// Hits returns how many times path was requested.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// TotalHits returns the number of requests served.
func (s *Server) TotalHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, h := range s.hits {
		n += h
	}
	return n
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	key := r.URL.RequestURI()

	s.mu.Lock()
	s.hits[key]++
	body, ok := s.fixtures[key]
	status := s.statuses[key]
	s.mu.Unlock()

	if status != 0 {
		http.Error(w, `{"detail":"upstream failure"}`, status)
		return
	}
	if !ok {
		http.Error(w, `{"detail":"Not found"}`, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(strings.ReplaceAll(body, Placeholder, s.URL)))
}
