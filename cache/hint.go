// Package cache lets resolvers declare how long their result may be cached.
// The HTTP handler folds the hints of one request into a Cache-Control
// header. Nothing is cached server side.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Scope says which caches may store a response.
type Scope int

// Cache control scopes.
const (
	ScopePublic Scope = iota
	ScopePrivate
)

// Hint says how long a resolved value stays fresh.
type Hint struct {
	MaxAge *time.Duration
	Scope  Scope
}

// String renders the Cache-Control value of the Hint.
func (h Hint) String() string {
	s := "public"
	if h.Scope == ScopePrivate {
		s = "private"
	}
	var age time.Duration
	if h.MaxAge != nil {
		age = *h.MaxAge
	}
	return fmt.Sprintf("%s, max-age=%d", s, int(age.Seconds()))
}

// TTL defines the cache duration.
func TTL(d time.Duration) *time.Duration {
	return &d
}

type ctxKey struct{}

type collector struct {
	mu    sync.Mutex
	hints []Hint
}

// AddHint records a hint for the request in ctx. It is a no-op when the
// request does not collect hints.
func AddHint(ctx context.Context, hint Hint) {
	c, ok := ctx.Value(ctxKey{}).(*collector)
	if !ok {
		return
	}
	c.mu.Lock()
	c.hints = append(c.hints, hint)
	c.mu.Unlock()
}

// Hintable extends ctx with a hint collector. Call resolve once execution is
// complete to get the combined hint.
func Hintable(ctx context.Context) (hintCtx context.Context, resolve func() Hint) {
	c := &collector{}
	return context.WithValue(ctx, ctxKey{}, c), func() Hint {
		c.mu.Lock()
		defer c.mu.Unlock()
		return combine(c.hints)
	}
}

// combine keeps the shortest max age; any private hint makes the result
// private. Without hints nothing may be cached.
func combine(hints []Hint) Hint {
	var minAge *time.Duration
	s := ScopePublic
	for _, h := range hints {
		if h.Scope == ScopePrivate {
			s = h.Scope
		}
		if h.MaxAge != nil && (minAge == nil || *h.MaxAge < *minAge) {
			minAge = h.MaxAge
		}
	}
	if minAge == nil {
		minAge = TTL(0)
	}
	return Hint{MaxAge: minAge, Scope: s}
}
