package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHintable(t *testing.T) {
	ctx, resolve := Hintable(context.Background())

	var wg sync.WaitGroup
	for _, d := range []time.Duration{time.Hour, time.Minute, 2 * time.Hour} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			AddHint(ctx, Hint{MaxAge: TTL(d), Scope: ScopePublic})
		}()
	}
	wg.Wait()

	assert.Equal(t, "public, max-age=60", resolve().String())
}

func TestPrivateWins(t *testing.T) {
	ctx, resolve := Hintable(context.Background())
	AddHint(ctx, Hint{MaxAge: TTL(time.Hour)})
	AddHint(ctx, Hint{Scope: ScopePrivate})

	assert.Equal(t, "private, max-age=3600", resolve().String())
}

func TestNoHints(t *testing.T) {
	_, resolve := Hintable(context.Background())
	assert.Equal(t, "public, max-age=0", resolve().String())
}

func TestAddHintWithoutCollector(t *testing.T) {
	assert.NotPanics(t, func() {
		AddHint(context.Background(), Hint{MaxAge: TTL(time.Hour)})
	})
}
