package loader

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/starwars-explorer/swapi-graphql/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingFetcher struct {
	mu    sync.Mutex
	calls map[string]int
	fail  map[string]error
}

func newCountingFetcher() *countingFetcher {
	return &countingFetcher{calls: map[string]int{}, fail: map[string]error{}}
}

func (f *countingFetcher) Get(ctx context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	f.calls[url]++
	err := f.fail[url]
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf(`{"url":%q}`, url)), nil
}

func (f *countingFetcher) count(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[url]
}

func TestLoadDeduplicates(t *testing.T) {
	f := newCountingFetcher()
	l := New(f, DefaultOptions())
	ctx := context.Background()
	const url = "https://swapi.dev/api/people/1/"

	var wg sync.WaitGroup
	bodies := make([][]byte, 10)
	for i := range bodies {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := l.Load(ctx, url)
			assert.NoError(t, err)
			bodies[i] = b
		}()
	}
	wg.Wait()

	again, err := l.Load(ctx, url)
	require.NoError(t, err)

	assert.Equal(t, 1, f.count(url))
	for _, b := range bodies {
		assert.Equal(t, again, b)
	}
}

func TestLoadDistinguishesURLs(t *testing.T) {
	f := newCountingFetcher()
	l := New(f, DefaultOptions())
	ctx := context.Background()

	_, err := l.Load(ctx, "https://swapi.dev/api/people/1/")
	require.NoError(t, err)
	_, err = l.Load(ctx, "https://swapi.dev/api/people/1")
	require.NoError(t, err)

	assert.Equal(t, 1, f.count("https://swapi.dev/api/people/1/"))
	assert.Equal(t, 1, f.count("https://swapi.dev/api/people/1"))
}

func TestLoadThunksShareBatch(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	f := newCountingFetcher()
	opts := DefaultOptions()
	opts.Wait = 20 * time.Millisecond
	opts.Logger = zap.New(core)
	l := New(f, opts)
	ctx := context.Background()

	urls := []string{
		"https://swapi.dev/api/films/1/",
		"https://swapi.dev/api/films/2/",
		"https://swapi.dev/api/films/3/",
	}
	var thunks []func() ([]byte, error)
	for _, u := range urls {
		thunks = append(thunks, l.LoadThunk(ctx, u))
	}
	for i, thunk := range thunks {
		b, err := thunk()
		require.NoError(t, err)
		assert.JSONEq(t, fmt.Sprintf(`{"url":%q}`, urls[i]), string(b))
	}

	batches := logs.FilterMessage("dispatching upstream batch").All()
	require.Len(t, batches, 1)
	assert.Equal(t, int64(3), batches[0].ContextMap()["size"])
}

func TestLoadErrorIsPerURL(t *testing.T) {
	f := newCountingFetcher()
	broken := "https://swapi.dev/api/planets/2/"
	f.fail[broken] = &errors.FetchError{URL: broken, StatusCode: 500}
	l := New(f, DefaultOptions())
	ctx := context.Background()

	good := l.LoadThunk(ctx, "https://swapi.dev/api/planets/1/")
	bad := l.LoadThunk(ctx, broken)

	_, err := good()
	require.NoError(t, err)
	_, err = bad()
	var fe *errors.FetchError
	require.ErrorAs(t, err, &fe)

	_, err = l.Load(ctx, broken)
	require.Error(t, err)
}

func TestLoadersDoNotShareState(t *testing.T) {
	f := newCountingFetcher()
	const url = "https://swapi.dev/api/species/1/"
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := New(f, DefaultOptions()).Load(ctx, url)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, f.count(url))
}

func TestFor(t *testing.T) {
	_, err := For(context.Background())
	var ce *errors.ConfigError
	require.ErrorAs(t, err, &ce)

	l := New(newCountingFetcher(), DefaultOptions())
	got, err := For(With(context.Background(), l))
	require.NoError(t, err)
	assert.Same(t, l, got)
}
