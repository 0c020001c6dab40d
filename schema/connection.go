package schema

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/starwars-explorer/swapi-graphql/errors"
	"github.com/starwars-explorer/swapi-graphql/loader"
	"github.com/starwars-explorer/swapi-graphql/log"
	"github.com/starwars-explorer/swapi-graphql/relay"
	"github.com/starwars-explorer/swapi-graphql/swapi"
)

// maxListingPages stops a listing whose next pointers never terminate.
const maxListingPages = 1000

// connection is a page over the full, ID-ordered array of resolved nodes.
type connection[T any] struct {
	nodes  []T
	window relay.Window
}

func newConnection[T any](nodes []T, args relay.ConnectionArgs) (*connection[T], error) {
	w, err := relay.Paginate(len(nodes), args)
	if err != nil {
		return nil, err
	}
	return &connection[T]{nodes: nodes, window: w}, nil
}

func (c *connection[T]) TotalCount() int32 {
	return int32(len(c.nodes))
}

func (c *connection[T]) PageInfo() *pageInfoResolver {
	p := &pageInfoResolver{
		hasNextPage:     c.window.HasNextPage,
		hasPreviousPage: c.window.HasPreviousPage,
	}
	if c.window.Len() > 0 {
		start := relay.OffsetToCursor(c.window.Start)
		end := relay.OffsetToCursor(c.window.End - 1)
		p.startCursor, p.endCursor = &start, &end
	}
	return p
}

func (c *connection[T]) Edges() *[]*edge[T] {
	edges := make([]*edge[T], 0, c.window.Len())
	for i := c.window.Start; i < c.window.End; i++ {
		edges = append(edges, &edge[T]{node: c.nodes[i], cursor: relay.OffsetToCursor(i)})
	}
	return &edges
}

func (c *connection[T]) list() *[]T {
	page := c.nodes[c.window.Start:c.window.End]
	return &page
}

type edge[T any] struct {
	node   T
	cursor string
}

func (e *edge[T]) Node() T {
	return e.node
}

func (e *edge[T]) Cursor() string {
	return e.cursor
}

type pageInfoResolver struct {
	hasNextPage     bool
	hasPreviousPage bool
	startCursor     *string
	endCursor       *string
}

func (r *pageInfoResolver) HasNextPage() bool {
	return r.hasNextPage
}

func (r *pageInfoResolver) HasPreviousPage() bool {
	return r.hasPreviousPage
}

func (r *pageInfoResolver) StartCursor() *string {
	return r.startCursor
}

func (r *pageInfoResolver) EndCursor() *string {
	return r.endCursor
}

// The named connection types add the shortcut list field of each kind.

type filmsConnection struct{ *connection[*filmResolver] }

func (c filmsConnection) Films() *[]*filmResolver { return c.list() }

type peopleConnection struct{ *connection[*personResolver] }

func (c peopleConnection) People() *[]*personResolver { return c.list() }

type planetsConnection struct{ *connection[*planetResolver] }

func (c planetsConnection) Planets() *[]*planetResolver { return c.list() }

type speciesConnection struct{ *connection[*speciesResolver] }

func (c speciesConnection) Species() *[]*speciesResolver { return c.list() }

type starshipsConnection struct{ *connection[*starshipResolver] }

func (c starshipsConnection) Starships() *[]*starshipResolver { return c.list() }

type vehiclesConnection struct{ *connection[*vehicleResolver] }

func (c vehiclesConnection) Vehicles() *[]*vehicleResolver { return c.list() }

// connectionFromListing builds a connection over a whole collection. Listing
// pages are followed one after another because each next pointer is only
// known once its page has arrived. Any failure fails the field: without every
// page the total count and the order are unknown.
func connectionFromListing[T any](ctx context.Context, client *swapi.Client, kind swapi.Kind, args relay.ConnectionArgs, wrap func(*swapi.Object) (T, error)) (*connection[T], error) {
	l, err := loader.For(ctx)
	if err != nil {
		return nil, err
	}

	var objs []*swapi.Object
	seen := make(map[string]bool)
	for next := client.URL(kind); next != ""; {
		if seen[next] || len(seen) == maxListingPages {
			return nil, errors.Decodef(next, "listing of %s does not terminate", kind)
		}
		seen[next] = true

		body, err := l.Load(ctx, next)
		if err != nil {
			return nil, err
		}
		page, err := swapi.ParsePage(body)
		if err != nil {
			return nil, err
		}
		if objs == nil && page.Count > 0 {
			objs = make([]*swapi.Object, 0, page.Count)
		}
		objs = append(objs, page.Items...)
		next = page.Next
	}
	sortByID(objs)

	nodes := make([]T, 0, len(objs))
	for _, obj := range objs {
		n, err := wrap(obj)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return newConnection(nodes, args)
}

// connectionFromURLs builds a connection over cross-reference urls. All urls
// are enqueued on the loader before any result is awaited so they share
// batches. A link that fails to load or decode is dropped with a warning and
// does not count towards totalCount.
func connectionFromURLs[T any](ctx context.Context, urls []string, args relay.ConnectionArgs, wrap func(*swapi.Object) (T, error)) (*connection[T], error) {
	l, err := loader.For(ctx)
	if err != nil {
		return nil, err
	}

	thunks := make([]func() ([]byte, error), len(urls))
	for i, u := range urls {
		thunks[i] = l.LoadThunk(ctx, u)
	}

	type resolved struct {
		obj  *swapi.Object
		node T
	}
	var items []resolved
	for i, thunk := range thunks {
		obj, err := normalizeThunk(thunk)
		var n T
		if err == nil {
			n, err = wrap(obj)
		}
		if err != nil {
			log.From(ctx).Warn("dropping unresolved link", zap.String("url", urls[i]), zap.Error(err))
			continue
		}
		items = append(items, resolved{obj: obj, node: n})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].obj.ID < items[j].obj.ID
	})
	nodes := make([]T, len(items))
	for i, it := range items {
		nodes[i] = it.node
	}
	return newConnection(nodes, args)
}

func normalizeThunk(thunk func() ([]byte, error)) (*swapi.Object, error) {
	body, err := thunk()
	if err != nil {
		return nil, err
	}
	return swapi.Normalize(body)
}

func sortByID(objs []*swapi.Object) {
	sort.SliceStable(objs, func(i, j int) bool {
		return objs[i].ID < objs[j].ID
	})
}
