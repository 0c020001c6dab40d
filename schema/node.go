package schema

import (
	"context"
	"strconv"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/starwars-explorer/swapi-graphql/errors"
	"github.com/starwars-explorer/swapi-graphql/loader"
	"github.com/starwars-explorer/swapi-graphql/relay"
	"github.com/starwars-explorer/swapi-graphql/swapi"
)

// node is implemented by every object type resolver.
type node interface {
	ID() graphql.ID
}

// nodeResolver resolves the Node interface to its concrete type.
type nodeResolver struct {
	node
}

func (r *nodeResolver) ToFilm() (*filmResolver, bool) {
	n, ok := r.node.(*filmResolver)
	return n, ok
}

func (r *nodeResolver) ToPerson() (*personResolver, bool) {
	n, ok := r.node.(*personResolver)
	return n, ok
}

func (r *nodeResolver) ToPlanet() (*planetResolver, bool) {
	n, ok := r.node.(*planetResolver)
	return n, ok
}

func (r *nodeResolver) ToSpecies() (*speciesResolver, bool) {
	n, ok := r.node.(*speciesResolver)
	return n, ok
}

func (r *nodeResolver) ToStarship() (*starshipResolver, bool) {
	n, ok := r.node.(*starshipResolver)
	return n, ok
}

func (r *nodeResolver) ToVehicle() (*vehicleResolver, bool) {
	n, ok := r.node.(*vehicleResolver)
	return n, ok
}

// nodeFor wraps a normalized object in the resolver of the kind its url
// names.
func nodeFor(obj *swapi.Object) (*nodeResolver, error) {
	if obj.Kind == "" {
		return nil, errors.Decodef(obj.URL, "url does not name a known resource kind")
	}
	n, err := typeFor(obj.Kind).wrap(obj)
	if err != nil {
		return nil, err
	}
	return &nodeResolver{n}, nil
}

func (r *Resolver) Node(ctx context.Context, args struct{ ID graphql.ID }) (*nodeResolver, error) {
	r.hint(ctx)
	k, local, err := relay.FromGlobalID(args.ID)
	if err != nil {
		return nil, err
	}
	kind, ok := swapi.ParseKind(k)
	if !ok {
		return nil, errors.MalformedIDf(string(args.ID), "global id names unknown type %q", k)
	}
	obj, err := r.fetch(ctx, kind, local)
	if err != nil || obj == nil {
		return nil, err
	}
	return nodeFor(obj)
}

// fetch loads one object by kind and local id. An upstream 404 yields a nil
// object and a nil error.
func (r *Resolver) fetch(ctx context.Context, kind swapi.Kind, local string) (*swapi.Object, error) {
	if !isNumeric(local) {
		return nil, errors.MalformedIDf(local, "invalid %s id %q", typeFor(kind).name, local)
	}
	return loadObject(ctx, r.client.ObjectURL(kind, local))
}

// loadObject loads and normalizes the object at url through the request's
// loader. An upstream 404 yields a nil object and a nil error.
func loadObject(ctx context.Context, url string) (*swapi.Object, error) {
	l, err := loader.For(ctx)
	if err != nil {
		return nil, err
	}
	body, err := l.Load(ctx, url)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return swapi.Normalize(body)
}

// localIDFor resolves the id argument of a singular field of the given kind.
// A global id of another kind is rejected. A purely numeric id that is not a
// global id is taken as the local id.
func localIDFor(kind swapi.Kind, id graphql.ID) (string, error) {
	k, local, err := relay.FromGlobalID(id)
	if err != nil {
		if isNumeric(string(id)) {
			return string(id), nil
		}
		return "", err
	}
	if pk, ok := swapi.ParseKind(k); !ok || pk != kind {
		return "", errors.MalformedIDf(string(id), "id %q does not refer to a %s", id, typeFor(kind).name)
	}
	return local, nil
}

func globalID(kind swapi.Kind, id int) graphql.ID {
	return relay.ToGlobalID(kind.String(), strconv.Itoa(id))
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
