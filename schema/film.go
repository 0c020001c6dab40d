package schema

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/starwars-explorer/swapi-graphql/errors"
	"github.com/starwars-explorer/swapi-graphql/relay"
	"github.com/starwars-explorer/swapi-graphql/swapi"
)

type filmResolver struct {
	obj *swapi.Object
	f   swapi.Film
}

func newFilmResolver(obj *swapi.Object) (*filmResolver, error) {
	r := &filmResolver{obj: obj}
	if err := decodeAs(obj, swapi.KindFilms, &r.f); err != nil {
		return nil, err
	}
	return r, nil
}

// decodeAs decodes obj into v after checking that its url names kind.
func decodeAs(obj *swapi.Object, kind swapi.Kind, v interface{}) error {
	if obj.Kind != kind {
		return errors.Decodef(obj.URL, "expected a %s resource, got %q", kind, obj.Kind)
	}
	return obj.Decode(v)
}

func (r *filmResolver) ID() graphql.ID {
	return globalID(swapi.KindFilms, r.obj.ID)
}

func (r *filmResolver) Title() *string {
	return &r.f.Title
}

func (r *filmResolver) EpisodeID() *int32 {
	return &r.f.EpisodeID
}

func (r *filmResolver) OpeningCrawl() *string {
	return &r.f.OpeningCrawl
}

func (r *filmResolver) Director() *string {
	return &r.f.Director
}

func (r *filmResolver) Producers() *[]string {
	return list(r.f.Producer)
}

func (r *filmResolver) ReleaseDate() *string {
	return &r.f.ReleaseDate
}

func (r *filmResolver) SpeciesConnection(ctx context.Context, args relay.ConnectionArgs) (*speciesConnection, error) {
	c, err := connectionFromURLs(ctx, r.f.Species, args, newSpeciesResolver)
	if err != nil {
		return nil, err
	}
	return &speciesConnection{c}, nil
}

func (r *filmResolver) StarshipConnection(ctx context.Context, args relay.ConnectionArgs) (*starshipsConnection, error) {
	c, err := connectionFromURLs(ctx, r.f.Starships, args, newStarshipResolver)
	if err != nil {
		return nil, err
	}
	return &starshipsConnection{c}, nil
}

func (r *filmResolver) VehicleConnection(ctx context.Context, args relay.ConnectionArgs) (*vehiclesConnection, error) {
	c, err := connectionFromURLs(ctx, r.f.Vehicles, args, newVehicleResolver)
	if err != nil {
		return nil, err
	}
	return &vehiclesConnection{c}, nil
}

func (r *filmResolver) CharacterConnection(ctx context.Context, args relay.ConnectionArgs) (*peopleConnection, error) {
	c, err := connectionFromURLs(ctx, r.f.Characters, args, newPersonResolver)
	if err != nil {
		return nil, err
	}
	return &peopleConnection{c}, nil
}

func (r *filmResolver) PlanetConnection(ctx context.Context, args relay.ConnectionArgs) (*planetsConnection, error) {
	c, err := connectionFromURLs(ctx, r.f.Planets, args, newPlanetResolver)
	if err != nil {
		return nil, err
	}
	return &planetsConnection{c}, nil
}

func (r *filmResolver) Created() *string {
	return &r.f.Created
}

func (r *filmResolver) Edited() *string {
	return &r.f.Edited
}

// list renders a comma separated field as a GraphQL list.
func list(s string) *[]string {
	l := swapi.SplitList(s)
	return &l
}
