package schema

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/starwars-explorer/swapi-graphql/relay"
	"github.com/starwars-explorer/swapi-graphql/swapi"
)

type personResolver struct {
	obj *swapi.Object
	p   swapi.Person
}

func newPersonResolver(obj *swapi.Object) (*personResolver, error) {
	r := &personResolver{obj: obj}
	if err := decodeAs(obj, swapi.KindPeople, &r.p); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *personResolver) ID() graphql.ID {
	return globalID(swapi.KindPeople, r.obj.ID)
}

func (r *personResolver) Name() *string {
	return &r.p.Name
}

func (r *personResolver) BirthYear() *string {
	return &r.p.BirthYear
}

func (r *personResolver) EyeColor() *string {
	return &r.p.EyeColor
}

func (r *personResolver) Gender() *string {
	return &r.p.Gender
}

func (r *personResolver) HairColor() *string {
	return &r.p.HairColor
}

func (r *personResolver) Height() *int32 {
	return swapi.ParseInt(r.p.Height)
}

func (r *personResolver) Mass() *float64 {
	return swapi.ParseNumber(r.p.Mass)
}

func (r *personResolver) SkinColor() *string {
	return &r.p.SkinColor
}

func (r *personResolver) Homeworld(ctx context.Context) (*planetResolver, error) {
	return planetAt(ctx, r.p.Homeworld)
}

func (r *personResolver) FilmConnection(ctx context.Context, args relay.ConnectionArgs) (*filmsConnection, error) {
	c, err := connectionFromURLs(ctx, r.p.Films, args, newFilmResolver)
	if err != nil {
		return nil, err
	}
	return &filmsConnection{c}, nil
}

// Species resolves the first species the person links to. A person without
// species links, or whose species all fail to load, has a null species.
func (r *personResolver) Species(ctx context.Context) (*speciesResolver, error) {
	c, err := connectionFromURLs(ctx, r.p.Species, relay.ConnectionArgs{}, newSpeciesResolver)
	if err != nil {
		return nil, err
	}
	if len(c.nodes) == 0 {
		return nil, nil
	}
	return c.nodes[0], nil
}

func (r *personResolver) StarshipConnection(ctx context.Context, args relay.ConnectionArgs) (*starshipsConnection, error) {
	c, err := connectionFromURLs(ctx, r.p.Starships, args, newStarshipResolver)
	if err != nil {
		return nil, err
	}
	return &starshipsConnection{c}, nil
}

func (r *personResolver) VehicleConnection(ctx context.Context, args relay.ConnectionArgs) (*vehiclesConnection, error) {
	c, err := connectionFromURLs(ctx, r.p.Vehicles, args, newVehicleResolver)
	if err != nil {
		return nil, err
	}
	return &vehiclesConnection{c}, nil
}

func (r *personResolver) Created() *string {
	return &r.p.Created
}

func (r *personResolver) Edited() *string {
	return &r.p.Edited
}

// planetAt loads the planet a singular link points at. An empty link or an
// upstream 404 resolves to null; other failures fail the field.
func planetAt(ctx context.Context, url string) (*planetResolver, error) {
	if url == "" {
		return nil, nil
	}
	obj, err := loadObject(ctx, url)
	if err != nil || obj == nil {
		return nil, err
	}
	return newPlanetResolver(obj)
}
