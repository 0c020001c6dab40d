package schema

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/starwars-explorer/swapi-graphql/relay"
	"github.com/starwars-explorer/swapi-graphql/swapi"
)

type speciesResolver struct {
	obj *swapi.Object
	s   swapi.Species
}

func newSpeciesResolver(obj *swapi.Object) (*speciesResolver, error) {
	r := &speciesResolver{obj: obj}
	if err := decodeAs(obj, swapi.KindSpecies, &r.s); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *speciesResolver) ID() graphql.ID {
	return globalID(swapi.KindSpecies, r.obj.ID)
}

func (r *speciesResolver) Name() *string {
	return &r.s.Name
}

func (r *speciesResolver) Classification() *string {
	return &r.s.Classification
}

func (r *speciesResolver) Designation() *string {
	return &r.s.Designation
}

func (r *speciesResolver) AverageHeight() *float64 {
	return swapi.ParseNumber(r.s.AverageHeight)
}

func (r *speciesResolver) AverageLifespan() *int32 {
	return swapi.ParseInt(r.s.AverageLifespan)
}

func (r *speciesResolver) EyeColors() *[]string {
	return list(r.s.EyeColors)
}

func (r *speciesResolver) HairColors() *[]string {
	return list(r.s.HairColors)
}

func (r *speciesResolver) SkinColors() *[]string {
	return list(r.s.SkinColors)
}

func (r *speciesResolver) Language() *string {
	return &r.s.Language
}

// Homeworld is null for species such as droids whose homeworld is null
// upstream.
func (r *speciesResolver) Homeworld(ctx context.Context) (*planetResolver, error) {
	if r.s.Homeworld == nil {
		return nil, nil
	}
	return planetAt(ctx, *r.s.Homeworld)
}

func (r *speciesResolver) PersonConnection(ctx context.Context, args relay.ConnectionArgs) (*peopleConnection, error) {
	c, err := connectionFromURLs(ctx, r.s.People, args, newPersonResolver)
	if err != nil {
		return nil, err
	}
	return &peopleConnection{c}, nil
}

func (r *speciesResolver) FilmConnection(ctx context.Context, args relay.ConnectionArgs) (*filmsConnection, error) {
	c, err := connectionFromURLs(ctx, r.s.Films, args, newFilmResolver)
	if err != nil {
		return nil, err
	}
	return &filmsConnection{c}, nil
}

func (r *speciesResolver) Created() *string {
	return &r.s.Created
}

func (r *speciesResolver) Edited() *string {
	return &r.s.Edited
}
