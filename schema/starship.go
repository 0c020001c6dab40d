package schema

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/starwars-explorer/swapi-graphql/relay"
	"github.com/starwars-explorer/swapi-graphql/swapi"
)

type starshipResolver struct {
	obj *swapi.Object
	s   swapi.Starship
}

func newStarshipResolver(obj *swapi.Object) (*starshipResolver, error) {
	r := &starshipResolver{obj: obj}
	if err := decodeAs(obj, swapi.KindStarships, &r.s); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *starshipResolver) ID() graphql.ID {
	return globalID(swapi.KindStarships, r.obj.ID)
}

func (r *starshipResolver) Name() *string {
	return &r.s.Name
}

func (r *starshipResolver) Model() *string {
	return &r.s.Model
}

func (r *starshipResolver) StarshipClass() *string {
	return &r.s.StarshipClass
}

func (r *starshipResolver) Manufacturers() *[]string {
	return list(r.s.Manufacturer)
}

func (r *starshipResolver) CostInCredits() *float64 {
	return swapi.ParseNumber(r.s.CostInCredits)
}

func (r *starshipResolver) Length() *float64 {
	return swapi.ParseNumber(r.s.Length)
}

func (r *starshipResolver) Crew() *string {
	return &r.s.Crew
}

func (r *starshipResolver) Passengers() *string {
	return &r.s.Passengers
}

func (r *starshipResolver) MaxAtmospheringSpeed() *int32 {
	return swapi.ParseInt(r.s.MaxAtmospheringSpeed)
}

func (r *starshipResolver) HyperdriveRating() *float64 {
	return swapi.ParseNumber(r.s.HyperdriveRating)
}

func (r *starshipResolver) MGLT() *int32 {
	return swapi.ParseInt(r.s.MGLT)
}

func (r *starshipResolver) CargoCapacity() *float64 {
	return swapi.ParseNumber(r.s.CargoCapacity)
}

func (r *starshipResolver) Consumables() *string {
	return &r.s.Consumables
}

func (r *starshipResolver) PilotConnection(ctx context.Context, args relay.ConnectionArgs) (*peopleConnection, error) {
	c, err := connectionFromURLs(ctx, r.s.Pilots, args, newPersonResolver)
	if err != nil {
		return nil, err
	}
	return &peopleConnection{c}, nil
}

func (r *starshipResolver) FilmConnection(ctx context.Context, args relay.ConnectionArgs) (*filmsConnection, error) {
	c, err := connectionFromURLs(ctx, r.s.Films, args, newFilmResolver)
	if err != nil {
		return nil, err
	}
	return &filmsConnection{c}, nil
}

func (r *starshipResolver) Created() *string {
	return &r.s.Created
}

func (r *starshipResolver) Edited() *string {
	return &r.s.Edited
}
