package schema

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/starwars-explorer/swapi-graphql/relay"
	"github.com/starwars-explorer/swapi-graphql/swapi"
)

type planetResolver struct {
	obj *swapi.Object
	p   swapi.Planet
}

func newPlanetResolver(obj *swapi.Object) (*planetResolver, error) {
	r := &planetResolver{obj: obj}
	if err := decodeAs(obj, swapi.KindPlanets, &r.p); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *planetResolver) ID() graphql.ID {
	return globalID(swapi.KindPlanets, r.obj.ID)
}

func (r *planetResolver) Name() *string {
	return &r.p.Name
}

func (r *planetResolver) Diameter() *int32 {
	return swapi.ParseInt(r.p.Diameter)
}

func (r *planetResolver) RotationPeriod() *int32 {
	return swapi.ParseInt(r.p.RotationPeriod)
}

func (r *planetResolver) OrbitalPeriod() *int32 {
	return swapi.ParseInt(r.p.OrbitalPeriod)
}

func (r *planetResolver) Gravity() *string {
	return &r.p.Gravity
}

func (r *planetResolver) Population() *float64 {
	return swapi.ParseNumber(r.p.Population)
}

func (r *planetResolver) Climates() *[]string {
	return list(r.p.Climate)
}

func (r *planetResolver) Terrains() *[]string {
	return list(r.p.Terrain)
}

func (r *planetResolver) SurfaceWater() *float64 {
	return swapi.ParseNumber(r.p.SurfaceWater)
}

func (r *planetResolver) ResidentConnection(ctx context.Context, args relay.ConnectionArgs) (*peopleConnection, error) {
	c, err := connectionFromURLs(ctx, r.p.Residents, args, newPersonResolver)
	if err != nil {
		return nil, err
	}
	return &peopleConnection{c}, nil
}

func (r *planetResolver) FilmConnection(ctx context.Context, args relay.ConnectionArgs) (*filmsConnection, error) {
	c, err := connectionFromURLs(ctx, r.p.Films, args, newFilmResolver)
	if err != nil {
		return nil, err
	}
	return &filmsConnection{c}, nil
}

func (r *planetResolver) Created() *string {
	return &r.p.Created
}

func (r *planetResolver) Edited() *string {
	return &r.p.Edited
}
