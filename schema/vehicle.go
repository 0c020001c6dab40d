package schema

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/starwars-explorer/swapi-graphql/relay"
	"github.com/starwars-explorer/swapi-graphql/swapi"
)

type vehicleResolver struct {
	obj *swapi.Object
	v   swapi.Vehicle
}

func newVehicleResolver(obj *swapi.Object) (*vehicleResolver, error) {
	r := &vehicleResolver{obj: obj}
	if err := decodeAs(obj, swapi.KindVehicles, &r.v); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *vehicleResolver) ID() graphql.ID {
	return globalID(swapi.KindVehicles, r.obj.ID)
}

func (r *vehicleResolver) Name() *string {
	return &r.v.Name
}

func (r *vehicleResolver) Model() *string {
	return &r.v.Model
}

func (r *vehicleResolver) VehicleClass() *string {
	return &r.v.VehicleClass
}

func (r *vehicleResolver) Manufacturers() *[]string {
	return list(r.v.Manufacturer)
}

func (r *vehicleResolver) CostInCredits() *float64 {
	return swapi.ParseNumber(r.v.CostInCredits)
}

func (r *vehicleResolver) Length() *float64 {
	return swapi.ParseNumber(r.v.Length)
}

func (r *vehicleResolver) Crew() *string {
	return &r.v.Crew
}

func (r *vehicleResolver) Passengers() *string {
	return &r.v.Passengers
}

func (r *vehicleResolver) MaxAtmospheringSpeed() *int32 {
	return swapi.ParseInt(r.v.MaxAtmospheringSpeed)
}

func (r *vehicleResolver) CargoCapacity() *float64 {
	return swapi.ParseNumber(r.v.CargoCapacity)
}

func (r *vehicleResolver) Consumables() *string {
	return &r.v.Consumables
}

func (r *vehicleResolver) PilotConnection(ctx context.Context, args relay.ConnectionArgs) (*peopleConnection, error) {
	c, err := connectionFromURLs(ctx, r.v.Pilots, args, newPersonResolver)
	if err != nil {
		return nil, err
	}
	return &peopleConnection{c}, nil
}

func (r *vehicleResolver) FilmConnection(ctx context.Context, args relay.ConnectionArgs) (*filmsConnection, error) {
	c, err := connectionFromURLs(ctx, r.v.Films, args, newFilmResolver)
	if err != nil {
		return nil, err
	}
	return &filmsConnection{c}, nil
}

func (r *vehicleResolver) Created() *string {
	return &r.v.Created
}

func (r *vehicleResolver) Edited() *string {
	return &r.v.Edited
}
