package schema

import (
	"context"
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/starwars-explorer/swapi-graphql/cache"
	"github.com/starwars-explorer/swapi-graphql/errors"
	"github.com/starwars-explorer/swapi-graphql/relay"
	"github.com/starwars-explorer/swapi-graphql/swapi"
)

// Resolver is the root Query resolver.
type Resolver struct {
	client      *swapi.Client
	cacheMaxAge time.Duration
}

// hint marks a root field as publicly cacheable for the configured max age.
func (r *Resolver) hint(ctx context.Context) {
	cache.AddHint(ctx, cache.Hint{MaxAge: cache.TTL(r.cacheMaxAge), Scope: cache.ScopePublic})
}

func (r *Resolver) AllFilms(ctx context.Context, args relay.ConnectionArgs) (*filmsConnection, error) {
	r.hint(ctx)
	c, err := connectionFromListing(ctx, r.client, swapi.KindFilms, args, newFilmResolver)
	if err != nil {
		return nil, err
	}
	return &filmsConnection{c}, nil
}

func (r *Resolver) AllPeople(ctx context.Context, args relay.ConnectionArgs) (*peopleConnection, error) {
	r.hint(ctx)
	c, err := connectionFromListing(ctx, r.client, swapi.KindPeople, args, newPersonResolver)
	if err != nil {
		return nil, err
	}
	return &peopleConnection{c}, nil
}

func (r *Resolver) AllPlanets(ctx context.Context, args relay.ConnectionArgs) (*planetsConnection, error) {
	r.hint(ctx)
	c, err := connectionFromListing(ctx, r.client, swapi.KindPlanets, args, newPlanetResolver)
	if err != nil {
		return nil, err
	}
	return &planetsConnection{c}, nil
}

func (r *Resolver) AllSpecies(ctx context.Context, args relay.ConnectionArgs) (*speciesConnection, error) {
	r.hint(ctx)
	c, err := connectionFromListing(ctx, r.client, swapi.KindSpecies, args, newSpeciesResolver)
	if err != nil {
		return nil, err
	}
	return &speciesConnection{c}, nil
}

func (r *Resolver) AllStarships(ctx context.Context, args relay.ConnectionArgs) (*starshipsConnection, error) {
	r.hint(ctx)
	c, err := connectionFromListing(ctx, r.client, swapi.KindStarships, args, newStarshipResolver)
	if err != nil {
		return nil, err
	}
	return &starshipsConnection{c}, nil
}

func (r *Resolver) AllVehicles(ctx context.Context, args relay.ConnectionArgs) (*vehiclesConnection, error) {
	r.hint(ctx)
	c, err := connectionFromListing(ctx, r.client, swapi.KindVehicles, args, newVehicleResolver)
	if err != nil {
		return nil, err
	}
	return &vehiclesConnection{c}, nil
}

func (r *Resolver) Film(ctx context.Context, args struct{ ID, FilmID *graphql.ID }) (*filmResolver, error) {
	obj, err := r.singular(ctx, swapi.KindFilms, args.ID, args.FilmID, "filmID")
	if err != nil || obj == nil {
		return nil, err
	}
	return newFilmResolver(obj)
}

func (r *Resolver) Person(ctx context.Context, args struct{ ID, PersonID *graphql.ID }) (*personResolver, error) {
	obj, err := r.singular(ctx, swapi.KindPeople, args.ID, args.PersonID, "personID")
	if err != nil || obj == nil {
		return nil, err
	}
	return newPersonResolver(obj)
}

func (r *Resolver) Planet(ctx context.Context, args struct{ ID, PlanetID *graphql.ID }) (*planetResolver, error) {
	obj, err := r.singular(ctx, swapi.KindPlanets, args.ID, args.PlanetID, "planetID")
	if err != nil || obj == nil {
		return nil, err
	}
	return newPlanetResolver(obj)
}

func (r *Resolver) Species(ctx context.Context, args struct{ ID, SpeciesID *graphql.ID }) (*speciesResolver, error) {
	obj, err := r.singular(ctx, swapi.KindSpecies, args.ID, args.SpeciesID, "speciesID")
	if err != nil || obj == nil {
		return nil, err
	}
	return newSpeciesResolver(obj)
}

func (r *Resolver) Starship(ctx context.Context, args struct{ ID, StarshipID *graphql.ID }) (*starshipResolver, error) {
	obj, err := r.singular(ctx, swapi.KindStarships, args.ID, args.StarshipID, "starshipID")
	if err != nil || obj == nil {
		return nil, err
	}
	return newStarshipResolver(obj)
}

func (r *Resolver) Vehicle(ctx context.Context, args struct{ ID, VehicleID *graphql.ID }) (*vehicleResolver, error) {
	obj, err := r.singular(ctx, swapi.KindVehicles, args.ID, args.VehicleID, "vehicleID")
	if err != nil || obj == nil {
		return nil, err
	}
	return newVehicleResolver(obj)
}

// singular resolves a field taking either a global id or a local id. id wins
// when both are given. Missing upstream objects resolve to null.
func (r *Resolver) singular(ctx context.Context, kind swapi.Kind, id, localID *graphql.ID, localName string) (*swapi.Object, error) {
	r.hint(ctx)
	var local string
	switch {
	case id != nil:
		var err error
		if local, err = localIDFor(kind, *id); err != nil {
			return nil, err
		}
	case localID != nil:
		local = string(*localID)
	default:
		return nil, errors.MalformedIDf("", "must provide id or %s", localName)
	}
	return r.fetch(ctx, kind, local)
}
