package schema

import (
	"strings"

	"github.com/starwars-explorer/swapi-graphql/errors"
	"github.com/starwars-explorer/swapi-graphql/swapi"
)

// objectType maps a resource kind to its GraphQL object type.
type objectType struct {
	name string
	wrap func(*swapi.Object) (node, error)
}

var objectTypes = map[swapi.Kind]objectType{
	swapi.KindFilms: {"Film", func(o *swapi.Object) (node, error) {
		return newFilmResolver(o)
	}},
	swapi.KindPeople: {"Person", func(o *swapi.Object) (node, error) {
		return newPersonResolver(o)
	}},
	swapi.KindPlanets: {"Planet", func(o *swapi.Object) (node, error) {
		return newPlanetResolver(o)
	}},
	swapi.KindSpecies: {"Species", func(o *swapi.Object) (node, error) {
		return newSpeciesResolver(o)
	}},
	swapi.KindStarships: {"Starship", func(o *swapi.Object) (node, error) {
		return newStarshipResolver(o)
	}},
	swapi.KindVehicles: {"Vehicle", func(o *swapi.Object) (node, error) {
		return newVehicleResolver(o)
	}},
}

// typeFor returns the object type of kind. A kind without a mapping is a bug
// in this package, so it panics; graphql-go recovers the panic and reports it
// as a field error.
func typeFor(kind swapi.Kind) objectType {
	t, ok := objectTypes[kind]
	if !ok {
		panic(errors.Configf("no GraphQL type for resource kind %q", kind))
	}
	return t
}

// checkTypes verifies that every kind maps to an object type the SDL declares
// as a Node.
func checkTypes(sdl string) error {
	for _, kind := range swapi.Kinds {
		t, ok := objectTypes[kind]
		if !ok {
			return errors.Configf("no GraphQL type for resource kind %q", kind)
		}
		if !strings.Contains(sdl, "type "+t.name+" implements Node") {
			return errors.Configf("type %s of kind %q is not a Node", t.name, kind)
		}
	}
	return nil
}
