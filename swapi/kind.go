package swapi

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/starwars-explorer/swapi-graphql/errors"
)

// Kind names one of the six SWAPI resource collections. Its value is the REST
// path segment of the collection.
type Kind string

const (
	KindFilms     Kind = "films"
	KindPeople    Kind = "people"
	KindPlanets   Kind = "planets"
	KindSpecies   Kind = "species"
	KindStarships Kind = "starships"
	KindVehicles  Kind = "vehicles"
)

// Kinds lists every resource kind in schema order.
var Kinds = []Kind{KindFilms, KindPeople, KindPlanets, KindSpecies, KindStarships, KindVehicles}

// ParseKind maps a kind name to a Kind. Matching ignores case, so the "People"
// prefix of a global id resolves like "people".
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(s))
	for _, known := range Kinds {
		if k == known {
			return k, true
		}
	}
	return "", false
}

// Path returns the REST path segment of the collection.
func (k Kind) Path() string {
	return string(k)
}

func (k Kind) String() string {
	return string(k)
}

// KindFromURL returns the kind of the resource a canonical SWAPI url points
// at, e.g. "https://swapi.dev/api/people/1/" is KindPeople.
func KindFromURL(rawURL string) (Kind, error) {
	segs, err := pathSegments(rawURL)
	if err != nil {
		return "", err
	}
	if len(segs) < 2 {
		return "", errors.Decodef(rawURL, "url has no resource kind segment")
	}
	k, ok := ParseKind(segs[len(segs)-2])
	if !ok {
		return "", errors.Decodef(rawURL, "unknown resource kind %q", segs[len(segs)-2])
	}
	return k, nil
}

// IDFromURL parses the trailing numeric path segment of a resource url.
func IDFromURL(rawURL string) (int, error) {
	segs, err := pathSegments(rawURL)
	if err != nil {
		return 0, err
	}
	if len(segs) == 0 {
		return 0, errors.Decodef(rawURL, "url has no id segment")
	}
	id, err := strconv.Atoi(segs[len(segs)-1])
	if err != nil || id < 0 {
		return 0, errors.Decodef(rawURL, "url does not end in a numeric id")
	}
	return id, nil
}

func pathSegments(rawURL string) ([]string, error) {
	if rawURL == "" {
		return nil, errors.Decodef("", "empty url")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &errors.DecodeError{URL: rawURL, Message: "unparsable url", Err: err}
	}
	var segs []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs, nil
}
