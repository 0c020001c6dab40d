// Package relay implements the Relay conventions the schema relies on: opaque
// global object identifiers and offset cursors for connections.
package relay

import (
	"encoding/base64"
	"strings"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/starwars-explorer/swapi-graphql/errors"
)

// ToGlobalID encodes a kind and a kind-local id as base64("kind:localID").
// kind must not contain a colon.
func ToGlobalID(kind string, localID string) graphql.ID {
	return graphql.ID(base64.StdEncoding.EncodeToString([]byte(kind + ":" + localID)))
}

// FromGlobalID decodes an id produced by ToGlobalID. Anything that does not
// decode to a non-empty kind and local id is a *errors.MalformedIDError.
func FromGlobalID(id graphql.ID) (kind string, localID string, err error) {
	b, err := base64.StdEncoding.DecodeString(string(id))
	if err != nil {
		return "", "", &errors.MalformedIDError{ID: string(id), Message: "invalid global id", Err: err}
	}
	s := string(b)
	i := strings.IndexByte(s, ':')
	if i == -1 {
		return "", "", errors.MalformedIDf(string(id), "invalid global id: no kind separator")
	}
	kind, localID = s[:i], s[i+1:]
	if kind == "" || localID == "" {
		return "", "", errors.MalformedIDf(string(id), "invalid global id: empty kind or local id")
	}
	return kind, localID, nil
}
