package swapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starwars-explorer/swapi-graphql/errors"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		id   int
		kind Kind
	}{
		{
			name: "top level",
			raw:  `{"name":"Luke Skywalker","url":"https://swapi.dev/api/people/1/"}`,
			id:   1,
			kind: KindPeople,
		},
		{
			name: "properties envelope",
			raw:  `{"properties":{"name":"Tatooine","url":"https://swapi.dev/api/planets/1/"},"uid":"1"}`,
			id:   1,
			kind: KindPlanets,
		},
		{
			name: "result properties envelope",
			raw:  `{"message":"ok","result":{"properties":{"title":"A New Hope","url":"https://www.swapi.tech/api/films/1"},"uid":"1"}}`,
			id:   1,
			kind: KindFilms,
		},
		{
			name: "result envelope",
			raw:  `{"message":"ok","result":{"name":"X-wing","url":"https://swapi.dev/api/starships/12/"}}`,
			id:   12,
			kind: KindStarships,
		},
		{
			name: "unknown kind keeps id",
			raw:  `{"url":"https://example.com/api/droids/3/"}`,
			id:   3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := Normalize([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.id, obj.ID)
			assert.Equal(t, tt.kind, obj.Kind)

			again, err := Normalize([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, obj, again)
		})
	}
}

func TestNormalizeUnwrapsPayload(t *testing.T) {
	obj, err := Normalize([]byte(`{"properties":{"name":"Tatooine","climate":"arid","url":"https://swapi.dev/api/planets/1/"}}`))
	require.NoError(t, err)

	var p Planet
	require.NoError(t, obj.Decode(&p))
	assert.Equal(t, "Tatooine", p.Name)
	assert.Equal(t, "arid", p.Climate)
	assert.Equal(t, "https://swapi.dev/api/planets/1/", p.URL)
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing url", `{"name":"Luke"}`},
		{"empty url", `{"url":""}`},
		{"numeric url", `{"url":1}`},
		{"no id segment", `{"url":"https://swapi.dev/api/people/"}`},
		{"not json", `<html>`},
		{"not an object", `[1,2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize([]byte(tt.raw))
			var de *errors.DecodeError
			require.ErrorAs(t, err, &de)
		})
	}
}

func TestDecodeShapeMismatch(t *testing.T) {
	obj, err := Normalize([]byte(`{"episode_id":"four","url":"https://swapi.dev/api/films/1/"}`))
	require.NoError(t, err)

	var f Film
	err = obj.Decode(&f)
	var de *errors.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "https://swapi.dev/api/films/1/", de.URL)
}

func TestParsePage(t *testing.T) {
	raw := `{
		"count": 3,
		"next": "https://swapi.dev/api/films/?page=2",
		"results": [
			{"title":"A","url":"https://swapi.dev/api/films/4/"},
			{"title":"B","url":"https://swapi.dev/api/films/1/"}
		]
	}`
	p, err := ParsePage([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, 3, p.Count)
	assert.Equal(t, "https://swapi.dev/api/films/?page=2", p.Next)
	require.Len(t, p.Items, 2)
	assert.Equal(t, 4, p.Items[0].ID)
	assert.Equal(t, 1, p.Items[1].ID)
}

func TestParsePageResultArray(t *testing.T) {
	raw := `{"message":"ok","total_records":6,"result":[{"properties":{"title":"A New Hope","url":"https://www.swapi.tech/api/films/1"}}]}`
	p, err := ParsePage([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, 6, p.Count)
	assert.Empty(t, p.Next)
	require.Len(t, p.Items, 1)
	assert.Equal(t, KindFilms, p.Items[0].Kind)
}

func TestParsePageErrors(t *testing.T) {
	_, err := ParsePage([]byte(`{"count":1}`))
	require.Error(t, err)

	_, err = ParsePage([]byte(`{"results":[{"title":"no url"}]}`))
	var de *errors.DecodeError
	require.ErrorAs(t, err, &de)
}
