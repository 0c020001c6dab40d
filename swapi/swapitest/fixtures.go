package swapitest

import (
	"fmt"
	"strings"
)

// Fixtures returns a small consistent universe:
//
//   - six films listed over two pages out of id order (4, 1, 5 then 2, 6, 3)
//   - film 1 links people 2, 1 and the missing person 404
//   - person 1 (Luke Skywalker) with homeworld planet 1 and no species
//   - person 2 (C-3PO) with homeworld planet 1 and species 2
//   - planet 1 (Tatooine)
//   - species 2 (Droid) with a null homeworld
//   - starship 12 and vehicle 14, both piloted by person 1
func Fixtures() map[string]string {
	f := map[string]string{
		"/films/":        listing("{{base}}/films/?page=2", 4, 1, 5),
		"/films/?page=2": listing("", 2, 6, 3),
		"/people/1/":     luke,
		"/people/2/":     threepio,
		"/planets/1/":    tatooine,
		"/species/2/":    droid,
		"/starships/12/": xwing,
		"/vehicles/14/":  snowspeeder,
	}
	for id := 1; id <= 6; id++ {
		f[fmt.Sprintf("/films/%d/", id)] = film(id)
	}
	return f
}

func film(id int) string {
	characters := `[]`
	if id == 1 {
		characters = `["{{base}}/people/2/", "{{base}}/people/1/", "{{base}}/people/404/"]`
	}
	return fmt.Sprintf(`{
		"title": "Film %[1]d",
		"episode_id": %[2]d,
		"opening_crawl": "It is a period of civil war.",
		"director": "George Lucas",
		"producer": "Gary Kurtz, Rick McCallum",
		"release_date": "1977-05-25",
		"characters": %[3]s,
		"planets": ["{{base}}/planets/1/"],
		"starships": ["{{base}}/starships/12/"],
		"vehicles": ["{{base}}/vehicles/14/"],
		"species": ["{{base}}/species/2/"],
		"created": "2014-12-10T14:23:31.880000Z",
		"edited": "2014-12-20T19:49:45.256000Z",
		"url": "{{base}}/films/%[1]d/"
	}`, id, episodes[id], characters)
}

var episodes = map[int]int{1: 4, 2: 5, 3: 6, 4: 1, 5: 2, 6: 3}

func listing(next string, ids ...int) string {
	items := make([]string, len(ids))
	for i, id := range ids {
		items[i] = film(id)
	}
	nextJSON := "null"
	if next != "" {
		nextJSON = `"` + next + `"`
	}
	return fmt.Sprintf(`{"count": 6, "next": %s, "previous": null, "results": [%s]}`, nextJSON, strings.Join(items, ","))
}

const luke = `{
	"name": "Luke Skywalker",
	"height": "172",
	"mass": "77",
	"hair_color": "blond",
	"skin_color": "fair",
	"eye_color": "blue",
	"birth_year": "19BBY",
	"gender": "male",
	"homeworld": "{{base}}/planets/1/",
	"films": ["{{base}}/films/1/"],
	"species": [],
	"vehicles": ["{{base}}/vehicles/14/"],
	"starships": ["{{base}}/starships/12/"],
	"created": "2014-12-09T13:50:51.644000Z",
	"edited": "2014-12-20T21:17:56.891000Z",
	"url": "{{base}}/people/1/"
}`

const threepio = `{
	"name": "C-3PO",
	"height": "167",
	"mass": "75",
	"hair_color": "n/a",
	"skin_color": "gold",
	"eye_color": "yellow",
	"birth_year": "112BBY",
	"gender": "n/a",
	"homeworld": "{{base}}/planets/1/",
	"films": ["{{base}}/films/1/"],
	"species": ["{{base}}/species/2/"],
	"vehicles": [],
	"starships": [],
	"created": "2014-12-10T15:10:51.357000Z",
	"edited": "2014-12-20T21:17:50.309000Z",
	"url": "{{base}}/people/2/"
}`

const tatooine = `{
	"name": "Tatooine",
	"rotation_period": "23",
	"orbital_period": "304",
	"diameter": "10465",
	"climate": "arid, temperate",
	"gravity": "1 standard",
	"terrain": "desert",
	"surface_water": "1",
	"population": "200000",
	"residents": ["{{base}}/people/1/", "{{base}}/people/2/"],
	"films": ["{{base}}/films/1/"],
	"created": "2014-12-09T13:50:49.641000Z",
	"edited": "2014-12-20T20:58:18.411000Z",
	"url": "{{base}}/planets/1/"
}`

const droid = `{
	"name": "Droid",
	"classification": "artificial",
	"designation": "sentient",
	"average_height": "n/a",
	"skin_colors": "n/a",
	"hair_colors": "n/a",
	"eye_colors": "n/a",
	"average_lifespan": "indefinite",
	"homeworld": null,
	"language": "n/a",
	"people": ["{{base}}/people/2/"],
	"films": ["{{base}}/films/1/"],
	"created": "2014-12-10T15:16:16.259000Z",
	"edited": "2014-12-20T21:36:42.139000Z",
	"url": "{{base}}/species/2/"
}`

const xwing = `{
	"name": "X-wing",
	"model": "T-65 X-wing",
	"manufacturer": "Incom Corporation",
	"cost_in_credits": "149999",
	"length": "12.5",
	"max_atmosphering_speed": "1050",
	"crew": "1",
	"passengers": "0",
	"cargo_capacity": "110",
	"consumables": "1 week",
	"hyperdrive_rating": "1.0",
	"MGLT": "100",
	"starship_class": "Starfighter",
	"pilots": ["{{base}}/people/1/"],
	"films": ["{{base}}/films/1/"],
	"created": "2014-12-12T11:19:05.340000Z",
	"edited": "2014-12-20T21:23:49.886000Z",
	"url": "{{base}}/starships/12/"
}`

const snowspeeder = `{
	"name": "Snowspeeder",
	"model": "t-47 airspeeder",
	"manufacturer": "Incom corporation",
	"cost_in_credits": "unknown",
	"length": "4.5",
	"max_atmosphering_speed": "650",
	"crew": "2",
	"passengers": "0",
	"cargo_capacity": "10",
	"consumables": "none",
	"vehicle_class": "airspeeder",
	"pilots": ["{{base}}/people/1/"],
	"films": ["{{base}}/films/1/"],
	"created": "2014-12-15T12:22:12Z",
	"edited": "2014-12-20T21:30:21.672000Z",
	"url": "{{base}}/vehicles/14/"
}`
