package swapi

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/starwars-explorer/swapi-graphql/errors"
)

// Object is a normalized SWAPI resource: the payload with any envelope
// removed, plus the identity derived from its own url.
type Object struct {
	ID   int
	Kind Kind
	URL  string
	Raw  json.RawMessage
}

// envelopes are probed in order; the first one holding an object is the
// payload. Backends such as swapi.tech nest resources as result.properties.
var envelopes = []string{"result.properties", "properties", "result"}

// Normalize unwraps a fetched payload and derives its integer id from the
// trailing segment of its "url" member. A payload without a usable url is a
// DecodeError. Kind is left empty when the url path names no known kind.
func Normalize(raw []byte) (*Object, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.Decodef("", "payload is not valid JSON")
	}
	body := gjson.ParseBytes(raw)
	if !body.IsObject() {
		return nil, errors.Decodef("", "payload is not a JSON object")
	}
	return normalizeResult(unwrap(body))
}

func normalizeResult(payload gjson.Result) (*Object, error) {
	u := payload.Get("url")
	if u.Type != gjson.String || u.Str == "" {
		return nil, errors.Decodef("", "payload has no url")
	}
	id, err := IDFromURL(u.Str)
	if err != nil {
		return nil, err
	}
	kind, _ := KindFromURL(u.Str)
	return &Object{
		ID:   id,
		Kind: kind,
		URL:  u.Str,
		Raw:  json.RawMessage(payload.Raw),
	}, nil
}

func unwrap(body gjson.Result) gjson.Result {
	for _, path := range envelopes {
		if r := body.Get(path); r.IsObject() {
			return r
		}
	}
	return body
}

// Decode unmarshals the payload into one of the typed resource structs.
func (o *Object) Decode(v interface{}) error {
	if err := json.Unmarshal(o.Raw, v); err != nil {
		return &errors.DecodeError{URL: o.URL, Message: "unexpected payload shape", Err: err}
	}
	return nil
}

// Page is one page of a collection listing.
type Page struct {
	Count int
	Next  string
	Items []*Object
}

// ParsePage reads a listing page. Items are taken from "results" or, for
// backends that answer a single collection with it, "result". Every item is
// normalized; one bad item fails the page.
func ParsePage(raw []byte) (*Page, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.Decodef("", "listing page is not valid JSON")
	}
	body := gjson.ParseBytes(raw)
	items := body.Get("results")
	if !items.IsArray() {
		items = body.Get("result")
	}
	if !items.IsArray() {
		return nil, errors.Decodef("", "listing page has no results array")
	}

	p := &Page{Next: body.Get("next").Str}
	if c := body.Get("count"); c.Exists() {
		p.Count = int(c.Int())
	} else {
		p.Count = int(body.Get("total_records").Int())
	}

	var err error
	items.ForEach(func(_, item gjson.Result) bool {
		var obj *Object
		obj, err = normalizeResult(unwrap(item))
		if err != nil {
			return false
		}
		p.Items = append(p.Items, obj)
		return true
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
