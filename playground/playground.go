// Package playground serves GraphQL Playground pointed at the query endpoint.
package playground

import (
	"bytes"
	"html/template"
	"net/http"
)

const defaultVersion = "1.7.28"

type config struct {
	title   string
	version string
}

type Option func(*config)

func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithVersion pins the graphql-playground-react release loaded from the CDN.
func WithVersion(version string) Option {
	return func(c *config) {
		c.version = version
	}
}

// Handler renders the page once and serves it for every request. endpoint is
// the path of the GraphQL handler on the same host.
func Handler(endpoint string, options ...Option) (http.Handler, error) {
	c := &config{title: "SWAPI GraphQL", version: defaultVersion}
	for _, opt := range options {
		opt(c)
	}

	var buf bytes.Buffer
	err := page.Execute(&buf, map[string]string{
		"title":    c.title,
		"endpoint": endpoint,
		"version":  c.version,
	})
	if err != nil {
		return nil, err
	}
	out := buf.Bytes()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(out)
	}), nil
}

var page = template.Must(template.New("graphql-playground").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset=utf-8/>
	<meta name="viewport" content="user-scalable=no, initial-scale=1.0, minimum-scale=1.0, maximum-scale=1.0, minimal-ui">
	<link rel="stylesheet" href="//cdn.jsdelivr.net/npm/graphql-playground-react@{{ .version }}/build/static/css/index.css"/>
	<link rel="shortcut icon" href="//cdn.jsdelivr.net/npm/graphql-playground-react@{{ .version }}/build/favicon.png"/>
	<script src="//cdn.jsdelivr.net/npm/graphql-playground-react@{{ .version }}/build/static/js/middleware.js"></script>
	<title>{{ .title }}</title>
</head>
<body>
<style type="text/css">
	html { font-family: "Open Sans", sans-serif; overflow: hidden; }
	body { margin: 0; background: #172a3a; }
</style>
<div id="root"></div>
<script type="text/javascript">
	window.addEventListener('load', function (event) {
		const root = document.getElementById('root');
		root.classList.add('playgroundIn');
		GraphQLPlayground.init(root, {
			endpoint: location.protocol + '//' + location.host + '{{ .endpoint }}',
			settings: { 'request.credentials': 'same-origin' },
		})
	})
</script>
</body>
</html>
`))
