// Package graphiql serves the GraphiQL in-browser explorer.
package graphiql

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	svcrest "github.com/SundaeSwap-finance/gql-swagger/svc-rest"
	"github.com/rs/zerolog"
)

//go:embed graphiql.html
var page string

var templ = template.Must(template.New("graphiql").Parse(page))

type variables struct {
	Title    template.HTML
	Endpoint string
}

// NewWithTitle endpoint is the url where you have your graphql api hosted
func NewWithTitle(title, endpoint string) http.HandlerFunc {
	vars := variables{Title: svcrest.Text(title), Endpoint: endpoint}
	return func(w http.ResponseWriter, req *http.Request) {
		var buffer bytes.Buffer
		if err := templ.Execute(&buffer, vars); err != nil {
			zerolog.Ctx(req.Context()).Error().Err(err).Msg("unable to render graphiql")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buffer.Bytes())
	}
}
