package svcdocs

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	svcrest "github.com/SundaeSwap-finance/gql-swagger/svc-rest"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

//go:embed swagger.html
var page string

var templ = template.Must(template.New("swagger").Parse(page))

const SpecFile = "openapi.json"

// Mount serves Swagger UI at prefix and the raw document at
// prefix/openapi.json.
func Mount(router chi.Router, prefix string, doc *openapi3.T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("unable to marshal openapi document: %w", err)
	}
	specURL := prefix + "/" + SpecFile

	router.Get(prefix, UI(doc.Info.Title, specURL))
	router.Get(prefix+"/", http.RedirectHandler(prefix, http.StatusMovedPermanently).ServeHTTP)
	router.Get(specURL, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(raw)
	})
	return nil
}

// UI renders Swagger UI for the document at specURL. The title is rendered
// server side so the page identifies the API without javascript.
func UI(title, specURL string) http.HandlerFunc {
	vars := struct {
		Title   template.HTML
		SpecURL string
	}{svcrest.Text(title), specURL}

	return func(w http.ResponseWriter, req *http.Request) {
		var buffer bytes.Buffer
		if err := templ.Execute(&buffer, vars); err != nil {
			zerolog.Ctx(req.Context()).Error().Err(err).Msg("unable to render swagger ui")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buffer.Bytes())
	}
}
