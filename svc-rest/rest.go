// Package svcrest provides the plain HTTP pages that sit next to an API:
// a landing page with links, a health check and cache headers.
package svcrest

import (
	"bytes"
	_ "embed"
	"fmt"
	"html"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"
)

//go:embed landing.html
var landing string

var landingTempl = template.Must(template.New("landing").Parse(landing))

type Link struct {
	Href  string
	Label string
}

type Page struct {
	Title string
	Intro string
	Links []Link
}

// Text escapes s for an HTML text node. html/template would also encode
// characters such as '+' as numeric entities; every page in this module runs
// its text through Text so it reaches the browser as written.
func Text(s string) template.HTML {
	return template.HTML(html.EscapeString(s))
}

type textLink struct {
	Href  string
	Label template.HTML
}

// Landing renders page once up front; the rendered bytes are served as is.
func Landing(page Page) (http.HandlerFunc, error) {
	vars := struct {
		Title template.HTML
		Intro template.HTML
		Links []textLink
	}{Title: Text(page.Title), Intro: Text(page.Intro)}
	for _, link := range page.Links {
		vars.Links = append(vars.Links, textLink{Href: link.Href, Label: Text(link.Label)})
	}

	var buffer bytes.Buffer
	if err := landingTempl.Execute(&buffer, vars); err != nil {
		return nil, fmt.Errorf("unable to render landing page: %w", err)
	}
	body := buffer.Bytes()
	return func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(body)
	}, nil
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte("ok")); err != nil {
			zerolog.Ctx(req.Context()).Warn().Err(err).Msg("unable to write health response")
		}
	}
}

func CacheControl(handler http.HandlerFunc, maxAge int) http.HandlerFunc {
	value := fmt.Sprintf("max-age=%v", maxAge)
	return func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Cache-Control", value)
		handler.ServeHTTP(w, req)
	}
}
