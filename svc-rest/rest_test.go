package svcrest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tj/assert"
)

func TestLanding(t *testing.T) {
	handler, err := Landing(Page{
		Title: "GraphQL + Swagger API",
		Intro: "Use the following links to explore the API:",
		Links: []Link{
			{Href: "/graphql", Label: "GraphQL Playground"},
			{Href: "/api-docs", Label: "Swagger Documentation"},
		},
	})
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "<h1>Welcome to the GraphQL + Swagger API</h1>"), body)
	assert.True(t, strings.Contains(body, `<a href="/graphql">GraphQL Playground</a>`), body)
	assert.True(t, strings.Contains(body, `<a href="/api-docs">Swagger Documentation</a>`), body)
}

func TestLandingKeepsPlus(t *testing.T) {
	handler, err := Landing(Page{
		Title: "A + B",
		Intro: "1 + 1 & friends",
		Links: []Link{{Href: "/graphql", Label: "C + D"}},
	})
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))
	body := w.Body.String()
	assert.False(t, strings.Contains(body, "&#43;"), body)
	assert.True(t, strings.Contains(body, "<p>1 + 1 &amp; friends</p>"), body)
	assert.True(t, strings.Contains(body, `<a href="/graphql">C + D</a>`), body)
}

func TestText(t *testing.T) {
	assert.Equal(t, "GraphQL + Swagger API", string(Text("GraphQL + Swagger API")))
	assert.Equal(t, "&lt;b&gt; &amp; &#34;q&#34;", string(Text(`<b> & "q"`)))
}

func TestLandingEscapes(t *testing.T) {
	handler, err := Landing(Page{
		Title: "<script>",
		Links: []Link{{Href: "javascript:alert(1)", Label: "x"}},
	})
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))
	body := w.Body.String()
	assert.False(t, strings.Contains(body, "<script>"))
	assert.False(t, strings.Contains(body, "javascript:alert"))
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	Health()(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestCacheControl(t *testing.T) {
	w := httptest.NewRecorder()
	CacheControl(Health(), 60)(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, "max-age=60", w.Header().Get("Cache-Control"))
	assert.Equal(t, "ok", w.Body.String())
}
