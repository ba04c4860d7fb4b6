// Package svcdocs builds an OpenAPI 3 document for a service and serves it
// with Swagger UI.
package svcdocs

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

const OpenAPIVersion = "3.0.0"

type Metadata struct {
	Title       string
	Version     string
	Description string
	Servers     []string
}

func DefaultMetadata() Metadata {
	return Metadata{
		Title:       "GraphQL + Swagger API",
		Version:     "1.0.0",
		Description: "A simple GraphQL API documented with Swagger",
		Servers:     []string{"http://localhost:4000"},
	}
}

// Path documents one route of the service.
type Path struct {
	Path string
	Item *openapi3.PathItem
}

// Document assembles and validates the OpenAPI document.
func Document(ctx context.Context, meta Metadata, paths ...Path) (*openapi3.T, error) {
	doc := &openapi3.T{
		OpenAPI: OpenAPIVersion,
		Info: &openapi3.Info{
			Title:       meta.Title,
			Version:     meta.Version,
			Description: meta.Description,
		},
		Paths: openapi3.NewPaths(),
	}
	for _, url := range meta.Servers {
		doc.Servers = append(doc.Servers, &openapi3.Server{URL: url})
	}
	for _, p := range paths {
		doc.Paths.Set(p.Path, p.Item)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return doc, nil
}

func textResponse(description, contentType string) *openapi3.Responses {
	response := openapi3.NewResponse().
		WithDescription(description).
		WithContent(openapi3.NewContentWithSchema(openapi3.NewStringSchema(), []string{contentType}))
	return openapi3.NewResponses(openapi3.WithStatus(200, &openapi3.ResponseRef{Value: response}))
}

// PagePath documents a GET route returning HTML.
func PagePath(path, summary string) Path {
	op := openapi3.NewOperation()
	op.Summary = summary
	op.Responses = textResponse(summary, "text/html")
	return Path{Path: path, Item: &openapi3.PathItem{Get: op}}
}

// GraphQLPath documents a GraphQL endpoint that takes GET query parameters
// or a JSON POST body.
func GraphQLPath(path string) Path {
	result := openapi3.NewObjectSchema().
		WithProperty("data", openapi3.NewObjectSchema()).
		WithProperty("errors", openapi3.NewArraySchema().WithItems(
			openapi3.NewObjectSchema().WithProperty("message", openapi3.NewStringSchema()),
		))
	responses := openapi3.NewResponses(
		openapi3.WithStatus(200, &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription("GraphQL response").
			WithJSONSchema(result)}),
		openapi3.WithStatus(400, &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription("Malformed request").
			WithJSONSchema(result)}),
	)

	get := openapi3.NewOperation()
	get.OperationID = "graphqlGet"
	get.Summary = "Execute a GraphQL query, or open GraphiQL in a browser"
	get.Tags = []string{"graphql"}
	get.AddParameter(openapi3.NewQueryParameter("query").WithSchema(openapi3.NewStringSchema()))
	get.AddParameter(openapi3.NewQueryParameter("operationName").WithSchema(openapi3.NewStringSchema()))
	get.AddParameter(openapi3.NewQueryParameter("variables").WithSchema(openapi3.NewStringSchema()))
	get.Responses = responses

	params := openapi3.NewObjectSchema().
		WithProperty("query", openapi3.NewStringSchema()).
		WithProperty("operationName", openapi3.NewStringSchema()).
		WithProperty("variables", openapi3.NewObjectSchema())
	params.Required = []string{"query"}

	post := openapi3.NewOperation()
	post.OperationID = "graphqlPost"
	post.Summary = "Execute a GraphQL operation"
	post.Tags = []string{"graphql"}
	post.RequestBody = &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().
		WithRequired(true).
		WithJSONSchema(params)}
	post.Responses = responses

	return Path{Path: path, Item: &openapi3.PathItem{Get: get, Post: post}}
}
