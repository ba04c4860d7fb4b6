package svcgql

import (
	"fmt"

	"github.com/graph-gophers/graphql-go"
)

type SchemaPart struct {
	Label  string
	Schema string
}

func MergeSchemas(base string, schemas ...SchemaPart) string {
	for _, part := range schemas {
		base += "\n\n# " + part.Label + "\n\n" + part.Schema
	}
	return base
}

// ParseSchema binds the resolver's schema to the resolver itself. The final
// schema text is recorded on the resolver's service.
func ParseSchema(resolver Resolver) (*graphql.Schema, error) {
	finalSchema := resolver.Schema()

	config := resolver.Config()
	config.Service.Schema = finalSchema

	opts := []graphql.SchemaOpt{
		graphql.MaxDepth(15),
		graphql.UseFieldResolvers(),
	}
	if !AllowIntrospection() {
		opts = append(opts, graphql.DisableIntrospection())
	}

	schema, err := graphql.ParseSchema(finalSchema, resolver, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse schema: %w", err)
	}
	return schema, nil
}
