// Package svcgql provides GraphQL server utilities with built-in CORS,
// logging and metrics middleware, and a GraphiQL explorer.
//
// A service implements Resolver, and either hands it to Webserver or mounts
// it on its own router with Mount alongside other routes.
package svcgql

import (
	svccli "github.com/SundaeSwap-finance/gql-swagger/svc-cli"
)

const ProductionEnv = "production"

// AllowIntrospection reports whether schema introspection and the GraphiQL
// explorer are enabled.
func AllowIntrospection() bool {
	return svccli.CommonOpts.Env != ProductionEnv || svccli.CommonOpts.Playground
}

type Resolver interface {
	Schema() string
	Config() *BaseConfig
}
