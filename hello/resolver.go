// Package hello is the demonstration GraphQL API: a greeting and an adder.
package hello

import (
	_ "embed"
	"errors"

	svcgql "github.com/SundaeSwap-finance/gql-swagger/svc-gql"
	"github.com/graph-gophers/graphql-go"
)

//go:embed schema.gql
var schema string

//go:embed arithmetic.gql
var arithmeticSchema string

var Arithmetic = svcgql.SchemaPart{
	Label:  "Arithmetic",
	Schema: arithmeticSchema,
}

const Greeting = "Hello, GraphQL!"

// ErrNotInteger is what an omitted operand turns the sum into.
var ErrNotInteger = errors.New("Int cannot represent non-integer value: NaN")

type Resolver struct {
	config *svcgql.BaseConfig
}

func NewResolver(config *svcgql.BaseConfig) *Resolver {
	return &Resolver{config: config}
}

func (r *Resolver) Schema() string {
	return svcgql.MergeSchemas(schema, Arithmetic)
}

func (r *Resolver) Config() *svcgql.BaseConfig {
	return r.config
}

func (r *Resolver) Hello() *string {
	greeting := Greeting
	return &greeting
}

type AddArgs struct {
	A graphql.NullInt
	B graphql.NullInt
}

// Add overflows like any int32 sum. Null operands count as zero, omitted ones
// fail the field.
func (r *Resolver) Add(args AddArgs) (*int32, error) {
	if !args.A.Set || !args.B.Set {
		return nil, ErrNotInteger
	}
	sum := operand(args.A) + operand(args.B)
	return &sum, nil
}

func operand(n graphql.NullInt) int32 {
	if n.Value == nil {
		return 0
	}
	return *n.Value
}
