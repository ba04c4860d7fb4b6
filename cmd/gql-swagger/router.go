package main

import (
	"context"
	"fmt"
	"net/http"

	svccli "github.com/SundaeSwap-finance/gql-swagger/svc-cli"
	svcdocs "github.com/SundaeSwap-finance/gql-swagger/svc-docs"
	svcgql "github.com/SundaeSwap-finance/gql-swagger/svc-gql"
	svcrest "github.com/SundaeSwap-finance/gql-swagger/svc-rest"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/go-chi/chi/v5"
)

const (
	GraphQLPath = "/graphql"
	DocsPath    = "/api-docs"
)

func localURL() string {
	return fmt.Sprintf("http://localhost:%v", svccli.CommonOpts.Port)
}

// Router wires the landing page, the graphql endpoint and the swagger docs,
// plus health and metrics routes.
func Router(ctx context.Context, resolver svcgql.Resolver) (chi.Router, error) {
	config := resolver.Config()
	router := svcgql.DefaultRouter(config.Logger)

	var observers []svcgql.Observer
	if svccli.CommonOpts.Prometheus {
		collector := svccli.NewCollector(config.Service)
		router.Use(svcgql.WithPrometheus(collector))
		router.Method(http.MethodGet, "/metrics", collector.Handler())
		observers = append(observers, svcgql.PrometheusObserver(collector))
	}
	if svccli.CommonOpts.CloudWatch {
		s, err := session.NewSession(aws.NewConfig())
		if err != nil {
			return nil, fmt.Errorf("unable to create aws session: %w", err)
		}
		metrics := svccli.NewMetrics(config.Service, cloudwatch.New(s))
		observers = append(observers, svcgql.CloudWatchObserver(metrics))
	}

	if err := svcgql.Mount(router, resolver, observers...); err != nil {
		return nil, err
	}

	meta := svcdocs.DefaultMetadata()
	meta.Servers = []string{localURL()}
	doc, err := svcdocs.Document(ctx, meta,
		svcdocs.PagePath("/", "Landing page with links to the API explorers"),
		svcdocs.GraphQLPath(GraphQLPath),
		svcdocs.PagePath(DocsPath, "Swagger documentation"),
	)
	if err != nil {
		return nil, err
	}
	if err := svcdocs.Mount(router, DocsPath, doc); err != nil {
		return nil, err
	}

	landing, err := svcrest.Landing(svcrest.Page{
		Title: meta.Title,
		Intro: "Use the following links to explore the API:",
		Links: []svcrest.Link{
			{Href: GraphQLPath, Label: "GraphQL Playground"},
			{Href: DocsPath, Label: "Swagger Documentation"},
		},
	})
	if err != nil {
		return nil, err
	}
	router.Get("/", svcrest.CacheControl(landing, 300))
	router.Get("/healthz", svcrest.Health())

	return router, nil
}
