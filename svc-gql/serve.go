package svcgql

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/SundaeSwap-finance/gql-swagger/graphiql"
	svccli "github.com/SundaeSwap-finance/gql-swagger/svc-cli"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/savaki/apigateway"
	"golang.org/x/sync/errgroup"
)

const ShutdownTimeout = 10 * time.Second

// Serve a mildly opinionated graphql webserver, optionally with playground attached
func Webserver(ctx context.Context, resolver Resolver, observers ...Observer) error {
	config := resolver.Config()
	router := DefaultRouter(config.Logger)
	if err := Mount(router, resolver, observers...); err != nil {
		return err
	}
	return Serve(ctx, router, config)
}

// Mount registers the graphql endpoint on router for every method. Browsers
// get GraphiQL on GET while introspection is allowed.
func Mount(router chi.Router, resolver Resolver, observers ...Observer) error {
	schema, err := ParseSchema(resolver)
	if err != nil {
		return err
	}

	config := resolver.Config()
	var handler http.Handler = &Handler{Schema: schema, Observers: observers}
	if AllowIntrospection() {
		path := "/graphql"
		if config.Service.Subpath != "" {
			path = fmt.Sprintf("/%v/graphql", config.Service.Subpath)
		}
		handler = withPlayground(graphiql.NewWithTitle(config.Service.Name, path), handler)
	}
	handler = middleware.NoCache(handler)

	router.Handle("/graphql", handler)
	// Allow arbitrary path parameters, for better UX in the browser
	router.Handle("/graphql/*", handler)
	return nil
}

// Construct a chi router with the common useful middleware
func DefaultRouter(logger zerolog.Logger) chi.Router {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		WithLogger(logger),
		WithRequestLog(),
		WithCORS(),
		middleware.Recoverer,
	)
	return router
}

// Start listening / serving the router locally, or as a Lambda function
func Serve(ctx context.Context, router chi.Router, config *BaseConfig) error {
	if !svccli.CommonOpts.Console {
		lambda.Start(apigateway.Wrap(router, svccli.CommonOpts.Env, config.Service.Subpath))
		return nil
	}

	var handler http.Handler = router
	if config.Service.Subpath != "" {
		newRouter := chi.NewRouter()
		newRouter.Mount(fmt.Sprintf("/%v", config.Service.Subpath), router)
		handler = newRouter
	}

	addr := net.JoinHostPort(svccli.CommonOpts.Host, strconv.Itoa(svccli.CommonOpts.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("unable to listen on %v: %w", addr, err)
	}
	config.Logger.Info().Str("addr", listener.Addr().String()).Msgf("starting %v", config.Service.Name)
	if config.OnListen != nil {
		config.OnListen(listener.Addr())
	}
	return ServeListener(ctx, listener, handler, config.Logger)
}

// ServeListener serves handler on listener until ctx is done, then drains
// in-flight requests for up to ShutdownTimeout.
func ServeListener(ctx context.Context, listener net.Listener, handler http.Handler, logger zerolog.Logger) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to serve: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("unable to shut down: %w", err)
		}
		return nil
	})
	return group.Wait()
}
