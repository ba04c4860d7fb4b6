package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/SundaeSwap-finance/gql-swagger/hello"
	svccli "github.com/SundaeSwap-finance/gql-swagger/svc-cli"
	svcgql "github.com/SundaeSwap-finance/gql-swagger/svc-gql"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

const defaultPort = 4000

var service = svccli.NewService("gql-swagger")

func main() {
	app := svccli.App(
		service,
		action,
		append(
			svccli.CommonFlags,
			svccli.PortFlag(defaultPort),
		)...,
	)
	if err := app.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

func action(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	config := svcgql.NewConfig(service)
	router, err := Router(ctx, hello.NewResolver(config))
	if err != nil {
		return err
	}

	config.OnListen = func(addr net.Addr) {
		logListening(config.Logger, addr)
	}
	return svcgql.Serve(ctx, router, config)
}

func logListening(logger zerolog.Logger, addr net.Addr) {
	port := svccli.CommonOpts.Port
	if tcp, ok := addr.(*net.TCPAddr); ok {
		port = tcp.Port
	}
	base := fmt.Sprintf("http://localhost:%v", port)
	logger.Info().Msgf("Server running at %v", base)
	logger.Info().Msgf("Accessible from other devices at http://<YOUR_LOCAL_IP>:%v", port)
	logger.Info().Msgf("Test GraphQL at %v%v", base, GraphQLPath)
	logger.Info().Msgf("Swagger documentation at %v%v", base, DocsPath)
}
