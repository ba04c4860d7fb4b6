package svcgql

import (
	"net"

	svccli "github.com/SundaeSwap-finance/gql-swagger/svc-cli"
	"github.com/rs/zerolog"
)

type BaseConfig struct {
	Logger  zerolog.Logger
	Service svccli.Service

	// OnListen, if set, runs once the local listener is bound.
	OnListen func(addr net.Addr)
}

func NewConfig(service svccli.Service) *BaseConfig {
	return &BaseConfig{
		Logger:  svccli.Logger(service),
		Service: service,
	}
}
