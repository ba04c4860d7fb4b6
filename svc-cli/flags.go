package svccli

import "github.com/urfave/cli/v2"

var CommonOpts struct {
	Console    bool
	Env        string
	Host       string
	Port       int
	Playground bool
	Prometheus bool
	CloudWatch bool
	LogLevel   string
	Pretty     bool
}

func BoolFlag(name, usage string, destination *bool) *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        name,
		Usage:       usage,
		EnvVars:     []string{envName(name)},
		Destination: destination,
	}
}

var ConsoleFlag = cli.BoolFlag{
	Name:        "console",
	Usage:       "whether to run in console mode or lambda mode",
	Value:       true,
	EnvVars:     []string{"CONSOLE"},
	Destination: &CommonOpts.Console,
}
var EnvFlag = cli.StringFlag{
	Name:        "env",
	Usage:       "environment; introspection is disabled in production",
	Value:       "local",
	EnvVars:     []string{"ENV"},
	Destination: &CommonOpts.Env,
}
var HostFlag = cli.StringFlag{
	Name:        "host",
	Usage:       "interface to bind to, if running locally",
	Value:       "0.0.0.0",
	EnvVars:     []string{"HOST"},
	Destination: &CommonOpts.Host,
}
var PlaygroundFlag = BoolFlag("playground", "force the GraphiQL playground and introspection on, even in production", &CommonOpts.Playground)
var PrometheusFlag = BoolFlag("prometheus", "expose prometheus metrics on /metrics", &CommonOpts.Prometheus)
var CloudWatchFlag = BoolFlag("cloudwatch", "publish graphql response timings to cloudwatch", &CommonOpts.CloudWatch)
var PrettyFlag = BoolFlag("pretty", "human readable console logs instead of json", &CommonOpts.Pretty)
var LogLevelFlag = cli.StringFlag{
	Name:        "log-level",
	Usage:       "trace, debug, info, warn or error",
	Value:       "info",
	EnvVars:     []string{"LOG_LEVEL"},
	Destination: &CommonOpts.LogLevel,
}
var PortFlag = func(p int) *cli.IntFlag {
	return &cli.IntFlag{
		Name:        "port",
		Usage:       "Port to listen to, if running locally",
		Value:       p,
		EnvVars:     []string{"PORT"},
		Destination: &CommonOpts.Port,
	}
}

var CommonFlags = []cli.Flag{
	&ConsoleFlag,
	&EnvFlag,
	&HostFlag,
	PlaygroundFlag,
	PrometheusFlag,
	CloudWatchFlag,
	&LogLevelFlag,
	PrettyFlag,
}
