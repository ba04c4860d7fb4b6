package svccli

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

func Logger(service Service) zerolog.Logger {
	var out io.Writer = os.Stdout
	if CommonOpts.Pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}
	return NewLogger(out, service)
}

func NewLogger(out io.Writer, service Service) zerolog.Logger {
	return zerolog.New(out).With().
		Timestamp().
		Str("service", service.Name).
		Str("version", service.Version).
		Logger()
}

// envName maps a flag name like "log-level" to LOG_LEVEL.
func envName(flag string) string {
	return strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}
