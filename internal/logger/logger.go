package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	base *zerolog.Logger
)

// Init configures the global JSON logger writing to stdout.
//
// Parameters:
//   - level: trace|debug|info|warn|error|disabled (anything else means info).
//   - pretty: human readable console output instead of JSON.
func Init(level string, pretty bool) {
	l := New(os.Stdout, level, pretty)
	base = &l
}

// New builds a logger writing to w. Init uses it for the global logger; tests
// use it to capture output.
func New(w io.Writer, level string, pretty bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(parseLevel(level))
}

// L returns the global logger, falling back to info-level JSON when Init was not called.
func L() *zerolog.Logger {
	if base == nil {
		Init("info", false)
	}
	return base
}

// Set replaces the global logger.
func Set(l zerolog.Logger) {
	base = &l
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
