package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Output formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Setup configures the global logger with the given level and format,
// writing to w (stderr when nil).
func Setup(level, format string, w io.Writer) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	if w == nil {
		w = os.Stderr
	}

	var out io.Writer
	switch strings.ToLower(format) {
	case "", FormatConsole:
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	case FormatJSON:
		out = w
	default:
		return fmt.Errorf("unknown log format %q (want %q or %q)", format, FormatConsole, FormatJSON)
	}

	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	if lvl <= zerolog.DebugLevel {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Str("level", lvl.String()).Str("format", format).Msg("Logger initialized")
	return nil
}

// SetupVerbosity configures console logging on stderr from a CLI -v count
func SetupVerbosity(verbosity int) {
	_ = Setup(VerbosityLevel(verbosity).String(), FormatConsole, os.Stderr)
}

// VerbosityLevel maps a -v count to a level: 0 warn, 1 info, 2 debug, 3+ trace
func VerbosityLevel(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// ParseLevel parses a level name; empty means info
func ParseLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// GetLogger returns a contextualized logger with the given component name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogDuration logs the duration of an operation
func LogDuration(logger zerolog.Logger, start time.Time, operation string) {
	logger.Debug().
		Str("operation", operation).
		Dur("duration", time.Since(start)).
		Msg("Operation completed")
}
