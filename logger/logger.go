// Package logger provides structured logging using zerolog.
//
// All log output goes to stderr: stdout is reserved for the report.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var globalLogger zerolog.Logger

func init() {
	globalLogger = newLogger(zerolog.WarnLevel)
}

func newLogger(level zerolog.Level) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Init configures the global logger. Debug enables per-attempt probe
// tracing; the default level only surfaces warnings and errors so a
// normal run prints nothing but the report.
func Init(debug bool) {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	globalLogger = newLogger(level)
}

// GetLogger returns the global logger.
func GetLogger() zerolog.Logger {
	return globalLogger
}

// WithComponent returns a logger tagged with a component name.
func WithComponent(component string) zerolog.Logger {
	return globalLogger.With().Str("component", component).Logger()
}

func Debug() *zerolog.Event { return globalLogger.Debug() }

func Warn() *zerolog.Event { return globalLogger.Warn() }

func Error() *zerolog.Event { return globalLogger.Error() }
