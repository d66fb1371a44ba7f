// Package logger provides the logging interface used by the sunwatch
// daemon and a console implementation backed by zerolog.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the logging surface used across all sunwatch components.
type Logger interface {
	// Info logs an informational message (e.g., "daemon started").
	Info(format string, args ...interface{})

	// Warning logs a warning message (e.g., "config reload failed, retrying").
	Warning(format string, args ...interface{})

	// Error logs an error message.
	Error(format string, args ...interface{})

	// Close releases resources held by the logger. Safe to call multiple
	// times. Returns nil for loggers without resources.
	Close() error
}

// ConsoleLogger writes human-readable zerolog output to stderr.
type ConsoleLogger struct {
	z zerolog.Logger
}

// NewConsoleLogger creates a console logger tagged with the given
// application name.
func NewConsoleLogger(app string) *ConsoleLogger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	z := zerolog.New(output).With().Timestamp().Str("app", app).Logger()
	return &ConsoleLogger{z: z}
}

func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.z.Info().Msgf(format, args...)
}

func (l *ConsoleLogger) Warning(format string, args ...interface{}) {
	l.z.Warn().Msgf(format, args...)
}

func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.z.Error().Msgf(format, args...)
}

// Close is a no-op for ConsoleLogger.
func (l *ConsoleLogger) Close() error {
	return nil
}

// NopLogger discards all messages. Useful for tests.
type NopLogger struct{}

func NewNopLogger() *NopLogger { return &NopLogger{} }

func (n *NopLogger) Info(format string, args ...interface{})    {}
func (n *NopLogger) Warning(format string, args ...interface{}) {}
func (n *NopLogger) Error(format string, args ...interface{})   {}
func (n *NopLogger) Close() error                               { return nil }
