// Package logger provides structured logging configuration for the
// application. It configures log/slog with JSON output for server use or
// plain text for one-shot CLI invocations.
package logger

import (
	"log/slog"
	"os"
)

// Setup initializes the global slog logger. The format is "json" for
// machine-parseable server logs (with source location tracking) or "text"
// for CLI output; unrecognized formats fall back to JSON.
func Setup(level slog.Level, format string) {
	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: true,
			Level:     level,
		})
	}
	slog.SetDefault(slog.New(handler))
}

// ParseLevel converts a string log level to slog.Level.
// Valid values: "debug", "info", "warn", "error".
// Unrecognized values default to info level.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
