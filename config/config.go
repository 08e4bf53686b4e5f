package config

import (
	"log/slog"
	"os"
	"strings"
)

// Config captures the command line tool's settings.
type Config struct {
	Strict      bool
	LogLevel    slog.Level
	MetricsFile string
}

// FromEnv builds a Config from environment variables; flags override it in
// main.
func FromEnv() Config {
	return Config{
		Strict:      os.Getenv("CONVERTER_STRICT") == "true",
		LogLevel:    ParseLevel(os.Getenv("CONVERTER_LOG_LEVEL")),
		MetricsFile: os.Getenv("CONVERTER_METRICS_FILE"),
	}
}

// ParseLevel defaults to warn so that passthrough debug lines stay quiet.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger returns a text logger on stderr; stdout carries results.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
