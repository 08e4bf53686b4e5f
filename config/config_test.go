package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("CONVERTER_STRICT", "true")
	t.Setenv("CONVERTER_LOG_LEVEL", "debug")
	t.Setenv("CONVERTER_METRICS_FILE", "/tmp/converter.prom")

	cfg := FromEnv()
	assert.True(t, cfg.Strict)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "/tmp/converter.prom", cfg.MetricsFile)
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("CONVERTER_STRICT", "")
	t.Setenv("CONVERTER_LOG_LEVEL", "")
	t.Setenv("CONVERTER_METRICS_FILE", "")

	cfg := FromEnv()
	assert.False(t, cfg.Strict)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Empty(t, cfg.MetricsFile)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelWarn},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.in))
		})
	}
}
