package configs

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, Logger{Level: in}.SlogLevel(), in)
	}
}

func TestLoggerJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(Logger{Level: "warn", Format: "JSON"}.NewHandler(&buf))

	logger.Info("dropped")
	logger.Warn("click rejected", slog.String("reason", "daily_ip_cap"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "click rejected", rec["msg"])
	assert.Equal(t, "daily_ip_cap", rec["reason"])
	assert.NotContains(t, buf.String(), "dropped")
}

func TestLoggerFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	h := Logger{Format: "yaml"}.NewHandler(&buf)

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	slog.New(h).Info("started")
	assert.Contains(t, buf.String(), "msg=started")
}
