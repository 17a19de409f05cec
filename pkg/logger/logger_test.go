package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/dev-eloper-365/NeerSetuBackend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

func TestNew_TextFormat(t *testing.T) {
	output := captureStderr(t, func() {
		l := New(&config.LogConfig{Level: "info", Format: "text"})
		l.Info("test message", "key", "value")
	})

	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key=value")
	assert.Contains(t, output, "level=INFO")
}

func TestNew_JSONFormat(t *testing.T) {
	output := captureStderr(t, func() {
		l := New(&config.LogConfig{Level: "info", Format: "json"})
		l.Info("test message", "key", "value")
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &entry))
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestNew_LevelFiltering(t *testing.T) {
	output := captureStderr(t, func() {
		l := New(&config.LogConfig{Level: "warn", Format: "text"})
		l.Info("hidden")
		l.Warn("visible")
	})

	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "visible")
}

func TestNew_InvalidFormatDefaultsToText(t *testing.T) {
	output := captureStderr(t, func() {
		l := New(&config.LogConfig{Level: "info", Format: "xml"})
		l.Info("test message")
	})

	assert.Contains(t, output, "msg=\"test message\"")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseLevel(tt.input), tt.input)
	}
}
