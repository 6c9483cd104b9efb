package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerFormatsMessages(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{Level: "info", Output: &buf})

	log.Info("loaded %d matches from %s", 66, "embedded")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "loaded 66 matches from embedded", entry["msg"])
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{Level: "warn", Output: &buf})

	log.Debug("hidden")
	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestGetLoggerLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, getLoggerLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, getLoggerLevel("warn"))
	assert.Equal(t, slog.LevelError, getLoggerLevel("error"))
	assert.Equal(t, slog.LevelInfo, getLoggerLevel("bogus"))
}
