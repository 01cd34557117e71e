package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()

	var entry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &entry)
	require.NoError(t, err)
	return entry
}

func TestNewStructuredLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	logger.Info("dataset loaded", slog.Int("observations", 64))

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "dataset loaded", entry["msg"])
	assert.Equal(t, float64(64), entry["observations"])
}

func TestNewStructuredLoggerHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelWarn)

	logger.Info("should be suppressed")
	assert.Empty(t, buf.String())

	logger.Warn("should appear")
	assert.NotEmpty(t, buf.String())
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogError(logger, "import failed", errors.New("disk full"), slog.String("component", "energydb"))

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "import failed", entry["msg"])
	assert.Equal(t, "disk full", entry["error"])
	assert.Equal(t, "energydb", entry["component"])
}

func TestLogErrorNilLogger(t *testing.T) {
	// Must not panic.
	LogError(nil, "message", errors.New("boom"))
}

func TestLogHTTPRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogHTTPRequest(logger, "GET", "/api/energy/sources.json", 200, 1.5)

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "http_request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/energy/sources.json", entry["path"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, 1.5, entry["duration_ms"])
}

func TestWithLoggerAndFromContext(t *testing.T) {
	logger := NewStructuredLogger(&bytes.Buffer{}, slog.LevelInfo)

	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	// Absent logger falls back to the default.
	assert.NotNil(t, FromContext(context.Background()))
}

func TestReplaceLogFatal(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	err := ReplaceLogFatal(logger, "could not open database", errors.New("locked"))

	require.Error(t, err)
	assert.Equal(t, "could not open database: locked", err.Error())
	assert.NotEmpty(t, buf.String())
}

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("close failed") }

func TestSafeCloseWithLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	SafeCloseWithLogging(failingCloser{}, logger, "dataset_file")

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "failed to close resource", entry["msg"])
	assert.Equal(t, "dataset_file", entry["operation"])

	// A nil closer is a no-op.
	SafeCloseWithLogging(nil, logger, "nothing")
}
