package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/authcorp/libs/go/fantasy/errors"
	"github.com/authcorp/libs/go/fantasy/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("verbose"))
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{Level: "info", Writer: &buf})

	logger.Debug("hidden")
	logger.Info("path read", "path", "a.1.b", "api_token", "abc")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "path read", record["msg"])
	assert.Equal(t, "a.1.b", record["path"])
	assert.Equal(t, logging.Redacted, record["api_token"])
}

func TestTextLoggerWithAppError(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{Level: "debug", Format: logging.FormatText, Writer: &buf})

	logger.Error("set failed", "error", errors.IncorrectArgs())

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error.code=INCORRECT_ARGS")
}

func TestIsSensitiveKey(t *testing.T) {
	assert.True(t, logging.IsSensitiveKey("Authorization"))
	assert.True(t, logging.IsSensitiveKey("db_password"))
	assert.False(t, logging.IsSensitiveKey("path"))
	assert.False(t, logging.IsSensitiveKey("key"))
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { logging.Nop().Info("ignored") })
}
