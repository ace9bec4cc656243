package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelOff, ParseLogLevel("off"))
	assert.Equal(t, LogLevelOff, ParseLogLevel("NONE"))
	assert.Equal(t, LogLevelDebug, ParseLogLevel(" debug "))
	assert.Equal(t, LogLevelError, ParseLogLevel("error"))
	assert.Equal(t, LogLevelError, ParseLogLevel("garbage"))
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "off", LogLevelOff.String())
	assert.Equal(t, "error", LogLevelError.String())
	assert.Equal(t, "debug", LogLevelDebug.String())
}

func TestDisabledLogger(t *testing.T) {
	l, err := NewLogger(LogLevelOff, "")
	require.NoError(t, err)

	// Records go nowhere and nothing panics.
	l.Debug("split", slog.Int("shares", 5))
	l.Error("combine failed")
	require.NoError(t, l.Close())
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.log")
	l, err := NewLogger(LogLevelDebug, path)
	require.NoError(t, err)

	l.Debug("split", slog.Int("shares", 3), slog.Int("threshold", 2))
	l.Error("combine failed", slog.String("code", "SHARE_MISMATCH"))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "split")
	assert.Contains(t, string(data), "shares=3")
	assert.Contains(t, string(data), "SHARE_MISMATCH")
}

func TestErrorLevelSuppressesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.log")
	l, err := NewLogger(LogLevelError, path)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Error("visible")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "visible")
}
