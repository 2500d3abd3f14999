package log

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnableDisable(t *testing.T) {
	Disable()
	assert.False(t, IsEnabled())

	var buf bytes.Buffer
	Enable(&buf)
	assert.True(t, IsEnabled())

	Info("test message", "key", "value")
	assert.Contains(t, buf.String(), "test message")
	assert.Contains(t, buf.String(), "key=value")

	Disable()
	assert.False(t, IsEnabled())
	buf.Reset()
	Info("dropped")
	assert.Empty(t, buf.String())
}

func TestSetLevelFiltersBelow(t *testing.T) {
	var buf bytes.Buffer
	Enable(&buf)
	defer Disable()

	SetLevel(slog.LevelWarn)
	Debug("debug msg")
	Info("info msg")
	Warn("warn msg")
	Error("error msg")

	out := buf.String()
	assert.NotContains(t, out, "debug msg")
	assert.NotContains(t, out, "info msg")
	assert.Contains(t, out, "warn msg")
	assert.Contains(t, out, "error msg")
}

func TestWithAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	Enable(&buf)
	defer Disable()

	With("component", "vlist").Info("sub logger")
	assert.Contains(t, buf.String(), "component=vlist")
}

func TestContextVariants(t *testing.T) {
	var buf bytes.Buffer
	Enable(&buf)
	defer Disable()

	ctx := context.Background()
	DebugContext(ctx, "debug ctx")
	InfoContext(ctx, "info ctx")
	WarnContext(ctx, "warn ctx")
	ErrorContext(ctx, "error ctx")

	out := buf.String()
	for _, want := range []string{"debug ctx", "info ctx", "warn ctx", "error ctx"} {
		assert.Contains(t, out, want)
	}
}

func TestEnableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vlist.log")
	require.NoError(t, EnableFile(path))
	defer Disable()

	assert.True(t, IsEnabled())
	Info("file log message")
}

func TestEnableFileInvalidPath(t *testing.T) {
	err := EnableFile("/nonexistent/path/vlist.log")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
