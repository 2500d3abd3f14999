// Package log is the process-wide structured logger. It discards everything
// until Enable or EnableFile is called.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	level   = new(slog.LevelVar)
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	enabled bool
	file    *os.File
)

func init() {
	level.Set(slog.LevelDebug)
}

// Enable sends log output to w.
func Enable(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeFileLocked()
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	enabled = true
}

// EnableFile appends log output to the file at path.
func EnableFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	Enable(f)
	mu.Lock()
	file = f
	mu.Unlock()
	return nil
}

// Disable discards all further output and closes any log file.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	closeFileLocked()
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	enabled = false
	level.Set(slog.LevelDebug)
}

func closeFileLocked() {
	if file != nil {
		_ = file.Close()
		file = nil
	}
}

// IsEnabled reports whether output is going anywhere.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetLevel sets the minimum level written.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// ParseLevel maps debug/info/warn/error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// With returns a logger carrying the given attributes.
func With(args ...any) *slog.Logger {
	return current().With(args...)
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debug(msg string, args ...any) { current().Debug(msg, args...) }
func Info(msg string, args ...any)  { current().Info(msg, args...) }
func Warn(msg string, args ...any)  { current().Warn(msg, args...) }
func Error(msg string, args ...any) { current().Error(msg, args...) }

func DebugContext(ctx context.Context, msg string, args ...any) {
	current().DebugContext(ctx, msg, args...)
}

func InfoContext(ctx context.Context, msg string, args ...any) {
	current().InfoContext(ctx, msg, args...)
}

func WarnContext(ctx context.Context, msg string, args ...any) {
	current().WarnContext(ctx, msg, args...)
}

func ErrorContext(ctx context.Context, msg string, args ...any) {
	current().ErrorContext(ctx, msg, args...)
}
