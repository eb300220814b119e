package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Level mirrors the slog levels the engine uses.
type Level = slog.Level

const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	mu     sync.RWMutex
	logger = newLogger(LevelWarn, os.Stderr)
)

func newLogger(level Level, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Init configures the global logger with the given level and destination.
// Call once at startup, before any goroutines that might call GetLogger.
func Init(level Level, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(level, w)
}

// InitDefault configures the global logger with sensible defaults:
// Warn level to stderr.
func InitDefault() {
	Init(LevelWarn, os.Stderr)
}

// GetLogger returns the process-wide logger.
func GetLogger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
