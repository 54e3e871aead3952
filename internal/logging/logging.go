// Package logging sets up the operator log. The terminal belongs to the UI,
// so everything is written as JSON records to a size-rotated file.
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 8
	maxBackups = 3
)

// Logger wraps slog with the path of the file it writes to.
type Logger struct {
	*slog.Logger
	LogFile string

	closer io.Closer
}

// New opens (or creates) path and returns a JSON logger at the given level.
// The standard library logger is redirected to the same file.
func New(path, level string) (*Logger, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}

	l := newLogger(w, level)
	l.LogFile = path
	l.closer = w
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	l.Info("lander starting",
		slog.String("GOOS", runtime.GOOS),
		slog.String("GOARCH", runtime.GOARCH))
	if bi, ok := debug.ReadBuildInfo(); ok {
		l.Debug("build", slog.String("go", bi.GoVersion), slog.String("path", bi.Main.Path), slog.String("version", bi.Main.Version))
	}
	return l, nil
}

// NewWriter builds a logger around an arbitrary writer. Used by tests.
func NewWriter(w io.Writer, level string) *Logger {
	return newLogger(w, level)
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return newLogger(io.Discard, "error")
}

func newLogger(w io.Writer, level string) *Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return &Logger{Logger: slog.New(h)}
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Close flushes and closes the underlying file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	return l.closer.Close()
}
