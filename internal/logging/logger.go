// Package logging wraps log/slog with a rotating file writer. The TUI owns the
// terminal, so nothing here ever writes to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger
type Logger struct {
	logger *slog.Logger
	closer io.Closer
}

// Format is the output format for log lines
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config holds configuration for logger initialization
type Config struct {
	// FilePath is the log file. Empty disables logging.
	FilePath   string
	Level      slog.Level
	Format     Format
	MaxSizeMB  int
	MaxBackups int
}

var (
	mu           sync.RWMutex
	globalLogger *Logger
	noopLogger   = &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
)

// Init replaces the global logger. An empty FilePath installs the no-op logger.
func Init(cfg Config) error {
	if cfg.FilePath == "" {
		swap(noopLogger)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}
	swap(New(writer, cfg.Level, cfg.Format, writer))
	return nil
}

// New builds a logger writing to w. closer may be nil.
func New(w io.Writer, level slog.Level, format Format, closer io.Closer) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{logger: slog.New(handler), closer: closer}
}

func swap(l *Logger) {
	mu.Lock()
	old := globalLogger
	globalLogger = l
	mu.Unlock()
	if old != nil && old.closer != nil {
		_ = old.closer.Close()
	}
}

// Get returns the global logger, or the no-op logger before Init
func Get() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	if globalLogger == nil {
		return noopLogger
	}
	return globalLogger
}

// Nop returns a logger that discards everything
func Nop() *Logger { return noopLogger }

func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// With returns a child logger carrying the given attributes
func (l *Logger) With(args ...any) *Logger {
	if l == noopLogger {
		return l
	}
	return &Logger{logger: l.logger.With(args...)}
}

// IsEnabled reports whether l writes anywhere
func (l *Logger) IsEnabled() bool {
	return l != noopLogger
}

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// IsEnabled reports whether the global logger writes anywhere
func IsEnabled() bool { return Get().IsEnabled() }

// ParseLevel converts a config string to a slog.Level. Unknown values map to info.
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

// ParseFormat converts a config string to a Format. Unknown values map to text.
func ParseFormat(format string) Format {
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		return FormatJSON
	}
	return FormatText
}

// Shutdown closes the rotating writer and falls back to the no-op logger
func Shutdown() error {
	mu.Lock()
	old := globalLogger
	globalLogger = nil
	mu.Unlock()
	if old != nil && old.closer != nil {
		return old.closer.Close()
	}
	return nil
}
