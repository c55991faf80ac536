// Package logging wraps log/slog for termfolio. Output goes to a rotated
// file because the terminal belongs to the UI; with no file configured every
// call is a noop.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger with convenience methods
type Logger struct {
	logger *slog.Logger
	closer io.Closer
}

// LogFormat represents the output format for logs
type LogFormat string

const (
	// FormatText outputs human-readable key=value logs
	FormatText LogFormat = "text"
	// FormatJSON outputs one JSON object per line
	FormatJSON LogFormat = "json"
)

// Config holds configuration for logger initialization
type Config struct {
	// FilePath is the log file; empty disables logging
	FilePath string
	Level    slog.Level
	Format   LogFormat
	// MaxSizeMB is the size in megabytes that triggers rotation
	MaxSizeMB int
	// MaxBackups is the number of rotated files kept
	MaxBackups int
}

var (
	globalLogger *Logger
	noopLogger   = &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
)

// Init initializes the global logger. An empty FilePath installs the noop
// logger and is not an error.
func Init(config Config) error {
	if config.FilePath == "" {
		globalLogger = noopLogger
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	maxSize := config.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}

	writer := &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    maxSize,
		MaxBackups: config.MaxBackups,
		Compress:   true,
	}

	opts := &slog.HandlerOptions{Level: config.Level}

	var handler slog.Handler
	switch config.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	globalLogger = &Logger{
		logger: slog.New(handler).With("app", "termfolio"),
		closer: writer,
	}

	return nil
}

// Get returns the global logger, or the noop logger before Init.
func Get() *Logger {
	if globalLogger == nil {
		return noopLogger
	}
	return globalLogger
}

func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// With returns a child logger carrying the given key-value pairs
func (l *Logger) With(args ...any) *Logger {
	if !l.IsEnabled() {
		return l
	}
	return &Logger{
		logger: l.logger.With(args...),
		closer: l.closer,
	}
}

// IsEnabled reports whether this logger writes anywhere
func (l *Logger) IsEnabled() bool {
	return l != noopLogger
}

// Package-level convenience functions

func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

// IsEnabled returns true if logging is enabled globally
func IsEnabled() bool {
	return Get().IsEnabled()
}

// ParseLevel converts a string to slog.Level. The boolean is false for
// unknown names, in which case LevelInfo is returned.
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// ParseFormat converts a string to LogFormat. The boolean is false for
// unknown names, in which case FormatText is returned.
func ParseFormat(format string) (LogFormat, bool) {
	switch strings.ToLower(format) {
	case "json":
		return FormatJSON, true
	case "text", "":
		return FormatText, true
	default:
		return FormatText, false
	}
}

// Shutdown closes the log file, if any, and reverts to the noop logger.
func Shutdown() error {
	l := globalLogger
	globalLogger = nil
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
