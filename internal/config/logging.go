package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// LogLevel represents logging verbosity levels.
type LogLevel int

// Log level constants.
const (
	LogLevelOff LogLevel = iota
	LogLevelError
	LogLevelDebug
)

// ParseLogLevel parses a log level string.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none":
		return LogLevelOff
	case "debug":
		return LogLevelDebug
	default:
		return LogLevelError
	}
}

// String returns the string representation of a log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelOff:
		return "off"
	case LogLevelDebug:
		return "debug"
	default:
		return "error"
	}
}

// Logger writes structured records to a file via slog. Share data and
// secrets must never be passed as attributes; callers log lengths, counts,
// and ids only.
type Logger struct {
	mu      sync.Mutex
	level   LogLevel
	file    *os.File
	slogger *slog.Logger
}

// NewLogger creates a logger writing to filePath. An off level or empty
// path yields a disabled logger that swallows all records.
func NewLogger(level LogLevel, filePath string) (*Logger, error) {
	l := &Logger{level: level}
	if level == LogLevelOff || filePath == "" {
		return l, nil
	}

	if strings.HasPrefix(filePath, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		filePath = filepath.Join(home, filePath[2:])
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0o750); err != nil {
		return nil, err
	}
	// #nosec G304 -- log file path is from validated config
	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	l.file = f
	slogLevel := slog.LevelError
	if level == LogLevelDebug {
		slogLevel = slog.LevelDebug
	}
	l.slogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slogLevel}))
	return l, nil
}

// Debug logs a debug record with structured attributes.
func (l *Logger) Debug(msg string, attrs ...slog.Attr) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level < LogLevelDebug || l.slogger == nil {
		return
	}
	l.slogger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

// Error logs an error record with structured attributes.
func (l *Logger) Error(msg string, attrs ...slog.Attr) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level == LogLevelOff || l.slogger == nil {
		return
	}
	l.slogger.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
