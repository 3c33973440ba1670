// Package logger is the structured logging facade used by the API, the
// report command and the services. The only backend is log/slog.
package logger

import (
	"context"
	"io"
	"strings"
	"sync/atomic"
	"time"
)

// Level is a log severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"debug", "info", "warn", "error"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "info"
	}
	return levelNames[l]
}

// ParseLevel maps a config value onto a Level. Unknown values mean info.
func ParseLevel(s string) Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return LevelWarn
	}
	for i, name := range levelNames {
		if s == name {
			return Level(i)
		}
	}
	return LevelInfo
}

// Field is one structured key/value pair
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

// Err records err under "error" as its message
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error"}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Logger is implemented by the slog backend and by Nop
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a Logger that adds fields to every entry
	With(fields ...Field) Logger
	// WithContext adds the request_id and user_id stored in ctx
	WithContext(ctx context.Context) Logger

	Level() Level
}

// Config holds logging configuration
type Config struct {
	Level Level
	// Format is "json" or "text"
	Format    string
	AddSource bool
	// Output defaults to os.Stdout. The report command logs to stderr so
	// its stdout stays clean for JSON.
	Output io.Writer
}

// DefaultConfig is info level JSON on stdout
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Format: "json",
	}
}

var defaultLogger atomic.Pointer[Logger]

// SetDefault replaces the logger returned by Default and FromContext
func SetDefault(l Logger) {
	defaultLogger.Store(&l)
}

// Default returns the process-wide logger, creating one from DefaultConfig
// on first use
func Default() Logger {
	if l := defaultLogger.Load(); l != nil {
		return *l
	}
	l := NewSlogLogger(DefaultConfig())
	defaultLogger.CompareAndSwap(nil, &l)
	return *defaultLogger.Load()
}

// Nop discards everything. Tests and library callers without a logger use it.
type Nop struct{}

// NewNop returns a Logger that discards all entries
func NewNop() Logger { return Nop{} }

func (Nop) Debug(string, ...Field) {}
func (Nop) Info(string, ...Field) {}
func (Nop) Warn(string, ...Field) {}
func (Nop) Error(string, ...Field) {}
func (n Nop) With(...Field) Logger { return n }
func (n Nop) WithContext(context.Context) Logger { return n }
func (Nop) Level() Level { return LevelError }
