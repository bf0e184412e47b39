// Package logging defines the logging abstraction used across pulse.
// The default implementation writes through the standard log package;
// applications can plug in their own structured logger instead.
package logging

import (
	"fmt"
	"log"
	"os"
)

// Level controls which messages a leveled logger emits.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// Logger is the minimal logging surface the library depends on.
type Logger interface {
	// Error logs an error message
	Error(args ...any)

	// Errorf logs a formatted error message
	Errorf(format string, args ...any)

	// Warn logs a warning message
	Warn(args ...any)

	// Warnf logs a formatted warning message
	Warnf(format string, args ...any)

	// Info logs an informational message
	Info(args ...any)

	// Infof logs a formatted informational message
	Infof(format string, args ...any)

	// Debug logs a debug message
	Debug(args ...any)

	// Debugf logs a formatted debug message
	Debugf(format string, args ...any)
}

// leveledLogger implements Logger over the standard log package,
// suppressing messages above its configured level.
type leveledLogger struct {
	level Level
	out   *log.Logger
}

// New creates a logger that writes to stderr at the given level.
func New(level Level) Logger {
	return &leveledLogger{
		level: level,
		out:   log.New(os.Stderr, "", log.LstdFlags),
	}
}

// Default returns a logger at Info level.
func Default() Logger {
	return New(LevelInfo)
}

func (l *leveledLogger) log(level Level, prefix, msg string) {
	if level > l.level {
		return
	}
	l.out.Output(4, prefix+" "+msg)
}

func (l *leveledLogger) Error(args ...any) { l.log(LevelError, "[ERROR]", fmt.Sprint(args...)) }
func (l *leveledLogger) Errorf(format string, args ...any) {
	l.log(LevelError, "[ERROR]", fmt.Sprintf(format, args...))
}
func (l *leveledLogger) Warn(args ...any) { l.log(LevelWarn, "[WARN]", fmt.Sprint(args...)) }
func (l *leveledLogger) Warnf(format string, args ...any) {
	l.log(LevelWarn, "[WARN]", fmt.Sprintf(format, args...))
}
func (l *leveledLogger) Info(args ...any) { l.log(LevelInfo, "[INFO]", fmt.Sprint(args...)) }
func (l *leveledLogger) Infof(format string, args ...any) {
	l.log(LevelInfo, "[INFO]", fmt.Sprintf(format, args...))
}
func (l *leveledLogger) Debug(args ...any) { l.log(LevelDebug, "[DEBUG]", fmt.Sprint(args...)) }
func (l *leveledLogger) Debugf(format string, args ...any) {
	l.log(LevelDebug, "[DEBUG]", fmt.Sprintf(format, args...))
}

// nopLogger discards everything.
type nopLogger struct{}

// Nop returns a logger that discards all messages.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Error(args ...any)                 {}
func (nopLogger) Errorf(format string, args ...any) {}
func (nopLogger) Warn(args ...any)                  {}
func (nopLogger) Warnf(format string, args ...any)  {}
func (nopLogger) Info(args ...any)                  {}
func (nopLogger) Infof(format string, args ...any)  {}
func (nopLogger) Debug(args ...any)                 {}
func (nopLogger) Debugf(format string, args ...any) {}

// ParseLevel maps a config string to a Level. Unknown strings map to Info.
func ParseLevel(s string) Level {
	switch s {
	case "error":
		return LevelError
	case "warn", "warning":
		return LevelWarn
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}
