// SPDX-License-Identifier: GPL-3.0-or-later

// Package log provides a minimal leveled logging interface with console
// and no-op engines.
package log

import (
	"fmt"
	"strings"
	"time"
)

// Logger defines a common interface shared by logging engines.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, v ...any)

	// Info logs an informational message.
	Info(format string, v ...any)

	// Warn logs a warning message.
	Warn(format string, v ...any)

	// Error logs an error message.
	Error(format string, v ...any)
}

// Level parametrizes the supported log verbosity levels.
type Level int

const (
	// LevelDebug messages trace library-level behavior.
	LevelDebug Level = iota

	// LevelInfo messages convey general events.
	LevelInfo

	// LevelWarn messages describe divergences from the ideal code path.
	LevelWarn

	// LevelError messages indicate unintended behavior.
	LevelError
)

// String returns the stringified representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return "ERROR"
	}
}

// ParseLevel looks up a [Level] by its stringified, case-insensitive
// representation. Unknown strings map to [LevelError] with a false flag.
func ParseLevel(level string) (Level, bool) {
	for _, known := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if strings.EqualFold(level, known.String()) {
			return known, true
		}
	}
	return LevelError, false
}

// ConsoleLogger is a leveled standard-output logging engine. Only messages
// at or above the configured level are printed.
type ConsoleLogger struct {
	level Level
}

// NewConsoleLogger creates a [*ConsoleLogger] limited to the given level.
func NewConsoleLogger(level Level) *ConsoleLogger {
	return &ConsoleLogger{level: level}
}

// Debug implements [Logger].
func (l *ConsoleLogger) Debug(format string, v ...any) {
	l.log(LevelDebug, format, v...)
}

// Info implements [Logger].
func (l *ConsoleLogger) Info(format string, v ...any) {
	l.log(LevelInfo, format, v...)
}

// Warn implements [Logger].
func (l *ConsoleLogger) Warn(format string, v ...any) {
	l.log(LevelWarn, format, v...)
}

// Error implements [Logger].
func (l *ConsoleLogger) Error(format string, v ...any) {
	l.log(LevelError, format, v...)
}

func (l *ConsoleLogger) log(level Level, format string, v ...any) {
	if level >= l.level {
		fmt.Printf(
			"%s %s\t%s\n",
			time.Now().Format("2006-01-02 15:04:05"),
			level,
			fmt.Sprintf(format, v...),
		)
	}
}

// NoopLogger discards every message. It is the default engine for library
// consumers that do not configure logging.
type NoopLogger struct{}

// NewNoopLogger creates a [*NoopLogger].
func NewNoopLogger() *NoopLogger {
	return &NoopLogger{}
}

// Debug implements [Logger].
func (*NoopLogger) Debug(format string, v ...any) {}

// Info implements [Logger].
func (*NoopLogger) Info(format string, v ...any) {}

// Warn implements [Logger].
func (*NoopLogger) Warn(format string, v ...any) {}

// Error implements [Logger].
func (*NoopLogger) Error(format string, v ...any) {}
