package logger

import (
	"fmt"
	"sync"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Output encodings.
const (
	ConsoleFormat = "console"
	JSONFormat    = "json"
)

var (
	// globalLogger holds the singleton logger instance.
	globalLogger *Logger
	once         sync.Once
)

// Get returns a singleton logger configured with the provided level and format.
// The first call initializes the logger; subsequent calls ignore the arguments
// and return the already initialized instance.
func Get(level, format string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(level, format)
	})
	return globalLogger
}

// ParseLevel validates a textual level name.
func ParseLevel(level string) (string, error) {
	switch level {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel:
		return level, nil
	default:
		return "", fmt.Errorf("unknown log level %q", level)
	}
}

// ParseFormat validates a textual output format.
func ParseFormat(format string) (string, error) {
	switch format {
	case ConsoleFormat, JSONFormat:
		return format, nil
	default:
		return "", fmt.Errorf("unknown log format %q", format)
	}
}
