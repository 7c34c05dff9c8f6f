package log

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger     zerolog.Logger
	loggerLock sync.RWMutex
)

func init() {
	zerolog.TimestampFieldName = "ts"
	zerolog.TimeFieldFormat = time.RFC3339Nano

	logger = New(os.Stdout, false, "info")
}

// New builds a timestamped logger writing to w.
// Console output is human readable; otherwise one JSON object per line.
func New(w io.Writer, console bool, levelStr string) zerolog.Logger {
	if console {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
		}
	}
	return zerolog.New(w).
		Level(parseLogLevel(levelStr)).
		With().
		Timestamp().
		Logger()
}

// Setup replaces the global logger. Debug mode switches to console output at debug level.
func Setup(debug bool, levelStr string) {
	if debug {
		levelStr = "debug"
	}
	l := New(os.Stdout, debug, levelStr)

	loggerLock.Lock()
	logger = l
	loggerLock.Unlock()
}

// parseLogLevel converts a string log level to zerolog.Level
func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Logger returns the underlying zerolog.Logger for integrations
func Logger() zerolog.Logger {
	loggerLock.RLock()
	defer loggerLock.RUnlock()
	return logger
}

// Debug logs a debug message
func Debug() *zerolog.Event {
	l := Logger()
	return l.Debug()
}

// Info logs an info message
func Info() *zerolog.Event {
	l := Logger()
	return l.Info()
}

// Warn logs a warning message
func Warn() *zerolog.Event {
	l := Logger()
	return l.Warn()
}

// Error logs an error message
func Error() *zerolog.Event {
	l := Logger()
	return l.Error()
}

// Fatal logs a fatal message and exits
func Fatal() *zerolog.Event {
	l := Logger()
	return l.Fatal()
}
