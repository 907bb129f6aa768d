package rx

import (
	"log/slog"
	"sync/atomic"
)

// Logger defines an interface for logging at different severity levels.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(msg string, args ...any)
	// Info logs a message at info level.
	Info(msg string, args ...any)
	// Warn logs a message at warning level.
	Warn(msg string, args ...any)
	// Error logs a message at error level.
	Error(msg string, args ...any)
}

const (
	msgSubscribe   = "RX: Subscribe"
	msgComplete    = "RX: Complete"
	msgError       = "RX: Error"
	msgUnsubscribe = "RX: Unsubscribe"
	msgTeardown    = "RX: Unsubscribed"
)

var defaultLogger atomic.Pointer[Logger]

// SetDefaultLogger sets the default logger for all observables.
// slog.Default() is used by default. Passing nil restores it.
func SetDefaultLogger(l Logger) {
	if l == nil {
		defaultLogger.Store(nil)
		return
	}
	defaultLogger.Store(&l)
}

func loadDefaultLogger() Logger {
	if l := defaultLogger.Load(); l != nil {
		return *l
	}
	return slog.Default()
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func appendArgs(args ...[]any) []any {
	l := 0
	for _, a := range args {
		l += len(a)
	}
	result := make([]any, 0, l)
	for _, a := range args {
		result = append(result, a...)
	}
	return result
}
