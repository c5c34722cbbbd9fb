// Package logging holds the package-level logger shared by all arrident
// packages. The root package re-exports SetLogger for applications that want
// to route arrident output through their own slog handler.
package logging

import (
	"log/slog"
	"sync/atomic"
)

// logger is the custom logger installed via SetLogger, stored as an atomic
// pointer so reads and writes are data-race-free. Nil means no custom logger
// has been set and Logger falls back to a cached default.
var logger atomic.Pointer[slog.Logger]

// defaultLogger caches the default-derived logger (slog.Default() with the
// arrident component attribute) so it is not re-created on every Logger call.
// If slog.SetDefault is called after the first Logger call, the cached value
// will not reflect the change; calling SetLogger(nil) clears the cache so the
// next Logger call picks up the new default.
var defaultLogger atomic.Pointer[slog.Logger]

// Logger returns the current package-level logger. If no custom logger has
// been set via SetLogger, it returns a cached logger derived from
// slog.Default() with the arrident component attribute. Safe for concurrent
// use.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	l := newDefaultLogger()
	// CompareAndSwap so a concurrently cached value is not overwritten;
	// whichever goroutine wins, every caller sees a valid logger.
	if defaultLogger.CompareAndSwap(nil, l) {
		return l
	}
	if l2 := defaultLogger.Load(); l2 != nil {
		return l2
	}
	return l
}

// newDefaultLogger creates the default logger with the arrident component attribute.
func newDefaultLogger() *slog.Logger {
	return slog.Default().With("component", "arrident")
}

// SetLogger replaces the package-level logger. If l is nil, the logger resets
// to the default: slog.Default() with the component attribute, re-derived on
// the next Logger call and then cached. Safe to call concurrently with other
// arrident operations.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
	// Clear the cached default so the next Logger call re-derives it from
	// slog.Default().
	defaultLogger.Store(nil)
}
