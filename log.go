package arrident

import (
	"log/slog"

	"github.com/arr-tools/arrident/internal/logging"
)

// SetLogger replaces the package-level logger used by arrident.
// This allows test harnesses to integrate arrident logging with their own
// logging infrastructure. The provided logger should already have any desired
// attributes; arrident will not add additional attributes.
//
// If l is nil, the logger resets to the default: slog.Default() with a
// "component" attribute, re-derived on the next use and then cached. Call
// SetLogger(nil) after slog.SetDefault() to pick up changes.
//
// SetLogger is safe to call concurrently with other arrident operations; for
// a strict happens-before guarantee, call it before starting goroutines that
// use the library (e.g., in TestMain before m.Run).
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}
