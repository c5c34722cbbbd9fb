package arrident

import "github.com/arr-tools/arrident/internal/lockfile"

// Sentinel errors for error inspection with errors.Is.
// These are immutable constants safe for use in wrapped error chain comparison.
const (
	// ErrLockTimeout is carried in WriteResult.Err when the advisory lock
	// could not be acquired before the configured timeout (or the context was
	// canceled while waiting). The corresponding Reason is ReasonLockTimeout;
	// this sentinel exists for callers that funnel WriteResult.Err into error
	// pipelines.
	ErrLockTimeout = lockfile.ErrTimeout
)
