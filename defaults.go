package arrident

import "time"

// Default configuration values for NewStore.
// These constants are exported so callers can reference the defaults when
// building custom configurations relative to them (e.g., 2 * DefaultLockTimeout).
const (
	// DefaultLockTimeout is the total time Write spends polling for the
	// advisory lock before giving up with ReasonLockTimeout.
	DefaultLockTimeout = 10 * time.Second

	// DefaultLockRetryDelay is the pause between consecutive lock acquisition
	// attempts while another writer holds the lock.
	DefaultLockRetryDelay = 200 * time.Millisecond

	// DefaultStaleLockAfter is the age beyond which an existing lock marker is
	// presumed abandoned by a crashed writer and reclaimed. Two minutes is far
	// longer than any healthy write (a serialize, compare, and rename) while
	// still bounding how long a crash can stall other CI jobs.
	DefaultStaleLockAfter = 2 * time.Minute

	// LockSuffix is appended to the state-file path to form the advisory lock
	// marker path.
	LockSuffix = ".lock"

	// CurrentSchemaVersion is the schema version written into new state
	// documents. Documents carrying a different version are treated as absent
	// data on read, never as a parse error.
	CurrentSchemaVersion = 2
)
