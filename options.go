package arrident

import (
	"fmt"
	"time"
)

// requirePositive panics if v <= 0 with a descriptive message.
func requirePositive[T int | time.Duration](name string, v T) {
	if v <= 0 {
		panic(fmt.Sprintf("arrident: %s must be greater than 0, got %v", name, v))
	}
}

// requireNonEmpty panics if s is empty with a descriptive message.
func requireNonEmpty(name, s string) {
	if s == "" {
		panic(fmt.Sprintf("arrident: %s must not be empty", name))
	}
}

// storeConfig holds the tunables applied to a Store during construction.
type storeConfig struct {
	lockTimeout    time.Duration
	lockRetryDelay time.Duration
	staleLockAfter time.Duration
}

// defaultStoreConfig returns a storeConfig populated with all default values.
func defaultStoreConfig() storeConfig {
	return storeConfig{
		lockTimeout:    DefaultLockTimeout,
		lockRetryDelay: DefaultLockRetryDelay,
		staleLockAfter: DefaultStaleLockAfter,
	}
}

// StoreOption configures a Store during construction via NewStore.
// Each With* function returns a StoreOption that sets a specific field.
//
// The With* functions panic on non-positive durations. These panics are
// intentional: option values are typically compile-time constants, so an
// invalid value indicates a programmer error rather than a runtime condition.
// The pattern mirrors [regexp.MustCompile] — fail fast during initialization
// instead of returning errors that would be universally fatal anyway.
type StoreOption func(*storeConfig)

// WithLockTimeout sets the total time Write spends polling for the advisory
// lock before returning ReasonLockTimeout.
//
// Default: 10 seconds.
//
// Panics if d <= 0.
func WithLockTimeout(d time.Duration) StoreOption {
	requirePositive("lock timeout", d)
	return func(c *storeConfig) {
		c.lockTimeout = d
	}
}

// WithLockRetryDelay sets the pause between consecutive lock acquisition
// attempts while another writer holds the lock.
//
// Default: 200 milliseconds.
//
// Panics if d <= 0.
func WithLockRetryDelay(d time.Duration) StoreOption {
	requirePositive("lock retry delay", d)
	return func(c *storeConfig) {
		c.lockRetryDelay = d
	}
}

// WithStaleLockAfter sets the age beyond which an existing lock marker is
// presumed abandoned by a crashed writer and reclaimed. Set it well above the
// longest healthy write on the slowest filesystem in play; reclaiming a lock
// that is merely slow lets two writers race.
//
// Default: 2 minutes.
//
// Panics if d <= 0.
func WithStaleLockAfter(d time.Duration) StoreOption {
	requirePositive("stale lock threshold", d)
	return func(c *storeConfig) {
		c.staleLockAfter = d
	}
}
