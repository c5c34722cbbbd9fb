package arrident

import "time"

// ConfigSnapshot holds a copy of storeConfig fields for test assertions.
// Exported only via export_test.go so that the _test package can verify
// option closures actually mutate the config without accessing internals.
type ConfigSnapshot struct {
	LockTimeout    time.Duration
	LockRetryDelay time.Duration
	StaleLockAfter time.Duration
}

// ApplyOptionsForTesting creates a default storeConfig, applies the given
// options, and returns a ConfigSnapshot of the result.
func ApplyOptionsForTesting(opts ...StoreOption) ConfigSnapshot {
	cfg := defaultStoreConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return ConfigSnapshot{
		LockTimeout:    cfg.lockTimeout,
		LockRetryDelay: cfg.lockRetryDelay,
		StaleLockAfter: cfg.staleLockAfter,
	}
}

// EncodeStateForTesting exposes the deterministic serializer to the _test
// package for byte-level assertions.
func EncodeStateForTesting(s *State) ([]byte, error) { return encodeState(s) }

// DecodeStateForTesting exposes the tolerant decoder to the _test package.
func DecodeStateForTesting(data []byte) *State { return decodeState(data) }
