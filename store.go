package arrident

import (
	"bytes"
	"context"
	"errors"
	"os"

	"github.com/arr-tools/arrident/internal/fileutil"
	"github.com/arr-tools/arrident/internal/lockfile"
	"github.com/arr-tools/arrident/internal/logging"
)

// WriteReason explains the outcome of a Write call with full diagnostic
// fidelity; WriteResult.Wrote is the boolean projection for callers that only
// care whether the cache changed.
type WriteReason string

const (
	// ReasonWritten: the document differed and was replaced atomically.
	ReasonWritten WriteReason = "written"

	// ReasonNoChanges: the on-disk document was already byte-identical to the
	// candidate; no I/O was performed beyond the comparison.
	ReasonNoChanges WriteReason = "no_changes"

	// ReasonLockTimeout: another writer held the advisory lock for the whole
	// acquisition window (or the context was canceled while waiting). The
	// document was not touched.
	ReasonLockTimeout WriteReason = "lock_timeout"

	// ReasonIOError: a filesystem operation failed for a reason other than
	// contention (permissions, disk full, path collision). The document may
	// or may not have been touched; Err carries the underlying error.
	ReasonIOError WriteReason = "io_error"
)

// WriteResult is the structured, non-error outcome of Store.Write. Attempted
// is always true once Write returns; it exists so callers logging results can
// distinguish "write ran" from a zero value that was never filled in.
type WriteResult struct {
	Attempted bool
	Wrote     bool
	Reason    WriteReason

	// Err carries the underlying error for ReasonLockTimeout and
	// ReasonIOError. Informational only: the write protocol is best-effort
	// and callers are expected to proceed regardless.
	Err error
}

// Store reads and writes the preference document at one state-file path. The
// document on disk is the single source of truth shared across processes;
// Store holds no document state in memory, so every Read and Write
// round-trips through the filesystem.
//
// A Store is safe for concurrent use: all mutable state lives in the
// filesystem and is mediated by the advisory lock.
type Store struct {
	path string
	cfg  storeConfig
}

// NewStore returns a Store bound to the state file at path. The file and its
// parent directories are created lazily on the first successful Write; a
// Store pointed at a path that never gets written leaves no trace on disk.
//
// Panics if path is empty. See the With* StoreOptions for tunables.
func NewStore(path string, opts ...StoreOption) *Store {
	requireNonEmpty("state file path", path)

	cfg := defaultStoreConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Store{path: path, cfg: cfg}
}

// Path returns the state-file path this store is bound to.
func (s *Store) Path() string {
	return s.path
}

// lockPath returns the advisory lock marker path next to the document.
func (s *Store) lockPath() string {
	return s.path + LockSuffix
}

// Read returns the current persisted state. It never fails: a missing,
// unreadable, or malformed document reads as the empty state so that cache
// corruption can never block a test run. Readers take no lock; a torn read
// degrades to the empty state.
func (s *Store) Read() *State {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logging.Logger().Debug("state file unreadable, treating as empty", "path", s.path, "err", err)
		}
		return NewState()
	}
	return decodeState(data)
}

// Write persists state to the store's path under the advisory lock protocol:
// serialize deterministically, acquire the sibling lock marker (reclaiming it
// if stale), skip the write when the on-disk bytes already match, otherwise
// replace the document atomically.
//
// Write never returns an error. Contention ends in ReasonLockTimeout and
// filesystem failures in ReasonIOError; both are expected runtime conditions
// of a best-effort cache and must not fail the enclosing run. Canceling ctx
// aborts a pending lock acquisition early and reports ReasonLockTimeout.
//
// Panics if state is nil.
func (s *Store) Write(ctx context.Context, state *State) WriteResult {
	if state == nil {
		panic("arrident: state must not be nil")
	}

	logger := logging.Logger()

	candidate, err := encodeState(state)
	if err != nil {
		// Unreachable with the State shape, but the contract holds: absorb.
		logger.Warn("state serialization failed", "path", s.path, "err", err)
		return WriteResult{Attempted: true, Reason: ReasonIOError, Err: err}
	}

	// The lock marker lives next to the document, so the parent directory
	// must exist before acquisition on a lazily-created path.
	if err := fileutil.EnsureDirForFile(s.path); err != nil {
		logger.Warn("state directory unavailable", "path", s.path, "err", err)
		return WriteResult{Attempted: true, Reason: ReasonIOError, Err: err}
	}

	lock, err := lockfile.Acquire(ctx, s.lockPath(), lockfile.Options{
		Timeout:    s.cfg.lockTimeout,
		RetryDelay: s.cfg.lockRetryDelay,
		StaleAfter: s.cfg.staleLockAfter,
		Logger:     logger,
	})
	if err != nil {
		if errors.Is(err, lockfile.ErrTimeout) {
			logger.Warn("state write skipped, lock contention", "path", s.path, "timeout", s.cfg.lockTimeout)
			return WriteResult{Attempted: true, Reason: ReasonLockTimeout, Err: err}
		}
		logger.Warn("state lock failed", "path", s.path, "err", err)
		return WriteResult{Attempted: true, Reason: ReasonIOError, Err: err}
	}
	defer lock.Release()

	// Re-read under the lock: if the document already holds these bytes
	// (common when parallel jobs resolve the same components), skip the I/O.
	current, readErr := os.ReadFile(s.path)
	if readErr == nil && bytes.Equal(current, candidate) {
		logger.Debug("state unchanged, skipping write", "path", s.path)
		return WriteResult{Attempted: true, Reason: ReasonNoChanges}
	}

	if err := fileutil.WriteFileAtomic(s.path, candidate); err != nil {
		logger.Warn("state write failed", "path", s.path, "err", err)
		return WriteResult{Attempted: true, Reason: ReasonIOError, Err: err}
	}

	logger.Debug("state written", "path", s.path, "bytes", len(candidate))
	return WriteResult{Attempted: true, Wrote: true, Reason: ReasonWritten}
}
