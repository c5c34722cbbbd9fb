package lockfile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/arr-tools/arrident/internal/sentinel"
)

// ErrTimeout is returned by Acquire when the lock could not be obtained
// before the configured timeout elapsed (including early abort via context
// cancellation, which callers treat as the same contention outcome).
const ErrTimeout = sentinel.Error("lock acquisition timed out")

// Options configures a single acquisition attempt.
type Options struct {
	// Timeout bounds the total time spent polling for the lock.
	Timeout time.Duration

	// RetryDelay is the pause between consecutive acquisition attempts while
	// the lock is held by another writer.
	RetryDelay time.Duration

	// StaleAfter is the age beyond which an existing marker is presumed
	// abandoned by a crashed writer and reclaimed.
	StaleAfter time.Duration

	// Logger receives reclamation and contention events. Nil uses slog.Default.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Lock represents a held marker-file lock. Release removes the marker.
type Lock struct {
	path   string
	logger *slog.Logger
}

// Acquire obtains the marker-file lock at path, polling until it succeeds or
// opts.Timeout elapses. An existing marker older than opts.StaleAfter is
// deleted and the acquisition retried immediately; a fresh marker causes a
// wait of opts.RetryDelay before the next attempt.
//
// Returns ErrTimeout when the timeout elapses (or ctx is canceled) without
// acquisition, and the underlying error for any other filesystem failure.
// The first attempt happens immediately, so a timeout shorter than the retry
// delay still permits one try.
func Acquire(ctx context.Context, path string, opts Options) (*Lock, error) {
	logger := opts.logger()
	deadline := time.Now().Add(opts.Timeout)

	for {
		held, err := tryAcquire(path, opts.StaleAfter, logger)
		if err != nil {
			return nil, err
		}
		if held {
			return &Lock{path: path, logger: logger}, nil
		}

		if time.Now().After(deadline) {
			logger.Debug("lock held by another writer past timeout", "path", path, "timeout", opts.Timeout)
			return nil, fmt.Errorf("acquire %s: %w", path, ErrTimeout)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("acquire %s: %v: %w", path, context.Cause(ctx), ErrTimeout)
		case <-time.After(opts.RetryDelay):
		}
	}
}

// tryAcquire makes one pass of the acquisition protocol: create the marker if
// absent, otherwise inspect its age and reclaim it when stale. Returns
// (true, nil) when the marker was created by this caller, (false, nil) when
// the lock is legitimately held elsewhere and the caller should retry, and a
// non-nil error for filesystem failures outside the contention path.
func tryAcquire(path string, staleAfter time.Duration, logger *slog.Logger) (bool, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644) //nolint:gosec // G304: lock path derives from the caller's state-file path
	if err == nil {
		if closeErr := f.Close(); closeErr != nil {
			logger.Debug("failed to close lock marker", "path", path, "err", closeErr)
		}
		return true, nil
	}
	if !errors.Is(err, os.ErrExist) {
		return false, fmt.Errorf("create lock marker %s: %w", path, err)
	}

	info, statErr := os.Stat(path)
	if statErr != nil {
		if errors.Is(statErr, os.ErrNotExist) {
			// The holder released between our create and stat; retry.
			return false, nil
		}
		return false, fmt.Errorf("stat lock marker %s: %w", path, statErr)
	}

	// Compare in UTC so staleness stays correct on hosts with misconfigured
	// local time zones.
	age := time.Now().UTC().Sub(info.ModTime().UTC())
	if age <= staleAfter {
		return false, nil
	}

	logger.Warn("reclaiming stale lock marker", "path", path, "age", age.Round(time.Second), "stale_after", staleAfter)
	if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
		return false, fmt.Errorf("remove stale lock marker %s: %w", path, rmErr)
	}

	// Recreate immediately rather than waiting out a retry delay. Another
	// contender may win this race; losing just means the lock is fresh again.
	f, err = os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644) //nolint:gosec // G304: lock path derives from the caller's state-file path
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("recreate lock marker %s: %w", path, err)
	}
	if closeErr := f.Close(); closeErr != nil {
		logger.Debug("failed to close lock marker", "path", path, "err", closeErr)
	}
	return true, nil
}

// Release removes the marker file. Errors are logged at debug level rather
// than returned: the marker will eventually be reclaimed as stale, so failed
// removal only delays other writers, it never corrupts state.
func (l *Lock) Release() {
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		l.logger.Debug("failed to remove lock marker", "path", l.path, "err", err)
	}
}
