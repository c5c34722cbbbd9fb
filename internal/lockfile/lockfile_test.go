package lockfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testOptions returns Options tuned for fast tests: a short timeout with a
// generous staleness threshold so only explicitly aged markers count as stale.
func testOptions() Options {
	return Options{
		Timeout:    200 * time.Millisecond,
		RetryDelay: 20 * time.Millisecond,
		StaleAfter: time.Minute,
	}
}

func TestAcquire_CreatesMarker(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "state.json.lock")

	lock, err := Acquire(context.Background(), path, testOptions())
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}

	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("expected marker at %s: %v", path, statErr)
	}

	lock.Release()
	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("expected marker removed after Release, stat: %v", statErr)
	}
}

func TestAcquire_TimesOutOnHeldLock(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "state.json.lock")

	// A freshly created marker simulates another live writer.
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("seed marker: %v", err)
	}

	start := time.Now()
	_, err := Acquire(context.Background(), path, testOptions())
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("Acquire() error = %v, want ErrTimeout", err)
	}
	if elapsed := time.Since(start); elapsed < 200*time.Millisecond {
		t.Errorf("Acquire() returned after %v, want at least the 200ms timeout", elapsed)
	}

	// The contender must not have removed the holder's marker.
	if _, statErr := os.Stat(path); statErr != nil {
		t.Errorf("holder's marker disappeared: %v", statErr)
	}
}

func TestAcquire_ReclaimsStaleMarker(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "state.json.lock")

	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("seed marker: %v", err)
	}
	// Age the marker past the staleness threshold.
	old := time.Now().Add(-2 * time.Minute)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("age marker: %v", err)
	}

	lock, err := Acquire(context.Background(), path, testOptions())
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	defer lock.Release()

	// The reclaimed marker must have been recreated fresh, not reused.
	info, statErr := os.Stat(path)
	if statErr != nil {
		t.Fatalf("stat reclaimed marker: %v", statErr)
	}
	if time.Since(info.ModTime()) > time.Minute {
		t.Error("marker mtime still stale; expected recreation")
	}
}

func TestAcquire_SucceedsAfterHolderReleases(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "state.json.lock")

	holder, err := Acquire(context.Background(), path, testOptions())
	if err != nil {
		t.Fatalf("holder Acquire() error: %v", err)
	}

	// Release partway through the contender's poll window.
	go func() {
		time.Sleep(60 * time.Millisecond)
		holder.Release()
	}()

	opts := testOptions()
	opts.Timeout = time.Second
	lock, err := Acquire(context.Background(), path, opts)
	if err != nil {
		t.Fatalf("contender Acquire() error: %v", err)
	}
	lock.Release()
}

func TestAcquire_ContextCancelAborts(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "state.json.lock")

	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("seed marker: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := testOptions()
	opts.Timeout = time.Minute
	start := time.Now()
	_, err := Acquire(ctx, path, opts)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("Acquire() error = %v, want ErrTimeout", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Acquire() took %v despite canceled context", elapsed)
	}
}

func TestRelease_IdempotentWhenMarkerGone(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "state.json.lock")

	lock, err := Acquire(context.Background(), path, testOptions())
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}

	lock.Release()
	lock.Release() // second removal finds no marker; must not panic
}
