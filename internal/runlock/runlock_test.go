package runlock

import (
	"errors"
	"os"
	"testing"
)

func TestAcquireAndRelease(t *testing.T) {
	dataDir := t.TempDir()
	dest := t.TempDir()

	lock, err := Acquire(dataDir, dest)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if _, err := os.Stat(lock.Path()); err != nil {
		t.Fatalf("lock file missing: %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}

	// Once released, the lock can be taken again.
	again, err := Acquire(dataDir, dest)
	if err != nil {
		t.Fatalf("re-Acquire failed: %v", err)
	}
	_ = again.Release()
}

func TestSecondAcquireFailsWithBusy(t *testing.T) {
	dataDir := t.TempDir()
	dest := t.TempDir()

	lock, err := Acquire(dataDir, dest)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer lock.Release()

	if _, err := Acquire(dataDir, dest); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
}

func TestDistinctDestinationsDoNotContend(t *testing.T) {
	dataDir := t.TempDir()

	first, err := Acquire(dataDir, "/tmp/dest-a")
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer first.Release()

	second, err := Acquire(dataDir, "/tmp/dest-b")
	if err != nil {
		t.Fatalf("second destination should not contend: %v", err)
	}
	_ = second.Release()
}

func TestReleaseNilLock(t *testing.T) {
	var lock *Lock
	if err := lock.Release(); err != nil {
		t.Fatalf("nil release should be a no-op: %v", err)
	}
}
