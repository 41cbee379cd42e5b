// Package runlock serializes organize runs against a destination directory.
//
// Two sortd processes moving files into the same destination would race the
// existence probes behind collision resolution, so a real run takes an
// advisory file lock derived from the destination path before any move.
package runlock

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrBusy indicates another sortd run already holds the destination lock.
var ErrBusy = errors.New("another sortd run is already organizing this destination")

// Lock is a held destination lock.
type Lock struct {
	flock *flock.Flock
}

// Acquire takes the lock for dest, storing the lock file under dataDir so the
// destination tree itself stays untouched. It fails fast with ErrBusy when
// the lock is held elsewhere.
func Acquire(dataDir, dest string) (*Lock, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure lock directory: %w", err)
	}

	lockPath := filepath.Join(dataDir, lockName(dest))
	fl := flock.New(lockPath)

	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrBusy
	}
	return &Lock{flock: fl}, nil
}

// Release drops the lock. Safe to call on a nil lock.
func (l *Lock) Release() error {
	if l == nil || l.flock == nil {
		return nil
	}
	return l.flock.Unlock()
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	if l == nil || l.flock == nil {
		return ""
	}
	return l.flock.Path()
}

func lockName(dest string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(dest)))
	return "run-" + hex.EncodeToString(sum[:8]) + ".lock"
}
