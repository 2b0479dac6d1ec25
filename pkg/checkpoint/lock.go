package checkpoint

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another run holds the checkpoint lock
var ErrLocked = errors.New("another ingest run is in progress")

// Lock guards a checkpoint against concurrent runs
type Lock struct {
	flock *flock.Flock
}

// AcquireLock takes an exclusive lock on path without blocking
func AcquireLock(path string) (*Lock, error) {
	fl := flock.New(path)

	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}

	return &Lock{flock: fl}, nil
}

// Release drops the lock
func (l *Lock) Release() error {
	if l == nil || l.flock == nil {
		return nil
	}
	return l.flock.Unlock()
}

// LockPath returns the lock file used for a checkpoint file or database
func LockPath(target string) string {
	return target + ".lock"
}
