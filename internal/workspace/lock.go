package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"rune/internal/services"
)

// Lock is an exclusive advisory lock on "<dir>.lock".
type Lock struct {
	dir  string
	path string
	fl   *flock.Flock
}

// LockPath returns the lock file used for dir.
func LockPath(dir string) string {
	return filepath.Clean(dir) + ".lock"
}

// Acquire takes the lock for dir without blocking. A lock held by another
// process fails with services.ErrBusy.
func Acquire(dir string) (*Lock, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, services.Wrap(services.ErrValidation, "workspace", "lock", "empty directory", nil)
	}
	path := LockPath(dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, services.Wrap(services.ErrIO, "workspace", "lock", path, err)
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrIO, "workspace", "lock", path, err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrBusy, "workspace", "lock", "another run is using "+dir, nil)
	}
	return &Lock{dir: dir, path: path, fl: fl}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string { return l.path }

// Release drops the lock. The lock file itself is left in place.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}

// AcquireAll locks each directory in order and releases everything already
// held if one fails.
func AcquireAll(dirs ...string) (Locks, error) {
	var held Locks
	for _, dir := range dirs {
		lock, err := Acquire(dir)
		if err != nil {
			_ = held.Release()
			return nil, err
		}
		held = append(held, lock)
	}
	return held, nil
}

// Locks is a set acquired together.
type Locks []*Lock

// Release unlocks in reverse order and joins any errors.
func (ls Locks) Release() error {
	var errs []error
	for i := len(ls) - 1; i >= 0; i-- {
		if err := ls[i].Release(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
