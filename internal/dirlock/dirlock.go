// Package dirlock serializes filesorter invocations that mutate the same
// directory. Locks are advisory flock(2) locks kept in the state directory,
// never inside the organized directory itself.
package dirlock

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"filesorter/internal/services"
)

// Lock is a held directory lock.
type Lock struct {
	dir  string
	path string
	lock *flock.Flock
}

// PathFor returns the lock file used for dir inside lockDir.
func PathFor(lockDir, dir string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(dir)))
	return filepath.Join(lockDir, hex.EncodeToString(sum[:8])+".lock")
}

// Acquire takes the lock for dir without blocking. A lock held by another
// process fails with services.ErrLocked.
func Acquire(lockDir, dir string) (*Lock, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "lock", "resolve directory", dir, err)
	}
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "lock", "create lock dir", lockDir, err)
	}

	path := PathFor(lockDir, abs)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrIO, "lock", "acquire", path, err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrLocked, "lock", "acquire",
			fmt.Sprintf("Another filesorter run is working on %s", abs), nil)
	}
	return &Lock{dir: abs, path: path, lock: fl}, nil
}

// Dir is the absolute directory the lock protects.
func (l *Lock) Dir() string { return l.dir }

// Path is the lock file path.
func (l *Lock) Path() string { return l.path }

// Release unlocks. It is safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
