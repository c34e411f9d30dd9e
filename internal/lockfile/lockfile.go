// Package lockfile coordinates concurrent writers of a managed document
// through OS-level advisory locks.
//
// The lock is taken on a sidecar "<path>.lock" file rather than on the
// document itself: documents are replaced by atomic rename, so a lock on
// the document's own descriptor would still refer to the old inode once
// a writer renames a new file into place. The sidecar is never renamed,
// which keeps every writer contending on a single inode.
//
// Locks are advisory. Correctness requires every writer, in every
// process, to acquire the lock before touching the document.
package lockfile

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Lock is a held exclusive advisory lock. Release it with Unlock.
type Lock struct {
	f *os.File
}

// LockPath acquires an exclusive flock on the sidecar lock file for
// path, creating it if needed. The call blocks until the lock is
// granted; there is no acquisition timeout.
func LockPath(path string) (*Lock, error) {
	f, err := os.OpenFile(path+".lock", os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		f.Close()
		return nil, fmt.Errorf("lock %s.lock: %w", path, err)
	}
	return &Lock{f: f}, nil
}

// Unlock releases the lock. The flock is dropped when the descriptor
// closes.
func (l *Lock) Unlock() error {
	return l.f.Close()
}
