//go:build unix

package kvstore

import (
	"os"

	"golang.org/x/sys/unix"
)

// fileLock is an exclusive advisory lock on a per-key sidecar file. flock
// serializes the read-modify-write sequence across processes sharing the
// store directory; the lock dies with the descriptor, so a crashed holder
// never wedges the key.
type fileLock struct {
	f *os.File
}

// acquireLock blocks until the exclusive lock is held.
func acquireLock(path string) (*fileLock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		f.Close()
		return nil, err
	}
	return &fileLock{f: f}, nil
}

func (l *fileLock) release() error {
	err := unix.Flock(int(l.f.Fd()), unix.LOCK_UN)
	if cerr := l.f.Close(); err == nil {
		err = cerr
	}
	return err
}
