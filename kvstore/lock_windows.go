//go:build windows

package kvstore

import (
	"os"

	"golang.org/x/sys/windows"
)

// fileLock is an exclusive lock on a per-key sidecar file, the LockFileEx
// equivalent of the unix flock implementation.
type fileLock struct {
	f *os.File
}

// acquireLock blocks until the exclusive lock is held.
func acquireLock(path string) (*fileLock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	ol := new(windows.Overlapped)
	if err := windows.LockFileEx(windows.Handle(f.Fd()), windows.LOCKFILE_EXCLUSIVE_LOCK, 0, 1, 0, ol); err != nil {
		f.Close()
		return nil, err
	}
	return &fileLock{f: f}, nil
}

func (l *fileLock) release() error {
	err := windows.UnlockFileEx(windows.Handle(l.f.Fd()), 0, 1, 0, new(windows.Overlapped))
	if cerr := l.f.Close(); err == nil {
		err = cerr
	}
	return err
}
