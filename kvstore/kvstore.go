package kvstore

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hupe1980/nilfacts/internal/fs"
)

const (
	lockSuffix = ".lock"
	tmpSuffix  = ".tmp"
)

// ErrInvalidKey is returned for keys that cannot name a record file.
var ErrInvalidKey = errors.New("invalid key")

// Combine computes the next committed value from the current one.
// ok is false when no record exists yet. Returning an error aborts the
// update; the prior value is preserved.
type Combine func(cur string, ok bool) (string, error)

// Store is a directory of one file per key.
//
// A Store handle is cheap; independent processes (or tests) may open any
// number of handles on the same directory concurrently.
type Store struct {
	fsys   fs.FileSystem
	dir    string
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithFS overrides the filesystem implementation. Used by tests for fault
// injection; the lock path always uses the real filesystem because advisory
// locks need a real descriptor.
func WithFS(fsys fs.FileSystem) Option {
	return func(s *Store) {
		if fsys != nil {
			s.fsys = fsys
		}
	}
}

// WithLogger sets the logger for debug-level operational logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New opens (creating if necessary) a store rooted at dir.
func New(dir string, opts ...Option) (*Store, error) {
	s := &Store{
		fsys:   fs.Default,
		dir:    dir,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kvstore: create root %q: %w", dir, err)
	}
	return s, nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string { return s.dir }

// Read returns the committed value for key, or ok=false if no record exists.
// Read takes no lock: commits are rename-atomic, so a read racing an update
// sees the pre- or post-update value, never a mixture.
func (s *Store) Read(key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}
	f, err := s.fsys.OpenFile(s.path(key), os.O_RDONLY, 0)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kvstore: read %q: %w", key, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", false, fmt.Errorf("kvstore: read %q: %w", key, err)
	}
	return string(data), true, nil
}

// Update atomically replaces key's value with combine(current). The per-key
// lock is held for the whole read-compute-write sequence; acquisition blocks
// under contention. If combine fails, nothing is written.
func (s *Store) Update(key string, combine Combine) (err error) {
	if err := validateKey(key); err != nil {
		return err
	}
	lock, err := acquireLock(s.path(key) + lockSuffix)
	if err != nil {
		return fmt.Errorf("kvstore: lock %q: %w", key, err)
	}
	defer func() {
		if rerr := lock.release(); rerr != nil && err == nil {
			err = fmt.Errorf("kvstore: unlock %q: %w", key, rerr)
		}
	}()

	cur, ok, err := s.Read(key)
	if err != nil {
		return err
	}
	next, err := combine(cur, ok)
	if err != nil {
		return err
	}
	if err := s.commit(key, next); err != nil {
		return err
	}
	s.logger.Debug("kvstore update", "key", key, "created", !ok)
	return nil
}

// Keys lists all record keys currently in the store, skipping lock and temp
// files.
func (s *Store) Keys() ([]string, error) {
	entries, err := s.fsys.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("kvstore: list %q: %w", s.dir, err)
	}
	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasSuffix(name, lockSuffix) || strings.HasSuffix(name, tmpSuffix) {
			continue
		}
		keys = append(keys, name)
	}
	return keys, nil
}

// commit writes value to a temp file and renames it over the record.
func (s *Store) commit(key, value string) error {
	tmp := s.path(key) + tmpSuffix
	f, err := s.fsys.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("kvstore: commit %q: %w", key, err)
	}
	if _, err := io.WriteString(f, value); err != nil {
		f.Close()
		s.fsys.Remove(tmp)
		return fmt.Errorf("kvstore: commit %q: %w", key, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		s.fsys.Remove(tmp)
		return fmt.Errorf("kvstore: commit %q: %w", key, err)
	}
	if err := f.Close(); err != nil {
		s.fsys.Remove(tmp)
		return fmt.Errorf("kvstore: commit %q: %w", key, err)
	}
	if err := s.fsys.Rename(tmp, s.path(key)); err != nil {
		s.fsys.Remove(tmp)
		return fmt.Errorf("kvstore: commit %q: %w", key, err)
	}
	return s.syncDir()
}

// syncDir persists the rename.
func (s *Store) syncDir() error {
	f, err := s.fsys.OpenFile(s.dir, os.O_RDONLY, 0)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}

func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) ||
		strings.HasSuffix(key, lockSuffix) || strings.HasSuffix(key, tmpSuffix) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
