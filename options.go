package nilfacts

import (
	"github.com/hupe1980/nilfacts/internal/fs"
	"github.com/hupe1980/nilfacts/tables"
)

type options struct {
	tables   *tables.Tables
	library  tables.LibraryTable
	storeDir string
	fsys     fs.FileSystem
	logger   *Logger
}

// Option configures Engine construction.
type Option func(*options)

// WithCuratedTables enables the curated overlay stages (Nullable, Present,
// Strict) backed by the given table set. Without it those stages are
// pass-throughs.
func WithCuratedTables(t *tables.Tables) Option {
	return func(o *options) {
		o.tables = t
	}
}

// WithStoreDir enables the inferred overlay stages, backed by a fact store
// rooted at dir. The directory is shared with all other analyzer workers of
// the project and is created if absent.
func WithStoreDir(dir string) Option {
	return func(o *options) {
		o.storeDir = dir
	}
}

// WithLibraryTable enables the precomputed return-nullability table on the
// inferred-return stage, as an alternative or supplement to the store.
func WithLibraryTable(t tables.LibraryTable) Option {
	return func(o *options) {
		o.library = t
	}
}

// WithLogger sets the logger. Defaults to a text logger at info level.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithFS overrides the filesystem used by the store. Used by tests for
// fault injection.
func WithFS(fsys fs.FileSystem) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}
