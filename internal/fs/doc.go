// Package fs abstracts the filesystem operations behind the fact store.
//
//   - [File]: an open file with write/sync capabilities
//   - [FileSystem]: open, remove, rename, stat, list
//
// [LocalFS] is the production implementation over the os package. [FaultyFS]
// wraps another FileSystem and injects errors into the write/sync/close path,
// so tests can verify that an interrupted commit never leaves a torn record
// behind.
//
// Operations here are local small-file writes (microseconds); the interfaces
// deliberately take no context.Context.
package fs
