// Package tables provides the curated annotation knowledge consumed by the
// resolver: hand-authored, immutable mappings from procedure identity to
// annotation marks, membership tables for well-known checker procedures, and
// an optional precomputed library table of nullable returns.
//
// Tables are loaded once at process start (see [Load]) and are read-only for
// the remainder of the process, so lookups need no synchronization. Absence
// of an entry always means "this source has no opinion", never "definitely
// not nullable".
//
// On disk a table set is a directory of YAML documents (nullable.yaml,
// present.yaml, strict.yaml, checkers.yaml, library.yaml), each optionally
// zstd- or lz4-compressed (.zst / .lz4 extension appended).
package tables
