// Package kvstore provides durable storage of small string values addressed
// by (directory, key), safe under concurrent access from independent
// processes sharing the same directory.
//
// Update is the only mutating operation. It holds an exclusive advisory lock
// on a per-key sidecar file for the whole read-modify-write sequence, so
// concurrent increments or bit-sets from different analyzer workers are never
// lost. Values are committed by writing a temp file, syncing it, and renaming
// it over the record, so Read needs no lock: it observes either the old or
// the new value, never a torn one.
//
// Records only ever grow in number; there is no deletion API.
package kvstore
