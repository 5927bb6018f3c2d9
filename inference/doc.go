// Package inference persists machine-learned nullability facts across
// analyzer runs.
//
// Facts come in two shapes, both stored as plain text in a shared
// [kvstore.Store] directory:
//
//   - Counters (field records, procedure return records): a non-negative
//     decimal. Existence of the record is the boolean fact "marked"; the
//     magnitude only counts independent observations and is kept for
//     debugging.
//   - Parameter bit-vectors: a fixed-length '0'/'1' string, one flag per
//     declared parameter, created all-zero on the first mark.
//
// Record file names are the query-escaped identifier plus a kind suffix
// (".ret", ".arg", ".field"), so independent worker processes agree on
// addressing without coordination.
//
// Garbled record content is surfaced as [ErrCorruptRecord], never silently
// treated as absent: masking it would hide real loss of learned knowledge.
package inference
