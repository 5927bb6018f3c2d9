// Package model defines core types shared across nilfacts.
//
// # Identity Types
//
//   - ProcedureID: Opaque, stable identifier for a procedure overload
//   - FieldID: Opaque, stable identifier for a class/struct field
//
// # Annotation Types
//
//   - Kind: Bitmask of independent annotation facets (Nullable, Present, Strict)
//   - Mark: Which positions of a signature receive a given Kind
//   - Signature: Per-position Kind sets for a procedure's parameters and return
//
// Signature overlay operations are pure: they return a modified copy and never
// mutate the receiver, so a signature can be threaded through a resolution
// pipeline without aliasing surprises.
package model
