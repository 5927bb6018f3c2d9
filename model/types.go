package model

import "strings"

// ProcedureID uniquely names a procedure overload. It is opaque to nilfacts:
// callers produce it (typically from a fully qualified name plus parameter
// types) and it must be stable across analyzer runs and processes, since it
// is used as the store and table key.
type ProcedureID string

// FieldID uniquely names a class or struct field. Same contract as
// ProcedureID.
type FieldID string

// Kind is a bitmask of annotation facets. The facets are independent: a
// position may carry any subset of them simultaneously.
type Kind uint8

const (
	// Nullable marks a position whose value may legitimately be null.
	Nullable Kind = 1 << iota
	// Present marks a position whose value is known to be non-null.
	Present
	// Strict marks a return value covered by a strict library contract.
	// Strict has no per-parameter form.
	Strict
)

// Has reports whether k carries every facet of other.
func (k Kind) Has(other Kind) bool { return k&other == other }

// String returns a stable human-readable rendering, e.g. "nullable|strict".
// The zero Kind renders as "none".
func (k Kind) String() string {
	if k == 0 {
		return "none"
	}
	var parts []string
	if k.Has(Nullable) {
		parts = append(parts, "nullable")
	}
	if k.Has(Present) {
		parts = append(parts, "present")
	}
	if k.Has(Strict) {
		parts = append(parts, "strict")
	}
	return strings.Join(parts, "|")
}

// Mark describes which positions of a signature receive a given Kind.
// len(Params) equals the procedure's declared arity; index 0 is the first
// parameter and order is declaration order.
type Mark struct {
	Ret    bool
	Params []bool
}
