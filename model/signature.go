package model

// Signature is the annotated parameter/return list of a procedure: each
// position carries a Kind set (zero or more facets).
//
// Signatures are value-like. The With* and Overlay methods return a modified
// copy; the receiver is never changed. Params must be treated as owned by the
// signature once passed in.
type Signature struct {
	Ret    Kind
	Params []Kind
}

// NewSignature returns an unannotated signature of the given arity.
func NewSignature(arity int) Signature {
	return Signature{Params: make([]Kind, arity)}
}

// Arity returns the declared parameter count.
func (s Signature) Arity() int { return len(s.Params) }

// WithReturn returns a copy of s with k added to the return position.
func (s Signature) WithReturn(k Kind) Signature {
	out := s.clone()
	out.Ret |= k
	return out
}

// WithParam returns a copy of s with k added to parameter i.
// i must be in range; callers validate arity before overlaying.
func (s Signature) WithParam(i int, k Kind) Signature {
	out := s.clone()
	out.Params[i] |= k
	return out
}

// Overlay returns a copy of s with kind added at every position m flags.
// The union is additive: existing facets at untouched positions survive, so
// overlaying is monotonic and idempotent. Parameter positions beyond s's
// arity are ignored, as are mark positions beyond m's.
func (s Signature) Overlay(m Mark, kind Kind) Signature {
	out := s.clone()
	if m.Ret {
		out.Ret |= kind
	}
	for i, flagged := range m.Params {
		if i >= len(out.Params) {
			break
		}
		if flagged {
			out.Params[i] |= kind
		}
	}
	return out
}

func (s Signature) clone() Signature {
	params := make([]Kind, len(s.Params))
	copy(params, s.Params)
	return Signature{Ret: s.Ret, Params: params}
}
