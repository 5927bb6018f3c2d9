package inference

import (
	"fmt"

	"github.com/hupe1980/nilfacts/model"
)

// ErrCorruptRecord indicates store content that cannot be decoded: a
// non-digit in a counter, a byte outside '0'/'1' in a bit-vector, or a
// bit-vector whose length disagrees with the procedure's arity.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrCorruptRecord struct {
	Key     string
	Content string
	cause   error
}

func (e *ErrCorruptRecord) Error() string {
	return fmt.Sprintf("corrupt record %q: %q", e.Key, e.Content)
}

func (e *ErrCorruptRecord) Unwrap() error { return e.cause }

// ErrIndexOutOfRange indicates a parameter mark outside the declared arity.
// This is a caller bug (the caller's and the store's notion of the
// procedure's arity disagree), not a runtime condition to recover from.
type ErrIndexOutOfRange struct {
	Proc  model.ProcedureID
	Index int
	Total int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("parameter index %d out of range for %q (arity %d)", e.Index, e.Proc, e.Total)
}
