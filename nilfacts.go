package nilfacts

import (
	"github.com/hupe1980/nilfacts/inference"
	"github.com/hupe1980/nilfacts/kvstore"
	"github.com/hupe1980/nilfacts/model"
	"github.com/hupe1980/nilfacts/tables"
)

// Re-exported model types, so typical callers only import nilfacts.
type (
	// ProcedureID uniquely names a procedure overload.
	ProcedureID = model.ProcedureID
	// FieldID uniquely names a class or struct field.
	FieldID = model.FieldID
	// Kind is a bitmask of annotation facets.
	Kind = model.Kind
	// Mark describes which positions of a signature receive a Kind.
	Mark = model.Mark
	// Signature is the annotated parameter/return list of a procedure.
	Signature = model.Signature
)

const (
	// Nullable marks a position whose value may legitimately be null.
	Nullable = model.Nullable
	// Present marks a position whose value is known to be non-null.
	Present = model.Present
	// Strict marks a return value covered by a strict library contract.
	Strict = model.Strict
)

// BaseSignatureProvider supplies the base signature of a procedure,
// reflecting the explicit source-level annotations already present on it.
type BaseSignatureProvider interface {
	BaseSignature(proc ProcedureID) (Signature, error)
}

// Engine composes curated tables, the shared inference store, and the
// optional library table into effective procedure contracts.
//
// An Engine only ever reads during resolution; the Mark* operations are the
// write side, used by whichever learning pass discovers new facts. Engines
// are safe for concurrent use.
type Engine struct {
	tables  *tables.Tables
	library tables.LibraryTable
	store   *inference.Store
	stages  []stage
	logger  *Logger
}

// New creates an Engine. With no options every overlay stage is disabled and
// Resolve returns base signatures unchanged.
func New(opts ...Option) (*Engine, error) {
	o := options{
		logger: NewLogger(nil),
	}
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		tables:  o.tables,
		library: o.library,
		logger:  o.logger,
	}

	if o.storeDir != "" {
		kv, err := kvstore.New(o.storeDir,
			kvstore.WithFS(o.fsys),
			kvstore.WithLogger(o.logger.Logger),
		)
		if err != nil {
			return nil, err
		}
		e.store = inference.New(kv)
	}

	e.stages = e.buildStages()

	e.logger.Debug("engine ready",
		"curated", e.tables != nil,
		"store", e.store != nil,
		"library", e.library != nil,
	)
	return e, nil
}

// ResolveSignature resolves proc's contract starting from the provider's
// base signature.
func (e *Engine) ResolveSignature(proc ProcedureID, provider BaseSignatureProvider) (Signature, error) {
	base, err := provider.BaseSignature(proc)
	if err != nil {
		return Signature{}, err
	}
	return e.Resolve(proc, base)
}

// MarkFieldNullable durably records that field was observed nullable.
func (e *Engine) MarkFieldNullable(field FieldID) error {
	if e.store == nil {
		return ErrNoInferenceStore
	}
	return e.store.MarkFieldNullable(field)
}

// FieldMarked reports whether field has ever been marked nullable.
func (e *Engine) FieldMarked(field FieldID) (bool, error) {
	if e.store == nil {
		return false, ErrNoInferenceStore
	}
	return e.store.FieldMarked(field)
}

// MarkReturnNullable durably records that proc's return was observed
// nullable.
func (e *Engine) MarkReturnNullable(proc ProcedureID) error {
	if e.store == nil {
		return ErrNoInferenceStore
	}
	return e.store.MarkReturnNullable(proc)
}

// MarkParameterNullable durably records that parameter index of proc (which
// declares total parameters) was observed nullable.
func (e *Engine) MarkParameterNullable(proc ProcedureID, index, total int) error {
	if e.store == nil {
		return ErrNoInferenceStore
	}
	return e.store.MarkParameterNullable(proc, index, total)
}

// Checkers returns the checker predicates of the curated tables. Without
// curated tables every predicate reports false.
func (e *Engine) Checkers() *tables.CheckerFacts {
	if e.tables == nil {
		return tables.New(tables.Data{}).Checkers()
	}
	return e.tables.Checkers()
}
