package tables

import "github.com/hupe1980/nilfacts/model"

// Data is the in-memory content of a curated table set. It is consumed by
// New and never retained: Tables copies what it needs.
type Data struct {
	// Nullable and Present map procedures to the positions that receive the
	// respective annotation kind.
	Nullable map[model.ProcedureID]model.Mark
	Present  map[model.ProcedureID]model.Mark

	// Strict lists procedures whose return is covered by a strict contract.
	// Strict is return-only and therefore pure membership.
	Strict []model.ProcedureID

	// NullChecks maps well-known null-check procedures to the parameter
	// index being checked.
	NullChecks map[model.ProcedureID]int

	// Membership tables for the remaining checker families.
	PreconditionChecks []model.ProcedureID
	OptionalPresence   []model.ProcedureID
	MapContainment     []model.ProcedureID
}

// Tables are the curated lookup mappings, immutable after construction.
type Tables struct {
	nullable map[model.ProcedureID]model.Mark
	present  map[model.ProcedureID]model.Mark
	strict   map[model.ProcedureID]struct{}
	checkers *CheckerFacts
}

// New builds an immutable table set from data.
func New(data Data) *Tables {
	return &Tables{
		nullable: cloneMarks(data.Nullable),
		present:  cloneMarks(data.Present),
		strict:   toSet(data.Strict),
		checkers: &CheckerFacts{
			nullChecks:       cloneIndexMap(data.NullChecks),
			preconditions:    toSet(data.PreconditionChecks),
			optionalPresence: toSet(data.OptionalPresence),
			mapContainment:   toSet(data.MapContainment),
		},
	}
}

// Nullable returns the curated Nullable mark for proc, if any.
func (t *Tables) Nullable(proc model.ProcedureID) (model.Mark, bool) {
	m, ok := t.nullable[proc]
	return cloneMark(m), ok
}

// Present returns the curated Present mark for proc, if any.
func (t *Tables) Present(proc model.ProcedureID) (model.Mark, bool) {
	m, ok := t.present[proc]
	return cloneMark(m), ok
}

// Strict reports whether proc's return is covered by a strict contract.
func (t *Tables) Strict(proc model.ProcedureID) bool {
	_, ok := t.strict[proc]
	return ok
}

// Checkers returns the checker predicates built on this table set.
func (t *Tables) Checkers() *CheckerFacts { return t.checkers }

// CheckerFacts are read-only predicates over the well-known checker
// procedures. They are used by analysis passes that interpret call sites,
// not by signature resolution itself.
type CheckerFacts struct {
	nullChecks       map[model.ProcedureID]int
	preconditions    map[model.ProcedureID]struct{}
	optionalPresence map[model.ProcedureID]struct{}
	mapContainment   map[model.ProcedureID]struct{}
}

// IsNullCheck reports whether proc is a well-known null-check procedure.
func (c *CheckerFacts) IsNullCheck(proc model.ProcedureID) bool {
	_, ok := c.nullChecks[proc]
	return ok
}

// NullCheckParameter returns the index of the parameter a null-check
// procedure checks. It defaults to 0 when the table has no explicit entry:
// single-argument null checks are the overwhelmingly common case.
func (c *CheckerFacts) NullCheckParameter(proc model.ProcedureID) int {
	return c.nullChecks[proc]
}

// IsPreconditionCheck reports whether proc is a well-known state or argument
// precondition check.
func (c *CheckerFacts) IsPreconditionCheck(proc model.ProcedureID) bool {
	_, ok := c.preconditions[proc]
	return ok
}

// IsOptionalPresence reports whether proc is a well-known optional-accessor
// or optional-is-present procedure.
func (c *CheckerFacts) IsOptionalPresence(proc model.ProcedureID) bool {
	_, ok := c.optionalPresence[proc]
	return ok
}

// IsMapContainment reports whether proc is a well-known map-containment test.
func (c *CheckerFacts) IsMapContainment(proc model.ProcedureID) bool {
	_, ok := c.mapContainment[proc]
	return ok
}

// LibraryTable is a precomputed read-only set of library procedures whose
// return values are known nullable. It supplements or replaces the inference
// store on the inferred-return stage.
type LibraryTable map[model.ProcedureID]struct{}

// ReturnsNullable reports whether the table covers proc.
func (t LibraryTable) ReturnsNullable(proc model.ProcedureID) bool {
	_, ok := t[proc]
	return ok
}

func toSet(ids []model.ProcedureID) map[model.ProcedureID]struct{} {
	set := make(map[model.ProcedureID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func cloneMarks(in map[model.ProcedureID]model.Mark) map[model.ProcedureID]model.Mark {
	out := make(map[model.ProcedureID]model.Mark, len(in))
	for id, m := range in {
		out[id] = cloneMark(m)
	}
	return out
}

func cloneMark(m model.Mark) model.Mark {
	params := make([]bool, len(m.Params))
	copy(params, m.Params)
	return model.Mark{Ret: m.Ret, Params: params}
}

func cloneIndexMap(in map[model.ProcedureID]int) map[model.ProcedureID]int {
	out := make(map[model.ProcedureID]int, len(in))
	for id, idx := range in {
		out[id] = idx
	}
	return out
}
