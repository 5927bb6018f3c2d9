package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/nilfacts/model"
)

func TestTablesLookup(t *testing.T) {
	tbls := New(Data{
		Nullable: map[model.ProcedureID]model.Mark{
			"Map.get(Object)": {Ret: true, Params: []bool{false}},
		},
		Present: map[model.ProcedureID]model.Mark{
			"Optional.get()": {Ret: true},
		},
		Strict: []model.ProcedureID{"Objects.requireNonNull(Object)"},
	})

	m, ok := tbls.Nullable("Map.get(Object)")
	assert.True(t, ok)
	assert.True(t, m.Ret)
	assert.Equal(t, []bool{false}, m.Params)

	_, ok = tbls.Nullable("unknown()")
	assert.False(t, ok)

	m, ok = tbls.Present("Optional.get()")
	assert.True(t, ok)
	assert.True(t, m.Ret)

	assert.True(t, tbls.Strict("Objects.requireNonNull(Object)"))
	assert.False(t, tbls.Strict("Map.get(Object)"))
}

func TestTablesImmutable(t *testing.T) {
	data := Data{
		Nullable: map[model.ProcedureID]model.Mark{
			"f(a)": {Params: []bool{false}},
		},
	}
	tbls := New(data)

	// Mutating the source data or a returned mark must not leak into the
	// tables.
	data.Nullable["f(a)"].Params[0] = true
	m, _ := tbls.Nullable("f(a)")
	assert.Equal(t, []bool{false}, m.Params)

	m.Params[0] = true
	m2, _ := tbls.Nullable("f(a)")
	assert.Equal(t, []bool{false}, m2.Params)
}

func TestCheckerFacts(t *testing.T) {
	tbls := New(Data{
		NullChecks: map[model.ProcedureID]int{
			"Objects.isNull(Object)":        0,
			"Strings.isNullOrEmpty(String)": 0,
			"Verify.verifyNotNull(Object)":  0,
			"checkArg(boolean,Object)":      1,
		},
		PreconditionChecks: []model.ProcedureID{"Preconditions.checkState(boolean)"},
		OptionalPresence:   []model.ProcedureID{"Optional.isPresent()"},
		MapContainment:     []model.ProcedureID{"Map.containsKey(Object)"},
	})
	checkers := tbls.Checkers()

	assert.True(t, checkers.IsNullCheck("Objects.isNull(Object)"))
	assert.False(t, checkers.IsNullCheck("Map.containsKey(Object)"))

	// Explicit entry wins; everything else defaults to index 0.
	assert.Equal(t, 1, checkers.NullCheckParameter("checkArg(boolean,Object)"))
	assert.Equal(t, 0, checkers.NullCheckParameter("Objects.isNull(Object)"))
	assert.Equal(t, 0, checkers.NullCheckParameter("never.heard.of()"))

	assert.True(t, checkers.IsPreconditionCheck("Preconditions.checkState(boolean)"))
	assert.True(t, checkers.IsOptionalPresence("Optional.isPresent()"))
	assert.True(t, checkers.IsMapContainment("Map.containsKey(Object)"))
	assert.False(t, checkers.IsMapContainment("Optional.isPresent()"))
}

func TestLibraryTable(t *testing.T) {
	lib := LibraryTable{"Map.get(Object)": {}}
	assert.True(t, lib.ReturnsNullable("Map.get(Object)"))
	assert.False(t, lib.ReturnsNullable("other()"))
}
