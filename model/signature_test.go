package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	k := Nullable | Strict

	assert.True(t, k.Has(Nullable))
	assert.True(t, k.Has(Strict))
	assert.False(t, k.Has(Present))
	assert.Equal(t, "nullable|strict", k.String())
	assert.Equal(t, "none", Kind(0).String())
}

func TestSignature_OverlayUnion(t *testing.T) {
	base := NewSignature(2).WithParam(0, Present)

	out := base.Overlay(Mark{Ret: true, Params: []bool{true, false}}, Nullable)

	// Union adds at flagged positions and leaves the rest untouched.
	assert.Equal(t, Nullable, out.Ret)
	assert.Equal(t, Present|Nullable, out.Params[0])
	assert.Equal(t, Kind(0), out.Params[1])
}

func TestSignature_OverlayPure(t *testing.T) {
	base := NewSignature(2)

	out := base.Overlay(Mark{Ret: true, Params: []bool{true, true}}, Nullable)
	require.NotEqual(t, base, out)

	// The receiver must be unchanged: overlays copy.
	assert.Equal(t, Kind(0), base.Ret)
	assert.Equal(t, []Kind{0, 0}, base.Params)
}

func TestSignature_OverlayIdempotent(t *testing.T) {
	base := NewSignature(3)
	m := Mark{Ret: true, Params: []bool{false, true, true}}

	once := base.Overlay(m, Nullable)
	twice := once.Overlay(m, Nullable)

	assert.Equal(t, once, twice)
}

func TestSignature_OverlayArityMismatch(t *testing.T) {
	base := NewSignature(1)

	// Positions beyond the signature's arity are ignored, not a panic.
	out := base.Overlay(Mark{Params: []bool{true, true, true}}, Nullable)
	assert.Equal(t, []Kind{Nullable}, out.Params)

	// A short mark leaves trailing positions alone.
	out = NewSignature(3).Overlay(Mark{Params: []bool{true}}, Nullable)
	assert.Equal(t, []Kind{Nullable, 0, 0}, out.Params)
}

func TestSignature_WithParamCopies(t *testing.T) {
	base := NewSignature(2)
	out := base.WithParam(1, Nullable)

	assert.Equal(t, Kind(0), base.Params[1])
	assert.Equal(t, Nullable, out.Params[1])
	assert.Equal(t, 2, out.Arity())
}
