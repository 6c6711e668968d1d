package symtab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunholo/minilang/internal/symtab"
	"github.com/sunholo/minilang/internal/types"
)

func TestGetFindsSeededBinding(t *testing.T) {
	st := symtab.New(map[string]types.Type{"+": types.Arithmetic})
	got, ok := st.Get("+")
	assert.True(t, ok)
	assert.True(t, types.Equal(types.Arithmetic, got))
}

func TestGetReportsMissingBinding(t *testing.T) {
	st := symtab.New[types.Type](nil)
	_, ok := st.Get("missing")
	assert.False(t, ok)
}

func TestSetLocalBindsInCurrentFrame(t *testing.T) {
	st := symtab.New[types.Type](nil)
	st.SetLocal("x", types.Int)
	got, ok := st.Get("x")
	assert.True(t, ok)
	assert.True(t, types.Equal(types.Int, got))
}

func TestInnerScopeSeesOuterBindings(t *testing.T) {
	outer := symtab.New(map[string]types.Type{"x": types.Int})
	inner := outer.Inner()
	got, ok := inner.Get("x")
	assert.True(t, ok)
	assert.True(t, types.Equal(types.Int, got))
}

func TestInnerScopeShadowsOuterBinding(t *testing.T) {
	outer := symtab.New(map[string]types.Type{"x": types.Int})
	inner := outer.Inner()
	inner.SetLocal("x", types.Bool)

	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	assert.True(t, types.Equal(types.Bool, innerVal))
	assert.True(t, types.Equal(types.Int, outerVal))
}

func TestDeclaredLocallyDoesNotSearchOuterFrames(t *testing.T) {
	outer := symtab.New(map[string]types.Type{"x": types.Int})
	inner := outer.Inner()
	assert.False(t, inner.DeclaredLocally("x"))
	inner.SetLocal("x", types.Bool)
	assert.True(t, inner.DeclaredLocally("x"))
}

func TestSharedAcrossDifferentValueTypes(t *testing.T) {
	// symtab.SymTab is generic: the IR generator instantiates it over Var
	// rather than types.Type. A minimal local stand-in exercises the same
	// generic code path without importing the ir package here.
	st := symtab.New(map[string]string{"a": "var0"})
	got, ok := st.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "var0", got)
}
