package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunholo/minilang/internal/types"
)

func TestBasicTypeEquality(t *testing.T) {
	assert.True(t, types.Equal(types.Int, types.Int))
	assert.False(t, types.Equal(types.Int, types.Bool))
}

func TestEqualRejectsNilOnEitherSide(t *testing.T) {
	assert.False(t, types.Equal(nil, types.Int))
	assert.False(t, types.Equal(types.Int, nil))
	assert.False(t, types.Equal(nil, nil))
}

func TestFunTypeEqualityComparesParametersAndReturn(t *testing.T) {
	a := types.FunType{Parameters: []types.Type{types.Int, types.Bool}, Return: types.Int}
	b := types.FunType{Parameters: []types.Type{types.Int, types.Bool}, Return: types.Int}
	c := types.FunType{Parameters: []types.Type{types.Bool, types.Int}, Return: types.Int}
	assert.True(t, types.Equal(a, b))
	assert.False(t, types.Equal(a, c))
}

func TestFunTypeEqualityRejectsArityMismatch(t *testing.T) {
	a := types.FunType{Parameters: []types.Type{types.Int}, Return: types.Int}
	b := types.FunType{Parameters: []types.Type{types.Int, types.Int}, Return: types.Int}
	assert.False(t, types.Equal(a, b))
}

func TestFunTypeString(t *testing.T) {
	ft := types.FunType{Parameters: []types.Type{types.Int, types.Bool}, Return: types.Unit}
	assert.Equal(t, "(Int, Bool) => Unit", ft.String())
}

func TestBasicLooksUpKnownNames(t *testing.T) {
	for _, name := range []string{"Int", "Bool", "Unit"} {
		bt, ok := types.Basic(name)
		assert.True(t, ok)
		assert.Equal(t, name, bt.String())
	}
}

func TestBasicRejectsUnknownName(t *testing.T) {
	_, ok := types.Basic("Frobnicate")
	assert.False(t, ok)
}

func TestBuiltinsOmitsEqualityOperators(t *testing.T) {
	b := types.Builtins()
	_, hasEq := b["=="]
	_, hasNe := b["!="]
	assert.False(t, hasEq)
	assert.False(t, hasNe)
}

func TestBuiltinsCoversArithmeticComparisonAndLogical(t *testing.T) {
	b := types.Builtins()
	for _, op := range []string{"+", "-", "*", "/", "%"} {
		assert.True(t, types.Equal(types.Arithmetic, b[op]), "operator %q", op)
	}
	for _, op := range []string{"<", ">", "<=", ">="} {
		assert.True(t, types.Equal(types.Comparison, b[op]), "operator %q", op)
	}
	for _, op := range []string{"and", "or"} {
		assert.True(t, types.Equal(types.Logical, b[op]), "operator %q", op)
	}
}

func TestBuiltinsUnaryOperatorsAreScalarTyped(t *testing.T) {
	b := types.Builtins()
	assert.True(t, types.Equal(types.Int, b["unary_-"]))
	assert.True(t, types.Equal(types.Bool, b["unary_not"]))
}

func TestBuiltinsReturnsAFreshMapEachCall(t *testing.T) {
	b1 := types.Builtins()
	b1["+"] = types.Bool
	b2 := types.Builtins()
	assert.True(t, types.Equal(types.Arithmetic, b2["+"]))
}
