package typecheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/minilang/internal/ast"
	"github.com/sunholo/minilang/internal/lexer"
	"github.com/sunholo/minilang/internal/parser"
	"github.com/sunholo/minilang/internal/typecheck"
	"github.com/sunholo/minilang/internal/types"
)

func check(t *testing.T, src string) (*ast.Module, error) {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	require.NoError(t, err)
	module, err := parser.Parse(tokens)
	require.NoError(t, err)
	return module, typecheck.Check(module)
}

func TestCheckArithmeticInfersInt(t *testing.T) {
	module, err := check(t, "1 + 2 * 3")
	require.NoError(t, err)
	assert.True(t, types.Equal(module.Expr.Type(), types.Int))
}

func TestCheckComparisonInfersBool(t *testing.T) {
	module, err := check(t, "1 < 2")
	require.NoError(t, err)
	assert.True(t, types.Equal(module.Expr.Type(), types.Bool))
}

func TestCheckEqualityAcceptsBoolOperands(t *testing.T) {
	module, err := check(t, "true == false")
	require.NoError(t, err)
	assert.True(t, types.Equal(module.Expr.Type(), types.Bool))
}

func TestCheckOperatorTypeMismatch(t *testing.T) {
	_, err := check(t, "1 + true")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP004")
}

func TestCheckIfBranchesMustMatch(t *testing.T) {
	_, err := check(t, "if true then 1 else false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP008")
}

func TestCheckIfConditionMustBeBool(t *testing.T) {
	_, err := check(t, "if 1 then 1 else 2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP007")
}

func TestCheckVariableRedeclarationInSameScope(t *testing.T) {
	_, err := check(t, "var x = 1; var x = 2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP006")
}

func TestCheckVariableShadowingInNestedScopeIsAllowed(t *testing.T) {
	_, err := check(t, "var x = 1; { var x = true; x }")
	require.NoError(t, err)
}

func TestCheckDeclaredTypeMismatch(t *testing.T) {
	_, err := check(t, "var x: Bool = 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP005")
}

func TestCheckFunctionCallArity(t *testing.T) {
	_, err := check(t, "fun f(a: Int): Int { a } f(1, 2)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP002")
}

func TestCheckFunctionBodyMustMatchDeclaredReturnType(t *testing.T) {
	_, err := check(t, "fun f(): Int { true }")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP010")
}

func TestCheckRecursiveFunctionCall(t *testing.T) {
	_, err := check(t, "fun fact(n: Int): Int { if n <= 1 then 1 else n * fact(n - 1) } fact(5)")
	require.NoError(t, err)
}

func TestCheckBreakOutsideLoopIsAnError(t *testing.T) {
	_, err := check(t, "break")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEM003")
}

func TestCheckBreakInsideLoopIsAllowed(t *testing.T) {
	_, err := check(t, "while true do break")
	require.NoError(t, err)
}

func TestCheckUnknownIdentifier(t *testing.T) {
	_, err := check(t, "doesNotExist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP001")
}
