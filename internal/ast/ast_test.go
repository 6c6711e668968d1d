package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunholo/minilang/internal/ast"
	"github.com/sunholo/minilang/internal/token"
	"github.com/sunholo/minilang/internal/types"
)

func TestLiteralStringPrintsUnitForNilValue(t *testing.T) {
	lit := &ast.Literal{Value: nil}
	assert.Equal(t, "unit", lit.String())
}

func TestLiteralStringPrintsScalarValues(t *testing.T) {
	assert.Equal(t, "42", (&ast.Literal{Value: 42}).String())
	assert.Equal(t, "true", (&ast.Literal{Value: true}).String())
}

func TestBaseTypeAccessors(t *testing.T) {
	lit := &ast.Literal{Value: 1}
	assert.Nil(t, lit.Type())
	lit.SetType(types.Int)
	assert.True(t, types.Equal(types.Int, lit.Type()))
}

func TestBaseLocationAccessor(t *testing.T) {
	loc := token.Location{Line: 3, Column: 7}
	lit := &ast.Literal{Base: ast.Base{Location: loc}}
	assert.Equal(t, loc, lit.Loc())
}

func TestBinaryOpString(t *testing.T) {
	bo := &ast.BinaryOp{
		Left:  &ast.Literal{Value: 1},
		Op:    "+",
		Right: &ast.Literal{Value: 2},
	}
	assert.Equal(t, "(1 + 2)", bo.String())
}

func TestUnaryOpString(t *testing.T) {
	uo := &ast.UnaryOp{Op: "-", Right: &ast.Literal{Value: 1}}
	assert.Equal(t, "(-1)", uo.String())
}

func TestIfExpressionStringWithoutElse(t *testing.T) {
	ifExpr := &ast.IfExpression{
		Cond: &ast.Identifier{Name: "c"},
		Then: &ast.Literal{Value: 1},
	}
	assert.Equal(t, "if c then 1", ifExpr.String())
}

func TestIfExpressionStringWithElse(t *testing.T) {
	ifExpr := &ast.IfExpression{
		Cond: &ast.Identifier{Name: "c"},
		Then: &ast.Literal{Value: 1},
		Else: &ast.Literal{Value: 2},
	}
	assert.Equal(t, "if c then 1 else 2", ifExpr.String())
}

func TestWhileLoopString(t *testing.T) {
	w := &ast.WhileLoop{Cond: &ast.Literal{Value: true}, Body: &ast.Literal{Value: 1}}
	assert.Equal(t, "while true do 1", w.String())
}

func TestBlockStringDistinguishesEmptyFromNonEmpty(t *testing.T) {
	empty := &ast.Block{Expressions: nil}
	assert.Equal(t, "{}", empty.String())

	nonEmpty := &ast.Block{Expressions: []ast.Expr{&ast.Literal{Value: 1}, &ast.Literal{Value: 2}}}
	assert.Equal(t, "{ 1; 2 }", nonEmpty.String())
}

func TestVariableDecStringWithAndWithoutAnnotation(t *testing.T) {
	noAnnotation := &ast.VariableDec{Name: "x", Value: &ast.Literal{Value: 1}}
	assert.Equal(t, "var x = 1", noAnnotation.String())

	withAnnotation := &ast.VariableDec{
		Name:         "x",
		Value:        &ast.Literal{Value: 1},
		DeclaredType: ast.BasicTypeExpr{Name: "Int"},
	}
	assert.Equal(t, "var x: Int = 1", withAnnotation.String())
}

func TestFunctionCallString(t *testing.T) {
	call := &ast.FunctionCall{
		Callee: &ast.Identifier{Name: "add"},
		Args:   []ast.Expr{&ast.Literal{Value: 1}, &ast.Literal{Value: 2}},
	}
	assert.Equal(t, "add(1, 2)", call.String())
}

func TestReturnStringBareAndWithValue(t *testing.T) {
	assert.Equal(t, "return", (&ast.Return{}).String())
	assert.Equal(t, "return 1", (&ast.Return{Value: &ast.Literal{Value: 1}}).String())
}

func TestBreakContinueString(t *testing.T) {
	assert.Equal(t, "break", (&ast.BreakContinue{Kind: ast.Break}).String())
	assert.Equal(t, "continue", (&ast.BreakContinue{Kind: ast.Continue}).String())
}

func TestFunTypeExprString(t *testing.T) {
	fte := ast.FunTypeExpr{
		Parameters: []ast.TypeExpr{ast.BasicTypeExpr{Name: "Int"}, ast.BasicTypeExpr{Name: "Bool"}},
		Return:     ast.BasicTypeExpr{Name: "Unit"},
	}
	assert.Equal(t, "(Int, Bool) => Unit", fte.String())
}

func TestModuleDefaultsToNilExpr(t *testing.T) {
	m := &ast.Module{}
	assert.Nil(t, m.Expr)
	assert.Empty(t, m.Funcs)
}
