package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/minilang/internal/eval"
	"github.com/sunholo/minilang/internal/lexer"
	"github.com/sunholo/minilang/internal/parser"
)

func interpret(t *testing.T, src string) eval.Value {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	require.NoError(t, err)
	module, err := parser.Parse(tokens)
	require.NoError(t, err)
	value, err := eval.Interpret(module)
	require.NoError(t, err)
	return value
}

func TestInterpretArithmetic(t *testing.T) {
	assert.Equal(t, 7, interpret(t, "1 + 2 * 3"))
}

func TestInterpretComparison(t *testing.T) {
	assert.Equal(t, true, interpret(t, "1 < 2"))
}

func TestInterpretIfWithoutElseFallsThroughToUnit(t *testing.T) {
	assert.Nil(t, interpret(t, "if 1 > 2 then 99"))
}

func TestInterpretIfWithElse(t *testing.T) {
	assert.Equal(t, 1, interpret(t, "if true then 1 else 2"))
}

func TestInterpretDivisionByZeroIsAnError(t *testing.T) {
	tokens, err := lexer.Tokenize("1 / 0")
	require.NoError(t, err)
	module, err := parser.Parse(tokens)
	require.NoError(t, err)
	_, err = eval.Interpret(module)
	require.Error(t, err)
}
