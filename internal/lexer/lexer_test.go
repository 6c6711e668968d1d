package lexer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/minilang/internal/lexer"
	"github.com/sunholo/minilang/internal/token"
)

func TestTokenizeBasic(t *testing.T) {
	tokens, err := lexer.Tokenize("1 + 2")
	require.NoError(t, err)

	want := []token.Token{
		{Text: "1", Kind: token.IntLiteral, Loc: token.Dontcare},
		{Text: "+", Kind: token.Operator, Loc: token.Dontcare},
		{Text: "2", Kind: token.IntLiteral, Loc: token.Dontcare},
	}
	if diff := cmp.Diff(want, tokens, cmp.Comparer(token.Token.Equal)); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeTwoCharOperatorsBeforeOneChar(t *testing.T) {
	tokens, err := lexer.Tokenize("a >= b")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, ">=", tokens[1].Text)
}

func TestTokenizeSkipsCommentsAndWhitespace(t *testing.T) {
	tokens, err := lexer.Tokenize("x // a comment\n# another\ny")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "x", tokens[0].Text)
	assert.Equal(t, "y", tokens[1].Text)
	assert.Equal(t, 3, tokens[1].Loc.Line)
}

func TestTokenizeTracksLineAndColumn(t *testing.T) {
	tokens, err := lexer.Tokenize("var x\n  = 1")
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, token.Location{Line: 2, Column: 3}, tokens[2].Loc)
}

func TestTokenizeInvalidCharacter(t *testing.T) {
	_, err := lexer.Tokenize("a @ b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LEX001")
}

func TestTokenizeFunArrow(t *testing.T) {
	tokens, err := lexer.Tokenize("(Int) => Bool")
	require.NoError(t, err)
	var sawArrow bool
	for _, tok := range tokens {
		if tok.Text == "=>" {
			sawArrow = true
		}
	}
	assert.True(t, sawArrow)
}
