// Package parser implements minilang's recursive-descent parser: one token
// of lookahead (plus bounded negative peek for context checks), producing
// an *ast.Module. The first malformed token aborts parsing (spec.md §4.2);
// there is no error recovery.
package parser

import (
	"strings"

	"github.com/sunholo/minilang/internal/ast"
	"github.com/sunholo/minilang/internal/errors"
	"github.com/sunholo/minilang/internal/token"
)

const phase = "parser"

// Parser holds the token stream and the current read position.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a Parser over tokens.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse tokenizes is not performed here: tokens must already be produced by
// the lexer. Parse runs the module grammar and returns the resulting AST,
// or the first syntax error encountered.
func Parse(tokens []token.Token) (*ast.Module, error) {
	return New(tokens).parseModule()
}

// lastLoc returns the location to attach to the synthetic end-of-input
// token when the token stream is empty or exhausted.
func (p *Parser) lastLoc() token.Location {
	if len(p.tokens) == 0 {
		return token.Location{Line: 1, Column: 1}
	}
	return p.tokens[len(p.tokens)-1].Loc
}

// peek returns the token at pos+offset, or a synthetic End token if that
// index falls outside the stream.
func (p *Parser) peek(offset int) token.Token {
	idx := p.pos + offset
	if idx >= 0 && idx < len(p.tokens) {
		return p.tokens[idx]
	}
	return token.Token{Kind: token.End, Text: "", Loc: p.lastLoc()}
}

// consume returns the current token and advances past it unconditionally.
func (p *Parser) consume() token.Token {
	t := p.peek(0)
	p.pos++
	return t
}

// expect consumes the current token if its text matches one of want,
// returning a PAR001 syntax error otherwise.
func (p *Parser) expect(want ...string) (token.Token, error) {
	t := p.peek(0)
	for _, w := range want {
		if t.Text == w {
			p.pos++
			return t, nil
		}
	}
	if len(want) == 1 {
		return token.Token{}, errors.New(errors.PAR001, phase, t.Loc, "expected %q, got %q", want[0], t.Text)
	}
	return token.Token{}, errors.New(errors.PAR001, phase, t.Loc, "expected one of [%s], got %q", strings.Join(want, ", "), t.Text)
}

func textIn(text string, set ...string) bool {
	for _, s := range set {
		if text == s {
			return true
		}
	}
	return false
}

// parseModule is the grammar's entry point: an alternating sequence of
// function definitions and statements.
func (p *Parser) parseModule() (*ast.Module, error) {
	var expressions []ast.Expr
	var funcs []*ast.FunDefinition

	for p.pos < len(p.tokens) {
		if p.peek(0).Text == "fun" {
			fn, err := p.parseFunDefinition()
			if err != nil {
				return nil, err
			}
			funcs = append(funcs, fn)
			continue
		}

		expr, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		expressions = append(expressions, expr)

		if p.peek(0).Text == ";" {
			p.consume()
		} else if textIn(p.peek(-1).Text, ";", "}") {
			continue
		} else if p.pos < len(p.tokens) {
			return nil, errors.New(errors.PAR004, phase, p.peek(0).Loc, "expected ';' between expressions, got %q", p.peek(0).Text)
		}
	}

	switch {
	case len(expressions) == 1:
		return &ast.Module{Funcs: funcs, Expr: expressions[0]}, nil
	case len(expressions) == 0 && len(funcs) > 0:
		return &ast.Module{Funcs: funcs, Expr: nil}, nil
	case len(expressions) == 0 && len(funcs) == 0:
		return nil, errors.New(errors.PAR002, phase, token.Location{Line: 1, Column: 1}, "empty input")
	default:
		return &ast.Module{
			Funcs: funcs,
			Expr: &ast.Block{
				Base:        ast.Base{Location: token.Location{Line: 1, Column: 1}},
				Expressions: expressions,
			},
		}, nil
	}
}

// parseStatement dispatches to a variable declaration or a plain
// expression. It is the only production that may start a variable
// declaration, which is how "statement position inside a block" (spec.md
// §9's REDESIGN note) is enforced: var declarations are simply
// unreachable from any non-statement grammar rule.
func (p *Parser) parseStatement() (ast.Expr, error) {
	if p.peek(0).Text == "var" {
		return p.parseVariableDec()
	}
	return p.parseExpression()
}
