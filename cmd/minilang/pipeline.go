package main

import (
	"github.com/sunholo/minilang/internal/ast"
	"github.com/sunholo/minilang/internal/lexer"
	"github.com/sunholo/minilang/internal/parser"
	"github.com/sunholo/minilang/internal/token"
	"github.com/sunholo/minilang/internal/typecheck"
)

// lexSource runs the tokenizer stage.
func lexSource(src string) ([]token.Token, error) {
	return lexer.Tokenize(src)
}

// parseSource runs tokenize+parse.
func parseSource(src string) (*ast.Module, error) {
	tokens, err := lexSource(src)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}

// typecheckSource runs tokenize+parse+typecheck. Typechecking mutates the
// module's AST nodes in place, so the returned module is both parsed and
// typed.
func typecheckSource(src string) (*ast.Module, error) {
	module, err := parseSource(src)
	if err != nil {
		return nil, err
	}
	if err := typecheck.Check(module); err != nil {
		return nil, err
	}
	return module, nil
}
