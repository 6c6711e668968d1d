package parser

import (
	"github.com/sunholo/minilang/internal/ast"
	"github.com/sunholo/minilang/internal/errors"
	"github.com/sunholo/minilang/internal/token"
)

// parseTypeExpression parses either a bare basic-type name or a
// parenthesized function type `(T, ...) => T`.
func (p *Parser) parseTypeExpression() (ast.TypeExpr, error) {
	if p.peek(0).Text == "(" {
		return p.parseFunTypeExpression()
	}
	t := p.peek(0)
	if t.Kind != token.Identifier {
		return nil, errors.New(errors.PAR001, phase, t.Loc, "expected a type name, got %q", t.Text)
	}
	p.consume()
	return ast.BasicTypeExpr{Name: t.Text}, nil
}

func (p *Parser) parseFunTypeExpression() (ast.TypeExpr, error) {
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	var params []ast.TypeExpr
	for {
		param, err := p.parseTypeExpression()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if p.peek(0).Text == "," {
			p.consume()
			continue
		}
		break
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	if _, err := p.expect("=>"); err != nil {
		return nil, err
	}
	ret, err := p.parseTypeExpression()
	if err != nil {
		return nil, err
	}
	return ast.FunTypeExpr{Parameters: params, Return: ret}, nil
}
