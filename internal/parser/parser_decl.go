package parser

import (
	"github.com/sunholo/minilang/internal/ast"
	"github.com/sunholo/minilang/internal/errors"
	"github.com/sunholo/minilang/internal/token"
)

// parseFunDefinition parses `fun name(param: Type, ...) : ReturnType { body }`.
func (p *Parser) parseFunDefinition() (*ast.FunDefinition, error) {
	loc := p.peek(0).Loc
	if _, err := p.expect("fun"); err != nil {
		return nil, err
	}
	nameTok := p.peek(0)
	if nameTok.Kind != token.Identifier {
		return nil, errors.New(errors.PAR001, phase, nameTok.Loc, "expected a function name, got %q", nameTok.Text)
	}
	p.consume()

	if _, err := p.expect("("); err != nil {
		return nil, err
	}

	var params []string
	var paramTypes []ast.BasicTypeExpr
	for p.peek(0).Text != ")" {
		if len(params) > 0 {
			if _, err := p.expect(","); err != nil {
				return nil, err
			}
		}
		paramTok := p.peek(0)
		if paramTok.Kind != token.Identifier {
			return nil, errors.New(errors.PAR001, phase, paramTok.Loc, "expected a parameter name, got %q", paramTok.Text)
		}
		p.consume()
		if _, err := p.expect(":"); err != nil {
			return nil, err
		}
		typeTok := p.peek(0)
		if typeTok.Kind != token.Identifier {
			return nil, errors.New(errors.PAR001, phase, typeTok.Loc, "expected a basic type name, got %q", typeTok.Text)
		}
		p.consume()

		params = append(params, paramTok.Text)
		paramTypes = append(paramTypes, ast.BasicTypeExpr{Name: typeTok.Text})
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	if _, err := p.expect(":"); err != nil {
		return nil, err
	}
	retTok := p.peek(0)
	if retTok.Kind != token.Identifier {
		return nil, errors.New(errors.PAR001, phase, retTok.Loc, "expected a basic return type, got %q", retTok.Text)
	}
	p.consume()

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunDefinition{
		Location:   loc,
		Name:       nameTok.Text,
		Params:     params,
		ParamTypes: paramTypes,
		ReturnType: ast.BasicTypeExpr{Name: retTok.Text},
		Body:       body,
	}, nil
}

// parseVariableDec parses `var name (: type)? = expr`. It is only called
// from parseStatement, so it is structurally unreachable except at
// statement position inside the module or a block.
func (p *Parser) parseVariableDec() (ast.Expr, error) {
	loc := p.peek(0).Loc
	if _, err := p.expect("var"); err != nil {
		return nil, err
	}
	nameTok := p.peek(0)
	if nameTok.Kind != token.Identifier {
		return nil, errors.New(errors.PAR001, phase, nameTok.Loc, "expected an identifier, got %q", nameTok.Text)
	}
	p.consume()

	var declared ast.TypeExpr
	if p.peek(0).Text == ":" {
		p.consume()
		t, err := p.parseTypeExpression()
		if err != nil {
			return nil, err
		}
		declared = t
	}

	if _, err := p.expect("="); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.VariableDec{
		Base:         ast.Base{Location: loc},
		Name:         nameTok.Text,
		Value:        value,
		DeclaredType: declared,
	}, nil
}
