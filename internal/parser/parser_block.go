package parser

import (
	"github.com/sunholo/minilang/internal/ast"
	"github.com/sunholo/minilang/internal/errors"
	"github.com/sunholo/minilang/internal/token"
)

// parseReturn parses `return expr?`. It is only reachable from
// parseBlock's statement loop, and enforces that it is immediately
// followed by the block's closing brace (spec.md §4.2: return is accepted
// only as the last statement of a block).
func (p *Parser) parseReturn() (ast.Expr, error) {
	loc := p.peek(0).Loc
	p.consume() // 'return'

	var value ast.Expr
	if p.peek(0).Text != "}" {
		v, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		value = v
	}
	if p.peek(0).Text != "}" {
		return nil, errors.New(errors.PAR005, phase, p.peek(0).Loc, "return statement must be the last statement in a block")
	}
	return &ast.Return{Base: ast.Base{Location: loc}, Value: value}, nil
}

// parseBlock parses `{ stmt (';' stmt)* }` with the semicolon rules of
// spec.md §4.2: a trailing ';' before '}' yields a synthetic unit literal;
// an expression that is itself block-shaped (a literal Block, or one whose
// last token was '}') may omit the separating ';'; the final statement
// before '}' never needs one.
func (p *Parser) parseBlock() (*ast.Block, error) {
	loc := p.peek(0).Loc
	if _, err := p.expect("{"); err != nil {
		return nil, err
	}

	var expressions []ast.Expr
	semicolon := false

	for p.peek(0).Text != "}" {
		if p.peek(0).Kind == token.End {
			return nil, errors.New(errors.PAR001, phase, p.peek(0).Loc, "expected '}', got end of input")
		}

		if p.peek(0).Text == "return" {
			expr, err := p.parseReturn()
			if err != nil {
				return nil, err
			}
			expressions = append(expressions, expr)
			semicolon = false
			continue
		}

		expr, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		expressions = append(expressions, expr)
		semicolon = false

		if p.peek(0).Text == "}" {
			break
		}

		_, isBlock := expr.(*ast.Block)
		prevEndedBlock := p.peek(-1).Text == "}"
		if isBlock || prevEndedBlock {
			if p.peek(0).Text == ";" {
				p.consume()
				semicolon = true
			}
		} else {
			if _, err := p.expect(";"); err != nil {
				return nil, err
			}
			semicolon = true
		}
	}
	if _, err := p.expect("}"); err != nil {
		return nil, err
	}

	if expressions == nil {
		return &ast.Block{Base: ast.Base{Location: loc}, Expressions: nil}, nil
	}
	if semicolon {
		expressions = append(expressions, &ast.Literal{Base: ast.Base{Location: loc}, Value: nil})
	}
	return &ast.Block{Base: ast.Base{Location: loc}, Expressions: expressions}, nil
}
