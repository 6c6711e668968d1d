package parser

import (
	"github.com/sunholo/minilang/internal/ast"
	"github.com/sunholo/minilang/internal/errors"
	"github.com/sunholo/minilang/internal/token"
)

// parseExpression is the precedence ladder's entry point: right-associative
// assignment over everything below it.
func (p *Parser) parseExpression() (ast.Expr, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peek(0).Text == "=" {
		p.consume()
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Base: ast.Base{Location: left.Loc()}, Left: left, Op: "=", Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseOr() (ast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	loc := left.Loc()
	for p.peek(0).Text == "or" {
		p.consume()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Base: ast.Base{Location: loc}, Left: left, Op: "or", Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	left, err := p.parseEqComparison()
	if err != nil {
		return nil, err
	}
	loc := left.Loc()
	for p.peek(0).Text == "and" {
		p.consume()
		right, err := p.parseEqComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Base: ast.Base{Location: loc}, Left: left, Op: "and", Right: right}
	}
	return left, nil
}

func (p *Parser) parseEqComparison() (ast.Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for textIn(p.peek(0).Text, "==", "!=") {
		opTok := p.consume()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Base: ast.Base{Location: opTok.Loc}, Left: left, Op: opTok.Text, Right: right}
	}
	return left, nil
}

func (p *Parser) parseComparison() (ast.Expr, error) {
	left, err := p.parsePolynomial()
	if err != nil {
		return nil, err
	}
	// ">=" appears twice in the follow-set here, mirroring spec.md §9's note
	// that the original parser lists it twice — harmless, since set
	// membership against a duplicate entry behaves identically.
	for textIn(p.peek(0).Text, "<", ">", "<=", ">=", ">=") {
		opTok := p.consume()
		right, err := p.parsePolynomial()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Base: ast.Base{Location: opTok.Loc}, Left: left, Op: opTok.Text, Right: right}
	}
	return left, nil
}

func (p *Parser) parsePolynomial() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for textIn(p.peek(0).Text, "+", "-") {
		opTok := p.consume()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Base: ast.Base{Location: opTok.Loc}, Left: left, Op: opTok.Text, Right: right}
	}
	return left, nil
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for textIn(p.peek(0).Text, "*", "/", "%") {
		opTok := p.consume()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Base: ast.Base{Location: opTok.Loc}, Left: left, Op: opTok.Text, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if textIn(p.peek(0).Text, "-", "not") {
		opTok := p.consume()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Base: ast.Base{Location: opTok.Loc}, Op: opTok.Text, Right: right}, nil
	}
	return p.parseFactor()
}

// parseFactor is the grammar's primary production. Note that "var" and
// "return" are deliberately absent here: var declarations are only
// reachable via parseStatement, and return is only reachable from block
// parsing, both matching the original implementation's actual behavior
// (see DESIGN.md).
func (p *Parser) parseFactor() (ast.Expr, error) {
	t := p.peek(0)
	switch {
	case t.Text == "(":
		return p.parseParenthesized()
	case t.Text == "if":
		return p.parseIf()
	case t.Text == "true" || t.Text == "false":
		return p.parseBoolLiteral()
	case t.Text == "while":
		return p.parseWhileLoop()
	case t.Text == "break":
		p.consume()
		return &ast.BreakContinue{Base: ast.Base{Location: t.Loc}, Kind: ast.Break}, nil
	case t.Text == "continue":
		p.consume()
		return &ast.BreakContinue{Base: ast.Base{Location: t.Loc}, Kind: ast.Continue}, nil
	case t.Kind == token.IntLiteral:
		return p.parseIntLiteral()
	case t.Kind == token.Identifier:
		ident, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if p.peek(0).Text == "(" {
			return p.parseArguments(ident)
		}
		return ident, nil
	case t.Text == "{":
		return p.parseBlock()
	default:
		return nil, errors.New(errors.PAR002, phase, t.Loc, "unknown syntax at %q", t.Text)
	}
}

func (p *Parser) parseParenthesized() (ast.Expr, error) {
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseIf() (ast.Expr, error) {
	loc := p.peek(0).Loc
	if _, err := p.expect("if"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect("then"); err != nil {
		return nil, err
	}
	then, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	var elseClause ast.Expr
	if p.peek(0).Text == "else" {
		p.consume()
		elseClause, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfExpression{Base: ast.Base{Location: loc}, Cond: cond, Then: then, Else: elseClause}, nil
}

func (p *Parser) parseWhileLoop() (ast.Expr, error) {
	loc := p.peek(0).Loc
	if _, err := p.expect("while"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect("do"); err != nil {
		return nil, err
	}
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.WhileLoop{Base: ast.Base{Location: loc}, Cond: cond, Body: body}, nil
}

func (p *Parser) parseBoolLiteral() (ast.Expr, error) {
	t := p.peek(0)
	switch t.Text {
	case "true":
		p.consume()
		return &ast.Literal{Base: ast.Base{Location: t.Loc}, Value: true}, nil
	case "false":
		p.consume()
		return &ast.Literal{Base: ast.Base{Location: t.Loc}, Value: false}, nil
	default:
		return nil, errors.New(errors.PAR001, phase, t.Loc, "expected boolean literal, found %q", t.Text)
	}
}

func (p *Parser) parseIntLiteral() (ast.Expr, error) {
	t := p.peek(0)
	if t.Kind != token.IntLiteral {
		return nil, errors.New(errors.PAR001, phase, t.Loc, "expected integer literal, found %q", t.Text)
	}
	p.consume()
	value, err := parseInt(t.Text)
	if err != nil {
		return nil, errors.New(errors.PAR001, phase, t.Loc, "invalid integer literal %q", t.Text)
	}
	return &ast.Literal{Base: ast.Base{Location: t.Loc}, Value: value}, nil
}

func (p *Parser) parseIdentifier() (*ast.Identifier, error) {
	t := p.peek(0)
	if t.Kind != token.Identifier {
		return nil, errors.New(errors.PAR001, phase, t.Loc, "expected identifier, found %q", t.Text)
	}
	p.consume()
	return &ast.Identifier{Base: ast.Base{Location: t.Loc}, Name: t.Text}, nil
}

func (p *Parser) parseArguments(callee *ast.Identifier) (ast.Expr, error) {
	loc := p.peek(0).Loc
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	var args []ast.Expr
	for p.peek(0).Text != ")" {
		if len(args) > 0 {
			if _, err := p.expect(","); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	return &ast.FunctionCall{Base: ast.Base{Location: loc}, Callee: callee, Args: args}, nil
}
