// Package ast defines minilang's abstract syntax tree: a tagged-variant
// Expr interface for expressions, a parallel TypeExpr interface for
// syntactic type annotations, and the Module/FunDefinition containers the
// parser produces.
//
// Every Expr carries a source Location; after type checking, every Expr
// also carries a resolved types.Type (spec.md §3's invariant that every
// typed node has a type).
package ast

import (
	"fmt"
	"strings"

	"github.com/sunholo/minilang/internal/token"
	"github.com/sunholo/minilang/internal/types"
)

// Expr is implemented by every expression AST node.
type Expr interface {
	Loc() token.Location
	Type() types.Type
	SetType(types.Type)
	String() string
	exprNode()
}

// Base carries the fields every Expr variant shares: its source location
// and, once type-checked, its semantic type.
type Base struct {
	Location token.Location
	Typ      types.Type
}

func (b *Base) Loc() token.Location  { return b.Location }
func (b *Base) Type() types.Type     { return b.Typ }
func (b *Base) SetType(t types.Type) { b.Typ = t }
func (b *Base) exprNode()            {}

// Literal is an integer literal, boolean literal, or the unit sentinel
// (Value == nil) produced by a trailing semicolon inside a block. An empty
// block is not a Literal: it parses to a Block with nil Expressions.
type Literal struct {
	Base
	Value any // int, bool, or nil for unit
}

func (l *Literal) String() string {
	if l.Value == nil {
		return "unit"
	}
	return fmt.Sprintf("%v", l.Value)
}

// Identifier is a name reference.
type Identifier struct {
	Base
	Name string
}

func (i *Identifier) String() string { return i.Name }

// BinaryOp is `left op right`. op includes "=" (right-associative
// assignment), "or", "and", the comparison operators, and the arithmetic
// operators.
type BinaryOp struct {
	Base
	Left  Expr
	Op    string
	Right Expr
}

func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// UnaryOp is `-right` or `not right`.
type UnaryOp struct {
	Base
	Op    string
	Right Expr
}

func (u *UnaryOp) String() string { return fmt.Sprintf("(%s%s)", u.Op, u.Right) }

// IfExpression is `if cond then then_clause (else else_clause)?`.
type IfExpression struct {
	Base
	Cond       Expr
	Then       Expr
	Else       Expr // nil when no else clause is present
}

func (e *IfExpression) String() string {
	if e.Else == nil {
		return fmt.Sprintf("if %s then %s", e.Cond, e.Then)
	}
	return fmt.Sprintf("if %s then %s else %s", e.Cond, e.Then, e.Else)
}

// WhileLoop is `while cond do body`.
type WhileLoop struct {
	Base
	Cond Expr
	Body Expr
}

func (w *WhileLoop) String() string { return fmt.Sprintf("while %s do %s", w.Cond, w.Body) }

// Block is `{ expr; expr; ... }`. Expressions is nil for an empty block
// (spec.md §3: a null marker for an empty block), distinct from a
// non-empty slice.
type Block struct {
	Base
	Expressions []Expr
}

func (b *Block) String() string {
	if b.Expressions == nil {
		return "{}"
	}
	parts := make([]string, len(b.Expressions))
	for i, e := range b.Expressions {
		parts[i] = e.String()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// VariableDec is `var name (: type)? = value`.
type VariableDec struct {
	Base
	Name         string
	Value        Expr
	DeclaredType TypeExpr // nil if no annotation was given
}

func (v *VariableDec) String() string {
	if v.DeclaredType != nil {
		return fmt.Sprintf("var %s: %s = %s", v.Name, v.DeclaredType, v.Value)
	}
	return fmt.Sprintf("var %s = %s", v.Name, v.Value)
}

// FunctionCall is `callee(args...)`.
type FunctionCall struct {
	Base
	Callee *Identifier
	Args   []Expr
}

func (c *FunctionCall) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee.Name, strings.Join(parts, ", "))
}

// Return is `return value?`, permitted only as the last statement of a
// function body's block.
type Return struct {
	Base
	Value Expr // nil for a bare `return`
}

func (r *Return) String() string {
	if r.Value == nil {
		return "return"
	}
	return fmt.Sprintf("return %s", r.Value)
}

// BreakContinueKind distinguishes break from continue.
type BreakContinueKind int

const (
	Break BreakContinueKind = iota
	Continue
)

func (k BreakContinueKind) String() string {
	if k == Break {
		return "break"
	}
	return "continue"
}

// BreakContinue is `break` or `continue`.
type BreakContinue struct {
	Base
	Kind BreakContinueKind
}

func (b *BreakContinue) String() string { return b.Kind.String() }

// TypeExpr is implemented by syntactic type annotations. These appear only
// in source text and are canonicalized into a semantic types.Type at a
// single boundary (function signatures and VariableDec annotations).
type TypeExpr interface {
	String() string
	typeExprNode()
}

// BasicTypeExpr is a bare type name, e.g. "Int".
type BasicTypeExpr struct {
	Name string
}

func (b BasicTypeExpr) String() string { return b.Name }
func (BasicTypeExpr) typeExprNode()    {}

// FunTypeExpr is a parenthesized parameter-type list followed by `=>` and
// a return type, e.g. "(Int, Bool) => Int".
type FunTypeExpr struct {
	Parameters []TypeExpr
	Return     TypeExpr
}

func (f FunTypeExpr) String() string {
	parts := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		parts[i] = p.String()
	}
	return fmt.Sprintf("(%s) => %s", strings.Join(parts, ", "), f.Return)
}
func (FunTypeExpr) typeExprNode() {}

// FunDefinition is a top-level `fun name(params): ReturnType { body }`.
type FunDefinition struct {
	Location   token.Location
	Name       string
	Params     []string
	ParamTypes []BasicTypeExpr
	ReturnType BasicTypeExpr
	Body       *Block
}

// Module is the root of a parsed program: zero or more function
// definitions plus an optional top-level expression.
type Module struct {
	Funcs []*FunDefinition
	Expr  Expr // nil when the module contains only function definitions
}
