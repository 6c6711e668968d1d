// Package eval implements minilang's "interpret" stage: a small
// tree-walking evaluator covering literals, arithmetic/comparison
// BinaryOps, and if-expressions. It is a diagnostic tool for quickly
// checking a program's top-level result, not a second implementation of
// the language's full semantics (spec.md's Non-goals: no variables,
// functions, loops, or side effects at this stage).
package eval

import (
	"github.com/sunholo/minilang/internal/ast"
	"github.com/sunholo/minilang/internal/errors"
)

const phase = "eval"

// Value is the dynamic result of evaluating an expression: an int, a
// bool, or nil for unit.
type Value any

// Interpret evaluates a module's top-level expression. A module with only
// function definitions and no top-level expression evaluates to nil.
func Interpret(module *ast.Module) (Value, error) {
	if module.Expr == nil {
		return nil, nil
	}
	return eval(module.Expr)
}

func eval(node ast.Expr) (Value, error) {
	switch n := node.(type) {
	case *ast.Literal:
		return n.Value, nil

	case *ast.BinaryOp:
		a, err := eval(n.Left)
		if err != nil {
			return nil, err
		}
		b, err := eval(n.Right)
		if err != nil {
			return nil, err
		}
		return evalBinaryOp(n, a, b)

	case *ast.IfExpression:
		cond, err := eval(n.Cond)
		if err != nil {
			return nil, err
		}
		truthy, ok := cond.(bool)
		if !ok {
			return nil, errors.New(errors.TYP007, phase, n.Cond.Loc(), "if condition did not evaluate to a bool")
		}
		if truthy {
			return eval(n.Then)
		}
		if n.Else != nil {
			return eval(n.Else)
		}
		return nil, nil

	default:
		return nil, errors.New(errors.TYP001, phase, node.Loc(), "unsupported expression in interpreter: %T", node)
	}
}

func evalBinaryOp(n *ast.BinaryOp, a, b Value) (Value, error) {
	ai, aok := a.(int)
	bi, bok := b.(int)
	if !aok || !bok {
		return nil, errors.New(errors.TYP004, phase, n.Loc(), "operator %q requires int operands", n.Op)
	}
	switch n.Op {
	case "+":
		return ai + bi, nil
	case "-":
		return ai - bi, nil
	case "*":
		return ai * bi, nil
	case "/":
		if bi == 0 {
			return nil, errors.New(errors.TYP004, phase, n.Loc(), "division by zero")
		}
		return ai / bi, nil
	case "%":
		if bi == 0 {
			return nil, errors.New(errors.TYP004, phase, n.Loc(), "division by zero")
		}
		return ai % bi, nil
	case ">":
		return ai > bi, nil
	case "<":
		return ai < bi, nil
	case ">=":
		return ai >= bi, nil
	case "<=":
		return ai <= bi, nil
	case "==":
		return ai == bi, nil
	case "!=":
		return ai != bi, nil
	default:
		return nil, errors.New(errors.TYP004, phase, n.Loc(), "unsupported operator %q in interpreter", n.Op)
	}
}
