package ir

import (
	"github.com/sunholo/minilang/internal/ast"
	"github.com/sunholo/minilang/internal/errors"
	"github.com/sunholo/minilang/internal/symtab"
	"github.com/sunholo/minilang/internal/types"
)

// visitExpr lowers node into fn's instruction list and returns the IR
// variable holding its value.
func (g *generator) visitExpr(st *symtab.SymTab[Var], node ast.Expr, fn string) (Var, error) {
	switch n := node.(type) {
	case *ast.Literal:
		return g.visitLiteral(n, fn)

	case *ast.Identifier:
		v, ok := st.Get(n.Name)
		if !ok {
			return "", errors.New(errors.TYP001, phase, n.Loc(), "unknown variable: %q", n.Name)
		}
		return v, nil

	case *ast.BinaryOp:
		return g.visitBinaryOp(st, n, fn)

	case *ast.UnaryOp:
		return g.visitUnaryOp(st, n, fn)

	case *ast.IfExpression:
		return g.visitIf(st, n, fn)

	case *ast.WhileLoop:
		return g.visitWhile(st, n, fn)

	case *ast.Block:
		return g.visitBlock(st, n, fn)

	case *ast.VariableDec:
		return g.visitVariableDec(st, n, fn)

	case *ast.FunctionCall:
		return g.visitFunctionCall(st, n, fn)

	case *ast.Return:
		return g.visitReturn(st, n, fn)

	case *ast.BreakContinue:
		return g.visitBreakContinue(n, fn)

	default:
		return "", errors.New(errors.TYP001, phase, node.Loc(), "unsupported AST node %T", node)
	}
}

func (g *generator) visitLiteral(n *ast.Literal, fn string) (Var, error) {
	switch v := n.Value.(type) {
	case int:
		dest := g.newVar(types.Int)
		g.emit(fn, LoadIntConst{base: base{n.Location}, Value: v, Dest: dest})
		return dest, nil
	case bool:
		dest := g.newVar(types.Bool)
		g.emit(fn, LoadBoolConst{base: base{n.Location}, Value: v, Dest: dest})
		return dest, nil
	case nil:
		return g.unit, nil
	default:
		return "", errors.New(errors.TYP001, phase, n.Loc(), "don't know how to lower literal %v", n.Value)
	}
}

func (g *generator) visitBinaryOp(st *symtab.SymTab[Var], n *ast.BinaryOp, fn string) (Var, error) {
	switch n.Op {
	case "=":
		target, ok := n.Left.(*ast.Identifier)
		if !ok {
			return "", errors.New(errors.SEM002, phase, n.Loc(), "left side of assignment must be a variable")
		}
		value, err := g.visitExpr(st, n.Right, fn)
		if err != nil {
			return "", err
		}
		dest, ok := st.Get(target.Name)
		if !ok {
			return "", errors.New(errors.TYP001, phase, n.Loc(), "unknown variable: %q", target.Name)
		}
		g.emit(fn, Copy{base: base{n.Location}, Source: value, Dest: dest})
		return dest, nil

	case "or":
		return g.visitShortCircuit(st, n, fn, true)

	case "and":
		return g.visitShortCircuit(st, n, fn, false)

	default:
		left, err := g.visitExpr(st, n.Left, fn)
		if err != nil {
			return "", err
		}
		right, err := g.visitExpr(st, n.Right, fn)
		if err != nil {
			return "", err
		}
		op, ok := st.Get(n.Op)
		if !ok {
			return "", errors.New(errors.TYP001, phase, n.Loc(), "unknown operator: %q", n.Op)
		}
		dest := g.newVar(n.Type())
		g.emit(fn, Call{base: base{n.Location}, Fun: op, Args: []Var{left, right}, Dest: dest})
		return dest, nil
	}
}

// visitShortCircuit lowers `or`/`and` without evaluating the right operand
// unless necessary. skipWhenLeft is the left-operand value ('or' skips the
// right side when left is true, 'and' when left is false).
func (g *generator) visitShortCircuit(st *symtab.SymTab[Var], n *ast.BinaryOp, fn string, skipWhenLeft bool) (Var, error) {
	left, err := g.visitExpr(st, n.Left, fn)
	if err != nil {
		return "", err
	}
	dest := g.newVar(types.Bool)
	g.emit(fn, Copy{base: base{n.Location}, Source: left, Dest: dest})

	rightLabel := g.newLabel("right")
	skipLabel := g.newLabel("skip")
	endLabel := g.newLabel("end")

	if skipWhenLeft {
		g.emit(fn, CondJump{base: base{n.Location}, Cond: left, Then: skipLabel, Else: rightLabel})
	} else {
		g.emit(fn, CondJump{base: base{n.Location}, Cond: left, Then: rightLabel, Else: skipLabel})
	}

	g.emit(fn, Label{base: base{n.Location}, Name: rightLabel})
	right, err := g.visitExpr(st, n.Right, fn)
	if err != nil {
		return "", err
	}
	g.emit(fn, Copy{base: base{n.Location}, Source: right, Dest: dest})
	g.emit(fn, Jump{base: base{n.Location}, Label: endLabel})

	g.emit(fn, Label{base: base{n.Location}, Name: skipLabel})
	g.emit(fn, Jump{base: base{n.Location}, Label: endLabel})

	g.emit(fn, Label{base: base{n.Location}, Name: endLabel})
	return dest, nil
}

func (g *generator) visitUnaryOp(st *symtab.SymTab[Var], n *ast.UnaryOp, fn string) (Var, error) {
	right, err := g.visitExpr(st, n.Right, fn)
	if err != nil {
		return "", err
	}
	op, ok := st.Get("unary_" + n.Op)
	if !ok {
		return "", errors.New(errors.TYP001, phase, n.Loc(), "unknown operator: %q", "unary_"+n.Op)
	}
	dest := g.newVar(g.varTypes[right])
	g.emit(fn, Call{base: base{n.Location}, Fun: op, Args: []Var{right}, Dest: dest})
	return dest, nil
}

func (g *generator) visitIf(st *symtab.SymTab[Var], n *ast.IfExpression, fn string) (Var, error) {
	cond, err := g.visitExpr(st, n.Cond, fn)
	if err != nil {
		return "", err
	}
	thenLabel := g.newLabel("then")
	endLabel := g.newLabel("end")

	if n.Else == nil {
		g.emit(fn, CondJump{base: base{n.Location}, Cond: cond, Then: thenLabel, Else: endLabel})
		g.emit(fn, Label{base: base{n.Location}, Name: thenLabel})
		if _, err := g.visitExpr(st, n.Then, fn); err != nil {
			return "", err
		}
		g.emit(fn, Label{base: base{n.Location}, Name: endLabel})
		return g.unit, nil
	}

	elseLabel := g.newLabel("else")
	g.emit(fn, CondJump{base: base{n.Location}, Cond: cond, Then: thenLabel, Else: elseLabel})

	g.emit(fn, Label{base: base{n.Location}, Name: thenLabel})
	thenVal, err := g.visitExpr(st, n.Then, fn)
	if err != nil {
		return "", err
	}
	result := g.newVar(g.varTypes[thenVal])
	g.emit(fn, Copy{base: base{n.Location}, Source: thenVal, Dest: result})
	g.emit(fn, Jump{base: base{n.Location}, Label: endLabel})

	g.emit(fn, Label{base: base{n.Location}, Name: elseLabel})
	elseVal, err := g.visitExpr(st, n.Else, fn)
	if err != nil {
		return "", err
	}
	g.emit(fn, Copy{base: base{n.Location}, Source: elseVal, Dest: result})

	g.emit(fn, Label{base: base{n.Location}, Name: endLabel})
	return result, nil
}

func (g *generator) visitWhile(st *symtab.SymTab[Var], n *ast.WhileLoop, fn string) (Var, error) {
	condLabel := g.newLabel("while_cond")
	bodyLabel := g.newLabel("while_body")
	endLabel := g.newLabel("while_end")

	g.emit(fn, Label{base: base{n.Location}, Name: condLabel})
	cond, err := g.visitExpr(st, n.Cond, fn)
	if err != nil {
		return "", err
	}
	g.emit(fn, CondJump{base: base{n.Location}, Cond: cond, Then: bodyLabel, Else: endLabel})

	g.emit(fn, Label{base: base{n.Location}, Name: bodyLabel})
	g.loops = append(g.loops, loopLabels{cond: condLabel, end: endLabel})
	_, err = g.visitExpr(st, n.Body, fn)
	g.loops = g.loops[:len(g.loops)-1]
	if err != nil {
		return "", err
	}
	g.emit(fn, Jump{base: base{n.Location}, Label: condLabel})

	g.emit(fn, Label{base: base{n.Location}, Name: endLabel})
	return g.unit, nil
}

func (g *generator) visitBlock(st *symtab.SymTab[Var], n *ast.Block, fn string) (Var, error) {
	if n.Expressions == nil {
		return g.newVar(types.Unit), nil
	}
	inner := st.Inner()
	result := g.unit
	for _, e := range n.Expressions {
		v, err := g.visitExpr(inner, e, fn)
		if err != nil {
			return "", err
		}
		result = v
	}
	return result, nil
}

func (g *generator) visitVariableDec(st *symtab.SymTab[Var], n *ast.VariableDec, fn string) (Var, error) {
	value, err := g.visitExpr(st, n.Value, fn)
	if err != nil {
		return "", err
	}
	dest := g.newVar(g.varTypes[value])
	g.emit(fn, Copy{base: base{n.Location}, Source: value, Dest: dest})
	st.SetLocal(n.Name, dest)
	return g.unit, nil
}

func (g *generator) visitFunctionCall(st *symtab.SymTab[Var], n *ast.FunctionCall, fn string) (Var, error) {
	callee, ok := st.Get(n.Callee.Name)
	if !ok {
		return "", errors.New(errors.TYP001, phase, n.Loc(), "unknown function: %q", n.Callee.Name)
	}
	args := make([]Var, len(n.Args))
	for i, a := range n.Args {
		v, err := g.visitExpr(st, a, fn)
		if err != nil {
			return "", err
		}
		args[i] = v
	}
	dest := g.newVar(n.Type())
	g.emit(fn, Call{base: base{n.Location}, Fun: callee, Args: args, Dest: dest})
	return dest, nil
}

func (g *generator) visitReturn(st *symtab.SymTab[Var], n *ast.Return, fn string) (Var, error) {
	if n.Value == nil {
		g.emit(fn, Return{base: base{n.Location}, Value: g.unit})
		return g.unit, nil
	}
	value, err := g.visitExpr(st, n.Value, fn)
	if err != nil {
		return "", err
	}
	g.emit(fn, Return{base: base{n.Location}, Value: value})
	return value, nil
}

func (g *generator) visitBreakContinue(n *ast.BreakContinue, fn string) (Var, error) {
	if len(g.loops) == 0 {
		return "", errors.New(errors.SEM003, phase, n.Loc(), "%s outside of a loop", n.Kind)
	}
	top := g.loops[len(g.loops)-1]
	if n.Kind == ast.Break {
		g.emit(fn, Jump{base: base{n.Location}, Label: top.end})
	} else {
		g.emit(fn, Jump{base: base{n.Location}, Label: top.cond})
	}
	return g.unit, nil
}
