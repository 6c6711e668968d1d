package typecheck

import (
	"github.com/sunholo/minilang/internal/ast"
	"github.com/sunholo/minilang/internal/errors"
	"github.com/sunholo/minilang/internal/symtab"
	"github.com/sunholo/minilang/internal/types"
)

// checkExpr infers node's type, writes it back onto the node, and returns
// it.
func (c *Checker) checkExpr(node ast.Expr, st *symtab.SymTab[types.Type]) (types.Type, error) {
	t, err := c.checkExprKind(node, st)
	if err != nil {
		return nil, err
	}
	node.SetType(t)
	return t, nil
}

func (c *Checker) checkExprKind(node ast.Expr, st *symtab.SymTab[types.Type]) (types.Type, error) {
	switch n := node.(type) {
	case *ast.Literal:
		switch n.Value.(type) {
		case bool:
			return types.Bool, nil
		case int:
			return types.Int, nil
		case nil:
			return types.Unit, nil
		default:
			return nil, errors.New(errors.TYP001, phase, n.Loc(), "don't know the type of literal %v", n.Value)
		}

	case *ast.Identifier:
		t, ok := st.Get(n.Name)
		if !ok {
			return nil, errors.New(errors.TYP001, phase, n.Loc(), "unknown variable: %q", n.Name)
		}
		return t, nil

	case *ast.BinaryOp:
		return c.checkBinaryOp(n, st)

	case *ast.UnaryOp:
		return c.checkUnaryOp(n, st)

	case *ast.IfExpression:
		return c.checkIf(n, st)

	case *ast.WhileLoop:
		return c.checkWhile(n, st)

	case *ast.Block:
		return c.checkBlock(n, st)

	case *ast.VariableDec:
		return c.checkVariableDec(n, st)

	case *ast.FunctionCall:
		return c.checkFunctionCall(n, st)

	case *ast.Return:
		if c.returnType == nil {
			return nil, errors.New(errors.TYP010, phase, n.Loc(), "return outside of a function")
		}
		var t types.Type = types.Unit
		if n.Value != nil {
			vt, err := c.checkExpr(n.Value, st)
			if err != nil {
				return nil, err
			}
			t = vt
		}
		if !types.Equal(t, *c.returnType) {
			return nil, errors.New(errors.TYP010, phase, n.Loc(), "return value has type %s but the function declares %s", t, *c.returnType)
		}
		return t, nil

	case *ast.BreakContinue:
		if c.loopDepth == 0 {
			return nil, errors.New(errors.SEM003, phase, n.Loc(), "%s outside of a loop", n.Kind)
		}
		return types.Unit, nil

	default:
		return nil, errors.New(errors.TYP001, phase, node.Loc(), "unsupported AST node %T", node)
	}
}

func (c *Checker) checkBinaryOp(n *ast.BinaryOp, st *symtab.SymTab[types.Type]) (types.Type, error) {
	t1, err := c.checkExpr(n.Left, st)
	if err != nil {
		return nil, err
	}
	t2, err := c.checkExpr(n.Right, st)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "=":
		if !types.Equal(t1, t2) {
			return nil, errors.New(errors.TYP004, phase, n.Loc(), "operator %q expected same type on each side, got %s and %s", n.Op, t1, t2)
		}
		return t1, nil
	case "==", "!=":
		if !types.Equal(t1, t2) {
			return nil, errors.New(errors.TYP004, phase, n.Loc(), "operator %q expected same type on each side, got %s and %s", n.Op, t1, t2)
		}
		return types.Bool, nil
	default:
		opType, ok := st.Get(n.Op)
		if !ok {
			return nil, errors.New(errors.TYP001, phase, n.Loc(), "unknown operator: %q", n.Op)
		}
		fn, ok := opType.(types.FunType)
		if !ok || len(fn.Parameters) != 2 || !types.Equal(fn.Parameters[0], t1) || !types.Equal(fn.Parameters[1], t2) {
			return nil, errors.New(errors.TYP004, phase, n.Loc(), "operator %q expected (%s), got (%s, %s)", n.Op, opType, t1, t2)
		}
		return fn.Return, nil
	}
}

func (c *Checker) checkUnaryOp(n *ast.UnaryOp, st *symtab.SymTab[types.Type]) (types.Type, error) {
	opType, ok := st.Get("unary_" + n.Op)
	if !ok {
		return nil, errors.New(errors.TYP001, phase, n.Loc(), "unknown operator: %q", "unary_"+n.Op)
	}
	t, err := c.checkExpr(n.Right, st)
	if err != nil {
		return nil, err
	}
	if !types.Equal(opType, t) {
		return nil, errors.New(errors.TYP004, phase, n.Loc(), "operator \"unary_%s\" right side expected %s, got %s", n.Op, opType, t)
	}
	return t, nil
}

func (c *Checker) checkIf(n *ast.IfExpression, st *symtab.SymTab[types.Type]) (types.Type, error) {
	condType, err := c.checkExpr(n.Cond, st)
	if err != nil {
		return nil, err
	}
	if !types.Equal(condType, types.Bool) {
		return nil, errors.New(errors.TYP007, phase, n.Cond.Loc(), "if condition was %s, expected Bool", condType)
	}
	thenType, err := c.checkExpr(n.Then, st)
	if err != nil {
		return nil, err
	}
	if n.Else == nil {
		return types.Unit, nil
	}
	elseType, err := c.checkExpr(n.Else, st)
	if err != nil {
		return nil, err
	}
	if !types.Equal(thenType, elseType) {
		return nil, errors.New(errors.TYP008, phase, n.Loc(), "then and else had different types: %s and %s", thenType, elseType)
	}
	return thenType, nil
}

func (c *Checker) checkWhile(n *ast.WhileLoop, st *symtab.SymTab[types.Type]) (types.Type, error) {
	condType, err := c.checkExpr(n.Cond, st)
	if err != nil {
		return nil, err
	}
	if !types.Equal(condType, types.Bool) {
		return nil, errors.New(errors.TYP007, phase, n.Cond.Loc(), "while-loop condition was %s, expected Bool", condType)
	}
	c.loopDepth++
	_, err = c.checkExpr(n.Body, st)
	c.loopDepth--
	if err != nil {
		return nil, err
	}
	return types.Unit, nil
}

func (c *Checker) checkBlock(n *ast.Block, st *symtab.SymTab[types.Type]) (types.Type, error) {
	if n.Expressions == nil {
		return types.Unit, nil
	}
	inner := st.Inner()
	var last types.Type = types.Unit
	for _, e := range n.Expressions {
		t, err := c.checkExpr(e, inner)
		if err != nil {
			return nil, err
		}
		last = t
	}
	return last, nil
}

func (c *Checker) checkVariableDec(n *ast.VariableDec, st *symtab.SymTab[types.Type]) (types.Type, error) {
	if st.DeclaredLocally(n.Name) {
		return nil, errors.New(errors.TYP006, phase, n.Loc(), "variable %q already declared in this scope", n.Name)
	}
	valueType, err := c.checkExpr(n.Value, st)
	if err != nil {
		return nil, err
	}
	if n.DeclaredType != nil {
		declared, err := c.resolveTypeExpr(n.Loc(), n.DeclaredType)
		if err != nil {
			return nil, err
		}
		if !types.Equal(declared, valueType) {
			return nil, errors.New(errors.TYP005, phase, n.Loc(), "variable %q declared as %s but assigned %s", n.Name, declared, valueType)
		}
	}
	st.SetLocal(n.Name, valueType)
	return types.Unit, nil
}

func (c *Checker) checkFunctionCall(n *ast.FunctionCall, st *symtab.SymTab[types.Type]) (types.Type, error) {
	calleeType, ok := st.Get(n.Callee.Name)
	if !ok {
		return nil, errors.New(errors.TYP001, phase, n.Loc(), "unknown function: %q", n.Callee.Name)
	}
	fn, ok := calleeType.(types.FunType)
	if !ok {
		return nil, errors.New(errors.TYP001, phase, n.Loc(), "%q is not a function", n.Callee.Name)
	}
	if len(n.Args) != len(fn.Parameters) {
		return nil, errors.New(errors.TYP002, phase, n.Loc(), "function %q expects %d parameter(s) but %d were given", n.Callee.Name, len(fn.Parameters), len(n.Args))
	}
	for i, arg := range n.Args {
		argType, err := c.checkExpr(arg, st)
		if err != nil {
			return nil, err
		}
		if !types.Equal(argType, fn.Parameters[i]) {
			return nil, errors.New(errors.TYP003, phase, arg.Loc(), "function %q parameter %d has type %s but expects %s", n.Callee.Name, i+1, argType, fn.Parameters[i])
		}
	}
	return fn.Return, nil
}
