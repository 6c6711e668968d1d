// Package typecheck implements minilang's two-pass type checker: a tree
// walker over a symbol-table chain that assigns a semantic type to every
// AST node (spec.md §4.3).
package typecheck

import (
	"github.com/sunholo/minilang/internal/ast"
	"github.com/sunholo/minilang/internal/errors"
	"github.com/sunholo/minilang/internal/symtab"
	"github.com/sunholo/minilang/internal/token"
	"github.com/sunholo/minilang/internal/types"
)

const phase = "typecheck"

// Checker carries the state threaded through a single module's type check:
// the currently expected function return type (nil at the top level) and
// the loop nesting depth (for break/continue validation).
type Checker struct {
	returnType *types.Type
	loopDepth  int
}

// Check type-checks module in place: every visited ast.Expr has its
// inferred type written back via SetType. It implements spec.md §4.3's two
// phases: first every function signature is registered (enabling forward
// and recursive references), then every function body and the top-level
// expression are checked against those signatures.
func Check(module *ast.Module) error {
	c := &Checker{}
	root := symtab.New(types.Builtins())

	// Phase A.
	for _, fn := range module.Funcs {
		sig, err := c.funSignature(fn)
		if err != nil {
			return err
		}
		root.SetLocal(fn.Name, sig)
	}

	// Phase B.
	for _, fn := range module.Funcs {
		if err := c.checkFunBody(fn, root); err != nil {
			return err
		}
	}

	if module.Expr != nil {
		if _, err := c.checkExpr(module.Expr, root); err != nil {
			return err
		}
	}
	return nil
}

// funSignature builds the semantic FunType for a declaration from its
// syntactic parameter and return type annotations.
func (c *Checker) funSignature(fn *ast.FunDefinition) (types.FunType, error) {
	params := make([]types.Type, len(fn.ParamTypes))
	for i, pt := range fn.ParamTypes {
		t, ok := types.Basic(pt.Name)
		if !ok {
			return types.FunType{}, errors.New(errors.TYP009, phase, fn.Location, "unknown basic type %q", pt.Name)
		}
		params[i] = t
	}
	ret, ok := types.Basic(fn.ReturnType.Name)
	if !ok {
		return types.FunType{}, errors.New(errors.TYP009, phase, fn.Location, "unknown basic type %q", fn.ReturnType.Name)
	}
	return types.FunType{Parameters: params, Return: ret}, nil
}

// checkFunBody checks one function's body against its already-registered
// signature, binding parameters in a fresh inner frame.
func (c *Checker) checkFunBody(fn *ast.FunDefinition, root *symtab.SymTab[types.Type]) error {
	sig, _ := root.Get(fn.Name)
	funType := sig.(types.FunType)

	inner := root.Inner()
	for i, name := range fn.Params {
		inner.SetLocal(name, funType.Parameters[i])
	}

	savedReturn, savedDepth := c.returnType, c.loopDepth
	c.returnType = &funType.Return
	c.loopDepth = 0
	bodyType, err := c.checkExpr(fn.Body, inner)
	c.returnType, c.loopDepth = savedReturn, savedDepth
	if err != nil {
		return err
	}

	if !types.Equal(bodyType, funType.Return) {
		return errors.New(errors.TYP010, phase, fn.Body.Loc(), "function %q declared to return %s but body has type %s", fn.Name, funType.Return, bodyType)
	}
	return nil
}

// resolveTypeExpr canonicalizes a syntactic type annotation into a
// semantic Type. This is the single boundary where TypeExpr is converted
// to Type (spec.md §9). loc is attached to any error raised, since
// TypeExpr nodes carry no location of their own.
func (c *Checker) resolveTypeExpr(loc token.Location, te ast.TypeExpr) (types.Type, error) {
	switch t := te.(type) {
	case ast.BasicTypeExpr:
		bt, ok := types.Basic(t.Name)
		if !ok {
			return nil, errors.New(errors.TYP009, phase, loc, "unknown basic type %q", t.Name)
		}
		return bt, nil
	case ast.FunTypeExpr:
		params := make([]types.Type, len(t.Parameters))
		for i, p := range t.Parameters {
			pt, err := c.resolveTypeExpr(loc, p)
			if err != nil {
				return nil, err
			}
			params[i] = pt
		}
		ret, err := c.resolveTypeExpr(loc, t.Return)
		if err != nil {
			return nil, err
		}
		return types.FunType{Parameters: params, Return: ret}, nil
	default:
		return nil, errors.New(errors.TYP009, phase, loc, "unknown type expression %T", te)
	}
}
