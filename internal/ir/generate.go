package ir

import (
	"fmt"

	"github.com/sunholo/minilang/internal/ast"
	"github.com/sunholo/minilang/internal/errors"
	"github.com/sunholo/minilang/internal/symtab"
	"github.com/sunholo/minilang/internal/token"
	"github.com/sunholo/minilang/internal/types"
)

const phase = "ir"

// loopLabels names the labels a break/continue inside the innermost
// enclosing while-loop jumps to.
type loopLabels struct {
	cond string // target for 'continue'
	end  string // target for 'break'
}

// generator holds the mutable state of a single lowering pass: the
// per-function instruction lists being built, a running type map for
// every minted IR variable, and fresh-name counters. None of this state
// outlives a single Generate call (spec.md §5: confined to a single IR
// generation pass).
type generator struct {
	instructions map[string][]Instruction
	order        []string
	varTypes     map[Var]types.Type
	nextVar      int
	nextLabel    int
	loops        []loopLabels
	unit         Var
}

// Function is one lowered function: its name and flat instruction list.
// "main" holds the lowered top-level expression, and is always last.
type Function struct {
	Name         string
	Instructions []Instruction
}

// Generate lowers a typed Module into an ordered list of functions, user
// functions first in declaration order followed by main. root_types
// (spec.md §4.4) is implicit: every minted variable's type is tracked
// internally and used to decide the implicit top-level print call.
func Generate(module *ast.Module) ([]Function, error) {
	g := &generator{
		instructions: map[string][]Instruction{"main": {}},
		varTypes:     map[Var]types.Type{},
		unit:         Var("unit"),
	}
	g.varTypes[g.unit] = types.Unit

	root := symtab.New(map[string]Var{})
	for name := range types.Builtins() {
		root.SetLocal(name, Var(name))
	}
	// '==' and '!=' are not in Builtins (the checker handles them
	// polymorphically) but are still lowered as Calls to codegen intrinsics.
	root.SetLocal("==", Var("=="))
	root.SetLocal("!=", Var("!="))

	for _, fn := range module.Funcs {
		if err := g.visitFunc(fn, root); err != nil {
			return nil, err
		}
	}

	if module.Expr != nil {
		result, err := g.visitExpr(root, module.Expr, "main")
		if err != nil {
			return nil, err
		}
		switch {
		case types.Equal(g.varTypes[result], types.Int):
			g.emit("main", Call{base: base{token.Pseudo}, Fun: "print_int", Args: []Var{result}, Dest: g.newVar(types.Unit)})
		case types.Equal(g.varTypes[result], types.Bool):
			g.emit("main", Call{base: base{token.Pseudo}, Fun: "print_bool", Args: []Var{result}, Dest: g.newVar(types.Unit)})
		}
	}

	funcs := make([]Function, 0, len(g.order)+1)
	for _, name := range g.order {
		funcs = append(funcs, Function{Name: name, Instructions: g.instructions[name]})
	}
	funcs = append(funcs, Function{Name: "main", Instructions: g.instructions["main"]})
	return funcs, nil
}

func (g *generator) emit(fn string, instr Instruction) {
	g.instructions[fn] = append(g.instructions[fn], instr)
}

func (g *generator) newVar(t types.Type) Var {
	v := Var(fmt.Sprintf("x%d", g.nextVar))
	g.nextVar++
	g.varTypes[v] = t
	return v
}

func (g *generator) newLabel(name string) string {
	l := fmt.Sprintf("%d_%s", g.nextLabel, name)
	g.nextLabel++
	return l
}

func (g *generator) visitFunc(fn *ast.FunDefinition, root *symtab.SymTab[Var]) error {
	inner := root.Inner()
	g.instructions[fn.Name] = []Instruction{}
	g.order = append(g.order, fn.Name)

	for i, name := range fn.Params {
		paramType, ok := types.Basic(fn.ParamTypes[i].Name)
		if !ok {
			return errors.New(errors.TYP009, phase, fn.Location, "unknown basic type %q", fn.ParamTypes[i].Name)
		}
		v := g.newVar(paramType)
		g.emit(fn.Name, LoadParam{base: base{fn.Location}, Index: i, Dest: v})
		inner.SetLocal(name, v)
	}

	result, err := g.visitExpr(inner, fn.Body, fn.Name)
	if err != nil {
		return err
	}
	g.emit(fn.Name, Return{base: base{fn.Location}, Value: result})
	root.SetLocal(fn.Name, Var(fn.Name))
	return nil
}
