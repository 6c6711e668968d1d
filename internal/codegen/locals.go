package codegen

import (
	"fmt"

	"github.com/sunholo/minilang/internal/ir"
)

// Locals assigns every IR variable referenced within one function a fixed
// stack slot, in first-seen order. There is no slot reuse and no register
// allocation: spec.md §4.5 calls for the simplest possible code generator,
// not an efficient one.
type Locals struct {
	slot      map[ir.Var]int
	stackUsed int
	endLabel  string
}

func newLocals(instructions []ir.Instruction) *Locals {
	l := &Locals{slot: map[ir.Var]int{}, stackUsed: 0}
	for _, instr := range instructions {
		for _, v := range varsOf(instr) {
			l.add(v)
		}
	}
	return l
}

func (l *Locals) add(v ir.Var) {
	if _, ok := l.slot[v]; ok {
		return
	}
	l.stackUsed += 8
	l.slot[v] = l.stackUsed
}

// ref returns the stack-relative operand text for v, e.g. "-8(%rbp)".
func (l *Locals) ref(v ir.Var) string {
	offset, ok := l.slot[v]
	if !ok {
		l.add(v)
		offset = l.slot[v]
	}
	return fmt.Sprintf("-%d(%%rbp)", offset)
}

// varsOf returns every IR variable referenced by instr, including the
// callee slot of a Call (which never needs to be read back, but still
// occupies a slot, matching the blanket field-collection the lowering
// pass relies on upstream).
func varsOf(instr ir.Instruction) []ir.Var {
	switch in := instr.(type) {
	case ir.LoadIntConst:
		return []ir.Var{in.Dest}
	case ir.LoadBoolConst:
		return []ir.Var{in.Dest}
	case ir.LoadParam:
		return []ir.Var{in.Dest}
	case ir.Copy:
		return []ir.Var{in.Source, in.Dest}
	case ir.Call:
		vars := append([]ir.Var{in.Fun}, in.Args...)
		return append(vars, in.Dest)
	case ir.CondJump:
		return []ir.Var{in.Cond}
	case ir.Return:
		return []ir.Var{in.Value}
	default:
		return nil
	}
}
