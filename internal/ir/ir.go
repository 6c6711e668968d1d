// Package ir defines minilang's three-address intermediate representation:
// a flat per-function instruction list over nominal IR variables
// (spec.md §3/§4.4).
package ir

import (
	"fmt"

	"github.com/sunholo/minilang/internal/token"
)

// Var is a nominal IR variable identifier; equality is by name.
type Var string

// Instruction is implemented by every IR instruction variant. Every
// variant carries the source location it was lowered from.
type Instruction interface {
	Loc() token.Location
	String() string
	instrNode()
}

type base struct {
	Location token.Location
}

func (b base) Loc() token.Location { return b.Location }
func (base) instrNode()            {}

// LoadIntConst loads an integer constant into Dest.
type LoadIntConst struct {
	base
	Value int
	Dest  Var
}

func (i LoadIntConst) String() string { return fmt.Sprintf("LoadIntConst(%d) -> %s", i.Value, i.Dest) }

// LoadBoolConst loads a boolean constant into Dest.
type LoadBoolConst struct {
	base
	Value bool
	Dest  Var
}

func (i LoadBoolConst) String() string {
	return fmt.Sprintf("LoadBoolConst(%t) -> %s", i.Value, i.Dest)
}

// LoadParam marks a function-entry parameter binding: the Index'th
// incoming System V argument register is the initial value of Dest.
type LoadParam struct {
	base
	Index int
	Dest  Var
}

func (i LoadParam) String() string { return fmt.Sprintf("LoadParam(%d) -> %s", i.Index, i.Dest) }

// Copy moves the value of Source into Dest.
type Copy struct {
	base
	Source Var
	Dest   Var
}

func (i Copy) String() string { return fmt.Sprintf("Copy(%s) -> %s", i.Source, i.Dest) }

// Call invokes Fun (an operator intrinsic or a user function) with Args,
// storing the result in Dest.
type Call struct {
	base
	Fun  Var
	Args []Var
	Dest Var
}

func (i Call) String() string {
	return fmt.Sprintf("Call(%s, %v) -> %s", i.Fun, i.Args, i.Dest)
}

// Jump is an unconditional jump to Label.
type Jump struct {
	base
	Label string
}

func (i Jump) String() string { return fmt.Sprintf("Jump(%s)", i.Label) }

// CondJump jumps to Then when Cond is true, Else otherwise.
type CondJump struct {
	base
	Cond Var
	Then string
	Else string
}

func (i CondJump) String() string {
	return fmt.Sprintf("CondJump(%s, %s, %s)", i.Cond, i.Then, i.Else)
}

// Label declares a jump target.
type Label struct {
	base
	Name string
}

func (i Label) String() string { return fmt.Sprintf("Label(%s)", i.Name) }

// Return returns Value from the enclosing function.
type Return struct {
	base
	Value Var
}

func (i Return) String() string { return fmt.Sprintf("Return(%s)", i.Value) }
