// Package types defines minilang's semantic type system: Int, Bool, Unit,
// and function types, plus the seeded built-in operator signatures every
// type-checking and IR-generation pass starts from.
package types

import (
	"fmt"
	"strings"
)

// Type is the interface implemented by every semantic type.
type Type interface {
	String() string
	equal(Type) bool
}

// BasicType is one of Int, Bool, or Unit.
type BasicType struct {
	Name string
}

func (b BasicType) String() string { return b.Name }

func (b BasicType) equal(other Type) bool {
	o, ok := other.(BasicType)
	return ok && b.Name == o.Name
}

// FunType is the type of a function: an ordered parameter list and a
// return type.
type FunType struct {
	Parameters []Type
	Return     Type
}

func (f FunType) String() string {
	parts := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		parts[i] = p.String()
	}
	return fmt.Sprintf("(%s) => %s", strings.Join(parts, ", "), f.Return)
}

func (f FunType) equal(other Type) bool {
	o, ok := other.(FunType)
	if !ok || len(f.Parameters) != len(o.Parameters) || !Equal(f.Return, o.Return) {
		return false
	}
	for i := range f.Parameters {
		if !Equal(f.Parameters[i], o.Parameters[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two types are structurally identical. A nil Type
// never equals anything, including another nil.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return false
	}
	return a.equal(b)
}

// Well-known basic types.
var (
	Int  = BasicType{Name: "Int"}
	Bool = BasicType{Name: "Bool"}
	Unit = BasicType{Name: "Unit"}
)

// Basic returns the BasicType named by name, and whether name is one of
// the three known basic type spellings.
func Basic(name string) (BasicType, bool) {
	switch name {
	case "Int":
		return Int, true
	case "Bool":
		return Bool, true
	case "Unit":
		return Unit, true
	default:
		return BasicType{}, false
	}
}

// Built-in function types, shared by the seeded symbol table and by
// FunctionCall/BinaryOp checking.
var (
	Arithmetic = FunType{Parameters: []Type{Int, Int}, Return: Int}
	Comparison = FunType{Parameters: []Type{Int, Int}, Return: Bool}
	Logical    = FunType{Parameters: []Type{Bool, Bool}, Return: Bool}
	PrintInt   = FunType{Parameters: []Type{Int}, Return: Unit}
	PrintBool  = FunType{Parameters: []Type{Bool}, Return: Unit}
	ReadInt    = FunType{Parameters: []Type{}, Return: Int}
)

// Builtins maps every seeded top-level name (operator spellings and
// built-in functions) to its semantic type. Equality operators ('==', '!=')
// are intentionally absent: the checker handles them polymorphically
// rather than through symbol-table lookup (spec.md §4.3).
func Builtins() map[string]Type {
	return map[string]Type{
		"+":          Arithmetic,
		"-":          Arithmetic,
		"*":          Arithmetic,
		"/":          Arithmetic,
		"%":          Arithmetic,
		"<":          Comparison,
		">":          Comparison,
		"<=":         Comparison,
		">=":         Comparison,
		"unary_-":    Int,
		"unary_not":  Bool,
		"or":         Logical,
		"and":        Logical,
		"print_int":  PrintInt,
		"print_bool": PrintBool,
		"read_int":   ReadInt,
	}
}
