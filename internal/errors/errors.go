// Package errors provides the compiler's error taxonomy: a small set of
// phase-prefixed codes and a single SourceError type threaded through every
// pipeline stage. First error aborts the stage; there is no error list and
// no recovery, matching the fail-fast policy of the source language spec.
package errors

import (
	"fmt"

	"github.com/sunholo/minilang/internal/token"
)

// Error code constants, grouped by the compiler phase that raises them.
const (
	// Lexical errors.
	LEX001 = "LEX001" // unmatched character / invalid token

	// Syntactic errors.
	PAR001 = "PAR001" // expected a specific token, got something else
	PAR002 = "PAR002" // unknown syntax / no primary expression matched
	PAR003 = "PAR003" // variable declaration outside statement position
	PAR004 = "PAR004" // extra tokens after a complete module
	PAR005 = "PAR005" // return not last statement of a block

	// Type errors.
	TYP001 = "TYP001" // unresolved identifier
	TYP002 = "TYP002" // wrong arity in a call
	TYP003 = "TYP003" // parameter/argument type mismatch
	TYP004 = "TYP004" // operator type mismatch
	TYP005 = "TYP005" // declared variable type mismatch
	TYP006 = "TYP006" // redeclaration in the same scope
	TYP007 = "TYP007" // non-Bool condition
	TYP008 = "TYP008" // mismatched if/else branch types
	TYP009 = "TYP009" // unknown basic type name
	TYP010 = "TYP010" // function body or return value type doesn't match declared return type, or return outside a function

	// Semantic errors (caught after parsing, before/during lowering).
	SEM001 = "SEM001" // more than six call arguments
	SEM002 = "SEM002" // non-identifier on the left of '='
	SEM003 = "SEM003" // break/continue outside of a loop

	// Toolchain errors.
	TLC001 = "TLC001" // external assembler/linker invocation failed
)

// SourceError is the concrete error type returned by every compiler stage.
type SourceError struct {
	Code    string
	Phase   string
	Message string
	Loc     token.Location
	HasLoc  bool
}

// New creates a SourceError tied to a source location.
func New(code, phase string, loc token.Location, format string, args ...any) *SourceError {
	return &SourceError{
		Code:    code,
		Phase:   phase,
		Message: fmt.Sprintf(format, args...),
		Loc:     loc,
		HasLoc:  true,
	}
}

// NewNoLoc creates a SourceError with no associated source location, for
// errors (such as toolchain failures) that aren't tied to a position in the
// original program text.
func NewNoLoc(code, phase, format string, args ...any) *SourceError {
	return &SourceError{
		Code:    code,
		Phase:   phase,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *SourceError) Error() string {
	if e.HasLoc {
		return fmt.Sprintf("%s: %s [%s]", e.Loc, e.Message, e.Code)
	}
	return fmt.Sprintf("%s [%s]", e.Message, e.Code)
}
