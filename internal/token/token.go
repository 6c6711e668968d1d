// Package token defines source locations and lexical tokens shared by the
// lexer, parser, and every later compiler stage.
package token

import "fmt"

// Location is a 1-based line/column position in a source file.
//
// Zero is never a valid line or column produced by the lexer; the zero
// value of Location is instead used as a sentinel "don't care" position in
// tests, where it compares equal to any other Location.
type Location struct {
	Line   int
	Column int
}

// Dontcare is the sentinel location that compares equal to every other
// location. It is intended for use in tests that don't care about exact
// source positions.
var Dontcare = Location{}

// Equal reports whether l and other denote the same source position,
// except that the Dontcare sentinel is considered equal to anything.
func (l Location) Equal(other Location) bool {
	if l == Dontcare || other == Dontcare {
		return true
	}
	return l.Line == other.Line && l.Column == other.Column
}

// Pseudo is the location attached to synthetic instructions (such as the
// implicit print call appended after the top-level expression) that have
// no corresponding source text.
var Pseudo = Location{Line: 0, Column: 0}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Kind classifies a token.
type Kind int

const (
	IntLiteral Kind = iota
	Identifier
	Operator
	Punctuation
	End
)

func (k Kind) String() string {
	switch k {
	case IntLiteral:
		return "int_literal"
	case Identifier:
		return "identifier"
	case Operator:
		return "operator"
	case Punctuation:
		return "punctuation"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// Token is an immutable lexical unit: its text, kind, and source location.
type Token struct {
	Text string
	Kind Kind
	Loc  Location
}

// Equal compares two tokens for value equality, honoring the Dontcare
// location sentinel on either side.
func (t Token) Equal(other Token) bool {
	return t.Text == other.Text && t.Kind == other.Kind && t.Loc.Equal(other.Loc)
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%q, %s, %s)", t.Text, t.Kind, t.Loc)
}

// keywords is the set of identifier spellings the parser treats specially.
// The lexer never classifies these separately from Identifier: per
// spec.md §4.1, keywords are identifiers whose text the parser recognizes.
var keywords = map[string]bool{
	"if": true, "then": true, "else": true,
	"while": true, "do": true,
	"var": true, "true": true, "false": true,
	"and": true, "or": true, "not": true,
	"fun": true, "return": true, "break": true, "continue": true,
}

// IsKeyword reports whether text is a reserved keyword spelling.
func IsKeyword(text string) bool {
	return keywords[text]
}
