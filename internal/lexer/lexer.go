// Package lexer scans minilang source text into a token stream.
//
// Scanning is longest-match per class in a fixed priority order (spec.md
// §4.1): newlines, whitespace/comments, identifiers, integer literals,
// operators (two-char before one-char), then punctuation. Keywords are not
// a separate token class — they are identifiers whose spelling the parser
// recognizes (token.IsKeyword).
package lexer

import (
	"regexp"

	"github.com/sunholo/minilang/internal/errors"
	"github.com/sunholo/minilang/internal/token"
)

const phase = "lexer"

type class struct {
	kind token.Kind // ignored for newline/skip classes
	re   *regexp.Regexp
}

var (
	reNewline  = regexp.MustCompile(`^\n+`)
	reSkip     = regexp.MustCompile(`^((//|#)[^\n]*|[^\S\n]+)`)
	reIdent    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)
	reInt      = regexp.MustCompile(`^[0-9]+`)
	reOperator = regexp.MustCompile(`^(==|!=|>=|<=|=>|\+|-|\*|/|=|<|>|%)`)
	rePunct    = regexp.MustCompile(`^[(){},;:]`)
)

// Tokenize scans src and returns its token stream, or the first lexical
// error encountered.
func Tokenize(src string) ([]token.Token, error) {
	normalized := Normalize([]byte(src))
	text := string(normalized)

	var tokens []token.Token
	pos := 0
	line := 1
	column := 1

	for pos < len(text) {
		rest := text[pos:]

		if m := reNewline.FindString(rest); m != "" {
			line += len(m)
			column = 1
			pos += len(m)
			continue
		}
		if m := reSkip.FindString(rest); m != "" {
			column += len(m)
			pos += len(m)
			continue
		}

		loc := token.Location{Line: line, Column: column}

		switch {
		case reIdent.MatchString(rest):
			m := reIdent.FindString(rest)
			tokens = append(tokens, token.Token{Text: m, Kind: token.Identifier, Loc: loc})
			pos += len(m)
			column += len(m)
		case reInt.MatchString(rest):
			m := reInt.FindString(rest)
			tokens = append(tokens, token.Token{Text: m, Kind: token.IntLiteral, Loc: loc})
			pos += len(m)
			column += len(m)
		case reOperator.MatchString(rest):
			m := reOperator.FindString(rest)
			tokens = append(tokens, token.Token{Text: m, Kind: token.Operator, Loc: loc})
			pos += len(m)
			column += len(m)
		case rePunct.MatchString(rest):
			m := rePunct.FindString(rest)
			tokens = append(tokens, token.Token{Text: m, Kind: token.Punctuation, Loc: loc})
			pos += len(m)
			column += len(m)
		default:
			end := pos + 10
			if end > len(text) {
				end = len(text)
			}
			return nil, errors.New(errors.LEX001, phase, loc, "invalid token near %q", text[pos:end])
		}
	}

	return tokens, nil
}
