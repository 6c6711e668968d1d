package parser

import "strconv"

// parseInt converts integer literal text into its numeric value. The
// lexer guarantees text matches [0-9]+, so the only failure mode is
// overflow of the host int type.
func parseInt(text string) (int, error) {
	return strconv.Atoi(text)
}
