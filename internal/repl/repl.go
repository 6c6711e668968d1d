// Package repl implements minilang's interactive read-eval-print loop: a
// liner-backed prompt that feeds each line through the lex/parse/typecheck
// pipeline and the diagnostic interpreter (spec.md's "interpret" stage,
// made interactive).
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/sunholo/minilang/internal/eval"
	"github.com/sunholo/minilang/internal/lexer"
	"github.com/sunholo/minilang/internal/parser"
	"github.com/sunholo/minilang/internal/typecheck"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// REPL is a single interactive session. It carries no evaluation state
// across lines: each line is a fresh module, since minilang's top-level
// expression grammar has no notion of incremental variable bindings that
// survive past a single parse (spec.md §4's Module is complete in itself).
type REPL struct {
	history []string
}

// New creates an empty REPL session.
func New() *REPL {
	return &REPL{}
}

// Start runs the loop until EOF or a :quit command, writing output to out.
func (r *REPL) Start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(false)

	historyFile := filepath.Join(os.TempDir(), ".minilang_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintln(out, bold("minilang"))
	fmt.Fprintln(out, dim("Type :help for help, :quit to exit"))
	fmt.Fprintln(out)

	for {
		input, err := line.Prompt("minilang> ")
		if err == io.EOF {
			fmt.Fprintln(out, green("Goodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)
		r.history = append(r.history, input)

		if strings.HasPrefix(input, ":") {
			if r.handleCommand(input, out) {
				break
			}
			continue
		}

		r.evalLine(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

// handleCommand processes a `:`-prefixed REPL command, returning true when
// the session should end.
func (r *REPL) handleCommand(input string, out io.Writer) bool {
	switch {
	case input == ":quit" || input == ":q" || input == ":exit":
		fmt.Fprintln(out, green("Goodbye!"))
		return true
	case input == ":help" || input == ":h":
		fmt.Fprintln(out, dim("  :help, :h     show this message"))
		fmt.Fprintln(out, dim("  :history      show entered lines"))
		fmt.Fprintln(out, dim("  :quit, :q     exit the REPL"))
		return false
	case input == ":history":
		for i, h := range r.history {
			fmt.Fprintf(out, "%3d  %s\n", i+1, h)
		}
		return false
	default:
		fmt.Fprintf(out, "%s: unknown command %q\n", yellow("warning"), input)
		return false
	}
}

func (r *REPL) evalLine(input string, out io.Writer) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		return
	}
	module, err := parser.Parse(tokens)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		return
	}
	if err := typecheck.Check(module); err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		return
	}
	value, err := eval.Interpret(module)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		return
	}
	if value == nil {
		fmt.Fprintln(out, dim("unit"))
		return
	}
	fmt.Fprintln(out, green(fmt.Sprintf("%v", value)))
}
