// Command minilang is the compiler's command-line front end: one
// subcommand per pipeline stage (tokenize, parse, typecheck, interpret,
// ir, asm, compile), plus an interactive repl.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	red = color.New(color.FgRed).SprintFunc()
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "minilang",
		Short:         "An ahead-of-time compiler for a small expression-oriented language",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newTokenizeCmd(),
		newParseCmd(),
		newTypecheckCmd(),
		newInterpretCmd(),
		newIRCmd(),
		newAsmCmd(),
		newCompileCmd(),
		newReplCmd(),
	)
	return root
}

// readSource reads the program text from path, or from stdin when path is
// empty or "-" (spec.md §1: every stage command accepts a file argument or
// falls back to stdin).
func readSource(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func sourceArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
