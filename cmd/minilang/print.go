package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sunholo/minilang/internal/ast"
)

// printModule writes a module's functions and top-level expression using
// their String() representations, one per line.
func printModule(cmd *cobra.Command, module *ast.Module) {
	out := cmd.OutOrStdout()
	for _, fn := range module.Funcs {
		fmt.Fprintf(out, "fun %s(...): %s %s\n", fn.Name, fn.ReturnType, fn.Body)
	}
	if module.Expr != nil {
		fmt.Fprintln(out, module.Expr.String())
	}
}
