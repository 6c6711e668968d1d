package main

import (
	"github.com/spf13/cobra"

	"github.com/sunholo/minilang/internal/repl"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-eval-print loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repl.New().Start(cmd.OutOrStdout())
			return nil
		},
	}
}
