package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sunholo/minilang/internal/eval"
)

func newTokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize [file]",
		Short: "Print the token stream for a program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(sourceArg(args))
			if err != nil {
				return err
			}
			tokens, err := lexSource(src)
			if err != nil {
				return err
			}
			for _, t := range tokens {
				fmt.Fprintln(cmd.OutOrStdout(), t.String())
			}
			return nil
		},
	}
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the parsed AST for a program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(sourceArg(args))
			if err != nil {
				return err
			}
			module, err := parseSource(src)
			if err != nil {
				return err
			}
			printModule(cmd, module)
			return nil
		},
	}
}

func newTypecheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "typecheck [file]",
		Short: "Type-check a program and print its typed AST",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(sourceArg(args))
			if err != nil {
				return err
			}
			module, err := typecheckSource(src)
			if err != nil {
				return err
			}
			printModule(cmd, module)
			return nil
		},
	}
}

func newInterpretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interpret [file]",
		Short: "Evaluate a program's top-level expression directly, without compiling it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(sourceArg(args))
			if err != nil {
				return err
			}
			module, err := typecheckSource(src)
			if err != nil {
				return err
			}
			value, err := eval.Interpret(module)
			if err != nil {
				return err
			}
			if value == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "unit")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}
