package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sunholo/minilang/internal/codegen"
	"github.com/sunholo/minilang/internal/config"
	"github.com/sunholo/minilang/internal/ir"
	"github.com/sunholo/minilang/internal/toolchain"
)

func irSource(src string) ([]ir.Function, error) {
	module, err := typecheckSource(src)
	if err != nil {
		return nil, err
	}
	return ir.Generate(module)
}

func newIRCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ir [file]",
		Short: "Print the lowered three-address IR for a program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(sourceArg(args))
			if err != nil {
				return err
			}
			funcs, err := irSource(src)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, fn := range funcs {
				fmt.Fprintf(out, "%s:\n", fn.Name)
				for _, instr := range fn.Instructions {
					fmt.Fprintf(out, "  %s\n", instr.String())
				}
			}
			return nil
		},
	}
}

func asmSource(src string) (string, error) {
	funcs, err := irSource(src)
	if err != nil {
		return "", err
	}
	return codegen.Generate(funcs)
}

func newAsmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "asm [file]",
		Short: "Print the generated AT&T-syntax assembly for a program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(sourceArg(args))
			if err != nil {
				return err
			}
			asm, err := asmSource(src)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), asm)
			return nil
		},
	}
}

func newCompileCmd() *cobra.Command {
	var (
		output     string
		configPath string
		run        bool
	)
	cmd := &cobra.Command{
		Use:   "compile [file]",
		Short: "Compile a program to a native executable",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(sourceArg(args))
			if err != nil {
				return err
			}
			asm, err := asmSource(src)
			if err != nil {
				return err
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			outPath := output
			if outPath == "" {
				outPath = "compiled_program"
			}
			if err := toolchain.Assemble(asm, outPath, cfg.CC, cfg.KeepBuildDir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)

			if run {
				stdout, exitCode, err := toolchain.Run(outPath, nil)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), stdout)
				if exitCode != 0 {
					os.Exit(exitCode)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output executable path (default compiled_program)")
	cmd.Flags().StringVar(&configPath, "config", ".minilangrc.yaml", "toolchain config file")
	cmd.Flags().BoolVar(&run, "run", false, "run the compiled executable after building it")
	return cmd
}
