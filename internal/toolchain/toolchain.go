// Package toolchain drives the external assembler and linker that turn
// generated AT&T assembly into a runnable executable (spec.md §4.5/§4.6:
// the compiler itself never assembles or links, it delegates to the host
// toolchain).
package toolchain

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/sunholo/minilang/internal/errors"
)

const phase = "toolchain"

// runtimeSource provides print_int, print_bool, and read_int: the three
// externs the generated assembly calls but never defines itself.
const runtimeSource = `#include <stdio.h>

void print_int(long value) { printf("%ld\n", value); }

void print_bool(long value) { printf(value ? "true\n" : "false\n"); }

long read_int(void) {
	long value;
	if (scanf("%ld", &value) != 1) {
		fprintf(stderr, "read_int: failed to read an integer\n");
		exit(1);
	}
	return value;
}
`

// Assemble writes asm and the runtime shim to a temporary directory and
// invokes cc to assemble and link them into a single executable at
// outputPath. It shells out rather than embedding an assembler/linker,
// matching spec.md's explicit scoping of those out of the compiler
// proper. If keepBuildDir is true the temporary directory is left on disk
// (reported in the returned error message on failure) instead of removed.
func Assemble(asm, outputPath, cc string, keepBuildDir bool) error {
	dir, err := os.MkdirTemp("", "minilang-build-*")
	if err != nil {
		return errors.NewNoLoc(errors.TLC001, phase, "creating build directory: %v", err)
	}
	if !keepBuildDir {
		defer os.RemoveAll(dir)
	}

	asmPath := filepath.Join(dir, "program.s")
	if err := os.WriteFile(asmPath, []byte(asm), 0o644); err != nil {
		return errors.NewNoLoc(errors.TLC001, phase, "writing assembly: %v", err)
	}

	runtimePath := filepath.Join(dir, "runtime.c")
	if err := os.WriteFile(runtimePath, []byte(runtimeSource), 0o644); err != nil {
		return errors.NewNoLoc(errors.TLC001, phase, "writing runtime shim: %v", err)
	}

	if cc == "" {
		cc = "cc"
	}
	cmd := exec.Command(cc, "-no-pie", "-o", outputPath, asmPath, runtimePath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := fmt.Sprintf("assembler/linker failed: %v\n%s", err, stderr.String())
		if keepBuildDir {
			msg += fmt.Sprintf("\nbuild files kept at %s", dir)
		}
		return errors.NewNoLoc(errors.TLC001, phase, "%s", msg)
	}
	return nil
}

// Run executes the compiled program at path, feeding it stdin and
// returning its stdout and exit status. It is used by the e2e tests and by
// the "compile" command's optional --run flag.
func Run(path string, stdin []byte) (stdout string, exitCode int, err error) {
	cmd := exec.Command(path)
	cmd.Stdin = bytes.NewReader(stdin)
	var out bytes.Buffer
	cmd.Stdout = &out
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if runErr == nil {
		return out.String(), 0, nil
	}
	if exitErr, ok := runErr.(*exec.ExitError); ok {
		return out.String(), exitErr.ExitCode(), nil
	}
	return "", -1, fmt.Errorf("running %s: %w", path, runErr)
}
