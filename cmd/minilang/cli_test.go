package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sourceFile writes src to a temp file and returns its path: readSource
// reads directly from os.Stdin rather than cmd.InOrStdin(), so a file
// argument (not root.SetIn) is what actually exercises these commands in a
// test.
func sourceFile(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.mini")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTokenizeCommandReadsFromFile(t *testing.T) {
	out, err := run(t, "tokenize", sourceFile(t, "1 + 2"))
	require.NoError(t, err)
	assert.Contains(t, out, "int_literal")
	assert.Contains(t, out, "operator")
}

func TestParseCommandPrintsTopLevelExpression(t *testing.T) {
	out, err := run(t, "parse", sourceFile(t, "1 + 2"))
	require.NoError(t, err)
	assert.Contains(t, out, "(1 + 2)")
}

func TestTypecheckCommandReportsTypeErrors(t *testing.T) {
	_, err := run(t, "typecheck", sourceFile(t, "1 + true"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP")
}

func TestInterpretCommandPrintsResult(t *testing.T) {
	out, err := run(t, "interpret", sourceFile(t, "6 * 7"))
	require.NoError(t, err)
	assert.Contains(t, out, "42")
}

func TestInterpretCommandPrintsUnitForNoResult(t *testing.T) {
	out, err := run(t, "interpret", sourceFile(t, "if false then 1"))
	require.NoError(t, err)
	assert.Contains(t, out, "unit")
}

func TestIRCommandPrintsFunctionLabelAndPrintCall(t *testing.T) {
	out, err := run(t, "ir", sourceFile(t, "1 + 2"))
	require.NoError(t, err)
	assert.Contains(t, out, "main:")
	assert.Contains(t, out, "print_int")
}

func TestAsmCommandPrintsMainLabel(t *testing.T) {
	out, err := run(t, "asm", sourceFile(t, "1 + 2"))
	require.NoError(t, err)
	assert.Contains(t, out, "main:")
}

func TestReadSourceRejectsMissingFile(t *testing.T) {
	_, err := readSource("/nonexistent/path/to/a/file.mini")
	assert.Error(t, err)
}

func TestSourceArgDefaultsToEmptyForStdin(t *testing.T) {
	assert.Equal(t, "", sourceArg(nil))
	assert.Equal(t, "foo.mini", sourceArg([]string{"foo.mini"}))
}
