package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// These tests exercise handleCommand and evalLine directly rather than
// Start, since Start drives a real liner.Liner over stdin and isn't
// meaningfully testable without a pty.

func TestHandleCommandQuitSignalsEnd(t *testing.T) {
	var out bytes.Buffer
	r := New()
	assert.True(t, r.handleCommand(":quit", &out))
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestHandleCommandHelpDoesNotEnd(t *testing.T) {
	var out bytes.Buffer
	r := New()
	assert.False(t, r.handleCommand(":help", &out))
	assert.Contains(t, out.String(), ":quit")
}

func TestHandleCommandHistoryListsEnteredLines(t *testing.T) {
	var out bytes.Buffer
	r := New()
	r.history = []string{"1 + 1", "2 + 2"}
	assert.False(t, r.handleCommand(":history", &out))
	assert.Contains(t, out.String(), "1 + 1")
	assert.Contains(t, out.String(), "2 + 2")
}

func TestHandleCommandUnknownWarns(t *testing.T) {
	var out bytes.Buffer
	r := New()
	assert.False(t, r.handleCommand(":bogus", &out))
	assert.Contains(t, out.String(), "unknown command")
}

func TestEvalLinePrintsResult(t *testing.T) {
	var out bytes.Buffer
	r := New()
	r.evalLine("1 + 2", &out)
	assert.Contains(t, out.String(), "3")
}

func TestEvalLinePrintsUnitForNoValue(t *testing.T) {
	var out bytes.Buffer
	r := New()
	r.evalLine("if false then 1", &out)
	assert.Contains(t, out.String(), "unit")
}

func TestEvalLineReportsLexErrors(t *testing.T) {
	var out bytes.Buffer
	r := New()
	r.evalLine("@@@", &out)
	assert.Contains(t, out.String(), "error")
}

func TestEvalLineReportsTypeErrors(t *testing.T) {
	var out bytes.Buffer
	r := New()
	r.evalLine("1 + true", &out)
	assert.Contains(t, out.String(), "error")
}
