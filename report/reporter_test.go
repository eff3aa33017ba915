package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexicalSetsHadError(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.SetSource("@")
	r.Lexical(0, 1, "Unexpected character.")

	assert.True(t, r.HadError)
	assert.Contains(t, buf.String(), "[line 0] Error: Unexpected character.")
}

func TestParseAtTokenFormatsEOF(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.SetSource("var x")
	r.ParseAtToken(0, 6, "", true, "Expect ';' after value.")

	assert.True(t, r.HadError)
	assert.Contains(t, buf.String(), "Error at end: Expect ';' after value.")
}

func TestParseAtTokenFormatsLexeme(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.SetSource("1 + ;")
	r.ParseAtToken(0, 5, ";", false, "Expect expression.")

	assert.True(t, r.HadError)
	assert.Contains(t, buf.String(), "Error at ';': Expect expression.")
}

func TestRuntimeSetsHadRuntimeError(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.SetSource("1 + nil")
	r.Runtime(0, 1, "Operands must be two numbers or two strings.")

	assert.True(t, r.HadRuntimeError)
	assert.False(t, r.HadError)
}

func TestResetClearsFlags(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.SetSource("x")
	r.Lexical(0, 1, "boom")
	assert.True(t, r.HadError)

	r.Reset()
	assert.False(t, r.HadError)
	assert.False(t, r.HadRuntimeError)
}

func TestSourceContextPrintsCaretUnderColumn(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.SetSource("1 + ;")
	r.ParseAtToken(0, 5, ";", false, "Expect expression.")

	out := buf.String()
	assert.Contains(t, out, "1 + ;")
	assert.Contains(t, out, "    ^")
}
