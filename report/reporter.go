/*
File    : lumen/report/reporter.go
Author  : Arjun Kumar
*/

// Package report implements the single error-reporting collaborator shared
// by the lexer, parser, and evaluator. Rather than process-wide mutable
// flags, every stage here holds a pointer to a Reporter and reports
// through it. The Reporter owns the two sticky flags and the diagnostic
// sink, so a single value threads error state through an entire run
// without global state.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// errorColor renders every diagnostic in red, so file-mode and REPL-mode
// output look identical regardless of which stage raised the error.
var errorColor = color.New(color.FgRed)

// Reporter collects diagnostics for one run (one file, or one REPL
// iteration) and exposes the two sticky flags that gate later stages.
//
// HadError is set by lexical or parse errors; HadRuntimeError is set by
// the evaluator. Both are cleared with Reset between REPL iterations so
// that a single mistake does not wedge the interactive session.
type Reporter struct {
	Out             io.Writer
	HadError        bool
	HadRuntimeError bool
	source          []string // source split into lines, for caret rendering
}

// New creates a Reporter that writes diagnostics to out.
func New(out io.Writer) *Reporter {
	return &Reporter{Out: out}
}

// SetSource records the source text currently being processed so that
// diagnostics can render the offending line with a caret under the
// column, the way the original jlox CLI does.
func (r *Reporter) SetSource(src string) {
	r.source = strings.Split(src, "\n")
}

// Reset clears both sticky flags. The REPL calls this between inputs;
// script-mode callers do not, since the flags determine the exit code.
func (r *Reporter) Reset() {
	r.HadError = false
	r.HadRuntimeError = false
}

// Lexical reports a lexer-detected error with no "where" clause, per the
// diagnostic format: "[line L] Error: message".
func (r *Reporter) Lexical(line, column int, format string, args ...interface{}) {
	r.HadError = true
	r.print(line, column, "", fmt.Sprintf(format, args...))
}

// ParseAtToken reports a parser error located at a token. isEOF selects
// the " at end" clause instead of " at '<lexeme>'".
func (r *Reporter) ParseAtToken(line, column int, lexeme string, isEOF bool, format string, args ...interface{}) {
	r.HadError = true
	where := fmt.Sprintf(" at '%s'", lexeme)
	if isEOF {
		where = " at end"
	}
	r.print(line, column, where, fmt.Sprintf(format, args...))
}

// Runtime reports an evaluator error located at an operator or identifier
// token, carrying the same line/column that Lexical and ParseAtToken use.
func (r *Reporter) Runtime(line, column int, format string, args ...interface{}) {
	r.HadRuntimeError = true
	r.print(line, column, "", fmt.Sprintf(format, args...))
}

// print renders one diagnostic: the head line, then the offending source
// line with a caret under the reported column, when source is known.
func (r *Reporter) print(line, column int, where, message string) {
	errorColor.Fprintf(r.Out, "[line %d] Error%s: %s\n", line, where, message)
	r.printSourceContext(line, column)
}

// printSourceContext writes the 0-based source line and a caret indented
// to the 1-based column, reproducing the classic caret-under-column
// rendering jlox-style CLIs use for pointing at the offending position.
func (r *Reporter) printSourceContext(line, column int) {
	if line < 0 || line >= len(r.source) {
		return
	}
	text := r.source[line]
	fmt.Fprintln(r.Out, text)
	if column < 1 {
		column = 1
	}
	pad := strings.Repeat(" ", column-1)
	fmt.Fprintln(r.Out, pad+"^")
}
