/*
File    : lumen/eval/evaluator.go
Author  : Arjun Kumar
*/

// Package eval implements the tree-walking evaluator: a direct
// type-switch walk over ast nodes threading explicit (value.Value,
// *RuntimeError) and (signal, *RuntimeError) results rather than
// exceptions or mutable control-flow flags.
package eval

import (
	"io"
	"os"

	"github.com/arjunvk/lumen/ast"
	"github.com/arjunvk/lumen/env"
	"github.com/arjunvk/lumen/report"
	"github.com/arjunvk/lumen/value"
)

// signal reports how a statement's execution ended: normally, or via a
// break/continue that must unwind to the nearest enclosing loop.
type signal int

const (
	signalNone signal = iota
	signalBreak
	signalContinue
)

// Evaluator walks statements and expressions against a chain of
// Environment frames rooted at Globals.
type Evaluator struct {
	Globals  *env.Environment
	reporter *report.Reporter
	Writer   io.Writer
}

// New creates an Evaluator with a fresh global environment, writing
// Print output to os.Stdout until overridden with SetWriter.
func New(rep *report.Reporter) *Evaluator {
	return &Evaluator{
		Globals:  env.New(nil),
		reporter: rep,
		Writer:   os.Stdout,
	}
}

// SetWriter redirects Print output, primarily so tests can capture it.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// Run executes a parsed program's statements in order against Globals.
// A runtime error aborts only the top-level statement that raised it —
// the diagnostic is reported and evaluation resumes with the next
// statement, which keeps a REPL session alive after a mistake instead
// of abandoning the whole input.
func (e *Evaluator) Run(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		if _, err := e.exec(stmt, e.Globals); err != nil {
			e.reporter.Runtime(err.Token.Line, err.Token.Column, "%s", err.Message)
		}
	}
}

// EvalTopLevel evaluates a single standalone expression (interactive
// single-expression mode) against Globals.
func (e *Evaluator) EvalTopLevel(expr ast.Expr) (value.Value, *RuntimeError) {
	v, err := e.eval(expr, e.Globals)
	if err != nil {
		e.reporter.Runtime(err.Token.Line, err.Token.Column, "%s", err.Message)
		return nil, err
	}
	return v, nil
}
