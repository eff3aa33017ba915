/*
File    : lumen/repl/repl.go
Author  : Arjun Kumar
*/

// Package repl implements Lumen's interactive Read-Eval-Print Loop. It
// is a readline-backed loop with history, color-coded output, and a
// banner. Each line decides for itself whether it reads as a single
// expression (echoed back) or as statements, and the Reporter's sticky
// flags are cleared between lines so one mistake never wedges the
// session.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/arjunvk/lumen/eval"
	"github.com/arjunvk/lumen/lexer"
	"github.com/arjunvk/lumen/parser"
	"github.com/arjunvk/lumen/report"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session: banner text plus the prompt
// readline shows before each line.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given display configuration.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Welcome to Lumen!")
	cyanColor.Fprintf(w, "%s\n", "Type an expression or statement and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the interactive loop until the user exits or EOFs. A
// single Reporter and a single Evaluator persist across lines, so
// variables defined on one line stay visible on the next — but the
// Reporter's HadError/HadRuntimeError flags are reset before every
// line, so one mistake never wedges the session.
func (r *Repl) Start(w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	rep := report.New(w)
	evaluator := eval.New(rep)
	evaluator.SetWriter(w)

	for {
		line, err := rl.Readline()
		if err != nil {
			io.WriteString(w, "Good bye!\n")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			io.WriteString(w, "Good bye!\n")
			return
		}
		rl.SaveHistory(line)

		r.evalLine(rep, evaluator, line)
	}
}

func (r *Repl) evalLine(rep *report.Reporter, evaluator *eval.Evaluator, line string) {
	rep.Reset()
	rep.SetSource(line)

	tokens := lexer.New(line, rep).ScanTokens()
	if rep.HadError {
		return
	}

	p := parser.New(tokens, rep)
	if parser.LooksLikeExpression(tokens) {
		expr := p.ParseExpression()
		if rep.HadError || expr == nil {
			return
		}
		v, runtimeErr := evaluator.EvalTopLevel(expr)
		if runtimeErr == nil {
			yellowColor.Fprintf(evaluator.Writer, "%s\n", v.String())
		}
		return
	}

	stmts := p.ParseProgram()
	if rep.HadError {
		return
	}
	evaluator.Run(stmts)
}
