/*
File    : lumen/main/main.go
Author  : Arjun Kumar
*/

// Command lumen is the entry point for the interpreter: it runs a
// source file or, with no arguments, starts an interactive session.
// This dispatcher is deliberately thin: banner/version constants,
// --help/--version flags, colored diagnostics, and file-vs-REPL mode
// selection — it does not expose a REPL session over the network.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/arjunvk/lumen/eval"
	"github.com/arjunvk/lumen/lexer"
	"github.com/arjunvk/lumen/parser"
	"github.com/arjunvk/lumen/repl"
	"github.com/arjunvk/lumen/report"
)

const (
	version = "v0.1.0"
	author  = "Arjun Kumar"
	license = "MIT"
	prompt  = "lumen >>> "
	line    = "----------------------------------------------------------------"
	banner  = `
  _
 | |
 | |   _   _ _ __ ___   ___ _ __
 | |  | | | | '_ ' _ \ / _ \ '_ \
 | |__| |_| | | | | | |  __/ | | |
 |_____\__,_|_| |_| |_|\___|_| |_|
`
)

// Exit codes follow the classic Unix convention: 64 for CLI usage
// errors, 65 for a source file that failed to lex or parse, 70 for an
// uncaught runtime error, 0 for success.
const (
	exitUsage   = 64
	exitDataErr = 65
	exitRuntime = 70
)

var redColor = color.New(color.FgRed)

func main() {
	switch len(os.Args) {
	case 1:
		repl.New(banner, version, author, line, license, prompt).Start(os.Stdout)
	case 2:
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
		case "--version", "-v":
			showVersion()
		default:
			os.Exit(runFile(os.Args[1]))
		}
	default:
		redColor.Fprintln(os.Stderr, "Usage: lumen [path-to-script]")
		os.Exit(exitUsage)
	}
}

func showHelp() {
	cyanColor := color.New(color.FgCyan)
	cyanColor.Println("Lumen - a small interpreted scripting language")
	cyanColor.Println()
	cyanColor.Println("USAGE:")
	cyanColor.Println("  lumen                 Start an interactive session")
	cyanColor.Println("  lumen <path>          Run a Lumen source file")
	cyanColor.Println("  lumen --help          Show this message")
	cyanColor.Println("  lumen --version       Show version information")
}

func showVersion() {
	cyanColor := color.New(color.FgCyan)
	cyanColor.Printf("Lumen %s (%s license)\n", version, license)
}

// runFile reads, lexes, parses, and evaluates path, returning the
// process exit code its outcome implies.
func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		return exitDataErr
	}

	rep := report.New(os.Stderr)
	rep.SetSource(string(src))

	tokens := lexer.New(string(src), rep).ScanTokens()
	if rep.HadError {
		return exitDataErr
	}

	stmts := parser.New(tokens, rep).ParseProgram()
	if rep.HadError {
		return exitDataErr
	}

	ev := eval.New(rep)
	ev.Run(stmts)
	if rep.HadRuntimeError {
		return exitRuntime
	}
	return 0
}
