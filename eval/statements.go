/*
File    : lumen/eval/statements.go
Author  : Arjun Kumar
*/
package eval

import (
	"fmt"

	"github.com/arjunvk/lumen/ast"
	"github.com/arjunvk/lumen/env"
	"github.com/arjunvk/lumen/value"
)

// exec dispatches on the concrete statement node type, returning a
// control-flow signal (a plain value in place of mutable break/continue
// flags or panic-based unwinding) plus the first RuntimeError
// encountered.
func (e *Evaluator) exec(stmt ast.Stmt, en *env.Environment) (signal, *RuntimeError) {
	switch node := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := e.eval(node.Expression, en)
		return signalNone, err
	case *ast.PrintStmt:
		return e.execPrint(node, en)
	case *ast.VarStmt:
		return e.execVar(node, en)
	case *ast.BlockStmt:
		return e.execBlock(node.Statements, env.New(en))
	case *ast.IfStmt:
		return e.execIf(node, en)
	case *ast.WhileStmt:
		return e.execWhile(node, en)
	case *ast.ForStmt:
		return e.execFor(node, en)
	case *ast.BreakStmt:
		return signalBreak, nil
	case *ast.ContinueStmt:
		return signalContinue, nil
	default:
		panic(fmt.Sprintf("eval: unhandled statement node %T", stmt))
	}
}

func (e *Evaluator) execPrint(node *ast.PrintStmt, en *env.Environment) (signal, *RuntimeError) {
	v, err := e.eval(node.Expression, en)
	if err != nil {
		return signalNone, err
	}
	fmt.Fprintln(e.Writer, v.String())
	return signalNone, nil
}

func (e *Evaluator) execVar(node *ast.VarStmt, en *env.Environment) (signal, *RuntimeError) {
	var v value.Value = value.NilValue
	if node.Initializer != nil {
		var err *RuntimeError
		v, err = e.eval(node.Initializer, en)
		if err != nil {
			return signalNone, err
		}
	}
	en.Define(node.Name.Lexeme, v)
	return signalNone, nil
}

// execBlock runs stmts against the given (already fresh) environment,
// stopping early on the first error or non-local signal. The frame is
// scoped to this call only; callers that need to restore an outer
// environment do so by never reusing blockEnv past this return.
func (e *Evaluator) execBlock(stmts []ast.Stmt, blockEnv *env.Environment) (signal, *RuntimeError) {
	for _, stmt := range stmts {
		sig, err := e.exec(stmt, blockEnv)
		if err != nil || sig != signalNone {
			return sig, err
		}
	}
	return signalNone, nil
}

func (e *Evaluator) execIf(node *ast.IfStmt, en *env.Environment) (signal, *RuntimeError) {
	cond, err := e.eval(node.Condition, en)
	if err != nil {
		return signalNone, err
	}
	if value.Truthy(cond) {
		return e.exec(node.Then, en)
	}
	if node.Else != nil {
		return e.exec(node.Else, en)
	}
	return signalNone, nil
}

func (e *Evaluator) execWhile(node *ast.WhileStmt, en *env.Environment) (signal, *RuntimeError) {
	for {
		cond, err := e.eval(node.Condition, en)
		if err != nil {
			return signalNone, err
		}
		if !value.Truthy(cond) {
			return signalNone, nil
		}

		sig, err := e.exec(node.Body, en)
		if err != nil {
			return signalNone, err
		}
		if sig == signalBreak {
			return signalNone, nil
		}
		// signalContinue and signalNone both just re-test the condition.
	}
}

// execFor runs the init clause once in a dedicated frame, then loops
// condition/body/increment in that same frame. A continue still runs
// the increment before the next condition test — the logic below falls
// through to the increment for both signalContinue and signalNone, and
// only signalBreak skips it.
func (e *Evaluator) execFor(node *ast.ForStmt, en *env.Environment) (signal, *RuntimeError) {
	loopEnv := env.New(en)

	if node.Init != nil {
		if _, err := e.exec(node.Init, loopEnv); err != nil {
			return signalNone, err
		}
	}

	for {
		if node.Condition != nil {
			cond, err := e.eval(node.Condition, loopEnv)
			if err != nil {
				return signalNone, err
			}
			if !value.Truthy(cond) {
				return signalNone, nil
			}
		}

		sig, err := e.exec(node.Body, loopEnv)
		if err != nil {
			return signalNone, err
		}
		if sig == signalBreak {
			return signalNone, nil
		}

		if node.Increment != nil {
			if _, err := e.eval(node.Increment, loopEnv); err != nil {
				return signalNone, err
			}
		}
	}
}
