/*
File    : lumen/eval/expressions.go
Author  : Arjun Kumar
*/
package eval

import (
	"fmt"

	"github.com/arjunvk/lumen/ast"
	"github.com/arjunvk/lumen/env"
	"github.com/arjunvk/lumen/lexer"
	"github.com/arjunvk/lumen/value"
)

// eval dispatches on the concrete expression node type and returns the
// value it produces, or the first RuntimeError encountered.
func (e *Evaluator) eval(expr ast.Expr, en *env.Environment) (value.Value, *RuntimeError) {
	switch node := expr.(type) {
	case *ast.Literal:
		return evalLiteral(node), nil
	case *ast.Grouping:
		return e.eval(node.Inner, en)
	case *ast.Unary:
		return e.evalUnary(node, en)
	case *ast.Binary:
		return e.evalBinary(node, en)
	case *ast.Logical:
		return e.evalLogical(node, en)
	case *ast.Variable:
		return e.evalVariable(node, en)
	case *ast.Assign:
		return e.evalAssign(node, en)
	default:
		panic(fmt.Sprintf("eval: unhandled expression node %T", expr))
	}
}

// evalLiteral converts the parser's raw Go literal (float64, string,
// bool, or nil — see ast.Literal) into a runtime Value.
func evalLiteral(node *ast.Literal) value.Value {
	switch v := node.Value.(type) {
	case float64:
		return value.Number{N: v}
	case string:
		return value.String{S: v}
	case bool:
		return value.Boolean{B: v}
	default:
		return value.NilValue
	}
}

func (e *Evaluator) evalUnary(node *ast.Unary, en *env.Environment) (value.Value, *RuntimeError) {
	operand, err := e.eval(node.Operand, en)
	if err != nil {
		return nil, err
	}

	switch node.Op.Type {
	case lexer.MINUS:
		n, ok := operand.(value.Number)
		if !ok {
			return nil, newRuntimeError(node.Op, "Operand must be a number.")
		}
		return value.Number{N: -n.N}, nil
	case lexer.BANG:
		return value.Boolean{B: !value.Truthy(operand)}, nil
	default:
		panic(fmt.Sprintf("eval: unhandled unary operator %s", node.Op.Type))
	}
}

func (e *Evaluator) evalBinary(node *ast.Binary, en *env.Environment) (value.Value, *RuntimeError) {
	left, err := e.eval(node.Left, en)
	if err != nil {
		return nil, err
	}
	right, err := e.eval(node.Right, en)
	if err != nil {
		return nil, err
	}

	switch node.Op.Type {
	case lexer.PLUS:
		return evalPlus(node.Op, left, right)
	case lexer.MINUS:
		a, b, err := checkNumberOperands(node.Op, left, right)
		if err != nil {
			return nil, err
		}
		return value.Number{N: a - b}, nil
	case lexer.STAR:
		a, b, err := checkNumberOperands(node.Op, left, right)
		if err != nil {
			return nil, err
		}
		return value.Number{N: a * b}, nil
	case lexer.SLASH:
		a, b, err := checkNumberOperands(node.Op, left, right)
		if err != nil {
			return nil, err
		}
		return value.Number{N: a / b}, nil
	case lexer.GREATER:
		a, b, err := checkNumberOperands(node.Op, left, right)
		if err != nil {
			return nil, err
		}
		return value.Boolean{B: a > b}, nil
	case lexer.GREATER_EQUAL:
		a, b, err := checkNumberOperands(node.Op, left, right)
		if err != nil {
			return nil, err
		}
		return value.Boolean{B: a >= b}, nil
	case lexer.LESS:
		a, b, err := checkNumberOperands(node.Op, left, right)
		if err != nil {
			return nil, err
		}
		return value.Boolean{B: a < b}, nil
	case lexer.LESS_EQUAL:
		a, b, err := checkNumberOperands(node.Op, left, right)
		if err != nil {
			return nil, err
		}
		return value.Boolean{B: a <= b}, nil
	case lexer.EQUAL_EQUAL:
		return value.Boolean{B: value.Equal(left, right)}, nil
	case lexer.BANG_EQUAL:
		return value.Boolean{B: !value.Equal(left, right)}, nil
	default:
		panic(fmt.Sprintf("eval: unhandled binary operator %s", node.Op.Type))
	}
}

// evalPlus implements the "+" operator's string-coercion extension:
// number+number adds, and any combination involving a string
// concatenates the operands' stringified form, so "count: " + 3 works
// without an explicit cast.
func evalPlus(op lexer.Token, left, right value.Value) (value.Value, *RuntimeError) {
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if lok && rok {
		return value.Number{N: ln.N + rn.N}, nil
	}
	_, lStr := left.(value.String)
	_, rStr := right.(value.String)
	if lStr || rStr {
		return value.String{S: left.String() + right.String()}, nil
	}
	return nil, newRuntimeError(op, "Operands must be two numbers or two strings.")
}

func checkNumberOperands(op lexer.Token, left, right value.Value) (float64, float64, *RuntimeError) {
	a, aok := left.(value.Number)
	b, bok := right.(value.Number)
	if !aok || !bok {
		return 0, 0, newRuntimeError(op, "Operands must be numbers.")
	}
	return a.N, b.N, nil
}

// evalLogical short-circuits and passes the deciding operand through
// unconverted rather than coercing to Boolean.
func (e *Evaluator) evalLogical(node *ast.Logical, en *env.Environment) (value.Value, *RuntimeError) {
	left, err := e.eval(node.Left, en)
	if err != nil {
		return nil, err
	}

	if node.Op.Type == lexer.OR {
		if value.Truthy(left) {
			return left, nil
		}
	} else { // AND
		if !value.Truthy(left) {
			return left, nil
		}
	}
	return e.eval(node.Right, en)
}

func (e *Evaluator) evalVariable(node *ast.Variable, en *env.Environment) (value.Value, *RuntimeError) {
	v, ok := en.Get(node.Name.Lexeme)
	if !ok {
		return nil, newRuntimeError(node.Name, "Undefined variable '%s'.", node.Name.Lexeme)
	}
	return v, nil
}

func (e *Evaluator) evalAssign(node *ast.Assign, en *env.Environment) (value.Value, *RuntimeError) {
	v, err := e.eval(node.Value, en)
	if err != nil {
		return nil, err
	}
	if !en.Assign(node.Name.Lexeme, v) {
		return nil, newRuntimeError(node.Name, "Undefined variable '%s'.", node.Name.Lexeme)
	}
	return v, nil
}
