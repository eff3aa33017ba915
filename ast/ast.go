/*
File    : lumen/ast/ast.go
Author  : Arjun Kumar
*/

// Package ast defines the Lumen abstract syntax tree: one struct per
// grammar production, each owning its children. Nodes are plain data —
// there is no NodeVisitor interface to implement per node kind, and no
// Accept method; package eval dispatches on these types with a Go type
// switch instead.
package ast

import "github.com/arjunvk/lumen/lexer"

// Expr is the marker interface every expression node implements.
type Expr interface{ exprNode() }

// Stmt is the marker interface every statement node implements.
type Stmt interface{ stmtNode() }

// Literal holds a constant value baked in at parse time: a number,
// string, boolean, or nil. The value is held in Value: for NUMBER and
// STRING it is copied from Token.Literal, and for true/false/nil, whose
// keywords carry no lexer literal, the parser sets it directly.
type Literal struct {
	Token lexer.Token // the NUMBER, STRING, TRUE, FALSE, or NIL token
	Value interface{} // float64, string, bool, or nil
}

// Unary is a prefix operator applied to one operand: "!" or "-".
type Unary struct {
	Op      lexer.Token
	Operand Expr
}

// Binary is an infix operator evaluated left-to-right: arithmetic,
// comparison, or equality.
type Binary struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

// Logical is "and"/"or": unlike Binary it short-circuits and passes the
// deciding operand through unconverted.
type Logical struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

// Grouping is a parenthesized expression; it exists as its own node
// (rather than being elided) so that source re-emission and pretty
// printing can tell "(a)" apart from "a".
type Grouping struct {
	Inner Expr
}

// Variable is a bare identifier used as an expression: a read.
type Variable struct {
	Name lexer.Token
}

// Assign is "name = value": a write to an existing binding.
type Assign struct {
	Name  lexer.Token
	Value Expr
}

func (*Literal) exprNode()  {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}

// ExpressionStmt evaluates an expression for its side effects, discarding
// the value.
type ExpressionStmt struct {
	Expression Expr
}

// PrintStmt evaluates an expression and writes its stringified value.
type PrintStmt struct {
	Expression Expr
}

// VarStmt declares a name in the current environment, with an optional
// initializer (nil Initializer means "initialize to nil").
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr // nil when absent
}

// BlockStmt is a brace-delimited statement sequence; executing one pushes
// a new environment frame for its duration.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt is a conditional; Else is nil when there is no else-clause.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil when absent
}

// WhileStmt is a condition-guarded loop.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

// ForStmt is the three-clause C-style loop. Any of Init, Condition, or
// Increment may be nil, modelling the grammar's optional clauses
// directly as optional values rather than sentinel nodes.
type ForStmt struct {
	Init      Stmt // VarStmt, ExpressionStmt, or nil
	Condition Expr // nil means "always true"
	Increment Expr // nil when absent
	Body      Stmt
}

// BreakStmt and ContinueStmt carry their keyword token for diagnostics;
// the parser accepts them anywhere. Outside a loop, the evaluator's signal
// skips the rest of every enclosing block and is then ignored at the top
// level.
type BreakStmt struct{ Keyword lexer.Token }
type ContinueStmt struct{ Keyword lexer.Token }

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*ForStmt) stmtNode()        {}
func (*BreakStmt) stmtNode()      {}
func (*ContinueStmt) stmtNode()   {}
