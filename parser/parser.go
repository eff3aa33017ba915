/*
File    : lumen/parser/parser.go
Author  : Arjun Kumar
*/

// Package parser implements the recursive-descent, panic-mode-recovery
// parser for Lumen: single-token lookahead over a flat token slice, one
// recursive-descent function per precedence level (assignment → or →
// and → equality → comparison → term → factor → unary → primary), and
// Go's panic/recover
// — scoped entirely inside this package — to unwind a failed statement
// back to its nearest synchronization point, the same technique
// go/parser and text/template/parse use internally for recursive-descent
// error unwinding.
package parser

import (
	"github.com/arjunvk/lumen/ast"
	"github.com/arjunvk/lumen/lexer"
	"github.com/arjunvk/lumen/report"
)

// Parser walks a finite token slice with single-token lookahead (peek at
// the current token, previous for the one just consumed), producing AST
// nodes.
type Parser struct {
	tokens   []lexer.Token
	current  int
	reporter *report.Reporter
}

// New creates a Parser over a complete token sequence (always EOF
// terminated, per the lexer's contract).
func New(tokens []lexer.Token, rep *report.Reporter) *Parser {
	return &Parser{tokens: tokens, reporter: rep}
}

// parseError unwinds a single declaration's worth of recursive descent
// back to ParseProgram's synchronization point. It carries no payload —
// the diagnostic was already reported at the point of failure.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

// ParseProgram parses declaration* to EOF (script mode, spec grammar's
// `program` rule).
func (p *Parser) ParseProgram() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// ParseExpression parses a single `expression` and nothing else, for
// interactive single-expression mode. Callers decide whether
// this mode applies via LooksLikeExpression before calling it.
func (p *Parser) ParseExpression() (expr ast.Expr) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				expr = nil
				return
			}
			panic(r)
		}
	}()
	return p.expression()
}

// LooksLikeExpression decides interactive mode: a script is
// parsed as a single expression only when the last meaningful token
// before EOF is not a semicolon.
func LooksLikeExpression(tokens []lexer.Token) bool {
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokens[i].Type == lexer.EOF {
			continue
		}
		return tokens[i].Type != lexer.SEMICOLON
	}
	return false
}

// declaration parses one `declaration` (a varDecl or a statement),
// recovering via synchronize if parsing panics with a parseError.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	if p.match(lexer.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect variable name.")

	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.BREAK):
		return p.breakStatement()
	case p.match(lexer.CONTINUE):
		return p.continueStatement()
	case p.match(lexer.LEFT_BRACE):
		return &ast.BlockStmt{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after value.")
	return &ast.PrintStmt{Expression: value}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expression: expr}
}

func (p *Parser) breakStatement() ast.Stmt {
	keyword := p.previous()
	p.consume(lexer.SEMICOLON, "Expect ';' after 'break'.")
	return &ast.BreakStmt{Keyword: keyword}
}

func (p *Parser) continueStatement() ast.Stmt {
	keyword := p.previous()
	p.consume(lexer.SEMICOLON, "Expect ';' after 'continue'.")
	return &ast.ContinueStmt{Keyword: keyword}
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return stmts
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after while condition.")
	body := p.statement()
	return &ast.WhileStmt{Condition: condition, Body: body}
}

// forStatement parses the three-clause for loop into a dedicated
// ast.ForStmt rather than desugaring into a While. Keeping the loop
// shape intact makes "continue runs the increment before the next test"
// a direct evaluator rule instead of an artifact of how a desugared
// Block/While would have to nest its scopes.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'.")

	var init ast.Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		init = nil
	case p.match(lexer.VAR):
		init = p.varDeclaration()
	default:
		init = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()
	return &ast.ForStmt{Init: init, Condition: condition, Increment: increment, Body: body}
}
