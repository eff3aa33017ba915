package parser

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunvk/lumen/ast"
	"github.com/arjunvk/lumen/lexer"
	"github.com/arjunvk/lumen/report"
)

func parseProgram(t *testing.T, src string) ([]ast.Stmt, *report.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	rep := report.New(&buf)
	rep.SetSource(src)
	tokens := lexer.New(src, rep).ScanTokens()
	require.False(t, rep.HadError, "lexing %q reported: %s", src, buf.String())
	return New(tokens, rep).ParseProgram(), rep
}

func TestParseVarDeclaration(t *testing.T) {
	stmts, rep := parseProgram(t, `var x = 1 + 2;`)
	require.False(t, rep.HadError)
	require.Len(t, stmts, 1)

	want := &ast.VarStmt{
		Name: lexer.Token{Type: lexer.IDENTIFIER, Lexeme: "x", Line: 0, Column: 5},
		Initializer: &ast.Binary{
			Left:  &ast.Literal{Token: lexer.Token{Type: lexer.NUMBER, Lexeme: "1", Literal: 1.0, Line: 0, Column: 9}, Value: 1.0},
			Op:    lexer.Token{Type: lexer.PLUS, Lexeme: "+", Line: 0, Column: 11},
			Right: &ast.Literal{Token: lexer.Token{Type: lexer.NUMBER, Lexeme: "2", Literal: 2.0, Line: 0, Column: 13}, Value: 2.0},
		},
	}
	if diff := cmp.Diff(want, stmts[0]); diff != "" {
		t.Errorf("unexpected AST (-want +got):\n%s", diff)
	}
}

func TestParseVarDeclarationNoInitializer(t *testing.T) {
	stmts, rep := parseProgram(t, `var x;`)
	require.False(t, rep.HadError)
	require.Len(t, stmts, 1)

	v, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)
	assert.Nil(t, v.Initializer)
}

func TestParsePrecedence(t *testing.T) {
	// 1 + 2 * 3 must bind as 1 + (2 * 3), not (1 + 2) * 3.
	stmts, rep := parseProgram(t, `1 + 2 * 3;`)
	require.False(t, rep.HadError)
	require.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok)
	bin, ok := exprStmt.Expression.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.PLUS, bin.Op.Type)

	right, ok := bin.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.STAR, right.Op.Type)
}

func TestParseUnaryAndGrouping(t *testing.T) {
	stmts, rep := parseProgram(t, `-(1 + 2);`)
	require.False(t, rep.HadError)
	require.Len(t, stmts, 1)

	exprStmt := stmts[0].(*ast.ExpressionStmt)
	un, ok := exprStmt.Expression.(*ast.Unary)
	require.True(t, ok)
	assert.Equal(t, lexer.MINUS, un.Op.Type)

	_, ok = un.Operand.(*ast.Grouping)
	assert.True(t, ok, "expected a grouping operand")
}

func TestParseIfElse(t *testing.T) {
	stmts, rep := parseProgram(t, `if (x) print 1; else print 2;`)
	require.False(t, rep.HadError)
	require.Len(t, stmts, 1)

	ifStmt, ok := stmts[0].(*ast.IfStmt)
	require.True(t, ok)
	assert.IsType(t, &ast.PrintStmt{}, ifStmt.Then)
	assert.IsType(t, &ast.PrintStmt{}, ifStmt.Else)
}

func TestParseWhile(t *testing.T) {
	stmts, rep := parseProgram(t, `while (true) { print 1; }`)
	require.False(t, rep.HadError)
	require.Len(t, stmts, 1)

	w, ok := stmts[0].(*ast.WhileStmt)
	require.True(t, ok)
	block, ok := w.Body.(*ast.BlockStmt)
	require.True(t, ok)
	assert.Len(t, block.Statements, 1)
}

func TestParseForAllClausesOptional(t *testing.T) {
	stmts, rep := parseProgram(t, `for (;;) break;`)
	require.False(t, rep.HadError)
	require.Len(t, stmts, 1)

	f, ok := stmts[0].(*ast.ForStmt)
	require.True(t, ok)
	assert.Nil(t, f.Init)
	assert.Nil(t, f.Condition)
	assert.Nil(t, f.Increment)
	assert.IsType(t, &ast.BreakStmt{}, f.Body)
}

func TestParseForAllClausesPresent(t *testing.T) {
	stmts, rep := parseProgram(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.False(t, rep.HadError)
	require.Len(t, stmts, 1)

	f, ok := stmts[0].(*ast.ForStmt)
	require.True(t, ok)
	assert.IsType(t, &ast.VarStmt{}, f.Init)
	assert.NotNil(t, f.Condition)
	assert.NotNil(t, f.Increment)
}

func TestParseAssignmentTarget(t *testing.T) {
	stmts, rep := parseProgram(t, `x = 5;`)
	require.False(t, rep.HadError)
	require.Len(t, stmts, 1)

	exprStmt := stmts[0].(*ast.ExpressionStmt)
	assign, ok := exprStmt.Expression.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name.Lexeme)
}

func TestParseInvalidAssignmentTargetReportsButRecovers(t *testing.T) {
	// "1 = 2;" has no valid assignment target; the parser reports the
	// error but does not synchronize away the rest of the statement.
	stmts, rep := parseProgram(t, `1 = 2;`)
	assert.True(t, rep.HadError)
	require.Len(t, stmts, 1)
	assert.IsType(t, &ast.ExpressionStmt{}, stmts[0])
}

func TestParseMissingSemicolonSynchronizesAtNextStatement(t *testing.T) {
	stmts, rep := parseProgram(t, `print 1 2; print 3;`)
	assert.True(t, rep.HadError)
	// The malformed first statement is discarded by synchronize, which
	// stops consuming once it passes the semicolon that ends it; the
	// second, well-formed print statement survives.
	require.Len(t, stmts, 1)
	p, ok := stmts[0].(*ast.PrintStmt)
	require.True(t, ok)
	lit := p.Expression.(*ast.Literal)
	assert.Equal(t, 3.0, lit.Value)
}

func TestLooksLikeExpressionMode(t *testing.T) {
	var buf bytes.Buffer
	rep := report.New(&buf)

	exprTokens := lexer.New(`1 + 2`, rep).ScanTokens()
	assert.True(t, LooksLikeExpression(exprTokens))

	stmtTokens := lexer.New(`1 + 2;`, rep).ScanTokens()
	assert.False(t, LooksLikeExpression(stmtTokens))
}

func TestParseExpressionMode(t *testing.T) {
	var buf bytes.Buffer
	rep := report.New(&buf)
	rep.SetSource(`1 + 2`)
	tokens := lexer.New(`1 + 2`, rep).ScanTokens()
	require.False(t, rep.HadError)

	expr := New(tokens, rep).ParseExpression()
	require.False(t, rep.HadError)
	_, ok := expr.(*ast.Binary)
	assert.True(t, ok)
}
