/*
File    : lumen/parser/helpers.go
Author  : Arjun Kumar
*/
package parser

import "github.com/arjunvk/lumen/lexer"

func (p *Parser) match(kinds ...lexer.TokenType) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == kind
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

// consume requires the next token to be kind, advancing past it; a
// mismatch reports msg at the offending token and unwinds via panic to
// the nearest recovery point.
func (p *Parser) consume(kind lexer.TokenType, msg string) lexer.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.error(p.peek(), msg))
}

// error reports a diagnostic positioned at tok and returns the sentinel
// value callers panic with to unwind recursive descent.
func (p *Parser) error(tok lexer.Token, format string, args ...interface{}) parseError {
	p.reportAt(tok, format, args...)
	return parseError{}
}

// reportAt reports a diagnostic at tok without unwinding — used for
// errors the parser can recover from immediately, such as an invalid
// assignment target.
func (p *Parser) reportAt(tok lexer.Token, format string, args ...interface{}) {
	p.reporter.ParseAtToken(tok.Line, tok.Column, tok.Lexeme, tok.Type == lexer.EOF, format, args...)
}

// synchronize discards tokens until it reaches a point likely to begin a
// new statement, so one parse error produces one diagnostic instead of a
// cascade.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case lexer.CLASS, lexer.FOR, lexer.FUN, lexer.IF, lexer.PRINT, lexer.RETURN, lexer.VAR, lexer.WHILE:
			return
		}

		p.advance()
	}
}
