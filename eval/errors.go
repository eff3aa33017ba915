/*
File    : lumen/eval/errors.go
Author  : Arjun Kumar
*/
package eval

import (
	"fmt"

	"github.com/arjunvk/lumen/lexer"
)

// RuntimeError is a value returned (never panicked) by every evaluation
// step that can fail: a type mismatch, an undefined variable, and so on
// Threading it as an explicit return value keeps every evaluation step
// total: nothing here panics or raises to signal a runtime failure.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func newRuntimeError(tok lexer.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}
