/*
File    : loxgo/eval/errors.go
Author  : amaji
*/
package eval

import (
	"fmt"

	"github.com/amaji/loxgo/lexer"
)

// RuntimeError is the error type every evaluation failure surfaces as.
// It carries the token whose line should be reported, keeping the
// position as data rather than baking it into the message string at
// construction time, so cmd/loxgo can format it however the CLI surface
// requires.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// NewRuntimeError builds a RuntimeError positioned at token.
func NewRuntimeError(token lexer.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: token, Message: fmt.Sprintf(format, args...)}
}

// returnSignal is how a `return` statement unwinds the Go call stack
// back up to the function-call boundary without a true Go panic. It is
// returned as an `error` from statement execution so every intermediate
// block/loop/if just has to propagate "error, return early" the normal
// Go way; Function.Call type-asserts it back out, and Interpret does the
// same for a `return` that reaches the top level.
type returnSignal struct {
	Value any
}

func (r *returnSignal) Error() string {
	return "return outside function"
}
