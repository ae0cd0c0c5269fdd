/*
File    : loxgo/eval/function.go
Author  : amaji
*/
package eval

import (
	"fmt"

	"github.com/amaji/loxgo/ast"
	"github.com/amaji/loxgo/environment"
	"github.com/amaji/loxgo/value"
)

// callable is satisfied by both Function and NativeFunction. It embeds
// value.Callable so the evaluator's diagnostics (value.Stringify,
// value.TypeName) recognize either without importing eval.
type callable interface {
	value.Callable
	Call(interp *Evaluator, arguments []any) (any, error)
}

// Function is a user-defined function object. It captures the
// function's name, parameters, body, and the *environment.Environment
// it was declared in — by reference, not a copy. A copy-at-capture
// design would let two closures built from the same call frame diverge
// on writes, which breaks the classic counter-closure pattern this
// language is expected to support.
type Function struct {
	Declaration *ast.FunctionStmt
	Closure     *environment.Environment
}

// Arity returns the number of declared parameters.
func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// String renders the function the way `print` displays one:
// "<fn name>".
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

// Call runs the function body in a fresh environment chained off the
// closure it was declared in, bound to the call's own arguments. A
// returnSignal caught here ends the call with its carried value;
// falling off the end of the body returns nil, matching a bare function
// with no return statement.
func (f *Function) Call(interp *Evaluator, arguments []any) (any, error) {
	callEnv := environment.NewEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		callEnv.Define(param.Lexeme, arguments[i])
	}

	err := interp.executeBlock(f.Declaration.Body, callEnv)
	if err != nil {
		if ret, ok := err.(*returnSignal); ok {
			return ret.Value, nil
		}
		return nil, err
	}
	return nil, nil
}

// NativeFunction wraps a host-provided Go function so it can be called
// from loxgo code exactly like a user-defined one.
type NativeFunction struct {
	Name    string
	NumArgs int
	Fn      func(arguments []any) (any, error)
}

func (n *NativeFunction) Arity() int {
	return n.NumArgs
}

func (n *NativeFunction) String() string {
	return fmt.Sprintf("<native fn %s>", n.Name)
}

func (n *NativeFunction) Call(interp *Evaluator, arguments []any) (any, error) {
	return n.Fn(arguments)
}
