/*
File    : loxgo/eval/evaluator.go
Author  : amaji
*/
package eval

import (
	"io"
	"os"

	"github.com/amaji/loxgo/ast"
	"github.com/amaji/loxgo/environment"
)

// Evaluator walks a parsed program's statement list and executes it
// directly against the Go runtime, without compiling to any
// intermediate bytecode. It holds the global environment, the
// currently-active environment (for block scoping), and the writer
// `print` statements write to.
type Evaluator struct {
	Globals *environment.Environment
	env     *environment.Environment
	Out     io.Writer
}

// NewEvaluator creates an Evaluator with a fresh global environment and
// stdout as the default output writer.
func NewEvaluator() *Evaluator {
	globals := environment.NewEnvironment(nil)
	ev := &Evaluator{
		Globals: globals,
		env:     globals,
		Out:     os.Stdout,
	}
	ev.defineNatives()
	return ev
}

// SetWriter redirects `print` output, e.g. so tests can capture it into
// a bytes.Buffer instead of the real stdout.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Out = w
}

// Interpret executes a full program: every top-level statement in
// order. Execution stops at the first error (lexical/parse errors never
// reach here; this is purely the runtime-error path).
func (e *Evaluator) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := e.execute(stmt); err != nil {
			// A `return` reaching all the way out of every function call
			// simply ends the script; it is not a runtime error.
			if _, ok := err.(*returnSignal); ok {
				return nil
			}
			return err
		}
	}
	return nil
}

// Evaluate evaluates a single expression, the entry point the
// `evaluate` CLI operation uses.
func (e *Evaluator) Evaluate(expr ast.Expr) (any, error) {
	return expr.Accept(e)
}

func (e *Evaluator) execute(stmt ast.Stmt) error {
	return stmt.Accept(e)
}

// executeBlock runs statements in env, restoring the evaluator's
// previously-active environment afterward regardless of how execution
// ends (normal completion, error, or a returnSignal bubbling through).
func (e *Evaluator) executeBlock(statements []ast.Stmt, env *environment.Environment) error {
	previous := e.env
	e.env = env
	defer func() { e.env = previous }()

	for _, stmt := range statements {
		if err := e.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}
