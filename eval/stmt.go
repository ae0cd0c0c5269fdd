/*
File    : loxgo/eval/stmt.go
Author  : amaji
*/
package eval

import (
	"fmt"

	"github.com/amaji/loxgo/ast"
	"github.com/amaji/loxgo/environment"
	"github.com/amaji/loxgo/value"
)

func (e *Evaluator) VisitExpressionStmt(node *ast.ExpressionStmt) error {
	_, err := e.Evaluate(node.Expression)
	return err
}

func (e *Evaluator) VisitPrintStmt(node *ast.PrintStmt) error {
	v, err := e.Evaluate(node.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.Out, value.Stringify(v))
	return nil
}

func (e *Evaluator) VisitVarStmt(node *ast.VarStmt) error {
	var v any
	if node.Initializer != nil {
		var err error
		v, err = e.Evaluate(node.Initializer)
		if err != nil {
			return err
		}
	}
	e.env.Define(node.Name.Lexeme, v)
	return nil
}

func (e *Evaluator) VisitBlockStmt(node *ast.BlockStmt) error {
	return e.executeBlock(node.Statements, environment.NewEnvironment(e.env))
}

func (e *Evaluator) VisitIfStmt(node *ast.IfStmt) error {
	cond, err := e.Evaluate(node.Condition)
	if err != nil {
		return err
	}
	if value.IsTruthy(cond) {
		return e.execute(node.ThenBranch)
	}
	if node.ElseBranch != nil {
		return e.execute(node.ElseBranch)
	}
	return nil
}

func (e *Evaluator) VisitWhileStmt(node *ast.WhileStmt) error {
	for {
		cond, err := e.Evaluate(node.Condition)
		if err != nil {
			return err
		}
		if !value.IsTruthy(cond) {
			return nil
		}
		if err := e.execute(node.Body); err != nil {
			return err
		}
	}
}

func (e *Evaluator) VisitFunctionStmt(node *ast.FunctionStmt) error {
	fn := &Function{Declaration: node, Closure: e.env}
	e.env.Define(node.Name.Lexeme, fn)
	return nil
}

func (e *Evaluator) VisitReturnStmt(node *ast.ReturnStmt) error {
	var v any
	if node.Value != nil {
		var err error
		v, err = e.Evaluate(node.Value)
		if err != nil {
			return err
		}
	}
	return &returnSignal{Value: v}
}
