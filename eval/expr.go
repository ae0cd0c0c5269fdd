/*
File    : loxgo/eval/expr.go
Author  : amaji
*/
package eval

import (
	"github.com/amaji/loxgo/ast"
	"github.com/amaji/loxgo/lexer"
	"github.com/amaji/loxgo/value"
)

func (e *Evaluator) VisitLiteralExpr(node *ast.LiteralExpr) (any, error) {
	return node.Value, nil
}

func (e *Evaluator) VisitGroupingExpr(node *ast.GroupingExpr) (any, error) {
	return e.Evaluate(node.Expression)
}

func (e *Evaluator) VisitVariableExpr(node *ast.VariableExpr) (any, error) {
	v, err := e.env.Get(node.Name.Lexeme)
	if err != nil {
		return nil, NewRuntimeError(node.Name, "%s", err.Error())
	}
	return v, nil
}

func (e *Evaluator) VisitAssignExpr(node *ast.AssignExpr) (any, error) {
	v, err := e.Evaluate(node.Value)
	if err != nil {
		return nil, err
	}
	if err := e.env.Assign(node.Name.Lexeme, v); err != nil {
		return nil, NewRuntimeError(node.Name, "%s", err.Error())
	}
	return v, nil
}

func (e *Evaluator) VisitUnaryExpr(node *ast.UnaryExpr) (any, error) {
	right, err := e.Evaluate(node.Right)
	if err != nil {
		return nil, err
	}

	switch node.Operator.Type {
	case lexer.MINUS_OP:
		num, ok := right.(float64)
		if !ok {
			return nil, NewRuntimeError(node.Operator, "Operand must be a number.")
		}
		return -num, nil
	case lexer.NOT_OP:
		return !value.IsTruthy(right), nil
	}
	return nil, NewRuntimeError(node.Operator, "Unknown unary operator %q.", node.Operator.Lexeme)
}

func (e *Evaluator) VisitLogicalExpr(node *ast.LogicalExpr) (any, error) {
	left, err := e.Evaluate(node.Left)
	if err != nil {
		return nil, err
	}

	// Short circuit on the operand's own value, not a coerced boolean:
	// `"a" or "b"` evaluates to "a", `nil and 1` evaluates to nil.
	if node.Operator.Type == lexer.OR_KEY {
		if value.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !value.IsTruthy(left) {
			return left, nil
		}
	}
	return e.Evaluate(node.Right)
}

func (e *Evaluator) VisitBinaryExpr(node *ast.BinaryExpr) (any, error) {
	left, err := e.Evaluate(node.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Evaluate(node.Right)
	if err != nil {
		return nil, err
	}

	switch node.Operator.Type {
	case lexer.MINUS_OP:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, NewRuntimeError(node.Operator, "Operands must be numbers.")
		}
		return l - r, nil
	case lexer.DIV_OP:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, NewRuntimeError(node.Operator, "Operands must be numbers.")
		}
		return l / r, nil
	case lexer.MUL_OP:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, NewRuntimeError(node.Operator, "Operands must be numbers.")
		}
		return l * r, nil
	case lexer.PLUS_OP:
		if l, ok := left.(float64); ok {
			if r, ok := right.(float64); ok {
				return l + r, nil
			}
		}
		if l, ok := left.(string); ok {
			if r, ok := right.(string); ok {
				return l + r, nil
			}
		}
		return nil, NewRuntimeError(node.Operator, "Operands must be two numbers or two strings.")
	case lexer.GT_OP:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, NewRuntimeError(node.Operator, "Operands must be numbers.")
		}
		return l > r, nil
	case lexer.GE_OP:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, NewRuntimeError(node.Operator, "Operands must be numbers.")
		}
		return l >= r, nil
	case lexer.LT_OP:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, NewRuntimeError(node.Operator, "Operands must be numbers.")
		}
		return l < r, nil
	case lexer.LE_OP:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, NewRuntimeError(node.Operator, "Operands must be numbers.")
		}
		return l <= r, nil
	case lexer.EQ_OP:
		return value.IsEqual(left, right), nil
	case lexer.NE_OP:
		return !value.IsEqual(left, right), nil
	}
	return nil, NewRuntimeError(node.Operator, "Unknown binary operator %q.", node.Operator.Lexeme)
}

func bothNumbers(left, right any) (float64, float64, bool) {
	l, ok1 := left.(float64)
	r, ok2 := right.(float64)
	return l, r, ok1 && ok2
}

func (e *Evaluator) VisitCallExpr(node *ast.CallExpr) (any, error) {
	callee, err := e.Evaluate(node.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]any, len(node.Arguments))
	for i, arg := range node.Arguments {
		v, err := e.Evaluate(arg)
		if err != nil {
			return nil, err
		}
		arguments[i] = v
	}

	fn, ok := callee.(callable)
	if !ok {
		return nil, NewRuntimeError(node.Paren, "Can only call functions and classes.")
	}
	if len(arguments) != fn.Arity() {
		return nil, NewRuntimeError(node.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(arguments))
	}
	return fn.Call(e, arguments)
}
