/*
File    : loxgo/ast/printer.go
Author  : amaji
*/
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Printer renders an expression tree as the canonical textual form
// `cmd/loxgo parse` prints for a single expression statement: a
// fully-parenthesized prefix form for grouping/unary/binary operators,
// and plain infix notation for assignment, logical operators, and calls.
// It is a visitor like the evaluator, dispatching through the same
// Accept/Visit shape.
type Printer struct{}

// Print renders a single expression.
func (p *Printer) Print(expr Expr) string {
	result, _ := expr.Accept(p)
	return result.(string)
}

func (p *Printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteString(" ")
		s, _ := e.Accept(p)
		b.WriteString(s.(string))
	}
	b.WriteString(")")
	return b.String()
}

func (p *Printer) VisitLiteralExpr(node *LiteralExpr) (any, error) {
	if node.Value == nil {
		return "nil", nil
	}
	switch v := node.Value.(type) {
	case float64:
		return formatCanonicalNumber(v), nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

// formatCanonicalNumber renders a number the way the lexer's literal
// canonicalisation does: shortest decimal, with a trailing ".0" forced
// onto integral values, so a parsed "1" prints as "1.0" rather than
// bare "1".
func formatCanonicalNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (p *Printer) VisitGroupingExpr(node *GroupingExpr) (any, error) {
	return p.parenthesize("group", node.Expression), nil
}

func (p *Printer) VisitUnaryExpr(node *UnaryExpr) (any, error) {
	return p.parenthesize(node.Operator.Lexeme, node.Right), nil
}

func (p *Printer) VisitBinaryExpr(node *BinaryExpr) (any, error) {
	return p.parenthesize(node.Operator.Lexeme, node.Left, node.Right), nil
}

func (p *Printer) VisitLogicalExpr(node *LogicalExpr) (any, error) {
	left, _ := node.Left.Accept(p)
	right, _ := node.Right.Accept(p)
	return fmt.Sprintf("%s %s %s", left, node.Operator.Lexeme, right), nil
}

func (p *Printer) VisitVariableExpr(node *VariableExpr) (any, error) {
	return node.Name.Lexeme, nil
}

func (p *Printer) VisitAssignExpr(node *AssignExpr) (any, error) {
	v, _ := node.Value.Accept(p)
	return fmt.Sprintf("%s = %s", node.Name.Lexeme, v), nil
}

func (p *Printer) VisitCallExpr(node *CallExpr) (any, error) {
	callee, _ := node.Callee.Accept(p)
	args := make([]string, len(node.Arguments))
	for i, arg := range node.Arguments {
		s, _ := arg.Accept(p)
		args[i] = s.(string)
	}
	return fmt.Sprintf("%s(%s)", callee, strings.Join(args, ", ")), nil
}
