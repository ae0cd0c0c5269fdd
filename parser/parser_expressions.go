/*
File    : loxgo/parser/parser_expressions.go
Author  : amaji
*/
package parser

import (
	"github.com/amaji/loxgo/ast"
	"github.com/amaji/loxgo/lexer"
)

// expression is the top of the precedence cascade.
func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment is right-associative and lowest precedence. The left-hand
// side is parsed as a full `or` expression first; if it turns out to be
// anything other than a VariableExpr, assigning to it is an
// InvalidAssignment error rather than a parse failure at the `=` token
// itself.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(lexer.ASSIGN_OP) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		if variable, ok := expr.(*ast.VariableExpr); ok {
			return &ast.AssignExpr{Name: variable.Name, Value: value}, nil
		}
		return nil, p.errorAt(equals, InvalidAssignment, "Invalid assignment target.")
	}

	return expr, nil
}

func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.OR_KEY) {
		operator := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &ast.LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.AND_KEY) {
		operator := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.NE_OP, lexer.EQ_OP) {
		operator := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.GT_OP, lexer.GE_OP, lexer.LT_OP, lexer.LE_OP) {
		operator := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.MINUS_OP, lexer.PLUS_OP) {
		operator := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.DIV_OP, lexer.MUL_OP) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(lexer.NOT_OP, lexer.MINUS_OP) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Operator: operator, Right: right}, nil
	}
	return p.call()
}

// call parses a primary expression followed by zero or more `(args)`
// suffixes, so chained calls like `f()()` parse as nested CallExprs.
func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		if p.match(lexer.LEFT_PAREN) {
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		} else {
			break
		}
	}
	return expr, nil
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var arguments []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			arguments = append(arguments, arg)
			if !p.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}

	paren, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return &ast.CallExpr{Callee: callee, Paren: paren, Arguments: arguments}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(lexer.FALSE_KEY):
		return &ast.LiteralExpr{Value: false}, nil
	case p.match(lexer.TRUE_KEY):
		return &ast.LiteralExpr{Value: true}, nil
	case p.match(lexer.NIL_LIT):
		return &ast.LiteralExpr{Value: nil}, nil
	case p.match(lexer.NUMBER_LIT):
		return &ast.LiteralExpr{Value: parseCanonicalNumber(p.previous().Literal)}, nil
	case p.match(lexer.STRING_LIT):
		return &ast.LiteralExpr{Value: p.previous().Literal}, nil
	case p.match(lexer.IDENTIFIER_ID):
		return &ast.VariableExpr{Name: p.previous()}, nil
	case p.match(lexer.LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, newParseError(UnmatchedParentheses, p.peek().Line, "Expect ')' after expression.")
		}
		return &ast.GroupingExpr{Expression: expr}, nil
	}

	return nil, p.errorAt(p.peek(), ExpectExpression, "Expect expression.")
}
