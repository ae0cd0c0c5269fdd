/*
File    : loxgo/parser/parser_loops.go
Author  : amaji
*/
package parser

import (
	"github.com/amaji/loxgo/ast"
	"github.com/amaji/loxgo/lexer"
)

func (p *Parser) whileStatement() (ast.Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after condition."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	return &ast.WhileStmt{Condition: condition, Body: body}, nil
}

// forStatement desugars `for (init; cond; incr) body` into
// `Block [ init, While(cond, Block [ body, Expression(incr) ]) ]` at
// parse time, so the evaluator only ever has to know about WhileStmt. An
// omitted condition defaults to a literal `true` LiteralExpr rather than
// a Nil placeholder — Nil is falsy, so defaulting to it would turn
// `for (;;)` into a loop that never runs its body instead of an infinite
// one. An omitted initializer leaves the outer block holding only the
// WhileStmt. An omitted increment is simply left out of the inner block:
// running no statement is equivalent to running a no-op expression, so
// there is nothing to desugar there.
func (p *Parser) forStatement() (ast.Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer ast.Stmt
	var err error
	switch {
	case p.match(lexer.SEMICOLON_DELIM):
		// no initializer
	case p.match(lexer.VAR_KEY):
		initializer, err = p.varDeclaration()
		if err != nil {
			return nil, err
		}
	default:
		initializer, err = p.expressionStatement()
		if err != nil {
			return nil, err
		}
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON_DELIM) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.SEMICOLON_DELIM, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}
	if condition == nil {
		condition = &ast.LiteralExpr{Value: true}
	}

	var increment ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: increment}}}
	}

	body = &ast.WhileStmt{Condition: condition, Body: body}

	statements := []ast.Stmt{body}
	if initializer != nil {
		statements = []ast.Stmt{initializer, body}
	}

	return &ast.BlockStmt{Statements: statements}, nil
}
