/*
File    : loxgo/parser/parser_statements.go
Author  : amaji
*/
package parser

import (
	"github.com/amaji/loxgo/ast"
	"github.com/amaji/loxgo/lexer"
)

// declaration dispatches to a `fun`/`var` declaration or falls through to
// a plain statement.
func (p *Parser) declaration() (ast.Stmt, error) {
	switch {
	case p.match(lexer.FUNC_KEY):
		return p.functionDeclaration("function")
	case p.match(lexer.VAR_KEY):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	if !p.check(lexer.IDENTIFIER_ID) {
		return nil, p.errorAt(p.peek(), ExpectExpression, "Expect variable name.")
	}
	name := p.advance()

	var initializer ast.Expr
	if p.match(lexer.ASSIGN_OP) {
		var err error
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.SEMICOLON_DELIM, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.VarStmt{Name: name, Initializer: initializer}, nil
}

// statement parses any of the statement forms. A lone `;` is the empty
// statement and parses as an empty BlockStmt, which runs as a no-op.
// Anything else that doesn't start with a recognised keyword or `{` falls
// through to an expression statement.
func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(lexer.SEMICOLON_DELIM):
		return &ast.BlockStmt{}, nil
	case p.match(lexer.PRINT_KEY):
		return p.printStatement()
	case p.match(lexer.RETURN_KEY):
		return p.returnStatement()
	case p.match(lexer.IF_KEY):
		return p.ifStatement()
	case p.match(lexer.WHILE_KEY):
		return p.whileStatement()
	case p.match(lexer.FOR_KEY):
		return p.forStatement()
	case p.match(lexer.LEFT_BRACE):
		statements, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.BlockStmt{Statements: statements}, nil
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON_DELIM, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expression: value}, nil
}

func (p *Parser) returnStatement() (ast.Stmt, error) {
	keyword := p.previous()

	var value ast.Expr
	if !p.check(lexer.SEMICOLON_DELIM) {
		var err error
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.SEMICOLON_DELIM, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON_DELIM, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expression: expr}, nil
}

// block consumes declarations until the matching `}`, which must be
// present — an EOF first is a MissingToken failure.
func (p *Parser) block() ([]ast.Stmt, error) {
	var statements []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	if _, err := p.consume(lexer.RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return statements, nil
}
