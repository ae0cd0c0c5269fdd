/*
File    : loxgo/parser/parser_conditionals.go
Author  : amaji
*/
package parser

import (
	"github.com/amaji/loxgo/ast"
	"github.com/amaji/loxgo/lexer"
)

// ifStatement requires a parenthesized condition.
func (p *Parser) ifStatement() (ast.Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}

	var elseBranch ast.Stmt
	if p.match(lexer.ELSE_KEY) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}

	return &ast.IfStmt{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}, nil
}
