/*
File    : loxgo/parser/parser_functions.go
Author  : amaji
*/
package parser

import (
	"github.com/amaji/loxgo/ast"
	"github.com/amaji/loxgo/lexer"
)

// functionDeclaration parses `fun name(params) { body }`. kind is only
// used in error messages ("function") so a future method-declaration
// form could reuse this with "method" without duplicating the body.
func (p *Parser) functionDeclaration(kind string) (ast.Stmt, error) {
	name, err := p.consume(lexer.IDENTIFIER_ID, "Expect "+kind+" name.")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name."); err != nil {
		return nil, err
	}

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			param, err := p.consume(lexer.IDENTIFIER_ID, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body."); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionStmt{Name: name, Params: params, Body: body}, nil
}
