/*
File    : loxgo/parser/parser.go
Author  : amaji
*/

// Package parser implements a recursive-descent parser over loxgo's
// token stream, producing the ast package's Expr/Stmt trees. Each
// precedence level gets its own method, climbing from assignment down
// through or/and/equality/comparison/term/factor/unary/call to primary,
// since the grammar is a small, fixed cascade rather than an open,
// user-extensible operator set that would need a dispatch table.
package parser

import (
	"github.com/amaji/loxgo/ast"
	"github.com/amaji/loxgo/lexer"
)

// Parser holds the token slice produced by the lexer and a cursor into
// it. It works against the fully-lexed token slice up front rather than
// streaming tokens one at a time, since the lexer always returns the
// whole list before parsing begins.
type Parser struct {
	tokens  []lexer.Token
	current int
}

// NewParser creates a Parser over an already-lexed token stream. The
// stream must end in an EOF token, as lexer.Lexer.ConsumeTokens
// guarantees.
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseProgram parses a full program: zero or more declarations followed
// by EOF. This is the entry point for the `run` surface and the REPL over
// statement lists.
func (p *Parser) ParseProgram() ([]ast.Stmt, error) {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements, nil
}

// ParseExpression parses a single expression followed by EOF, the entry
// point the `parse` and `evaluate` surfaces use.
func (p *Parser) ParseExpression() (ast.Expr, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.isAtEnd() {
		return nil, p.errorAt(p.peek(), ExpectExpression, "Expect end of expression.")
	}
	return expr, nil
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF_TYPE
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt lexer.TokenType) bool {
	if p.isAtEnd() {
		return tt == lexer.EOF_TYPE
	}
	return p.peek().Type == tt
}

// match advances and returns true if the current token is one of the
// given types.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it matches tt, else
// reports a MissingToken parse error naming what was expected.
func (p *Parser) consume(tt lexer.TokenType, message string) (lexer.Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorAt(p.peek(), MissingToken, "%s", message)
}

func (p *Parser) errorAt(tok lexer.Token, kind ErrorKind, format string, args ...any) *ParseError {
	return newParseError(kind, tok.Line, format, args...)
}
