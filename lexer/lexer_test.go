/*
File    : loxgo/lexer/lexer_test.go
Author  : amaji
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConsumeToken represents a test case for ConsumeTokens.
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

func TestLexer_ConsumeTokens(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: `(){},.+-*/;`,
			ExpectedTokens: []Token{
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(COMMA_DELIM, ","),
				NewToken(DOT_OP, "."),
				NewToken(PLUS_OP, "+"),
				NewToken(MINUS_OP, "-"),
				NewToken(MUL_OP, "*"),
				NewToken(DIV_OP, "/"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `= == ! != < <= > >=`,
			ExpectedTokens: []Token{
				NewToken(ASSIGN_OP, "="),
				NewToken(EQ_OP, "=="),
				NewToken(NOT_OP, "!"),
				NewToken(NE_OP, "!="),
				NewToken(LT_OP, "<"),
				NewToken(LE_OP, "<="),
				NewToken(GT_OP, ">"),
				NewToken(GE_OP, ">="),
			},
		},
		{
			Input: "// a comment\n+",
			ExpectedTokens: []Token{
				NewToken(PLUS_OP, "+"),
			},
		},
		{
			Input: "/* a\nblock comment */+",
			ExpectedTokens: []Token{
				NewToken(PLUS_OP, "+"),
			},
		},
		{
			Input: `and class else false for fun if nil or print return super this true var while`,
			ExpectedTokens: []Token{
				NewToken(AND_KEY, "and"),
				NewToken(CLASS_KEY, "class"),
				NewToken(ELSE_KEY, "else"),
				NewToken(FALSE_KEY, "false"),
				NewToken(FOR_KEY, "for"),
				NewToken(FUNC_KEY, "fun"),
				NewToken(IF_KEY, "if"),
				NewToken(NIL_LIT, "nil"),
				NewToken(OR_KEY, "or"),
				NewToken(PRINT_KEY, "print"),
				NewToken(RETURN_KEY, "return"),
				NewToken(SUPER_KEY, "super"),
				NewToken(THIS_KEY, "this"),
				NewToken(TRUE_KEY, "true"),
				NewToken(VAR_KEY, "var"),
				NewToken(WHILE_KEY, "while"),
			},
		},
		{
			Input: `foo _bar baz123`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "foo"),
				NewToken(IDENTIFIER_ID, "_bar"),
				NewToken(IDENTIFIER_ID, "baz123"),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)
		gotTokens := lex.ConsumeTokens()

		// ConsumeTokens always terminates with exactly one EOF token.
		assert.NotEmpty(t, gotTokens)
		assert.Equal(t, EOF_TYPE, gotTokens[len(gotTokens)-1].Type, "input: %s", test.Input)
		gotTokens = gotTokens[:len(gotTokens)-1]

		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens), "input: %s", test.Input)
		for i, token := range test.ExpectedTokens {
			if i >= len(gotTokens) {
				break
			}
			assert.Equal(t, token.Type, gotTokens[i].Type)
			assert.Equal(t, token.Lexeme, gotTokens[i].Lexeme)
		}
	}
}

func TestLexer_NumberCanonicalLiteral(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{"42", "42.0"},
		{"1234.1234", "1234.1234"},
		{"0.5", "0.5"},
		{"100.00", "100.0"},
	}

	for _, tt := range tests {
		lex := NewLexer(tt.input)
		tok := lex.NextToken()
		assert.Equal(t, NUMBER_LIT, tok.Type)
		assert.Equal(t, tt.literal, tok.Literal)
	}
}

func TestLexer_StringLiteral(t *testing.T) {
	lex := NewLexer(`"hello world"`)
	tok := lex.NextToken()
	assert.Equal(t, STRING_LIT, tok.Type)
	assert.Equal(t, "hello world", tok.Literal)
	assert.Equal(t, `"hello world"`, tok.Lexeme)
}

func TestLexer_UnterminatedString(t *testing.T) {
	lex := NewLexer(`"unterminated`)
	tok := lex.NextToken()
	assert.Equal(t, INVALID_TYPE, tok.Type)
	assert.True(t, lex.HadError)
	assert.Contains(t, lex.Errors[0], "Unterminated string.")
}

func TestLexer_LineTracking(t *testing.T) {
	lex := NewLexer("var a\n= 1;\nvar b = 2;")
	var last Token
	for {
		tok := lex.NextToken()
		if tok.Type == EOF_TYPE {
			break
		}
		last = tok
	}
	assert.Equal(t, 3, last.Line)
}
