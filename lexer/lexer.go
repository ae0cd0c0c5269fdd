/*
File    : loxgo/lexer/lexer.go
Author  : amaji
*/
package lexer

// Lexer performs lexical analysis of loxgo source code. It scans the
// source byte by byte, producing the tokens defined in token.go.
//
// It handles:
//   - Structural symbols, delimiters, arithmetic/comparison operators
//   - String and number literals
//   - Identifiers and the 16 reserved keywords
//   - Single-line (`//`) and multi-line (`/* */`) comments
//   - Whitespace, which is skipped
//
// Fields:
//   - Src: the complete source text
//   - Current: the byte at Position
//   - Position: current index into Src
//   - SrcLength: len(Src), cached
//   - Line: current 1-indexed source line
//   - HadError: set once any lexical error has been reported through Errors
//   - Errors: accumulated lexical error messages, one per malformed token
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
	HadError  bool
	Errors    []string
}

// NewLexer creates a Lexer positioned at the first byte of src.
func NewLexer(src string) Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
	}
}

// NextToken returns the next meaningful token, skipping whitespace and
// comments first. At end of input it returns an EOF_TYPE token forever.
func (lex *Lexer) NextToken() Token {
	var token Token

	lex.IgnoreWhitespacesAndComments()
	line := lex.Line

	switch lex.Current {
	case '=':
		if lex.Peek() == '=' {
			lex.Advance()
			token = NewTokenWithMetadata(EQ_OP, "==", "null", line)
		} else {
			token = NewTokenWithMetadata(ASSIGN_OP, "=", "null", line)
		}
	case '!':
		if lex.Peek() == '=' {
			lex.Advance()
			token = NewTokenWithMetadata(NE_OP, "!=", "null", line)
		} else {
			token = NewTokenWithMetadata(NOT_OP, "!", "null", line)
		}
	case '<':
		if lex.Peek() == '=' {
			lex.Advance()
			token = NewTokenWithMetadata(LE_OP, "<=", "null", line)
		} else {
			token = NewTokenWithMetadata(LT_OP, "<", "null", line)
		}
	case '>':
		if lex.Peek() == '=' {
			lex.Advance()
			token = NewTokenWithMetadata(GE_OP, ">=", "null", line)
		} else {
			token = NewTokenWithMetadata(GT_OP, ">", "null", line)
		}
	case '+':
		token = NewTokenWithMetadata(PLUS_OP, "+", "null", line)
	case '-':
		token = NewTokenWithMetadata(MINUS_OP, "-", "null", line)
	case '*':
		token = NewTokenWithMetadata(MUL_OP, "*", "null", line)
	case '/':
		token = NewTokenWithMetadata(DIV_OP, "/", "null", line)
	case '(':
		token = NewTokenWithMetadata(LEFT_PAREN, "(", "null", line)
	case ')':
		token = NewTokenWithMetadata(RIGHT_PAREN, ")", "null", line)
	case '{':
		token = NewTokenWithMetadata(LEFT_BRACE, "{", "null", line)
	case '}':
		token = NewTokenWithMetadata(RIGHT_BRACE, "}", "null", line)
	case ',':
		token = NewTokenWithMetadata(COMMA_DELIM, ",", "null", line)
	case ';':
		token = NewTokenWithMetadata(SEMICOLON_DELIM, ";", "null", line)
	case '.':
		token = NewTokenWithMetadata(DOT_OP, ".", "null", line)
	case 0:
		token = NewTokenWithMetadata(EOF_TYPE, "", "null", line)
	case '"':
		return readStringLiteral(lex)
	default:
		if isDigitASCII(lex.Current) {
			return readNumber(lex)
		}
		if isAlpha(lex.Current) || lex.Current == '_' {
			return readIdentifier(lex)
		}
		lex.reportError(line, "Unexpected character: %c", lex.Current)
		token = NewTokenWithMetadata(INVALID_TYPE, string(lex.Current), "null", line)
	}

	lex.Advance()
	return token
}

// Peek returns the byte after Current without consuming it, or 0 at end
// of source.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance moves one byte forward, updating Current and Position. Line
// tracking for newlines happens in the callers that see '\n' explicitly
// (IgnoreWhitespacesAndComments, SkipMultiLineComment)
// since Advance itself does not know which bytes are newlines until after
// the move.
func (lex *Lexer) Advance() {
	lex.Position++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// IgnoreWhitespacesAndComments skips whitespace, `//` line comments and
// `/* */` block comments ahead of the next token, tracking line numbers
// as it goes.
func (lex *Lexer) IgnoreWhitespacesAndComments() {
	for {
		switch {
		case lex.Current == '\n':
			lex.Line++
			lex.Advance()
		case isWhitespace(lex.Current):
			lex.Advance()
		case lex.Current == '/' && lex.Peek() == '/':
			lex.SkipSingleLineComment()
		case lex.Current == '/' && lex.Peek() == '*':
			lex.SkipMultiLineComment()
		default:
			return
		}
	}
}

// SkipSingleLineComment consumes a `//` comment up to (but not including)
// the terminating newline or EOF.
func (lex *Lexer) SkipSingleLineComment() {
	lex.Advance()
	lex.Advance()
	for lex.Current != '\n' && lex.Current != 0 {
		lex.Advance()
	}
}

// SkipMultiLineComment consumes a `/* ... */` comment. An unterminated
// block comment is reported once lexing reaches EOF still inside it.
func (lex *Lexer) SkipMultiLineComment() {
	line := lex.Line
	lex.Advance()
	lex.Advance()
	for lex.Current != 0 {
		if lex.Current == '*' && lex.Peek() == '/' {
			lex.Advance()
			lex.Advance()
			return
		}
		if lex.Current == '\n' {
			lex.Line++
		}
		lex.Advance()
	}
	lex.reportError(line, "Unterminated block comment.")
}

// reportError appends a lexical error and marks HadError so the caller
// can decide on exit code 65 per the tokenize/parse/run CLI surfaces.
func (lex *Lexer) reportError(line int, format string, args ...any) {
	lex.HadError = true
	lex.Errors = append(lex.Errors, sprintLexError(line, format, args...))
}

// ConsumeTokens tokenizes the full source and returns every token,
// terminated by exactly one EOF_TYPE token. Any errors encountered along
// the way are left in lex.Errors.
func (lex *Lexer) ConsumeTokens() []Token {
	tokens := make([]Token, 0)
	for {
		token := lex.NextToken()
		tokens = append(tokens, token)
		if token.Type == EOF_TYPE {
			break
		}
	}
	return tokens
}
