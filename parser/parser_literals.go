/*
File    : loxgo/parser/parser_literals.go
Author  : amaji
*/
package parser

import "strconv"

// parseCanonicalNumber converts the lexer's already-canonicalised number
// literal text (e.g. "42.0", "12.3") back into the float64 it represents.
// The lexer guarantees this text always parses cleanly, so an error here
// would indicate a lexer bug, not a user-facing parse error.
func parseCanonicalNumber(literal string) float64 {
	v, _ := strconv.ParseFloat(literal, 64)
	return v
}
