// File: errors.go
// Title: TUPL Lexical and Syntax Errors
// Description: Fatal error types returned by the lexer and the parser.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: ParseError with position information
// - 2026-10-14 v0.2.0: Separate LexicalError and SyntaxError

package parser

import (
	"fmt"
	"strings"
)

// LexicalError reports input that no token pattern matches.
type LexicalError struct {
	Char   string // Offending character
	Line   int
	Column int
	Reason string // Set when the character is legal but the token is not
}

func (e *LexicalError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s at line %d, column %d", e.Reason, e.Line, e.Column)
	}
	return fmt.Sprintf("illegal character '%s' at line %d, column %d", e.Char, e.Line, e.Column)
}

// SyntaxError reports the first token no grammar alternative accepts.
type SyntaxError struct {
	Token    Token
	Expected []string // What the grammar would have accepted
}

func (e *SyntaxError) Error() string {
	found := e.Token.String()
	if len(e.Expected) == 0 {
		return fmt.Sprintf("syntax error at line %d, column %d: unexpected %s",
			e.Token.Line, e.Token.Column, found)
	}
	return fmt.Sprintf("syntax error at line %d, column %d: unexpected %s, expected %s",
		e.Token.Line, e.Token.Column, found, strings.Join(e.Expected, " or "))
}
