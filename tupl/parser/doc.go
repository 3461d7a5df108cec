// File: doc.go
// Title: TUPL Parser Package Documentation
// Description: Implements the lexical analyzer and parser for TUPL programs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-14 v0.2.0: TUPL lexer and grammar

/*
Package parser turns TUPL source text into an ast.Program.

The Lexer classifies identifiers by spelling alone:

	total, x1     varIDENT   (lowercase first letter)
	MAX           constIDENT (uppercase letters only)
	<items>       tupleIDENT (lowercase letters in angle brackets)
	Sum, F1       funcIDENT  (uppercase letter, then lowercase, digits or '_')

define, begin, end, each and select are reserved. Comments run from '{' to
the last '}' on the same line.

The Parser is a recursive descent parser over the token slice. Lexing stops
at the first illegal character with a *LexicalError; parsing stops at the
first unexpected token with a *SyntaxError. Neither returns a partial tree.

	prog, err := parser.ParseInput("<t> <- [1 .. 5]. != <t> | +.")
*/
package parser
