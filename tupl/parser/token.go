// File: token.go
// Title: TUPL Tokens
// Description: Token kinds and the Token type produced by the lexer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Token types as part of the lexer
// - 2026-10-14 v0.2.0: TUPL token set in its own file

package parser

import (
	"fmt"

	"github.com/msto63/tuplang/tupl/ast"
)

// TokenKind represents the type of a lexical token
type TokenKind int

const (
	TokenEOF TokenKind = iota

	// Punctuation and operators
	TokenLArrow     // <-
	TokenRArrow     // ->
	TokenLParen     // (
	TokenRParen     // )
	TokenLSquare    // [
	TokenRSquare    // ]
	TokenComma      // ,
	TokenDot        // .
	TokenPipe       // |
	TokenDoublePlus // ++
	TokenDoubleMult // **
	TokenDoubleDot  // ..
	TokenColon      // :
	TokenEq         // =
	TokenNotEq      // !=
	TokenLT         // <
	TokenLTEq       // <=
	TokenGT         // >
	TokenGTEq       // >=
	TokenPlus       // +
	TokenMinus      // -
	TokenMult       // *
	TokenDiv        // /
	TokenMod        // %

	// Literals
	TokenNumber // 42
	TokenString // "text"

	// Identifiers
	TokenVarIdent   // total, x1
	TokenConstIdent // MAX
	TokenTupleIdent // <items>
	TokenFuncIdent  // Sum

	// Reserved words
	TokenDefine
	TokenBegin
	TokenEnd
	TokenEach
	TokenSelect
)

var tokenNames = [...]string{
	TokenEOF:        "EOF",
	TokenLArrow:     "LARROW",
	TokenRArrow:     "RARROW",
	TokenLParen:     "LPAREN",
	TokenRParen:     "RPAREN",
	TokenLSquare:    "LSQUARE",
	TokenRSquare:    "RSQUARE",
	TokenComma:      "COMMA",
	TokenDot:        "DOT",
	TokenPipe:       "PIPE",
	TokenDoublePlus: "DOUBLEPLUS",
	TokenDoubleMult: "DOUBLEMULT",
	TokenDoubleDot:  "DOUBLEDOT",
	TokenColon:      "COLON",
	TokenEq:         "EQ",
	TokenNotEq:      "NOTEQ",
	TokenLT:         "LT",
	TokenLTEq:       "LTEQ",
	TokenGT:         "GT",
	TokenGTEq:       "GTEQ",
	TokenPlus:       "PLUS",
	TokenMinus:      "MINUS",
	TokenMult:       "MULT",
	TokenDiv:        "DIV",
	TokenMod:        "MOD",
	TokenNumber:     "NUMBER_LITERAL",
	TokenString:     "STRING_LITERAL",
	TokenVarIdent:   "varIDENT",
	TokenConstIdent: "constIDENT",
	TokenTupleIdent: "tupleIDENT",
	TokenFuncIdent:  "funcIDENT",
	TokenDefine:     "DEFINE",
	TokenBegin:      "BEGIN",
	TokenEnd:        "END",
	TokenEach:       "EACH",
	TokenSelect:     "SELECT",
}

var reserved = map[string]TokenKind{
	"define": TokenDefine,
	"begin":  TokenBegin,
	"end":    TokenEnd,
	"each":   TokenEach,
	"select": TokenSelect,
}

// String returns the token kind name
func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// IsIdent reports whether k is one of the four identifier kinds
func (k TokenKind) IsIdent() bool {
	return k >= TokenVarIdent && k <= TokenFuncIdent
}

// IsReserved reports whether k is a reserved word
func (k TokenKind) IsReserved() bool {
	return k >= TokenDefine && k <= TokenSelect
}

// Token represents a lexical token with position information
type Token struct {
	Kind   TokenKind
	Value  string // Spelling; quotes stripped for strings
	Int    int64  // Value of a NUMBER_LITERAL
	Line   int    // Line number (1-based)
	Column int    // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Kind == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
}

// Pos returns the token position as an AST position
func (t Token) Pos() ast.Position {
	return ast.Position{Line: t.Line, Column: t.Column}
}
