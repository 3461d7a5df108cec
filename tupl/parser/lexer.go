// File: lexer.go
// Title: TUPL Lexical Analyzer (Tokenizer)
// Description: Converts TUPL source text into a token stream. Skips
//              whitespace and brace comments, classifies identifiers by
//              spelling and converts number literals at lex time.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-14 v0.2.0: TUPL token set, identifier classes, comments

package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Lexer performs lexical analysis of TUPL source
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	line     int    // Current line number (1-based)
	column   int    // Current column number (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar() // Initialize first character
	return l
}

// TokenizeInput tokenizes input with a fresh lexer
func TokenizeInput(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}

// Tokenize returns all tokens up to and including EOF. It stops at the
// first lexical error.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)

		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() (Token, error) {
	if err := l.skipIgnored(); err != nil {
		return Token{}, err
	}

	line := l.line
	column := l.column
	tok := func(kind TokenKind, value string) Token {
		return Token{Kind: kind, Value: value, Line: line, Column: column}
	}

	if l.atEOF() {
		return tok(TokenEOF, ""), nil
	}

	switch l.ch {
	case '<':
		if name, ok := l.tupleIdentAhead(); ok {
			l.advance(len(name))
			return tok(TokenTupleIdent, name), nil
		}
		switch l.peekChar() {
		case '-':
			return l.two(tok(TokenLArrow, "<-")), nil
		case '=':
			return l.two(tok(TokenLTEq, "<=")), nil
		}
		return l.one(tok(TokenLT, "<")), nil
	case '-':
		if l.peekChar() == '>' {
			return l.two(tok(TokenRArrow, "->")), nil
		}
		return l.one(tok(TokenMinus, "-")), nil
	case '+':
		if l.peekChar() == '+' {
			return l.two(tok(TokenDoublePlus, "++")), nil
		}
		return l.one(tok(TokenPlus, "+")), nil
	case '*':
		if l.peekChar() == '*' {
			return l.two(tok(TokenDoubleMult, "**")), nil
		}
		return l.one(tok(TokenMult, "*")), nil
	case '.':
		if l.peekChar() == '.' {
			return l.two(tok(TokenDoubleDot, "..")), nil
		}
		return l.one(tok(TokenDot, ".")), nil
	case '>':
		if l.peekChar() == '=' {
			return l.two(tok(TokenGTEq, ">=")), nil
		}
		return l.one(tok(TokenGT, ">")), nil
	case '!':
		if l.peekChar() == '=' {
			return l.two(tok(TokenNotEq, "!=")), nil
		}
	case '=':
		return l.one(tok(TokenEq, "=")), nil
	case '(':
		return l.one(tok(TokenLParen, "(")), nil
	case ')':
		return l.one(tok(TokenRParen, ")")), nil
	case '[':
		return l.one(tok(TokenLSquare, "[")), nil
	case ']':
		return l.one(tok(TokenRSquare, "]")), nil
	case ',':
		return l.one(tok(TokenComma, ",")), nil
	case '|':
		return l.one(tok(TokenPipe, "|")), nil
	case ':':
		return l.one(tok(TokenColon, ":")), nil
	case '/':
		return l.one(tok(TokenDiv, "/")), nil
	case '%':
		return l.one(tok(TokenMod, "%")), nil
	case '"':
		value, ok := l.readString()
		if !ok {
			return Token{}, &LexicalError{Char: `"`, Line: line, Column: column, Reason: "unterminated string literal"}
		}
		return tok(TokenString, value), nil
	default:
		switch {
		case isLower(l.ch):
			word := l.readWhile(isIdentTail)
			if kind, ok := reserved[word]; ok {
				return tok(kind, word), nil
			}
			return tok(TokenVarIdent, word), nil
		case isUpper(l.ch):
			if isFuncTail(l.peekChar()) {
				start := l.position
				l.readChar()
				l.readWhile(isFuncTail)
				return tok(TokenFuncIdent, l.input[start:l.position]), nil
			}
			return tok(TokenConstIdent, l.readWhile(isUpper)), nil
		case isDigit(l.ch):
			digits := l.readWhile(isDigit)
			n, err := strconv.ParseInt(digits, 10, 64)
			if err != nil {
				return Token{}, &LexicalError{Char: digits[:1], Line: line, Column: column,
					Reason: "number literal " + digits + " out of range"}
			}
			t := tok(TokenNumber, digits)
			t.Int = n
			return t, nil
		}
	}

	return Token{}, l.illegal(line, column)
}

// skipIgnored skips whitespace and comments. A comment runs from '{' to the
// last '}' on the same line.
func (l *Lexer) skipIgnored() error {
	for !l.atEOF() {
		switch l.ch {
		case ' ', '\t', '\r', '\n', '\f', '\v':
			l.readChar()
		case '{':
			rest := l.input[l.position:]
			if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
				rest = rest[:nl]
			}
			end := strings.LastIndexByte(rest, '}')
			if end < 0 {
				return &LexicalError{Char: "{", Line: l.line, Column: l.column, Reason: "unterminated comment"}
			}
			l.advance(end + 1)
		default:
			return nil
		}
	}
	return nil
}

// tupleIdentAhead matches "<" [a-z]+ ">" at the current position
func (l *Lexer) tupleIdentAhead() (string, bool) {
	i := l.position + 1
	for i < len(l.input) && isLower(l.input[i]) {
		i++
	}
	if i == l.position+1 || i >= len(l.input) || l.input[i] != '>' {
		return "", false
	}
	return l.input[l.position : i+1], true
}

// readString reads a double-quoted string literal without escapes and
// returns its content.
func (l *Lexer) readString() (string, bool) {
	start := l.position + 1 // Skip opening quote
	for {
		l.readChar()
		if l.atEOF() {
			return "", false
		}
		if l.ch == '"' {
			value := l.input[start:l.position]
			l.readChar()
			return value, true
		}
	}
}

func (l *Lexer) readWhile(pred func(byte) bool) string {
	start := l.position
	for !l.atEOF() && pred(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) one(t Token) Token {
	l.readChar()
	return t
}

func (l *Lexer) two(t Token) Token {
	l.advance(2)
	return t
}

func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		l.readChar()
	}
}

func (l *Lexer) illegal(line, column int) error {
	r, _ := utf8.DecodeRuneInString(l.input[l.position:])
	return &LexicalError{Char: string(r), Line: line, Column: column}
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.position < len(l.input) && l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPos >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		l.readPos = len(l.input)
	} else {
		l.ch = l.input[l.readPos]
		l.position = l.readPos
		l.readPos++
	}
	l.column++
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

func isLower(ch byte) bool { return 'a' <= ch && ch <= 'z' }
func isUpper(ch byte) bool { return 'A' <= ch && ch <= 'Z' }
func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

// isIdentTail matches the tail of a varIDENT
func isIdentTail(ch byte) bool {
	return isLower(ch) || isUpper(ch) || isDigit(ch) || ch == '_'
}

// isFuncTail matches the tail of a funcIDENT
func isFuncTail(ch byte) bool {
	return isLower(ch) || isDigit(ch) || ch == '_'
}

// ClassifyIdent reports the identifier kind of s when s lexes as exactly
// one identifier token.
func ClassifyIdent(s string) (TokenKind, bool) {
	tokens, err := TokenizeInput(s)
	if err != nil || len(tokens) != 2 || !tokens[0].Kind.IsIdent() || tokens[0].Value != s {
		return TokenEOF, false
	}
	return tokens[0].Kind, true
}
