// File: lexer_test.go
// Title: TUPL Lexer Unit Tests
// Description: Tests for token kinds, identifier classes, comments, literals,
//              positions and lexical errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer test suite
// - 2026-10-14 v0.2.0: TUPL token set

package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestLexer_TokenKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenKind
	}{
		{
			name:  "Empty input",
			input: "",
			want:  []TokenKind{TokenEOF},
		},
		{
			name:  "Constant definition",
			input: "A <- 5.",
			want:  []TokenKind{TokenConstIdent, TokenLArrow, TokenNumber, TokenDot, TokenEOF},
		},
		{
			name:  "Export arrow",
			input: "[1,2] -> <u>.",
			want: []TokenKind{TokenLSquare, TokenNumber, TokenComma, TokenNumber, TokenRSquare,
				TokenRArrow, TokenTupleIdent, TokenDot, TokenEOF},
		},
		{
			name:  "Double operators",
			input: "++ ** .. != ->",
			want:  []TokenKind{TokenDoublePlus, TokenDoubleMult, TokenDoubleDot, TokenNotEq, TokenRArrow, TokenEOF},
		},
		{
			name:  "Single operators",
			input: "+ - * / % | : = ( )",
			want: []TokenKind{TokenPlus, TokenMinus, TokenMult, TokenDiv, TokenMod, TokenPipe,
				TokenColon, TokenEq, TokenLParen, TokenRParen, TokenEOF},
		},
		{
			name:  "Comparison operators",
			input: "< <= > >=",
			want:  []TokenKind{TokenLT, TokenLTEq, TokenGT, TokenGTEq, TokenEOF},
		},
		{
			name:  "Range without spaces",
			input: "[1..5]",
			want:  []TokenKind{TokenLSquare, TokenNumber, TokenDoubleDot, TokenNumber, TokenRSquare, TokenEOF},
		},
		{
			name:  "Reserved words",
			input: "define begin end each select",
			want:  []TokenKind{TokenDefine, TokenBegin, TokenEnd, TokenEach, TokenSelect, TokenEOF},
		},
		{
			name:  "Reserved word prefix is a variable",
			input: "ending eachx",
			want:  []TokenKind{TokenVarIdent, TokenVarIdent, TokenEOF},
		},
		{
			name:  "Less-than before a tuple identifier",
			input: "x<-<t>",
			want:  []TokenKind{TokenVarIdent, TokenLArrow, TokenTupleIdent, TokenEOF},
		},
		{
			name:  "Comment is skipped",
			input: "{ a comment } = 1.",
			want:  []TokenKind{TokenEq, TokenNumber, TokenDot, TokenEOF},
		},
		{
			name:  "Comment runs to the last brace on the line",
			input: "{ a } b } = 1.\n{x}",
			want:  []TokenKind{TokenEq, TokenNumber, TokenDot, TokenEOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := TokenizeInput(tt.input)
			if err != nil {
				t.Fatalf("TokenizeInput() error = %v", err)
			}
			if got := kinds(tokens); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("kinds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLexer_Identifiers(t *testing.T) {
	tests := []struct {
		input string
		want  TokenKind
		ok    bool
	}{
		{"x", TokenVarIdent, true},
		{"total", TokenVarIdent, true},
		{"myVar_2", TokenVarIdent, true},
		{"N", TokenConstIdent, true},
		{"F", TokenConstIdent, true},
		{"MAX", TokenConstIdent, true},
		{"<items>", TokenTupleIdent, true},
		{"Sum", TokenFuncIdent, true},
		{"F1", TokenFuncIdent, true},
		{"Add_two", TokenFuncIdent, true},
		{"define", TokenEOF, false},
		{"MAXsum", TokenEOF, false},
		{"<Items>", TokenEOF, false},
		{"<>", TokenEOF, false},
		{"12", TokenEOF, false},
		{"", TokenEOF, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ClassifyIdent(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ClassifyIdent(%q) = %v, %v, want %v, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLexer_IdentifierClassesAreExclusive(t *testing.T) {
	tests := []struct {
		input string
		want  []TokenKind
	}{
		{"a", []TokenKind{TokenVarIdent}},
		{"abc", []TokenKind{TokenVarIdent}},
		{"aB_1", []TokenKind{TokenVarIdent}},
		{"endx", []TokenKind{TokenVarIdent}},
		{"end", []TokenKind{TokenEnd}},
		{"F", []TokenKind{TokenConstIdent}},
		{"ABC", []TokenKind{TokenConstIdent}},
		{"Ab", []TokenKind{TokenFuncIdent}},
		{"A1", []TokenKind{TokenFuncIdent}},
		{"A_b", []TokenKind{TokenFuncIdent}},
		{"Ab_C", []TokenKind{TokenFuncIdent, TokenConstIdent}},
		{"<a>", []TokenKind{TokenTupleIdent}},
		{"<abc>", []TokenKind{TokenTupleIdent}},
		{"<a1>", []TokenKind{TokenLT, TokenVarIdent, TokenGT}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := TokenizeInput(tt.input)
			if err != nil {
				t.Fatalf("TokenizeInput(%q) error = %v", tt.input, err)
			}
			got := make([]TokenKind, 0, len(tokens))
			for _, tok := range tokens[:len(tokens)-1] {
				got = append(got, tok.Kind)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("%q lexed as %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLexer_Literals(t *testing.T) {
	tokens, err := TokenizeInput(`42 "hello world" 007`)
	if err != nil {
		t.Fatalf("TokenizeInput() error = %v", err)
	}

	if tokens[0].Kind != TokenNumber || tokens[0].Int != 42 {
		t.Errorf("token 0 = %+v, want NUMBER_LITERAL 42", tokens[0])
	}
	if tokens[1].Kind != TokenString || tokens[1].Value != "hello world" {
		t.Errorf("token 1 = %+v, want STRING_LITERAL without quotes", tokens[1])
	}
	if tokens[2].Int != 7 || tokens[2].Value != "007" {
		t.Errorf("token 2 = %+v, want 7 spelled 007", tokens[2])
	}
}

func TestLexer_Positions(t *testing.T) {
	tokens, err := TokenizeInput("A <- 5.\n  = A.")
	if err != nil {
		t.Fatalf("TokenizeInput() error = %v", err)
	}

	want := [][2]int{{1, 1}, {1, 3}, {1, 6}, {1, 7}, {2, 3}, {2, 5}, {2, 6}}
	for i, pos := range want {
		if tokens[i].Line != pos[0] || tokens[i].Column != pos[1] {
			t.Errorf("token %d (%s) at %d:%d, want %d:%d",
				i, tokens[i], tokens[i].Line, tokens[i].Column, pos[0], pos[1])
		}
	}
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{"Illegal character", "A <- 5 # 3.", "illegal character '#' at line 1, column 8"},
		{"Illegal bang", "= !x.", "illegal character '!' at line 1, column 3"},
		{"Illegal multibyte character", "= é.", "illegal character 'é' at line 1, column 3"},
		{"Second line", "= 1.\n  ?", "illegal character '?' at line 2, column 3"},
		{"Unterminated string", `= "abc`, "unterminated string literal at line 1, column 3"},
		{"Unterminated comment", "{ no end\n}", "unterminated comment at line 1, column 1"},
		{"Number out of range", "= 99999999999999999999.", "number literal 99999999999999999999 out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := TokenizeInput(tt.input)
			if err == nil {
				t.Fatalf("expected error, got tokens %v", tokens)
			}
			var lexErr *LexicalError
			if !errors.As(err, &lexErr) {
				t.Fatalf("error type = %T, want *LexicalError", err)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.errMsg)
			}
			if tokens != nil {
				t.Errorf("tokens = %v, want nil on error", tokens)
			}
		})
	}
}

func TestToken_String(t *testing.T) {
	if s := (Token{Kind: TokenFuncIdent, Value: "Sum"}).String(); s != "funcIDENT(Sum)" {
		t.Errorf("String() = %s", s)
	}
	if s := (Token{Kind: TokenEOF}).String(); s != "EOF" {
		t.Errorf("String() = %s", s)
	}
	if s := TokenKind(200).String(); s != "TokenKind(200)" {
		t.Errorf("unknown kind = %s", s)
	}
}
