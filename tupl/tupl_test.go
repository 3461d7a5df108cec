// File: tupl_test.go
// Title: TUPL Engine Tests
// Description: Tests for the check pipeline, error codes, size limits and
//              file input.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial engine tests
// - 2026-10-14 v0.2.0: TUPL check pipeline tests

package tupl

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/tuplang/foundation/core/error"
	mdwlog "github.com/msto63/tuplang/foundation/core/log"
	"github.com/msto63/tuplang/tupl/ast"
	"github.com/msto63/tuplang/tupl/parser"
)

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = mdwlog.Discard()
	}
	engine, err := NewEngine(opts)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

func TestEngine_Check(t *testing.T) {
	engine := newTestEngine(t, Options{})

	tests := []struct {
		name     string
		input    string
		wantCode mdwerror.Code
		check    func(t *testing.T, result *Result)
	}{
		{
			name:  "Valid program",
			input: "A <- 5. = A + 1.",
			check: func(t *testing.T, result *Result) {
				if !result.Valid() {
					t.Errorf("Expected valid program, got %q", result.Messages())
				}
				if len(result.Program.Definitions) != 1 {
					t.Errorf("Expected 1 definition, got %d", len(result.Program.Definitions))
				}
				if _, ok := result.Program.Definitions[0].(*ast.ConstantDefinition); !ok {
					t.Errorf("Expected constant_definition, got %T", result.Program.Definitions[0])
				}
				if result.Program.Return.Kind() != ast.KindReturnValue {
					t.Errorf("Expected simple_return_value, got %v", result.Program.Return.Kind())
				}
				if len(result.Tokens) != 10 || result.Tokens[9].Kind != parser.TokenEOF {
					t.Errorf("Expected 10 tokens ending in EOF, got %v", result.Tokens)
				}
			},
		},
		{
			name:  "Redefinition",
			input: "A <- 5. A <- 6. = A.",
			check: func(t *testing.T, result *Result) {
				if want := []string{"A is already defined!"}; !reflect.DeepEqual(result.Messages(), want) {
					t.Errorf("Messages() = %q, want %q", result.Messages(), want)
				}
				if result.Program == nil {
					t.Error("Expected tree alongside semantic diagnostics")
				}
			},
		},
		{
			name:  "Undefined name",
			input: "= B.",
			check: func(t *testing.T, result *Result) {
				if want := []string{"B is not defined!"}; !reflect.DeepEqual(result.Messages(), want) {
					t.Errorf("Messages() = %q, want %q", result.Messages(), want)
				}
			},
		},
		{
			name:  "Arity mismatch",
			input: "define Add[x,y] begin = x + y end. = Add[1].",
			check: func(t *testing.T, result *Result) {
				want := []string{"The number of parameters of the function Add should be 2"}
				if !reflect.DeepEqual(result.Messages(), want) {
					t.Errorf("Messages() = %q, want %q", result.Messages(), want)
				}
			},
		},
		{
			name:     "Lexical error",
			input:    "A <- 5 $.",
			wantCode: mdwerror.CodeLexical,
		},
		{
			name:     "Syntax error",
			input:    "A <- 5 = A.",
			wantCode: mdwerror.CodeSyntax,
		},
		{
			name:     "Empty source",
			input:    "",
			wantCode: mdwerror.CodeSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Check(tt.input)

			if tt.wantCode != "" {
				if err == nil {
					t.Fatalf("Expected %s error, got result %+v", tt.wantCode, result)
				}
				if got := mdwerror.GetCode(err); got != tt.wantCode {
					t.Errorf("GetCode() = %s, want %s", got, tt.wantCode)
				}
				if result != nil {
					t.Errorf("Expected nil result on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if result.RunID == uuid.Nil {
				t.Error("Expected a run ID")
			}
			if result.Source != tt.input {
				t.Errorf("Source = %q, want %q", result.Source, tt.input)
			}
			if tt.check != nil {
				tt.check(t, result)
			}
		})
	}
}

func TestEngine_ErrorsUnwrapToStageErrors(t *testing.T) {
	engine := newTestEngine(t, Options{})

	_, err := engine.Check("= 1 ? 2.")
	var lexErr *parser.LexicalError
	if !errors.As(err, &lexErr) || lexErr.Char != "?" {
		t.Errorf("Check() error = %v, want *parser.LexicalError for '?'", err)
	}
	if !strings.Contains(err.Error(), "illegal character '?' at line 1, column 5") {
		t.Errorf("error message = %q", err.Error())
	}

	_, err = engine.Parse("= 1")
	var synErr *parser.SyntaxError
	if !errors.As(err, &synErr) || synErr.Token.Kind != parser.TokenEOF {
		t.Errorf("Parse() error = %v, want *parser.SyntaxError at EOF", err)
	}
	if !mdwerror.HasCode(err, mdwerror.CodeSyntax) {
		t.Errorf("Parse() error code = %s", mdwerror.GetCode(err))
	}
}

func TestEngine_RunIDsAreUnique(t *testing.T) {
	engine := newTestEngine(t, Options{})

	first, err := engine.Check("= 1.")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	second, err := engine.Check("= 1.")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if first.RunID == second.RunID {
		t.Errorf("run IDs repeat: %s", first.RunID)
	}
}

func TestEngine_Limits(t *testing.T) {
	if _, err := NewEngine(Options{MaxSourceLength: -1}); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("NewEngine(-1) error = %v", err)
	}

	engine := newTestEngine(t, Options{MaxSourceLength: 8})
	if _, err := engine.Check("= 1 + 2."); err != nil {
		t.Errorf("8 bytes should pass, got %v", err)
	}
	_, err := engine.Check("= 1 + 22.")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("9 bytes error = %v, want %s", err, mdwerror.CodeInvalidInput)
	}
	if _, err := engine.Tokenize("= 1 + 22."); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("Tokenize() error = %v, want %s", err, mdwerror.CodeInvalidInput)
	}

	engine = newTestEngine(t, Options{MaxTokens: 4})
	if _, err := engine.Check("= 1 + 2."); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("token limit error = %v, want %s", err, mdwerror.CodeInvalidInput)
	}
}

func TestEngine_CheckFile(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.tupl")
	broken := filepath.Join(dir, "broken.tupl")
	if err := os.WriteFile(valid, []byte("<t> <- [1,2,3].\n[1,2,3] -> <u>.\n!= <t> ++ <u>.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(broken, []byte("= 1"), 0o644); err != nil {
		t.Fatal(err)
	}

	engine := newTestEngine(t, Options{})

	result, err := engine.CheckFile(valid)
	if err != nil {
		t.Fatalf("CheckFile() error = %v", err)
	}
	if result.Path != valid || !result.Valid() {
		t.Errorf("result = %+v", result)
	}

	_, err = engine.CheckFile(broken)
	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) || mdwErr.Details()["path"] != broken {
		t.Errorf("CheckFile(broken) error = %v, want path detail", err)
	}

	if _, err := engine.CheckFile(filepath.Join(dir, "missing.tupl")); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("missing file error = %v, want %s", err, mdwerror.CodeNotFound)
	}

	small := newTestEngine(t, Options{MaxSourceLength: 4})
	if _, err := small.CheckFile(valid); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("oversized file error = %v, want %s", err, mdwerror.CodeInvalidInput)
	}
}
