// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes and severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-14 v0.2.0: Front end codes

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type positionalError struct{ line int }

func (p *positionalError) Error() string { return fmt.Sprintf("bad input at line %d", p.line) }

func TestNew(t *testing.T) {
	err := New("test error message")

	if err.Error() != "test error message" {
		t.Errorf("Error() = %q, want %q", err.Error(), "test error message")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap coded error keeps code",
			err:      New("unexpected token").WithCode(CodeSyntax),
			message:  "parse source",
			wantMsg:  "parse source: unexpected token",
			wantCode: CodeSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is should find the wrapped error")
			}
		})
	}
}

func TestWrap_ErrorsAsReachesCause(t *testing.T) {
	err := Wrap(&positionalError{line: 7}, "tokenize").WithCode(CodeLexical)

	var pos *positionalError
	if !errors.As(err, &pos) {
		t.Fatal("errors.As did not reach the positional error")
	}
	if pos.line != 7 {
		t.Errorf("line = %d, want 7", pos.line)
	}
}

func TestWithCode_SetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeLexical, SeverityLow},
		{CodeSyntax, SeverityLow},
		{CodeDatabaseError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeConfigError, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeSyntax)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestHasCode(t *testing.T) {
	inner := New("bad char").WithCode(CodeLexical)
	outer := Wrap(inner, "check file").WithCode(CodeInvalidInput)

	if !HasCode(outer, CodeInvalidInput) {
		t.Error("outer code not found")
	}
	if !HasCode(outer, CodeLexical) {
		t.Error("inner code not found through chain")
	}
	if HasCode(outer, CodeSyntax) {
		t.Error("unexpected code found")
	}
	if HasCode(errors.New("plain"), CodeLexical) {
		t.Error("plain errors carry no code")
	}
	if GetCode(fmt.Errorf("ctx: %w", outer)) != CodeInvalidInput {
		t.Error("GetCode should see through fmt wrapping")
	}
}

func TestDetailsAndString(t *testing.T) {
	err := New("unexpected token").
		WithCode(CodeSyntax).
		WithOperation("parser.Parse").
		WithDetail("line", 3).
		WithDetail("token", "DOT")

	details := err.Details()
	details["line"] = 99
	if err.Details()["line"] != 3 {
		t.Error("Details() must return a copy")
	}

	s := err.String()
	for _, want := range []string{"Code: TUPL_SYNTAX", "Operation: parser.Parse", "Details: {line=3, token=DOT}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("boom"), "open history").WithCode(CodeDatabaseError)

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("Marshal() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("Unmarshal() error = %v", jsonErr)
	}
	if decoded["code"] != "DATABASE_ERROR" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["severity"] != "high" {
		t.Errorf("severity = %v", decoded["severity"])
	}
	if decoded["cause"] != "boom" {
		t.Errorf("cause = %v", decoded["cause"])
	}
}

func TestCodeHelpers(t *testing.T) {
	if !CodeLexical.IsFatal() || !CodeSyntax.IsFatal() {
		t.Error("lexical and syntax codes are fatal")
	}
	if CodeSemantic.IsFatal() {
		t.Error("semantic code is not fatal")
	}
	if CodeSemantic.Category() != "language" {
		t.Errorf("Category() = %q", CodeSemantic.Category())
	}
	if Code("BOGUS").IsValid() {
		t.Error("unknown code reported valid")
	}
}
