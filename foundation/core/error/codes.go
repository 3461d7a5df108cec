// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the TUPL toolchain. Codes
//              classify failures of the front end stages, configuration and
//              the check history store.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-14 v0.2.0: Reduced to the codes used by the TUPL front end

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Language front end
	CodeLexical  Code = "TUPL_LEXICAL"
	CodeSyntax   Code = "TUPL_SYNTAX"
	CodeSemantic Code = "TUPL_SEMANTIC"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Storage
	CodeDatabaseError Code = "DATABASE_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeLexical, CodeSyntax, CodeSemantic,
		CodeConfigError, CodeInvalidConfig,
		CodeDatabaseError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeSyntax, CodeSemantic:
		return "language"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeDatabaseError:
		return "database"
	default:
		return "generic"
	}
}

// IsFatal reports whether a failure with this code stops the front end
// before an AST is available.
func (c Code) IsFatal() bool {
	return c == CodeLexical || c == CodeSyntax
}
