// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used when logging and reporting errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Severity mapping for front end codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates problems in user input (source text, flags)
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific code
	SeverityMedium

	// SeverityHigh indicates failing infrastructure such as the history database
	SeverityHigh

	// SeverityCritical indicates a broken invariant inside the toolchain
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeDatabaseError:
		return SeverityHigh
	case CodeLexical, CodeSyntax, CodeSemantic, CodeInvalidInput, CodeNotFound,
		CodeInvalidConfig:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
