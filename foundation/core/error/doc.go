// Package error provides structured error handling for the TUPL toolchain.
//
// Package: error
// Title: TUPL Error Handling
// Description: Structured errors with codes, severity, operation and details.
//              The engine wraps fatal lexer and parser failures into *Error so
//              that the CLI and other callers can branch on the code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-14 v0.2.0: Front end codes
//
// Usage:
//
//	import mdwerror "github.com/msto63/tuplang/foundation/core/error"
//
//	err := mdwerror.Wrap(lexErr, "tokenize source").
//		WithCode(mdwerror.CodeLexical).
//		WithOperation("tupl.Check").
//		WithDetail("line", 3)
//
//	if mdwerror.HasCode(err, mdwerror.CodeLexical) {
//		// cannot proceed
//	}
package error
