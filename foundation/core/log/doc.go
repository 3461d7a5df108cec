// Package log provides structured logging for the TUPL toolchain.
//
// Package: log
// Title: TUPL Structured Logging
// Description: Leveled, field-based logging with JSON, text, console and
//              logfmt output. Front end components derive a logger with a
//              "component" field; the CLI configures format and level.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-14 v0.2.0: Synchronous writer only, deterministic field order
//
// Usage:
//
//	import mdwlog "github.com/msto63/tuplang/foundation/core/log"
//
//	logger := mdwlog.GetDefault().WithField("component", "tupl-parser")
//	logger.Debug("Parsing completed", mdwlog.Fields{"definitions": 4})
package log
