// ============================================================================
// tuplang - TUPL language tools
// ============================================================================
//
// Package:     version
// Description: Central version management for the tupl tools
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants for the tupl tools
const (
	// Tool version
	Tool = "0.2.0"

	// Language version accepted by the front end
	Language = "1.0.0"

	// Component versions
	Lexer    = "1.0.0"
	Parser   = "1.0.0"
	Semantic = "1.0.0"
	History  = "1.0.0"
)

// Build information, set with -ldflags "-X ..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Components lists the component names known to ComponentVersion
var Components = []string{"lexer", "parser", "semantic", "history"}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	case "semantic":
		return Semantic
	case "history":
		return History
	default:
		return Tool
	}
}

// String returns the one-line version banner
func String() string {
	return fmt.Sprintf("tupl %s (language %s, commit %s, built %s)", Tool, Language, Commit, BuildDate)
}
