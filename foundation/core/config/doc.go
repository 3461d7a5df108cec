// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration files with
//              environment variable overrides and dot-notation access.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-14 v0.2.0: Discovery of tupl.toml / tupl.yaml, env via xyproto/env

/*
Package config provides configuration loading for the tupl command.

Files are TOML or YAML, detected by extension. Nested tables are addressed
with dot notation:

	[log]
	level = "debug"

	[parser]
	max_source_length = 65536

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
	level := cfg.GetString("log.level", "info")

With an environment prefix set, TUPL_LOG_LEVEL overrides log.level and
TUPL_PARSER_MAX_SOURCE_LENGTH overrides parser.max_source_length. Empty
environment variables are treated as unset.

Validate checks values against ValidationRules and reports every violation
at once.
*/
package config
