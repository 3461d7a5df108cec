// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Searches a list of candidate paths for the first readable
//              configuration file and loads it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-14 v0.2.0: Explicit candidate list, optional home directory entry

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/tuplang/foundation/core/error"
	"github.com/msto63/tuplang/foundation/utils/filex"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Candidates []string               // Files to try in order; "~/" expands to the home directory
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Default values
	Required   bool                   // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search order used by the tupl command
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		Candidates: []string{"./tupl.toml", "./tupl.yaml", "~/.config/tupl/config.toml"},
		EnvPrefix:  "TUPL",
	}
}

// Discover loads the first existing candidate. When none exists and the
// search is not required, it returns a configuration holding only defaults.
func Discover(options DiscoveryOptions) (*Config, error) {
	loadOptions := LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	}

	configPath, err := FindConfigFile(options)
	if err == nil {
		cfg, loadErr := LoadWithOptions(configPath, loadOptions)
		if loadErr != nil {
			return nil, mdwerror.Wrap(loadErr, fmt.Sprintf("found config file %s but failed to load", configPath)).
				WithOperation("config.Discover").
				WithDetail("configPath", configPath)
		}
		return cfg, nil
	}

	if options.Required {
		searched := ListPossibleConfigFiles(options)
		return nil, mdwerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(searched, ", "))).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.Discover").
			WithDetail("searchPaths", searched)
	}

	return Empty(loadOptions), nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if filex.IsFile(configPath) {
			return configPath, nil
		}
	}

	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns the candidates with the home directory expanded.
// A "~/" candidate is skipped when the home directory is unknown.
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Candidates))
	for _, candidate := range options.Candidates {
		if strings.HasPrefix(candidate, "~/") {
			home, err := os.UserHomeDir()
			if err != nil {
				continue
			}
			candidate = filepath.Join(home, candidate[2:])
		}
		paths = append(paths, filepath.Clean(candidate))
	}
	return paths
}
