// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading, parsing and accessing
//              configuration data from TOML and YAML files. Values can be
//              overridden by prefixed environment variables.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-14 v0.2.0: Environment lookups through xyproto/env, no watcher

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/tuplang/foundation/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values, dot keys allowed
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	return newConfig(data, filePath, format, options), nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	return LoadFromStringWithOptions(content, LoadOptions{Format: format})
}

// LoadFromStringWithOptions parses content and applies defaults and env prefix
func LoadFromStringWithOptions(content string, options LoadOptions) (*Config, error) {
	format := options.Format
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config from string").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return newConfig(data, "", format, options), nil
}

// Empty returns a configuration holding only defaults and environment overrides
func Empty(options LoadOptions) *Config {
	return newConfig(nil, "", FormatTOML, options)
}

func newConfig(data map[string]interface{}, filePath string, format Format, options LoadOptions) *Config {
	if data == nil {
		data = make(map[string]interface{})
	}
	c := &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}
	for _, key := range sortedKeys(options.Defaults) {
		if c.getValue(key) == nil {
			c.setValue(key, options.Defaults[key])
		}
	}
	return c
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.parseContent")
	}

	return data, nil
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	if envValue := c.getEnvValue(key); envValue != "" {
		return envValue
	}

	c.mu.RLock()
	value := c.getValue(key)
	c.mu.RUnlock()

	if value != nil {
		return fmt.Sprintf("%v", value)
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	fallback := 0
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}

	if envValue := c.getEnvValue(key); envValue != "" {
		if n, err := strconv.Atoi(envValue); err == nil {
			return n
		}
	}

	c.mu.RLock()
	value := c.getValue(key)
	c.mu.RUnlock()

	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	fallback := false
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}

	if envValue := c.getEnvValue(key); envValue != "" {
		if b, err := strconv.ParseBool(envValue); err == nil {
			return b
		}
	}

	c.mu.RLock()
	value := c.getValue(key)
	c.mu.RUnlock()

	switch v := value.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// GetDuration returns a duration configuration value with optional default
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	fallback := time.Duration(0)
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}
	if d, err := time.ParseDuration(c.GetString(key)); err == nil {
		return d
	}
	return fallback
}

// getValue walks dot-separated keys through nested maps. Callers hold mu.
func (c *Config) getValue(key string) interface{} {
	current := c.data
	keys := strings.Split(key, ".")

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

func (c *Config) setValue(key string, value interface{}) {
	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// getEnvValue is empty when no prefix is configured
func (c *Config) getEnvValue(key string) string {
	if c.envPrefix == "" {
		return ""
	}
	return env.Str(c.formatEnvKey(key))
}

// formatEnvKey converts a config key to environment variable format:
// parser.max_source_length with prefix TUPL becomes TUPL_PARSER_MAX_SOURCE_LENGTH
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return strings.ToUpper(strings.TrimSuffix(c.envPrefix, "_")) + "_" + envKey
}

// Has checks if a configuration key exists in the file or defaults
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.getValue(key) != nil
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setValue(key, value)
}

// FilePath returns the path the configuration was loaded from, if any
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the configuration format
func (c *Config) Format() Format {
	return c.format
}

// String returns a short description of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	source := c.filePath
	if source == "" {
		source = "<memory>"
	}
	return fmt.Sprintf("Config{source=%s, format=%s, keys=%d}", source, c.format, len(c.data))
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
