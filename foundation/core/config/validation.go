// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values against per-key rules for
//              presence, type, numeric bounds and allowed values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-14 v0.2.0: Reduced to the rule kinds the tupl keys need

package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ValidationRule defines validation criteria for configuration values
type ValidationRule struct {
	Required bool     // Whether the field is required
	Type     string   // "string", "int" or "bool"; empty skips the type check
	Min      *int     // Lower bound for "int"
	OneOf    []string // Allowed values for "string", compared case-insensitively
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate checks the effective value of each key, environment overrides
// included. Errors are ordered by key.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	raw, present := c.effectiveString(key)
	if !present {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "int":
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("field '%s' must be an integer, got %q", key, raw)
		}
		if rule.Min != nil && n < *rule.Min {
			return fmt.Errorf("field '%s' must be at least %d, got %d", key, *rule.Min, n)
		}
	case "bool":
		if _, err := strconv.ParseBool(raw); err != nil {
			return fmt.Errorf("field '%s' must be a boolean, got %q", key, raw)
		}
	}

	if len(rule.OneOf) > 0 {
		for _, allowed := range rule.OneOf {
			if strings.EqualFold(allowed, raw) {
				return nil
			}
		}
		return fmt.Errorf("field '%s' must be one of %s, got %q", key, strings.Join(rule.OneOf, ", "), raw)
	}

	return nil
}

func (c *Config) effectiveString(key string) (string, bool) {
	if envValue := c.getEnvValue(key); envValue != "" {
		return envValue, true
	}
	c.mu.RLock()
	value := c.getValue(key)
	c.mu.RUnlock()
	if value == nil {
		return "", false
	}
	return fmt.Sprintf("%v", value), true
}

// IntPtr returns a pointer to n for use in ValidationRule.Min
func IntPtr(n int) *int {
	return &n
}
