// File: validation.go
// Title: Configuration Validation Implementation
// Description: Checks configuration values against declared rules: presence,
//              kind, numeric or length bounds, allowed values and patterns.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation of validation
// - 2026-10-19 v0.2.0: Rules expressed in value kinds, struct binding removed

package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	mdwerror "github.com/msto63/mdwkit/foundation/core/error"
	mdwerrors "github.com/msto63/mdwkit/foundation/core/errors"
	mdwstringx "github.com/msto63/mdwkit/foundation/utils/stringx"
	"github.com/msto63/mdwkit/foundation/utils/valuex"
)

// ValidationRule defines validation criteria for one configuration key.
// Min and Max bound integers by value and strings by character count.
type ValidationRule struct {
	Required bool
	Kind     valuex.Kind
	Min      *int64
	Max      *int64
	OneOf    []string
	Pattern  string
}

// ValidationRules maps dot separated keys to their rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err returns nil for a valid result and a VALIDATION_FAILED error otherwise
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
		Operation("validate").
		Messagef("invalid configuration: %s", strings.Join(r.Errors, "; ")).
		Code(mdwerror.CodeValidationFailed).
		Severity(mdwerror.SeverityLow).
		Detail("errors", r.Errors).
		Build()
}

// Bound is a helper for the Min and Max rule fields
func Bound(n int64) *int64 {
	return &n
}

// Validate checks the configuration against rules. Keys are checked in
// sorted order so error lists are stable. Environment overrides take
// precedence over file values.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
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
	var value valuex.Value
	present := false
	if envValue, ok := c.getEnvValue(key); ok {
		value, present = envScalar(envValue), true
	} else {
		value, present = c.getValue(key)
	}

	if !present || value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	kind := valuex.KindOf(value)
	if rule.Kind != valuex.KindInvalid && kind != rule.Kind {
		return fmt.Errorf("field '%s' must be %s, got %s", key, rule.Kind, kind)
	}

	if err := validateBounds(key, value, rule); err != nil {
		return err
	}

	s, isString := value.(string)
	if len(rule.OneOf) > 0 && isString && !oneOf(rule.OneOf, s) {
		return fmt.Errorf("field '%s' must be one of %s, got %q", key, strings.Join(rule.OneOf, ", "), s)
	}
	if rule.Pattern != "" && isString {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern for field '%s': %v", key, err)
		}
		if !re.MatchString(s) {
			return fmt.Errorf("field '%s' does not match pattern %s", key, rule.Pattern)
		}
	}
	return nil
}

func validateBounds(key string, value valuex.Value, rule ValidationRule) error {
	var n int64
	unit := ""
	switch v := value.(type) {
	case int64:
		n = v
	case string:
		n, unit = int64(mdwstringx.CharCount(v)), " characters"
	default:
		return nil
	}

	if rule.Min != nil && n < *rule.Min {
		return fmt.Errorf("field '%s' must be at least %d%s, got %d", key, *rule.Min, unit, n)
	}
	if rule.Max != nil && n > *rule.Max {
		return fmt.Errorf("field '%s' must be at most %d%s, got %d", key, *rule.Max, unit, n)
	}
	return nil
}

func oneOf(options []string, s string) bool {
	for _, o := range options {
		if strings.EqualFold(o, s) {
			return true
		}
	}
	return false
}

// envScalar types an environment value the way a YAML scalar would be typed,
// so MDWKIT_TEXT_WIDTH=40 validates as an integer
func envScalar(raw string) valuex.Value {
	v, err := valuex.Decode([]byte(raw), valuex.FormatYAML)
	if err != nil || !valuex.KindOf(v).IsScalar() || v == nil {
		return raw
	}
	return v
}
