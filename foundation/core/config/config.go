// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type: loading TOML, YAML or JSON files
//              into an ordered value tree, dot path getters and environment
//              variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Ordered valuex tree, watcher and tracing fields removed

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	mdwerror "github.com/msto63/mdwkit/foundation/core/error"
	mdwerrors "github.com/msto63/mdwkit/foundation/core/errors"
	"github.com/msto63/mdwkit/foundation/utils/filex"
	mdwstringx "github.com/msto63/mdwkit/foundation/utils/stringx"
	"github.com/msto63/mdwkit/foundation/utils/valuex"
)

// EnvPrefix is the environment prefix used by the mdwkit command line tool.
// The key text.marker is overridden by MDWKIT_TEXT_MARKER.
const EnvPrefix = "MDWKIT"

// Config holds a loaded configuration tree with thread-safe access
type Config struct {
	mu        sync.RWMutex
	root      *valuex.Object
	filePath  string
	format    valuex.Format
	envPrefix string
	lookupEnv func(string) (string, bool)
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    valuex.Format  // File format, detected from the extension when empty
	EnvPrefix string         // Environment variable prefix, no overrides when empty
	Defaults  *valuex.Object // Values used where the file has none
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if mdwstringx.IsBlank(filePath) {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleConfig, "load", filePath, "a config file path")
	}

	format := options.Format
	if format == "" {
		detected, ok := valuex.FormatFromPath(filePath)
		if !ok {
			detected = valuex.FormatTOML
		}
		format = detected
	}

	content, err := filex.ReadFile(filePath)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithOperation("config.load").
			WithDetail("file_path", filePath)
	}

	cfg, err := parse(content, format, options)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file "+filePath).
			WithOperation("config.load").
			WithDetail("file_path", filePath)
	}
	cfg.filePath = filePath
	return cfg, nil
}

// LoadFromString loads configuration from a string in the given format
func LoadFromString(content string, format valuex.Format) (*Config, error) {
	return parse([]byte(content), format, LoadOptions{Format: format})
}

func parse(content []byte, format valuex.Format, options LoadOptions) (*Config, error) {
	if format == valuex.FormatMsgpack || format == valuex.FormatBSON {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleConfig, "parse", string(format), "toml, yaml or json")
	}

	decoded, err := valuex.Decode(content, format)
	if err != nil {
		return nil, err
	}

	var root *valuex.Object
	switch t := decoded.(type) {
	case nil:
		root = valuex.NewObject()
	case *valuex.Object:
		root = t
	default:
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("parse").
			Messagef("config root must be a table, got %s", valuex.KindOf(decoded)).
			Code(mdwerror.CodeInvalidConfig).
			Severity(mdwerror.SeverityLow).
			Detail("format", string(format)).
			Build()
	}

	if options.Defaults != nil {
		mergeDefaults(root, options.Defaults)
	}

	return &Config{
		root:      root,
		format:    format,
		envPrefix: options.EnvPrefix,
		lookupEnv: os.LookupEnv,
	}, nil
}

// New returns an empty configuration, used when no file is present
func New(envPrefix string) *Config {
	return &Config{
		root:      valuex.NewObject(),
		format:    valuex.FormatTOML,
		envPrefix: envPrefix,
		lookupEnv: os.LookupEnv,
	}
}

// mergeDefaults adds every key of defaults that dst lacks, descending into
// tables present on both sides
func mergeDefaults(dst, defaults *valuex.Object) {
	defaults.Range(func(key string, value valuex.Value) bool {
		existing, ok := dst.Get(key)
		if !ok {
			dst.Set(key, valuex.DeepClone(value))
			return true
		}
		if a, ok := existing.(*valuex.Object); ok {
			if b, ok := value.(*valuex.Object); ok {
				mergeDefaults(a, b)
			}
		}
		return true
	})
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	if envValue, ok := c.getEnvValue(key); ok {
		return envValue
	}

	value, ok := c.getValue(key)
	if !ok || value == nil {
		return first(defaultValue, "")
	}
	switch v := value.(type) {
	case string:
		return v
	case *valuex.Object, valuex.List:
		return first(defaultValue, "")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	if envValue, ok := c.getEnvValue(key); ok {
		if intVal, err := strconv.Atoi(strings.TrimSpace(envValue)); err == nil {
			return intVal
		}
	}

	value, _ := c.getValue(key)
	switch v := value.(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		if v == float64(int64(v)) {
			return int(v)
		}
	case string:
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}
	return first(defaultValue, 0)
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	if envValue, ok := c.getEnvValue(key); ok {
		if boolVal, err := strconv.ParseBool(strings.TrimSpace(envValue)); err == nil {
			return boolVal
		}
	}

	value, _ := c.getValue(key)
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}
	return first(defaultValue, false)
}

// GetFloat returns a float64 configuration value with optional default
func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	if envValue, ok := c.getEnvValue(key); ok {
		if floatVal, err := strconv.ParseFloat(strings.TrimSpace(envValue), 64); err == nil {
			return floatVal
		}
	}

	value, _ := c.getValue(key)
	switch v := value.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case string:
		if floatVal, err := strconv.ParseFloat(v, 64); err == nil {
			return floatVal
		}
	}
	return first(defaultValue, 0)
}

// GetDuration returns a duration written as "1m30s" with optional default.
// Plain integers are read as seconds.
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	if envValue, ok := c.getEnvValue(key); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(envValue)); err == nil {
			return d
		}
	}

	value, _ := c.getValue(key)
	switch v := value.(type) {
	case string:
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	case int64:
		return time.Duration(v) * time.Second
	}
	return first(defaultValue, 0)
}

// GetStringSlice returns a list of strings. A comma separated environment
// value overrides the file.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	if envValue, ok := c.getEnvValue(key); ok {
		parts := strings.Split(envValue, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}

	value, _ := c.getValue(key)
	switch v := value.(type) {
	case valuex.List:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		return []string{v}
	}
	return first(defaultValue, nil)
}

func first[T any](values []T, fallback T) T {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}

// getValue resolves a dot separated key against the tree
func (c *Config) getValue(key string) (valuex.Value, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, err := valuex.Get(c.root, key)
	if err != nil {
		return nil, false
	}
	return v, true
}

// getEnvValue looks up the environment override for key, if any
func (c *Config) getEnvValue(key string) (string, bool) {
	if c.envPrefix == "" || c.lookupEnv == nil {
		return "", false
	}
	return c.lookupEnv(c.EnvKey(key))
}

// EnvKey returns the environment variable that overrides key
func (c *Config) EnvKey(key string) string {
	envKey := strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// Has checks if a configuration key exists in the file or the environment
func (c *Config) Has(key string) bool {
	if _, ok := c.getEnvValue(key); ok {
		return true
	}
	_, ok := c.getValue(key)
	return ok
}

// Set stores value under a dot separated key, creating intermediate tables.
// Changes live in memory only.
func (c *Config) Set(key string, value valuex.Value) error {
	if mdwstringx.IsBlank(key) {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleConfig, "set", key, "a non-empty key")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	parts := strings.Split(key, ".")
	current := c.root
	for i, part := range parts[:len(parts)-1] {
		next, ok := current.Get(part)
		if !ok {
			child := valuex.NewObject()
			current.Set(part, child)
			current = child
			continue
		}
		obj, ok := next.(*valuex.Object)
		if !ok {
			return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
				Operation("set").
				Messagef("%s is a %s, not a table", strings.Join(parts[:i+1], "."), valuex.KindOf(next)).
				Code(mdwerror.CodeInvalidArgument).
				Severity(mdwerror.SeverityLow).
				Detail("key", key).
				Build()
		}
		current = obj
	}
	current.Set(parts[len(parts)-1], value)
	return nil
}

// GetAll returns an independent copy of the whole configuration tree
func (c *Config) GetAll() *valuex.Object {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return valuex.DeepClone(c.root).(*valuex.Object)
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() valuex.Format {
	return c.format
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{"Config{format: " + string(c.format)}
	if c.filePath != "" {
		parts = append(parts, "path: "+c.filePath)
	}
	if c.envPrefix != "" {
		parts = append(parts, "envPrefix: "+c.envPrefix)
	}
	parts = append(parts, fmt.Sprintf("keys: %d}", c.root.Len()))
	return strings.Join(parts, ", ")
}
