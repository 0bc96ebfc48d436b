// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the main Config type and core functionality for
//              loading, parsing, and accessing configuration data from TOML
//              and YAML files with environment variable support.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mofxerror "github.com/msto63/mOFX/foundation/core/error"
	mofxstringx "github.com/msto63/mOFX/foundation/utils/stringx"
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
	Defaults  map[string]interface{} // Default values
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format: FormatAuto,
	})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if mofxstringx.IsBlank(filePath) {
		return nil, mofxerror.New("config file path cannot be empty").
			WithCode(mofxerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, mofxerror.Newf("config file not found: %s", filePath).
			WithCode(mofxerror.CodeMissingConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, mofxerror.Wrap(err, "failed to read config file").
			WithCode(mofxerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	data := make(map[string]interface{})
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(raw, &data); err != nil {
			return nil, mofxerror.Wrap(err, "failed to parse TOML config").
				WithCode(mofxerror.CodeInvalidConfig).
				WithDetail("filePath", filePath)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, mofxerror.Wrap(err, "failed to parse YAML config").
				WithCode(mofxerror.CodeInvalidConfig).
				WithDetail("filePath", filePath)
		}
	default:
		return nil, mofxerror.Newf("unsupported config format: %s", format).
			WithCode(mofxerror.CodeInvalidConfig).
			WithDetail("filePath", filePath)
	}

	// Apply defaults for keys the file does not set
	cfg := &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}
	for key, value := range options.Defaults {
		if !cfg.Has(key) {
			cfg.set(key, value)
		}
	}

	return cfg, nil
}

// NewFromMap creates a configuration from an in-memory map (useful for tests)
func NewFromMap(data map[string]interface{}) *Config {
	if data == nil {
		data = make(map[string]interface{})
	}
	return &Config{data: data, format: FormatTOML}
}

// detectFormat determines the format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Has returns true if the key exists in the configuration or environment
func (c *Config) Has(key string) bool {
	if _, ok := c.lookupEnv(key); ok {
		return true
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	_, found := c.lookup(key)
	return found
}

// Get returns the raw value for a dot-notation key, or nil if missing.
// Environment variables (prefix + key with dots replaced by underscores,
// uppercased) take precedence over file values.
func (c *Config) Get(key string) interface{} {
	if env, ok := c.lookupEnv(key); ok {
		return env
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	value, _ := c.lookup(key)
	return value
}

// GetString returns a string value, or the default if missing
func (c *Config) GetString(key, def string) string {
	value := c.Get(key)
	if value == nil {
		return def
	}
	switch v := value.(type) {
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer value, or the default if missing or unparsable
func (c *Config) GetInt(key string, def int) int {
	value := c.Get(key)
	if value == nil {
		return def
	}
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	return def
}

// GetBool returns a boolean value, or the default if missing or unparsable
func (c *Config) GetBool(key string, def bool) bool {
	value := c.Get(key)
	if value == nil {
		return def
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	return def
}

// GetFloat returns a float value, or the default if missing or unparsable
func (c *Config) GetFloat(key string, def float64) float64 {
	value := c.Get(key)
	if value == nil {
		return def
	}
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return parsed
		}
	}
	return def
}

// GetDuration returns a duration value, or the default if missing or unparsable
func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	value := c.Get(key)
	if value == nil {
		return def
	}
	switch v := value.(type) {
	case string:
		if parsed, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	case int:
		return time.Duration(v) * time.Second
	case int64:
		return time.Duration(v) * time.Second
	}
	return def
}

// lookup resolves a dot-notation key against the nested data map.
// Caller must hold at least a read lock.
func (c *Config) lookup(key string) (interface{}, bool) {
	parts := strings.Split(key, ".")
	current := interface{}(c.data)

	for _, part := range parts {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[part]
			if !ok {
				return nil, false
			}
			current = value
		case map[interface{}]interface{}: // yaml.v3 rarely produces these, but be safe
			value, ok := node[part]
			if !ok {
				return nil, false
			}
			current = value
		default:
			return nil, false
		}
	}

	return current, true
}

// lookupEnv checks for an environment variable override
func (c *Config) lookupEnv(key string) (string, bool) {
	if c.envPrefix == "" {
		return "", false
	}
	envKey := c.envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return os.LookupEnv(envKey)
}

// set stores a value under a dot-notation key, creating intermediate maps
func (c *Config) set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	parts := strings.Split(key, ".")
	current := c.data
	for i, part := range parts {
		if i == len(parts)-1 {
			current[part] = value
			return
		}
		next, ok := current[part].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[part] = next
		}
		current = next
	}
}
