// File: config.go
// Title: Level Configuration Loading
// Description: Loads TOML and YAML documents and extracts the category level
//              section as a filter.LevelMap. Keys inside the section are kept
//              verbatim so dotted category names survive; nested tables are
//              flattened with "." so unquoted dotted keys work as well.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: Read-only documents, level section extraction

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	lferror "github.com/msto63/logfilter/foundation/core/error"
	"github.com/msto63/logfilter/foundation/core/filter"
)

// DefaultSection is the dot path of the category level table
const DefaultSection = "Logging.LogLevel"

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

// Config is a parsed configuration document. It is never modified after
// loading and may be shared between goroutines.
type Config struct {
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format // File format (default: auto-detect)
	EnvPrefix string // Environment variable prefix (default: none)
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format: FormatAuto,
	})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, lferror.New("config file path cannot be empty").
			WithCode(lferror.CodeValidationFailed).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, lferror.New(fmt.Sprintf("config file not found: %s", filePath)).
				WithCode(lferror.CodeNotFound).
				WithOperation("config.LoadWithOptions").
				WithDetail("filePath", filePath)
		}
		return nil, lferror.Wrap(err, "failed to read config file").
			WithCode(lferror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, lferror.Wrap(err, "failed to parse config file").
			WithCode(lferror.CodeInvalidInput).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, lferror.Wrap(err, "failed to parse config from string").
			WithCode(lferror.CodeInvalidInput).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{
		data:   data,
		format: format,
	}, nil
}

// Empty returns a configuration without any data
func Empty() *Config {
	return &Config{data: make(map[string]interface{})}
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
			return nil, lferror.Wrap(err, "TOML parse error").
				WithCode(lferror.CodeInvalidInput).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, lferror.Wrap(err, "YAML parse error").
				WithCode(lferror.CodeInvalidInput).
				WithOperation("config.parseContent")
		}
	default:
		return nil, lferror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(lferror.CodeInvalidInput).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// getValue retrieves a value by dot path
func (c *Config) getValue(path string) interface{} {
	if path == "" {
		return c.data
	}

	current := c.data
	keys := strings.Split(path, ".")
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

// GetString returns a string value by dot path with optional default
func (c *Config) GetString(path string, defaultValue ...string) string {
	switch v := c.getValue(path).(type) {
	case nil:
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Has checks if a value exists at the dot path
func (c *Config) Has(path string) bool {
	return c.getValue(path) != nil
}

// Section returns the table at path with nested tables flattened into
// dotted keys. A missing path or a non-table value yields an empty map.
// When a quoted dotted key and a nested table name the same category, the
// shallower entry is kept.
func (c *Config) Section(path string) map[string]interface{} {
	out, _ := c.section(path)
	return out
}

// HasSection reports whether the table at path exists and has entries
func (c *Config) HasSection(path string) bool {
	return len(c.Section(path)) > 0
}

func (c *Config) section(path string) (map[string]interface{}, []duplicate) {
	out := make(map[string]interface{})
	table, ok := c.getValue(path).(map[string]interface{})
	if !ok {
		return out, nil
	}
	return out, flatten("", table, out)
}

// duplicate is a flattened key that was already taken
type duplicate struct {
	key   string
	value interface{}
}

// flatten copies scalar entries before descending into nested tables, each
// in sorted key order, so the first writer of a key is deterministic.
func flatten(prefix string, table map[string]interface{}, out map[string]interface{}) []duplicate {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}

	var dups []duplicate
	for _, k := range keys {
		if _, ok := table[k].(map[string]interface{}); ok {
			continue
		}
		key := join(k)
		if _, taken := out[key]; taken {
			dups = append(dups, duplicate{key: key, value: table[k]})
			continue
		}
		out[key] = table[k]
	}
	for _, k := range keys {
		if nested, ok := table[k].(map[string]interface{}); ok {
			dups = append(dups, flatten(join(k), nested, out)...)
		}
	}
	return dups
}

// LevelMap extracts the category level table at path. An absent or empty
// section yields an empty map and no error. Entries that are not strings,
// carry an unknown level token or repeat an already flattened key are
// skipped and reported together.
func (c *Config) LevelMap(path string) (filter.LevelMap, error) {
	section, dups := c.section(path)

	keys := make([]string, 0, len(section))
	for k := range section {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	raw := make(map[string]string, len(section))
	var errs []error
	for _, d := range dups {
		cause := lferror.New("category already defined by a shallower entry").
			WithCode(lferror.CodeInvalidConfig)
		errs = append(errs, filter.InvalidEntryError(d.key, d.value, cause))
	}
	for _, k := range keys {
		s, ok := section[k].(string)
		if !ok {
			errs = append(errs, filter.InvalidEntryError(k, section[k], nil))
			continue
		}
		raw[k] = s
	}

	if c.envPrefix != "" {
		if v := os.Getenv(c.DefaultLevelEnvKey(path)); v != "" {
			raw[filter.DefaultKey] = v
		}
	}

	levels, err := filter.NewLevelMap(raw)
	errs = append(errs, err)
	return levels, errors.Join(errs...)
}

// DefaultLevelEnvKey returns the environment variable that overrides the
// "Default" entry of the section at path, e.g. MYAPP_LOGGING_LOGLEVEL_DEFAULT.
func (c *Config) DefaultLevelEnvKey(path string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(path, ".", "_")) + "_" + strings.ToUpper(filter.DefaultKey)
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	return c.format
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	parts := []string{
		fmt.Sprintf("Config{format: %s", c.format.String()),
	}

	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}

	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}

	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))

	return strings.Join(parts, ", ")
}
