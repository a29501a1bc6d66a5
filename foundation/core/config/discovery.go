// File: discovery.go
// Title: Configuration File Discovery
// Description: Locates a configuration file in a list of directories when no
//              explicit path is given.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Logging file names, missing file yields empty config

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lferror "github.com/msto63/logfilter/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the default search locations
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		Paths:      []string{".", "./config"},
		Filenames:  []string{"logging", "appsettings"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// Discover loads the first configuration file found. When none exists and
// the file is not required an empty configuration is returned, which yields
// empty level maps.
func Discover(options DiscoveryOptions) (*Config, error) {
	candidates := ListPossibleConfigFiles(options)

	for _, configPath := range candidates {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			cfg, err := LoadWithOptions(configPath, LoadOptions{
				Format:    FormatAuto,
				EnvPrefix: options.EnvPrefix,
			})
			if err != nil {
				return nil, lferror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", configPath)).
					WithOperation("config.Discover").
					WithDetail("configPath", configPath)
			}
			return cfg, nil
		}
	}

	if options.Required {
		return nil, lferror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(candidates, ", "))).
			WithCode(lferror.CodeNotFound).
			WithOperation("config.Discover").
			WithDetail("searchPaths", candidates)
	}

	cfg := Empty()
	cfg.envPrefix = options.EnvPrefix
	return cfg, nil
}

// ListPossibleConfigFiles returns every path Discover would try, in order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"logging"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}
