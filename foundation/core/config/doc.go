// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads TOML and YAML documents and extracts the
//              category level table used by the filter package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: Level section extraction

/*
Package config loads level configuration for category filters.

A level section is a table of category names to level tokens. In TOML the
category names are usually quoted so the dots stay part of the key:

	[Logging.LogLevel]
	Default = "Warning"
	"MyApp.Data" = "Debug"

Unquoted dotted keys create nested tables; Section flattens those back into
dotted keys, so `MyApp.Data = "Debug"` is equivalent. YAML works the same:

	Logging:
	  LogLevel:
	    Default: Warning
	    MyApp.Data: Debug

Level tokens are case-insensitive; category names are not.

# Loading

	cfg, err := config.Load("logging.toml")
	if err != nil {
		return err
	}

	levels, err := cfg.LevelMap(config.DefaultSection)
	if err != nil {
		// err lists skipped entries; levels still holds the valid ones
	}

A missing section is not an error: LevelMap returns an empty map, and an
empty map means no filter is configured.

# Environment Override

With LoadOptions.EnvPrefix set, the "Default" entry can be overridden:

	MYAPP_LOGGING_LOGLEVEL_DEFAULT=Error

# Discovery

Discover searches ./logging.toml, ./appsettings.yaml and friends, returning an
empty configuration when nothing is found and the file is not Required.
*/
package config
