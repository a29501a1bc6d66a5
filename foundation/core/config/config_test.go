// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML loading, section flattening, level map
//              extraction, environment override and discovery.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-17 v0.2.0: Level section tests

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	lferror "github.com/msto63/logfilter/foundation/core/error"
	"github.com/msto63/logfilter/foundation/core/filter"
	"github.com/msto63/logfilter/foundation/core/log"
)

const tomlLevels = `
[Logging]
Format = "text"

[Logging.LogLevel]
Default = "Warning"
"AWS.Log" = "debug"
MyApp.Data = "ERROR"
`

const yamlLevels = `
Logging:
  Format: json
  LogLevel:
    Default: Warning
    AWS.Log: debug
    MyApp:
      Data: ERROR
`

var wantLevels = filter.LevelMap{
	"Default":    log.LevelWarning,
	"AWS.Log":    log.LevelDebug,
	"MyApp.Data": log.LevelError,
}

func assertLevels(t *testing.T, got, want filter.LevelMap) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("LevelMap has %d entries, want %d: %v", len(got), len(want), got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("LevelMap[%q] = %v, want %v", k, got[k], v)
		}
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		cfg, err := Load(writeFile(t, tempDir, "logging.toml", tomlLevels))
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if cfg.Format() != FormatTOML {
			t.Errorf("Format() = %v, want toml", cfg.Format())
		}

		levels, err := cfg.LevelMap(DefaultSection)
		if err != nil {
			t.Fatalf("LevelMap() error = %v", err)
		}
		assertLevels(t, levels, wantLevels)

		if got := cfg.GetString("Logging.Format"); got != "text" {
			t.Errorf("GetString() = %q, want text", got)
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		cfg, err := Load(writeFile(t, tempDir, "logging.yml", yamlLevels))
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if cfg.Format() != FormatYAML {
			t.Errorf("Format() = %v, want yaml", cfg.Format())
		}

		levels, err := cfg.LevelMap(DefaultSection)
		if err != nil {
			t.Fatalf("LevelMap() error = %v", err)
		}
		assertLevels(t, levels, wantLevels)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "nope.toml"))
		if !lferror.HasCode(err, lferror.CodeNotFound) {
			t.Errorf("Load() error = %v, want NOT_FOUND", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		if !lferror.HasCode(err, lferror.CodeValidationFailed) {
			t.Errorf("Load() error = %v, want VALIDATION_FAILED", err)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := Load(writeFile(t, tempDir, "broken.toml", "[Logging\nDefault ="))
		if !lferror.HasCode(err, lferror.CodeInvalidInput) {
			t.Errorf("Load() error = %v, want INVALID_INPUT", err)
		}
	})
}

func TestLevelMapMissingSection(t *testing.T) {
	cfg, err := LoadFromString("[Other]\nkey = \"value\"\n", FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	levels, err := cfg.LevelMap(DefaultSection)
	if err != nil {
		t.Errorf("LevelMap() error = %v, want nil", err)
	}
	if levels.Len() != 0 {
		t.Errorf("LevelMap() = %v, want empty", levels)
	}

	f := filter.ConfigSection(levels, "AWS.Logger.Tests")
	for _, level := range log.AllLevels() {
		if !f("AWS.Logger.Tests", level) {
			t.Errorf("missing section should accept %v", level)
		}
	}
}

func TestLevelMapSectionNotATable(t *testing.T) {
	cfg, err := LoadFromString("[Logging]\nLogLevel = \"Debug\"\n", FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	levels, err := cfg.LevelMap(DefaultSection)
	if err != nil || levels.Len() != 0 {
		t.Errorf("LevelMap() = %v, %v; want empty, nil", levels, err)
	}
}

func TestLevelMapInvalidEntries(t *testing.T) {
	content := `
Logging:
  LogLevel:
    Default: Information
    App.Loud: Deafening
    App.Count: 3
`
	cfg, err := LoadFromString(content, FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	levels, err := cfg.LevelMap(DefaultSection)
	if err == nil {
		t.Fatal("LevelMap() should report invalid entries")
	}
	if !lferror.HasCode(err, lferror.CodeInvalidConfig) {
		t.Errorf("LevelMap() error = %v, want INVALID_CONFIG", err)
	}
	assertLevels(t, levels, filter.LevelMap{"Default": log.LevelInformation})
}

func TestLevelMapEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "logging.toml", tomlLevels)

	cfg, err := LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: "lftest"})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	key := cfg.DefaultLevelEnvKey(DefaultSection)
	if key != "LFTEST_LOGGING_LOGLEVEL_DEFAULT" {
		t.Errorf("DefaultLevelEnvKey() = %q", key)
	}
	t.Setenv(key, "critical")

	levels, err := cfg.LevelMap(DefaultSection)
	if err != nil {
		t.Fatalf("LevelMap() error = %v", err)
	}
	if levels["Default"] != log.LevelCritical {
		t.Errorf("Default = %v, want Critical", levels["Default"])
	}
}

func TestSectionFlattening(t *testing.T) {
	cfg, err := LoadFromString(tomlLevels, FormatAuto)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	section := cfg.Section(DefaultSection)
	if section["MyApp.Data"] != "ERROR" {
		t.Errorf("Section()[MyApp.Data] = %v, want ERROR", section["MyApp.Data"])
	}
	if !cfg.Has("Logging.LogLevel.Default") {
		t.Error("Has() should find nested keys")
	}
	if cfg.Has("Logging.Missing") {
		t.Error("Has() should be false for missing keys")
	}
	if got := cfg.GetString("Logging.Missing", "fallback"); got != "fallback" {
		t.Errorf("GetString() default = %q", got)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	t.Run("not found and not required", func(t *testing.T) {
		cfg, err := Discover(DiscoveryOptions{Paths: []string{dir}})
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		levels, err := cfg.LevelMap(DefaultSection)
		if err != nil || levels.Len() != 0 {
			t.Errorf("LevelMap() = %v, %v; want empty, nil", levels, err)
		}
	})

	t.Run("not found and required", func(t *testing.T) {
		_, err := Discover(DiscoveryOptions{Paths: []string{dir}, Required: true})
		if !lferror.HasCode(err, lferror.CodeNotFound) {
			t.Errorf("Discover() error = %v, want NOT_FOUND", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		path := writeFile(t, dir, "appsettings.yaml", yamlLevels)
		cfg, err := Discover(DiscoveryOptions{
			Paths:     []string{dir},
			Filenames: []string{"logging", "appsettings"},
		})
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.FilePath() != path {
			t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
		}
	})
}

func TestListPossibleConfigFiles(t *testing.T) {
	paths := ListPossibleConfigFiles(DefaultDiscoveryOptions())
	if len(paths) != 12 {
		t.Fatalf("ListPossibleConfigFiles() returned %d paths, want 12", len(paths))
	}
	if paths[0] != "logging.toml" {
		t.Errorf("first candidate = %q, want logging.toml", paths[0])
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatTOML, "toml"},
		{FormatYAML, "yaml"},
		{FormatAuto, "auto"},
		{Format(7), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format.String() = %v, want %v", got, tt.want)
		}
	}
}

func TestSectionDuplicateAfterFlattening(t *testing.T) {
	content := `
[Logging.LogLevel]
"A.B" = "Debug"

[Logging.LogLevel.A]
B = "Error"
C = "Warning"
`
	for i := 0; i < 20; i++ {
		cfg, err := LoadFromString(content, FormatTOML)
		if err != nil {
			t.Fatalf("LoadFromString() error = %v", err)
		}

		levels, err := cfg.LevelMap(DefaultSection)
		if err == nil {
			t.Fatal("LevelMap() should report the duplicate key")
		}
		if !lferror.HasCode(err, lferror.CodeInvalidConfig) {
			t.Errorf("LevelMap() error = %v, want INVALID_CONFIG", err)
		}
		if !strings.Contains(err.Error(), `"A.B"`) {
			t.Errorf("LevelMap() error = %v, should name A.B", err)
		}
		assertLevels(t, levels, filter.LevelMap{
			"A.B": log.LevelDebug,
			"A.C": log.LevelWarning,
		})
	}
}

func TestHasSection(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"entries", "[Logging.LogLevel]\nDefault = \"Warning\"\n", true},
		{"invalid entries only", "[Logging.LogLevel]\nDefault = \"None\"\n", true},
		{"empty table", "[Logging.LogLevel]\n", false},
		{"missing", "[Logging]\nConsole = true\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromString(tt.content, FormatTOML)
			if err != nil {
				t.Fatalf("LoadFromString() error = %v", err)
			}
			if got := cfg.HasSection(DefaultSection); got != tt.want {
				t.Errorf("HasSection() = %v, want %v", got, tt.want)
			}
		})
	}
}
