// ============================================================================
// logfilter - Category Level Filtering
// ============================================================================
//
// Package:     version
// Description: Central version information for the library and tools
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

// Version constants
const (
	// Library version of the foundation packages
	Library = "0.2.0"

	// LevelCheck is the version of the levelcheck tool
	LevelCheck = "0.2.0"
)

// Build information, set via -ldflags
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ToolVersion returns the version for a given tool name
func ToolVersion(name string) string {
	switch name {
	case "levelcheck":
		return LevelCheck
	default:
		return Library
	}
}
