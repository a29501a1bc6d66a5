// File: level.go
// Title: Log Level Definitions
// Description: Defines the six ordered severities used for filtering log
//              output, their canonical names and a case-insensitive parser
//              for level tokens read from configuration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-17 v0.2.0: Six-level scale Trace..Critical, text (un)marshalling

package log

import (
	"strings"
)

// Level represents the importance level of a log message.
// Levels are totally ordered by their ordinal value.
type Level int

const (
	// LevelTrace is the most verbose level
	LevelTrace Level = iota

	// LevelDebug provides detailed information for debugging purposes
	LevelDebug

	// LevelInformation represents general informational messages
	LevelInformation

	// LevelWarning indicates potentially harmful situations
	LevelWarning

	// LevelError represents error conditions that need attention
	LevelError

	// LevelCritical represents failures that require immediate attention
	LevelCritical
)

// String returns the canonical name of the level as it appears in configuration
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "Trace"
	case LevelDebug:
		return "Debug"
	case LevelInformation:
		return "Information"
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	case LevelCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// ShortString returns a short string representation of the log level
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInformation:
		return "INF"
	case LevelWarning:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelCritical:
		return "CRT"
	default:
		return "???"
	}
}

// IsValid reports whether l is one of the six defined levels
func (l Level) IsValid() bool {
	return l >= LevelTrace && l <= LevelCritical
}

// Enabled returns true if a message at this level passes the minimum level
func (l Level) Enabled(minLevel Level) bool {
	return l >= minLevel
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, &ParseError{Input: l.String(), Type: "level"}
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so TOML and YAML
// decoders accept level tokens directly.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel parses a level token. Matching is case-insensitive and
// ignores surrounding whitespace. Unknown input returns LevelInformation
// together with a *ParseError.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "information", "info", "inf":
		return LevelInformation, nil
	case "warning", "warn", "wrn":
		return LevelWarning, nil
	case "error", "err":
		return LevelError, nil
	case "critical", "crit", "crt", "fatal":
		return LevelCritical, nil
	default:
		return LevelInformation, &ParseError{
			Input: level,
			Type:  "level",
		}
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// AllLevels returns all levels in ascending order
func AllLevels() []Level {
	return []Level{
		LevelTrace,
		LevelDebug,
		LevelInformation,
		LevelWarning,
		LevelError,
		LevelCritical,
	}
}

// DefaultLevel returns the level applied when nothing more specific is configured
func DefaultLevel() Level {
	return LevelInformation
}

// MinimumLevel returns the lowest level; filtering at it accepts everything
func MinimumLevel() Level {
	return LevelTrace
}
