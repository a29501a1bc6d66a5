// File: filter.go
// Title: Filter Resolution
// Description: Builds the log.FilterFunc a logger uses: the config-section
//              filter over a LevelMap, a flat threshold or a custom predicate.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package filter

import (
	"github.com/msto63/logfilter/foundation/core/log"
)

// FallbackLevel applies to a category that matches no prefix and no
// "Default" entry in a non-empty LevelMap.
const FallbackLevel = log.LevelInformation

// Policy holds the levels used when a LevelMap gives no answer
type Policy struct {
	// Fallback applies when the map is non-empty but nothing matches
	Fallback log.Level

	// Unconfigured applies when the map is nil or empty
	Unconfigured log.Level
}

// DefaultPolicy returns FallbackLevel for unmatched categories and accepts
// everything when no levels are configured.
func DefaultPolicy() Policy {
	return Policy{
		Fallback:     FallbackLevel,
		Unconfigured: log.MinimumLevel(),
	}
}

// Source tells where a resolved level came from
type Source int

const (
	// SourceExact means the full category name is a key
	SourceExact Source = iota

	// SourcePrefix means an ancestor prefix is a key
	SourcePrefix

	// SourceDefault means the "Default" entry applied
	SourceDefault

	// SourceFallback means the policy fallback applied
	SourceFallback

	// SourceUnconfigured means the map was empty
	SourceUnconfigured
)

// String returns the string representation of the source
func (s Source) String() string {
	switch s {
	case SourceExact:
		return "exact"
	case SourcePrefix:
		return "prefix"
	case SourceDefault:
		return "default"
	case SourceFallback:
		return "fallback"
	case SourceUnconfigured:
		return "unconfigured"
	default:
		return "unknown"
	}
}

// Decision is the resolved minimum level for one category
type Decision struct {
	Category string
	Key      string
	Level    log.Level
	Source   Source
}

// Accepts reports whether a message at level passes the decision
func (d Decision) Accepts(level log.Level) bool {
	return level.Enabled(d.Level)
}

// Resolve computes the decision for category under DefaultPolicy
func Resolve(category string, levels LevelMap) Decision {
	return ResolveWithPolicy(category, levels, DefaultPolicy())
}

// ResolveWithPolicy computes the decision for category under policy.
// A nil or empty levels map is unconfigured.
func ResolveWithPolicy(category string, levels LevelMap, policy Policy) Decision {
	return resolve(category, levels, policy, len(levels) > 0)
}

// ResolvePresent computes the decision for a level table whose section was
// present in the configuration. An empty levels map then means every entry
// was rejected, and the decision is policy.Fallback, not policy.Unconfigured.
func ResolvePresent(category string, levels LevelMap, policy Policy) Decision {
	return resolve(category, levels, policy, true)
}

func resolve(category string, levels LevelMap, policy Policy, configured bool) Decision {
	d := Decision{Category: category}

	if !configured {
		d.Level = policy.Unconfigured
		d.Source = SourceUnconfigured
		return d
	}

	key, level, ok := lookup(category, levels)
	switch {
	case !ok:
		d.Level = policy.Fallback
		d.Source = SourceFallback
	case key == category:
		d.Key, d.Level, d.Source = key, level, SourceExact
	case key == DefaultKey:
		d.Key, d.Level, d.Source = key, level, SourceDefault
	default:
		d.Key, d.Level, d.Source = key, level, SourcePrefix
	}
	return d
}

// ConfigSection returns the filter for category over levels. The minimum
// level is resolved once here; the returned function only compares. A nil
// levels map behaves like an empty one.
func ConfigSection(levels LevelMap, category string) log.FilterFunc {
	return ConfigSectionWithPolicy(levels, category, DefaultPolicy())
}

// ConfigSectionWithPolicy is ConfigSection with an explicit policy
func ConfigSectionWithPolicy(levels LevelMap, category string, policy Policy) log.FilterFunc {
	return Threshold(ResolveWithPolicy(category, levels, policy).Level)
}

// Threshold accepts every message at or above min regardless of category
func Threshold(min log.Level) log.FilterFunc {
	return func(_ string, level log.Level) bool {
		return level >= min
	}
}

// Custom delegates the decision to fn without any default-level logic.
// A nil fn rejects everything.
func Custom(fn func(category string, level log.Level) bool) log.FilterFunc {
	if fn == nil {
		return func(string, log.Level) bool { return false }
	}
	return fn
}
