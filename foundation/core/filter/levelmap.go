// File: levelmap.go
// Title: Category Level Table
// Description: LevelMap maps category names, or the "Default" key, to the
//              minimum level emitted for them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package filter

import (
	"errors"
	"fmt"
	"sort"

	lferror "github.com/msto63/logfilter/foundation/core/error"
	"github.com/msto63/logfilter/foundation/core/log"
)

// DefaultKey is the catch-all entry consulted when no category prefix matches
const DefaultKey = "Default"

// LevelMap maps category names (or DefaultKey) to minimum levels.
// It is treated as read-only once handed to a filter.
type LevelMap map[string]log.Level

// NewLevelMap parses raw level tokens. Entries whose token does not parse
// are left out and reported in the returned error; the remaining entries
// are always returned.
func NewLevelMap(raw map[string]string) (LevelMap, error) {
	levels := make(LevelMap, len(raw))

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, category := range keys {
		level, err := log.ParseLevel(raw[category])
		if err != nil {
			errs = append(errs, InvalidEntryError(category, raw[category], err))
			continue
		}
		levels[category] = level
	}

	return levels, errors.Join(errs...)
}

// InvalidEntryError describes a configuration entry that was skipped
func InvalidEntryError(category string, value interface{}, cause error) error {
	msg := fmt.Sprintf("invalid level %v for category %q", value, category)
	var err *lferror.Error
	if cause != nil {
		err = lferror.Wrap(cause, msg)
	} else {
		err = lferror.New(msg)
	}
	return err.
		WithCode(lferror.CodeInvalidConfig).
		WithOperation("filter.NewLevelMap").
		WithDetail("category", category).
		WithDetail("value", value)
}

// Len returns the number of entries
func (m LevelMap) Len() int {
	return len(m)
}

// Clone returns an independent copy
func (m LevelMap) Clone() LevelMap {
	if m == nil {
		return nil
	}
	out := make(LevelMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Keys returns the configured keys in sorted order
func (m LevelMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
