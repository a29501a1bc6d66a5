// File: match.go
// Title: Hierarchical Category Matcher
// Description: Longest-prefix lookup of a dotted category name in a LevelMap
//              with a final fallback to the "Default" entry.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package filter

import (
	"strings"

	lferror "github.com/msto63/logfilter/foundation/core/error"
	"github.com/msto63/logfilter/foundation/core/log"
)

// Match returns the level of the most specific configured ancestor of
// category. The full name is tried first, then the name with its last
// dot-segment stripped, and so on. When no prefix is present the "Default"
// entry is used. ok is false when neither exists.
func Match(category string, levels LevelMap) (level log.Level, ok bool) {
	_, level, ok = lookup(category, levels)
	return level, ok
}

// lookup is Match that also reports which key matched
func lookup(category string, levels LevelMap) (string, log.Level, bool) {
	for prefix := category; prefix != ""; prefix = parent(prefix) {
		if level, ok := levels[prefix]; ok {
			return prefix, level, true
		}
	}

	if level, ok := levels[DefaultKey]; ok {
		return DefaultKey, level, true
	}
	return "", 0, false
}

// parent strips the last dot-segment; "" when there is none
func parent(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return name[:i]
}

// ValidateCategory reports an empty category name. Filters accept empty
// names and treat them as matching no category key; callers that prefer
// to reject them up front use this.
func ValidateCategory(category string) error {
	if category == "" {
		return lferror.New("category name must not be empty").
			WithCode(lferror.CodeInvalidArgument).
			WithOperation("filter.ValidateCategory")
	}
	return nil
}
