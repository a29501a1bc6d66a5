// File: entry.go
// Title: Log Entry Structure
// Description: Defines the entry handed to formatters once a message has
//              passed its logger's filter.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2026-10-17 v0.2.0: Reduced to category, level and message

package log

import (
	"time"
)

// Entry represents a single accepted log message
type Entry struct {
	Timestamp time.Time
	Level     Level
	Category  string
	Message   string
}

// NewEntry creates a new log entry stamped with the current time
func NewEntry(category string, level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Category:  category,
		Message:   message,
	}
}
