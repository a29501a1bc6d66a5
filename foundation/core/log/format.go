// File: format.go
// Title: Log Format Definitions
// Description: Defines how an accepted entry is rendered into the line that
//              reaches a sink. The plain format forwards the message
//              unchanged; text and JSON formats add level and category.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-17 v0.2.0: Formatters return the line body; the logger appends CRLF

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatPlain forwards the message as-is
	FormatPlain Format = iota

	// FormatText prefixes the message with level and category
	FormatText

	// FormatJSON renders one JSON object per message
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "plain", "":
		return FormatPlain, nil
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatPlain, &ParseError{
			Input: format,
			Type:  "format",
		}
	}
}

// Formatter renders an entry into a line body without terminator
type Formatter interface {
	Format(entry *Entry) (string, error)
}

// PlainFormatter forwards the message unchanged
type PlainFormatter struct{}

// Format returns the entry message
func (PlainFormatter) Format(entry *Entry) (string, error) {
	return entry.Message, nil
}

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	// TimestampFormat specifies the timestamp format
	TimestampFormat string

	// DisableTimestamp disables timestamp output
	DisableTimestamp bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: "15:04:05",
	}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) (string, error) {
	var parts []string

	if !f.DisableTimestamp {
		parts = append(parts, entry.Timestamp.Format(f.TimestampFormat))
	}

	parts = append(parts, fmt.Sprintf("[%s]", entry.Level.ShortString()))

	if entry.Category != "" {
		parts = append(parts, fmt.Sprintf("{%s}", entry.Category))
	}

	parts = append(parts, entry.Message)

	return strings.Join(parts, " "), nil
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	// TimestampFormat specifies the timestamp format
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		TimestampFormat: time.RFC3339,
	}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) (string, error) {
	data := map[string]interface{}{
		"timestamp": entry.Timestamp.Format(f.TimestampFormat),
		"level":     entry.Level.String(),
		"message":   entry.Message,
	}

	if entry.Category != "" {
		data["category"] = entry.Category
	}

	b, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// GetFormatter returns a formatter for the specified format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatJSON:
		return NewJSONFormatter()
	default:
		return PlainFormatter{}
	}
}
