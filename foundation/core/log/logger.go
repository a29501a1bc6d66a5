// File: logger.go
// Title: Category Logger
// Description: Implements the Logger bound to one category name and one
//              filter. Every call re-evaluates the filter with the fixed
//              category and the call's level; accepted messages are
//              formatted, terminated with CRLF and handed to the sink.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-17 v0.2.0: Category loggers gated by a filter function

package log

import (
	"fmt"
)

// LineTerminator ends every line handed to a sink
const LineTerminator = "\r\n"

// FilterFunc decides whether a message at level is emitted for category.
// Implementations must be pure; they are called on every log call.
type FilterFunc func(category string, level Level) bool

// AcceptAll is a filter that accepts every message
func AcceptAll(string, Level) bool { return true }

// Logger emits messages for a single category.
// All fields are set at construction; a Logger is safe for concurrent use.
type Logger struct {
	category  string
	sink      Sink
	filter    FilterFunc
	formatter Formatter
}

// Config represents logger configuration
type Config struct {
	Category  string
	Sink      Sink
	Filter    FilterFunc
	Formatter Formatter
}

// NewLogger creates a logger for category writing accepted messages to sink.
// A nil filter accepts everything; a nil sink discards.
func NewLogger(category string, sink Sink, filter FilterFunc) *Logger {
	return NewWithConfig(Config{
		Category: category,
		Sink:     sink,
		Filter:   filter,
	})
}

// NewWithConfig creates a logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		category:  config.Category,
		sink:      config.Sink,
		filter:    config.Filter,
		formatter: config.Formatter,
	}

	if logger.sink == nil {
		logger.sink = Discard
	}
	if logger.filter == nil {
		logger.filter = AcceptAll
	}
	if logger.formatter == nil {
		logger.formatter = PlainFormatter{}
	}

	return logger
}

// WithFormatter returns a copy of the logger using formatter
func (l *Logger) WithFormatter(formatter Formatter) *Logger {
	clone := *l
	if formatter == nil {
		formatter = PlainFormatter{}
	}
	clone.formatter = formatter
	return &clone
}

// Category returns the category name the logger is bound to
func (l *Logger) Category() string {
	return l.category
}

// IsEnabled returns true if a message at level would be emitted
func (l *Logger) IsEnabled(level Level) bool {
	return l.filter(l.category, level)
}

// Log emits message at level if the filter accepts it
func (l *Logger) Log(level Level, message string) {
	_ = l.LogErr(level, message)
}

// LogErr is Log but reports formatter and sink failures
func (l *Logger) LogErr(level Level, message string) error {
	if !l.filter(l.category, level) {
		return nil
	}
	return l.emit(level, message)
}

// Logf formats and emits a message; formatting only happens when accepted
func (l *Logger) Logf(level Level, format string, args ...interface{}) {
	if !l.filter(l.category, level) {
		return
	}
	_ = l.emit(level, fmt.Sprintf(format, args...))
}

// Trace logs a trace level message
func (l *Logger) Trace(message string) {
	l.Log(LevelTrace, message)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string) {
	l.Log(LevelDebug, message)
}

// Information logs an information level message
func (l *Logger) Information(message string) {
	l.Log(LevelInformation, message)
}

// Warning logs a warning level message
func (l *Logger) Warning(message string) {
	l.Log(LevelWarning, message)
}

// Error logs an error level message
func (l *Logger) Error(message string) {
	l.Log(LevelError, message)
}

// Critical logs a critical level message
func (l *Logger) Critical(message string) {
	l.Log(LevelCritical, message)
}

func (l *Logger) emit(level Level, message string) error {
	body, err := l.formatter.Format(NewEntry(l.category, level, message))
	if err != nil {
		return err
	}
	return l.sink.Emit(body + LineTerminator)
}
