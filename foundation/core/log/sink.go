// File: sink.go
// Title: Log Sinks
// Description: Sinks receive accepted, CRLF-terminated lines. Each sink is
//              responsible for its own concurrency control.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with writer and memory sinks

package log

import (
	"io"
	"strings"
	"sync"
)

// Sink receives accepted log lines
type Sink interface {
	Emit(line string) error
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(line string) error

// Emit calls f(line)
func (f SinkFunc) Emit(line string) error {
	return f(line)
}

// Discard is a sink that drops every line
var Discard Sink = SinkFunc(func(string) error { return nil })

// WriterSink writes lines to an io.Writer
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a sink writing to w
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit writes the line in a single Write call
func (s *WriterSink) Emit(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := io.WriteString(s.w, line)
	return err
}

// MemorySink keeps every received line in arrival order
type MemorySink struct {
	mu    sync.Mutex
	lines []string
}

// NewMemorySink creates an empty memory sink
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Emit appends the line
func (s *MemorySink) Emit(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = append(s.lines, line)
	return nil
}

// Messages returns a copy of the received lines
func (s *MemorySink) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Count returns the number of received lines
func (s *MemorySink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.lines)
}

// Contains reports whether line was received verbatim
func (s *MemorySink) Contains(line string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.lines {
		if l == line {
			return true
		}
	}
	return false
}

// Reset drops all received lines
func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
}

// String joins the received lines
func (s *MemorySink) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return strings.Join(s.lines, "")
}
