// File: level_test.go
// Title: Log Level Tests
// Description: Tests for level names, ordering, parsing and text
//              (un)marshalling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive level tests
// - 2026-10-17 v0.2.0: Six-level scale

package log

import (
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "Trace"},
		{LevelDebug, "Debug"},
		{LevelInformation, "Information"},
		{LevelWarning, "Warning"},
		{LevelError, "Error"},
		{LevelCritical, "Critical"},
		{Level(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelShortString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "TRC"},
		{LevelDebug, "DBG"},
		{LevelInformation, "INF"},
		{LevelWarning, "WRN"},
		{LevelError, "ERR"},
		{LevelCritical, "CRT"},
		{Level(-1), "???"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.ShortString(); got != tt.want {
				t.Errorf("Level.ShortString() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelOrdering(t *testing.T) {
	levels := AllLevels()

	if len(levels) != 6 {
		t.Fatalf("AllLevels() returned %d levels, want 6", len(levels))
	}

	for i := 0; i < len(levels)-1; i++ {
		if levels[i] >= levels[i+1] {
			t.Errorf("Level %v should be lower than %v", levels[i], levels[i+1])
		}
	}
}

func TestLevelEnabled(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		minLevel Level
		want     bool
	}{
		{"trace vs information", LevelTrace, LevelInformation, false},
		{"debug vs information", LevelDebug, LevelInformation, false},
		{"information vs information", LevelInformation, LevelInformation, true},
		{"warning vs information", LevelWarning, LevelInformation, true},
		{"critical vs trace", LevelCritical, LevelTrace, true},
		{"error vs critical", LevelError, LevelCritical, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.Enabled(tt.minLevel); got != tt.want {
				t.Errorf("Level.Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelIsValid(t *testing.T) {
	for _, l := range AllLevels() {
		if !l.IsValid() {
			t.Errorf("%v should be valid", l)
		}
	}
	if Level(6).IsValid() || Level(-1).IsValid() {
		t.Error("out-of-range levels should be invalid")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"Trace", LevelTrace, false},
		{"trace", LevelTrace, false},
		{"TRC", LevelTrace, false},
		{"Debug", LevelDebug, false},
		{"Information", LevelInformation, false},
		{"INFORMATION", LevelInformation, false},
		{"info", LevelInformation, false},
		{"Warning", LevelWarning, false},
		{"wArNiNg", LevelWarning, false},
		{"warn", LevelWarning, false},
		{"Error", LevelError, false},
		{"ERR", LevelError, false},
		{"Critical", LevelCritical, false},
		{"fatal", LevelCritical, false},
		{"  Warning  ", LevelWarning, false},
		{"None", LevelInformation, true},
		{"INVALID", LevelInformation, true},
		{"", LevelInformation, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	err := &ParseError{
		Input: "Loud",
		Type:  "level",
	}

	want := "invalid level: Loud"
	if got := err.Error(); got != want {
		t.Errorf("ParseError.Error() = %v, want %v", got, want)
	}
}

func TestLevelTextRoundTrip(t *testing.T) {
	var l Level
	if err := l.UnmarshalText([]byte("critical")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if l != LevelCritical {
		t.Errorf("UnmarshalText() = %v, want %v", l, LevelCritical)
	}

	text, err := l.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "Critical" {
		t.Errorf("MarshalText() = %q, want Critical", text)
	}

	if err := l.UnmarshalText([]byte("loud")); err == nil {
		t.Error("UnmarshalText() should reject unknown tokens")
	}
	if l != LevelCritical {
		t.Error("failed UnmarshalText() must not modify the level")
	}

	if _, err := Level(42).MarshalText(); err == nil {
		t.Error("MarshalText() should reject invalid levels")
	}
}

func TestDefaultAndMinimumLevel(t *testing.T) {
	if got := DefaultLevel(); got != LevelInformation {
		t.Errorf("DefaultLevel() = %v, want %v", got, LevelInformation)
	}
	if got := MinimumLevel(); got != LevelTrace {
		t.Errorf("MinimumLevel() = %v, want %v", got, LevelTrace)
	}
}

func BenchmarkLevelEnabled(b *testing.B) {
	level := LevelError
	minLevel := LevelInformation
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = level.Enabled(minLevel)
	}
}

func BenchmarkParseLevel(b *testing.B) {
	input := "Information"
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = ParseLevel(input)
	}
}
