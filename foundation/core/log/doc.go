// Package log provides category loggers gated by level filters.
//
// Package: log
// Title: Category Logging
// Description: This package defines the six ordered log levels, the FilterFunc
//              contract used to decide whether a message is emitted, and the
//              Logger that applies a filter to every call before handing the
//              CRLF-terminated line to a Sink.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-17 v0.2.0: Category loggers, sinks and the six-level scale
//
// Levels:
//   Trace < Debug < Information < Warning < Error < Critical
//
// Level tokens are parsed case-insensitively by ParseLevel, so "warning",
// "Warning" and "WARNING" are equivalent in configuration.
//
// Usage:
//   import "github.com/msto63/logfilter/foundation/core/log"
//
//   sink := log.NewWriterSink(os.Stderr)
//   logger := log.NewLogger("MyApp.Services.Worker", sink, func(category string, level log.Level) bool {
//     return level >= log.LevelWarning
//   })
//
//   logger.Information("cache warmed")  // dropped
//   logger.Warning("disk almost full")  // sink receives "disk almost full\r\n"
//
// A Logger never mutates its state after construction. The filter is invoked
// on every call; there is no caching of decisions between calls.
package log
