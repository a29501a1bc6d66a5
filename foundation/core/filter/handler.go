// File: handler.go
// Title: slog Bridge
// Description: Gates a log/slog handler with a category filter so the same
//              configuration governs standard library structured logging.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package filter

import (
	"context"
	"log/slog"

	"github.com/msto63/logfilter/foundation/core/log"
)

// Handler is a slog.Handler that drops records rejected by a FilterFunc
type Handler struct {
	next     slog.Handler
	category string
	filter   log.FilterFunc
}

// NewHandler wraps next. A nil filter accepts everything.
func NewHandler(next slog.Handler, category string, filter log.FilterFunc) *Handler {
	if filter == nil {
		filter = log.AcceptAll
	}
	return &Handler{next: next, category: category, filter: filter}
}

// FromSlogLevel maps slog levels onto the six-level scale
func FromSlogLevel(l slog.Level) log.Level {
	switch {
	case l < slog.LevelDebug:
		return log.LevelTrace
	case l < slog.LevelInfo:
		return log.LevelDebug
	case l < slog.LevelWarn:
		return log.LevelInformation
	case l < slog.LevelError:
		return log.LevelWarning
	case l < slog.LevelError+4:
		return log.LevelError
	default:
		return log.LevelCritical
	}
}

// Enabled implements slog.Handler
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	if !h.filter(h.category, FromSlogLevel(level)) {
		return false
	}
	return h.next.Enabled(ctx, level)
}

// Handle implements slog.Handler
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	return h.next.Handle(ctx, r)
}

// WithAttrs implements slog.Handler
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{next: h.next.WithAttrs(attrs), category: h.category, filter: h.filter}
}

// WithGroup implements slog.Handler
func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{next: h.next.WithGroup(name), category: h.category, filter: h.filter}
}
