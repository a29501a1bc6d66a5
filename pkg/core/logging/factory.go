// ============================================================================
// logfilter - Category Level Filtering
// ============================================================================
//
// Package:     logging
// Description: Provider that creates category loggers from one level table
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"github.com/msto63/logfilter/foundation/core/config"
	"github.com/msto63/logfilter/foundation/core/filter"
	"github.com/msto63/logfilter/foundation/core/log"
)

// LoggerConfig holds configuration for building a provider from a document
type LoggerConfig struct {
	// Dot path of the category level table (default: Logging.LogLevel)
	Section string

	// Output format: plain, text or json (default: plain)
	Format string

	// Flat minimum level; when set the level table is ignored
	Threshold string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Section: config.DefaultSection,
		Format:  "plain",
	}
}

// Provider creates loggers that share one sink and one level table.
// The table is copied at construction and never modified afterwards.
type Provider struct {
	levels    filter.LevelMap
	policy    filter.Policy
	sink      log.Sink
	formatter log.Formatter
	custom    log.FilterFunc

	// set when the level section exists in the document, even if none of
	// its entries parsed
	present bool
}

// Option configures a Provider
type Option func(*Provider)

// WithThreshold makes every logger use a flat minimum level
func WithThreshold(level log.Level) Option {
	return func(p *Provider) {
		p.custom = filter.Threshold(level)
	}
}

// WithFilter makes every logger delegate to fn
func WithFilter(fn func(category string, level log.Level) bool) Option {
	return func(p *Provider) {
		p.custom = filter.Custom(fn)
	}
}

// WithPolicy replaces the fallback policy of the level table filter
func WithPolicy(policy filter.Policy) Option {
	return func(p *Provider) {
		p.policy = policy
	}
}

// WithFormatter sets the formatter of created loggers
func WithFormatter(formatter log.Formatter) Option {
	return func(p *Provider) {
		p.formatter = formatter
	}
}

// NewProvider creates a provider over levels writing to sink
func NewProvider(levels filter.LevelMap, sink log.Sink, opts ...Option) *Provider {
	p := &Provider{
		levels:    levels.Clone(),
		policy:    filter.DefaultPolicy(),
		sink:      sink,
		formatter: log.PlainFormatter{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewFromConfig builds a provider from a loaded document. Invalid level
// entries are reported in the error while the provider is still returned
// with the valid entries, so callers may log the problem and carry on.
func NewFromConfig(cfg *config.Config, lc LoggerConfig, sink log.Sink, opts ...Option) (*Provider, error) {
	if cfg == nil {
		cfg = config.Empty()
	}
	if lc.Section == "" {
		lc.Section = config.DefaultSection
	}

	levels, levelErr := cfg.LevelMap(lc.Section)

	format, err := log.ParseFormat(lc.Format)
	if err != nil {
		return nil, err
	}

	base := []Option{WithFormatter(log.GetFormatter(format))}
	if lc.Threshold != "" {
		threshold, err := log.ParseLevel(lc.Threshold)
		if err != nil {
			return nil, err
		}
		base = append(base, WithThreshold(threshold))
	}

	p := NewProvider(levels, sink, append(base, opts...)...)
	p.present = cfg.HasSection(lc.Section)
	return p, levelErr
}

// CreateLogger returns a logger bound to category
func (p *Provider) CreateLogger(category string) *log.Logger {
	return log.NewWithConfig(log.Config{
		Category:  category,
		Sink:      p.sink,
		Filter:    p.FilterFor(category),
		Formatter: p.formatter,
	})
}

// FilterFor returns the filter a logger for category would use
func (p *Provider) FilterFor(category string) log.FilterFunc {
	if p.custom != nil {
		return p.custom
	}
	return filter.Threshold(p.Resolve(category).Level)
}

// Resolve explains the level table decision for category
func (p *Provider) Resolve(category string) filter.Decision {
	if p.present {
		return filter.ResolvePresent(category, p.levels, p.policy)
	}
	return filter.ResolveWithPolicy(category, p.levels, p.policy)
}

// Levels returns a copy of the level table
func (p *Provider) Levels() filter.LevelMap {
	return p.levels.Clone()
}
