// Package filter resolves the minimum log level that applies to a category.
//
// Package: filter
// Title: Category Level Filters
// Description: Builds log.FilterFunc values from a category-to-level table
//              using longest-prefix matching on dotted category names, from a
//              flat threshold, or from a caller-supplied predicate.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// Matching:
//   Given {"Default": Error, "MyApp": Warning, "MyApp.Data": Debug} the
//   category "MyApp.Data.Repo" is tried as "MyApp.Data.Repo", then
//   "MyApp.Data" (match: Debug). "Other.Thing" matches nothing and falls back
//   to "Default" (Error). Without a "Default" entry the fallback level
//   Information applies. A nil or empty table means no filter is configured
//   and every level is accepted.
//
// Category keys are compared case-sensitively while level tokens are parsed
// case-insensitively. An empty category name never matches a category key;
// only "Default" or the fallback can apply to it.
//
// Usage:
//   levels, err := filter.NewLevelMap(map[string]string{
//     "Default": "Warning",
//     "MyApp.Data": "debug",
//   })
//   // err lists entries with unknown level tokens; valid entries are kept
//
//   logger := log.NewLogger("MyApp.Data.Repo", sink, filter.ConfigSection(levels, "MyApp.Data.Repo"))
package filter
