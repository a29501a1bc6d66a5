// Package error provides structured errors for the logfilter foundation.
//
// Package: error
// Title: Structured Error Handling
// Description: Errors carry a code, the failing operation and free-form details
//              so configuration problems can be reported precisely while the
//              filter core itself stays infallible.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-17 v0.2.0: Reduced to the codes used by level configuration loading
//
// Usage:
//   import lferror "github.com/msto63/logfilter/foundation/core/error"
//
//   err := lferror.New("unknown level token").
//     WithCode(lferror.CodeInvalidConfig).
//     WithOperation("filter.NewLevelMap").
//     WithDetail("category", "MyApp.Worker")
//
//   if lferror.HasCode(err, lferror.CodeInvalidConfig) {
//     // skip the entry and keep going
//   }
package error
