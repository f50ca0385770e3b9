// File: doc.go
// Title: Structured Logging Package
// Description: Package log provides structured, leveled logging for mdwkit
//              with JSON, text, console and logfmt output.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Tailored to command line use
//
// Features:
// - Structured logging in JSON, text, console and logfmt formats
// - Level filtering from trace to fatal
// - Immutable context derivation with fields, names and correlation IDs
// - Severity aware logging of mdwkit errors
// - Operation timers
//
// Usage:
//   import mdwlog "github.com/msto63/mdwkit/foundation/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelInfo).
//     WithFormat(mdwlog.FormatJSON).
//     WithCorrelationID(runID)
//
//   logger.Info("document decoded", mdwlog.Fields{"format": "yaml", "bytes": 512})
//   logger.LogError(err)
//
//   timer := logger.StartTimer("clone")
//   // ... perform the operation
//   timer.Stop()

package log
