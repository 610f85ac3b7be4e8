// Package log provides structured logging for sigfig.
//
// Package: log
// Title: sigfig Structured Logging
// Description: Leveled logging with persistent fields, request ids, JSON or
//              text output and operation timers. The servers, the history
//              store and the CLI log through it; the numeric core does not
//              log at all.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-15 v0.3.0: Synchronous writer only, deterministic text field order
//
// Usage:
//   import mdwlog "github.com/msto63/sigfig/foundation/core/log"
//
//   logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelDebug, Format: mdwlog.FormatText}).
//     WithField("component", "calc")
//
//   logger.Info("expression evaluated", mdwlog.Fields{"expr": "2^3^2", "result": 512})
//
//   timer := logger.StartTimer("evaluate")
//   if err != nil {
//     timer.Fail(err)
//   } else {
//     timer.Stop()
//   }
package log
