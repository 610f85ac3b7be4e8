// Package error provides structured error handling for the sigfig engine.
//
// Package: error
// Title: sigfig Error Handling Framework
// Description: This package implements a structured error type with error codes,
//              severity levels, operation context and details. Parser, evaluator,
//              rule engine, history store and servers report failures through it
//              so every surface (CLI, HTTP, gRPC, TUI) can map errors consistently.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-15 v0.3.0: Code set reduced to numeric/expression/storage domain,
//                       code based errors.Is matching, gRPC status mapping
//
// Usage:
//   import mdwerror "github.com/msto63/sigfig/foundation/core/error"
//
//   err := mdwerror.New("mismatched parentheses").
//     WithCode(mdwerror.CodeMismatchedParentheses).
//     WithDetail("position", 4)
//
//   if mdwerror.HasCode(err, mdwerror.CodeMismatchedParentheses) {
//     // report position to the user
//   }
package error
