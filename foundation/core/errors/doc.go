// Package errors provides the standard error constructors used by all sigfig
// packages.
//
// Package: errors
// Title: Standard Error Handling API for sigfig
// Description: This package provides module identifiers, module scoped error
//              constructors and a fluent builder on top of the core error package.
//              Every error created here carries the originating module and
//              operation in its details, which servers use for logging and
//              response mapping.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-15 v0.3.0: Modules mathx, calc, config, history; typed codes
//
// Usage:
//
//	err := errors.NewErrorBuilder(errors.ModuleCalc).
//		Operation("parse").
//		Message("mismatched parentheses").
//		Code(mdwerror.CodeMismatchedParentheses).
//		Detail("position", 7).
//		Build()
//
//	if errors.IsModuleError(err, errors.ModuleCalc) {
//		// expression input problem
//	}
package errors
