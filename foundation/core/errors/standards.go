// File: standards.go
// Title: Error Modules
// Description: Module identifiers recorded on every built error and the
//              default code of each module.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-15 v0.3.0: Modules of the sigfig packages

package errors

import (
	mdwerror "github.com/msto63/sigfig/foundation/core/error"
)

// Module identifiers, stored in the "module" detail
const (
	ModuleMathx   = "mathx"
	ModuleCalc    = "calc"
	ModuleConfig  = "config"
	ModuleHistory = "history"
)

func defaultCode(module string) mdwerror.Code {
	switch module {
	case ModuleMathx:
		return mdwerror.CodeInvalidNumber
	case ModuleCalc:
		return mdwerror.CodeInvalidExpression
	case ModuleConfig:
		return mdwerror.CodeConfigError
	case ModuleHistory:
		return mdwerror.CodeDatabaseError
	}
	return mdwerror.CodeInternal
}

// Module returns the module recorded on err, or "" for errors not built
// here
func Module(err error) string {
	var e *mdwerror.Error
	if !As(err, &e) {
		return ""
	}
	m, _ := e.Detail("module")
	s, _ := m.(string)
	return s
}

// IsModuleError reports whether err was built for module
func IsModuleError(err error, module string) bool {
	return Module(err) == module
}
