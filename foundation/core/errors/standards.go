// File: standards.go
// Title: Error Standards for mdwkit Modules
// Description: Module identifiers and the default code each module reports
//              when an error is built without an explicit code.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation for error standardization
// - 2026-10-19 v0.2.0: Modules reduced to stringx, valuex, config, filex and cli

package errors

import (
	"strings"

	mdwerror "github.com/msto63/mdwkit/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx = "stringx"
	ModuleValuex  = "valuex"
	ModuleConfig  = "config"
	ModuleFilex   = "filex"
	ModuleCLI     = "cli"
)

// getModuleErrorCode returns the code used when a builder has none set
func getModuleErrorCode(module, operation string) mdwerror.Code {
	switch module {
	case ModuleStringx:
		return mdwerror.CodeInvalidArgument
	case ModuleValuex:
		switch {
		case strings.Contains(operation, "clone"):
			return mdwerror.CodeUnsupportedStructure
		case strings.Contains(operation, "decode"), strings.Contains(operation, "encode"):
			return mdwerror.CodeInvalidFormat
		default:
			return mdwerror.CodeInvalidArgument
		}
	case ModuleConfig:
		return mdwerror.CodeConfigError
	case ModuleFilex:
		if strings.Contains(operation, "write") {
			return mdwerror.CodeWriteFailed
		}
		return mdwerror.CodeReadFailed
	default:
		return mdwerror.CodeInternal
	}
}
