// Package errors provides the standard error constructors for mdwkit modules.
//
// Package: errors
// Title: Standard Error Handling API for mdwkit
// Description: Common error patterns on top of the core error package. Modules
//              never call fmt.Errorf for a rejected call; they build an error
//              here so code, severity, module and operation are always present.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-19 v0.2.0: InvalidArgument / UnsupportedStructure
//
// Usage:
//
//	if maxChars < 0 {
//		return "", errors.InvalidArgument(errors.ModuleStringx, "truncate", maxChars, "non-negative maxChars")
//	}
//
//	return nil, errors.UnsupportedStructure(errors.ModuleValuex, "clone", "$.a.b", "cycle")
package errors
