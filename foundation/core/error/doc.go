// Package error provides structured error handling for the mdwkit toolkit.
//
// Package: error
// Title: mdwkit Error Handling Framework
// Description: Structured errors with codes, severity, operation context, details
//              and stack traces. Every rejected call in the toolkit (a negative
//              truncation bound, a cyclic value handed to Clone, an unknown codec
//              format) surfaces as an *Error.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: errors.Is support by code
//
// Usage:
//
//	err := error.New("maxChars must not be negative").
//		WithCode(error.CodeInvalidArgument).
//		WithDetail("maxChars", -1)
//
//	if error.HasCode(err, error.CodeInvalidArgument) {
//		// reject the call
//	}
package error
