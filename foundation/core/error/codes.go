// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the toolkit. Codes let callers distinguish rejected arguments
//              from unsupported input structures without parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Added argument and structure codes, dropped service codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Argument and data shape
	CodeInvalidArgument      Code = "INVALID_ARGUMENT"
	CodeUnsupportedStructure Code = "UNSUPPORTED_STRUCTURE"
	CodeInvalidFormat        Code = "INVALID_FORMAT"
	CodeValueOutOfRange      Code = "VALUE_OUT_OF_RANGE"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeValidationFailed Code = "VALIDATION_FAILED"

	// I/O
	CodeReadFailed  Code = "READ_FAILED"
	CodeWriteFailed Code = "WRITE_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidArgument, CodeUnsupportedStructure, CodeInvalidFormat, CodeValueOutOfRange,
		CodeConfigError, CodeInvalidConfig, CodeValidationFailed,
		CodeReadFailed, CodeWriteFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeInvalidArgument, CodeInvalidFormat, CodeValueOutOfRange, CodeValidationFailed:
		return "validation"
	case CodeUnsupportedStructure:
		return "structure"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeReadFailed, CodeWriteFailed, CodeNotFound:
		return "io"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status for the command line tool
func (c Code) ExitCode() int {
	switch c.Category() {
	case "validation", "structure":
		return 2
	case "configuration":
		return 3
	case "io":
		return 4
	default:
		return 1
	}
}
