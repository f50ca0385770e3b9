// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so the logger can pick an
//              appropriate level when an error is reported.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a rejected call caused by caller input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error such as unreadable input files
	SeverityHigh

	// SeverityCritical indicates a broken invariant inside the toolkit
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeReadFailed, CodeWriteFailed, CodeConfigError:
		return SeverityHigh

	case CodeInvalidInput, CodeInvalidArgument, CodeUnsupportedStructure, CodeInvalidFormat,
		CodeValueOutOfRange, CodeValidationFailed, CodeNotFound, CodeInvalidConfig:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
