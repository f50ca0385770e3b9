// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for code validity, categorisation and exit status mapping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package error

import "testing"

func TestCodeIsValid(t *testing.T) {
	valid := []Code{
		CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidArgument, CodeUnsupportedStructure, CodeInvalidFormat, CodeValueOutOfRange,
		CodeConfigError, CodeInvalidConfig, CodeValidationFailed,
		CodeReadFailed, CodeWriteFailed,
	}
	for _, code := range valid {
		if !code.IsValid() {
			t.Errorf("%s.IsValid() = false, want true", code)
		}
	}

	if Code("NOPE").IsValid() {
		t.Error("unknown code should not be valid")
	}
}

func TestCodeCategoryAndExitCode(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeInvalidArgument, "validation", 2},
		{CodeInvalidFormat, "validation", 2},
		{CodeUnsupportedStructure, "structure", 2},
		{CodeConfigError, "configuration", 3},
		{CodeReadFailed, "io", 4},
		{CodeNotFound, "io", 4},
		{CodeInternal, "generic", 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	tests := map[Severity]string{
		SeverityLow:      "low",
		SeverityMedium:   "medium",
		SeverityHigh:     "high",
		SeverityCritical: "critical",
		Severity(42):     "unknown",
	}
	for severity, want := range tests {
		if got := severity.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", severity, got, want)
		}
	}

	if SeverityMedium.ShouldAlert() {
		t.Error("medium severity should not alert")
	}
	if !SeverityHigh.ShouldAlert() {
		t.Error("high severity should alert")
	}
}
