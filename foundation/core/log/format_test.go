// File: format_test.go
// Title: Log Formatter Tests
// Description: Tests the JSON, text, console and logfmt formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Sorted fields and correlation IDs

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/mdwkit/foundation/core/error"
)

func testEntry() *Entry {
	e := NewEntry(LevelWarn, "document decoded")
	e.Timestamp = time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)
	e.Logger = "mdwkit"
	e.CorrelationID = "5f0c2a1e-8d3b-4c7e-9a61-2b4d6f8e0c13"
	e.WithFields(Fields{"format": "yaml", "bytes": 512})
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"json", FormatJSON},
		{"TEXT", FormatText},
		{"console", FormatConsole},
		{" logfmt", FormatLogfmt},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if err != nil || got != tt.expected {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", tt.input, got, err, tt.expected)
		}
		if got.String() != strings.ToLower(strings.TrimSpace(tt.input)) {
			t.Errorf("Format(%d).String() = %q", got, got.String())
		}
	}

	if _, err := ParseFormat("xml"); !mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
		t.Errorf("ParseFormat(xml) error = %v, want INVALID_ARGUMENT", err)
	}
}

func TestJSONFormatter(t *testing.T) {
	entry := testEntry()
	entry.Error = mdwerror.New("boom").WithCode(mdwerror.CodeInvalidArgument)
	entry.Duration = 1500 * time.Microsecond

	out, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if !strings.HasSuffix(string(out), "\n") {
		t.Error("JSON output should end with a newline")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(out, &data); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}

	want := map[string]interface{}{
		"timestamp":      "2026-10-19T08:30:00Z",
		"level":          "warn",
		"message":        "document decoded",
		"logger":         "mdwkit",
		"correlation_id": "5f0c2a1e-8d3b-4c7e-9a61-2b4d6f8e0c13",
		"format":         "yaml",
		"bytes":          float64(512),
		"error":          "boom",
		"duration_ms":    1.5,
	}
	for k, v := range want {
		if diff := cmp.Diff(v, data[k]); diff != "" {
			t.Errorf("field %q mismatch (-want +got):\n%s", k, diff)
		}
	}
	details, ok := data["error_details"].(map[string]interface{})
	if !ok || details["code"] != "INVALID_ARGUMENT" {
		t.Errorf("error_details = %v, want code INVALID_ARGUMENT", data["error_details"])
	}
}

func TestJSONFormatter_ErrorField(t *testing.T) {
	entry := NewEntry(LevelInfo, "x").WithFields(Err(errors.New("plain")))
	out, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if !strings.Contains(string(out), `"error":"plain"`) {
		t.Errorf("error field not rendered as message: %s", out)
	}
}

func TestTextFormatter(t *testing.T) {
	out, err := NewTextFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	want := "08:30:00 [WRN] {mdwkit} (run=5f0c2a1e) document decoded [bytes=512 format=yaml]\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Errorf("Format() mismatch (-want +got):\n%s", diff)
	}
}

func TestTextFormatter_DisableTimestamp(t *testing.T) {
	f := NewTextFormatter()
	f.DisableTimestamp = true
	entry := NewEntry(LevelError, "failed").WithError(errors.New(`bad "input"`))

	out, _ := f.Format(entry)
	want := `[ERR] failed error="bad \"input\""` + "\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Errorf("Format() mismatch (-want +got):\n%s", diff)
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableTimestamp = true
	f.DisableColors = true

	out, _ := f.Format(NewEntry(LevelInfo, "ready"))
	if got := string(out); got != "[INF] ready\n" {
		t.Errorf("Format() = %q, want %q", got, "[INF] ready\n")
	}

	f.DisableColors = false
	out, _ = f.Format(NewEntry(LevelInfo, "ready"))
	if !strings.Contains(string(out), "INF") || !strings.Contains(string(out), "ready") {
		t.Errorf("styled output lost content: %q", out)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	entry := testEntry()
	entry.Fields["path"] = "my file.yaml"

	out, err := NewLogfmtFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	want := `timestamp=2026-10-19T08:30:00Z level=warn message="document decoded" logger=mdwkit ` +
		`correlation_id=5f0c2a1e-8d3b-4c7e-9a61-2b4d6f8e0c13 bytes=512 format=yaml path="my file.yaml"` + "\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Errorf("Format() mismatch (-want +got):\n%s", diff)
	}
}

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "*log.JSONFormatter"},
		{FormatText, "*log.TextFormatter"},
		{FormatConsole, "*log.ConsoleFormatter"},
		{FormatLogfmt, "*log.LogfmtFormatter"},
		{Format(99), "*log.ConsoleFormatter"},
	}
	for _, tt := range tests {
		got := GetFormatter(tt.format)
		if name := typeName(got); name != tt.want {
			t.Errorf("GetFormatter(%v) = %s, want %s", tt.format, name, tt.want)
		}
	}
}

func typeName(v interface{}) string {
	switch v.(type) {
	case *JSONFormatter:
		return "*log.JSONFormatter"
	case *TextFormatter:
		return "*log.TextFormatter"
	case *ConsoleFormatter:
		return "*log.ConsoleFormatter"
	case *LogfmtFormatter:
		return "*log.LogfmtFormatter"
	}
	return "unknown"
}

func TestFieldsMergeAndKeys(t *testing.T) {
	a := Fields{"b": 1, "a": 2}
	merged := a.Merge(Field("b", 3))

	if merged["b"] != 3 || a["b"] != 1 {
		t.Errorf("Merge() = %v, source = %v", merged, a)
	}
	if diff := cmp.Diff([]string{"a", "b"}, merged.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if d := Duration("took", time.Second); d["took"] != time.Second {
		t.Errorf("Duration() = %v", d)
	}
}
