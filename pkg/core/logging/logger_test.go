package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/mdwkit/foundation/core/error"
	mdwlog "github.com/msto63/mdwkit/foundation/core/log"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("mdwkit")

	if cfg.Name != "mdwkit" {
		t.Errorf("Name = %v, want mdwkit", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %v, want console", cfg.Format)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LoggerConfig{Name: "test", Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("NewLogger() error: %v", err)
	}
	if logger.GetLevel() != mdwlog.LevelDebug {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}

	logger.Debug("hello")
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v: %s", err, buf.String())
	}
	if entry["logger"] != "test" || entry["message"] != "hello" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNewLoggerInvalidNames(t *testing.T) {
	tests := []struct {
		name string
		cfg  LoggerConfig
	}{
		{"level", LoggerConfig{Level: "loud"}},
		{"format", LoggerConfig{Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.cfg)
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
				t.Errorf("NewLogger() error = %v, want INVALID_ARGUMENT", err)
			}
			if logger == nil {
				t.Fatal("NewLogger() should still return a usable logger")
			}
			if logger.GetLevel() != mdwlog.DefaultLevel() && tt.name == "level" {
				t.Errorf("level = %v, want default", logger.GetLevel())
			}
		})
	}
}

func TestAdditionalOutputs(t *testing.T) {
	var primary, mirror bytes.Buffer
	logger, _ := NewLogger(LoggerConfig{Level: "info", Format: "text", Output: &primary, AdditionalOutputs: []io.Writer{&mirror}})

	logger.Info("twice")
	if !strings.Contains(primary.String(), "twice") || primary.String() != mirror.String() {
		t.Errorf("outputs differ: %q vs %q", primary.String(), mirror.String())
	}
}

func TestNewRunLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, runID, err := NewRunLogger(LoggerConfig{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("NewRunLogger() error: %v", err)
	}
	if _, err := uuid.Parse(runID); err != nil {
		t.Errorf("run ID %q is not a UUID: %v", runID, err)
	}

	logger.Info("tagged")
	if !strings.Contains(buf.String(), `"correlation_id":"`+runID+`"`) {
		t.Errorf("entry lacks run ID: %s", buf.String())
	}

	_, other, _ := NewRunLogger(LoggerConfig{Output: &buf})
	if other == runID {
		t.Error("two runs share one ID")
	}
}

func TestKV(t *testing.T) {
	if fields := KV(); fields != nil {
		t.Error("KV() with no args should return nil")
	}

	fields := KV("key1", "value1", "key2", 42)
	if fields["key1"] != "value1" || fields["key2"] != 42 {
		t.Errorf("KV() = %v", fields)
	}

	if fields := KV(123, "value"); len(fields) != 0 {
		t.Errorf("non-string key kept: %v", fields)
	}
	if fields := KV("key", "value", "orphan"); len(fields) != 1 {
		t.Errorf("orphan key kept: %v", fields)
	}
}

func TestWrappedLogger(t *testing.T) {
	var buf bytes.Buffer
	base, _ := NewLogger(LoggerConfig{Level: "debug", Format: "logfmt", Output: &buf})
	logger := Wrap(base).With("cmd", "clone")

	logger.Debug("decoded", "format", "yaml")
	logger.Info("cloned")
	logger.Warn("set", "path", "$.a")
	logger.Error("failed", "code", "NOT_FOUND")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4: %s", len(lines), buf.String())
	}
	for _, line := range lines {
		if !strings.Contains(line, "cmd=clone") {
			t.Errorf("line lacks context field: %s", line)
		}
	}
	if !strings.Contains(lines[0], "format=yaml") || !strings.Contains(lines[3], "code=NOT_FOUND") {
		t.Errorf("key-value fields missing: %v", lines)
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	var buf bytes.Buffer
	base, _ := NewLogger(LoggerConfig{Level: "info", Format: "json", Output: &buf})
	logger := Wrap(base)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		logger.Info("benchmark", "iteration", i)
	}
}
