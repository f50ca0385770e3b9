// File: timer_test.go
// Title: Operation Timer Tests
// Description: Tests timer completion and failure logging.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19

package log

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestTimerStop(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf, LevelDebug)

	timer := logger.StartTimer("clone").WithField("format", "json")
	time.Sleep(time.Millisecond)
	elapsed := timer.Stop()

	if elapsed <= 0 {
		t.Errorf("Stop() = %v, want a positive duration", elapsed)
	}
	if timer.IsRunning() {
		t.Error("timer still running after Stop()")
	}
	if again := timer.Stop(); again != 0 {
		t.Errorf("second Stop() = %v, want 0", again)
	}

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e["message"] != "clone completed" || e["level"] != "debug" || e["format"] != "json" || e["success"] != true {
		t.Errorf("entry = %v", e)
	}
	if ms, _ := e["duration_ms"].(float64); ms <= 0 {
		t.Errorf("duration_ms = %v", e["duration_ms"])
	}
}

func TestTimerStopWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf, LevelWarn)

	logger.StartTimer("decode").StopWithError(errors.New("bad input"))

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e["message"] != "decode failed" || e["level"] != "error" || e["error"] != "bad input" || e["success"] != false {
		t.Errorf("entry = %v", e)
	}
}

func TestTimerLevelFiltered(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf, LevelInfo)

	logger.StartTimer("quiet").Stop()
	if buf.Len() != 0 {
		t.Errorf("debug timer logged at info level: %s", buf.String())
	}

	logger.StartTimer("loud").WithLevel(LevelInfo).Stop()
	if buf.Len() == 0 {
		t.Error("info timer did not log")
	}
}

func TestTimerWithoutLogger(t *testing.T) {
	timer := NewTimer(nil, "detached")
	if timer.Stop() < 0 {
		t.Error("Stop() on a detached timer returned a negative duration")
	}
}
