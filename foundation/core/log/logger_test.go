// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, formatters, derived loggers,
//              error integration and timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Consolidated into a single test file

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/tuplang/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf, NoColor: true}), buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "text", "console", "logfmt"} {
		f, err := ParseFormat(name)
		if err != nil {
			t.Fatalf("ParseFormat(%q) error = %v", name, err)
		}
		if f.String() != name {
			t.Errorf("round trip %q -> %q", name, f.String())
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("below-level entries written:\n%s", out)
	}
	if !strings.Contains(out, "[WRN]") || !strings.Contains(out, "shown") {
		t.Errorf("warn entry missing:\n%s", out)
	}
	if logger.IsLevelEnabled(LevelInfo) {
		t.Error("info should be disabled")
	}
}

func TestTextFormatter_SortedFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)

	logger.WithField("component", "tupl-parser").Info("parsed", Fields{"tokens": 12, "definitions": 3})

	out := buf.String()
	if !strings.Contains(out, "[component=tupl-parser definitions=3 tokens=12]") {
		t.Errorf("fields not sorted or missing:\n%s", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	logger.WithName("tupl").WithRunID("run-1").Info("checked", Fields{"valid": true})

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	want := map[string]interface{}{
		"level":   "info",
		"message": "checked",
		"logger":  "tupl",
		"run_id":  "run-1",
		"valid":   true,
	}
	for k, v := range want {
		if decoded[k] != v {
			t.Errorf("%s = %v, want %v", k, decoded[k], v)
		}
	}
}

func TestLogfmtFormatter(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatLogfmt)

	logger.Warn("rejected", Fields{"file": "a.tupl", "line": 4})

	out := buf.String()
	for _, want := range []string{`level=warn`, `message="rejected"`, `file="a.tupl"`, `line=4`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in %q", want, out)
		}
	}
}

func TestConsoleFormatter_Colors(t *testing.T) {
	entry := NewEntry(LevelError, "boom")

	colored, _ := NewConsoleFormatter().Format(entry)
	if !strings.HasPrefix(string(colored), LevelError.Color()) {
		t.Errorf("expected color prefix, got %q", colored)
	}

	plain := NewConsoleFormatter()
	plain.DisableColors = true
	out, _ := plain.Format(entry)
	if strings.Contains(string(out), "\033[") {
		t.Errorf("colors not disabled: %q", out)
	}
}

func TestWithField_DoesNotMutateParent(t *testing.T) {
	parent, buf := newBufferLogger(LevelDebug, FormatText)
	_ = parent.WithField("component", "child")

	parent.Info("parent entry")
	if strings.Contains(buf.String(), "component=child") {
		t.Errorf("parent picked up child field:\n%s", buf.String())
	}
}

func TestLogError_UsesSeverity(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
	}{
		{"low severity logs info", mdwerror.New("bad token").WithCode(mdwerror.CodeSyntax), "info"},
		{"high severity logs error", mdwerror.New("disk").WithCode(mdwerror.CodeDatabaseError), "error"},
		{"plain error logs error", errors.New("plain"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelDebug, FormatJSON)
			logger.LogError(tt.err)

			var decoded map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if decoded["level"] != tt.level {
				t.Errorf("level = %v, want %s", decoded["level"], tt.level)
			}
		})
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)

	timer := logger.StartTimer("parse").WithField("file", "a.tupl")
	if d := timer.Stop(); d <= 0 {
		t.Errorf("Stop() = %v, want > 0", d)
	}
	if d := timer.Stop(); d != 0 {
		t.Errorf("second Stop() = %v, want 0", d)
	}

	out := buf.String()
	if strings.Count(out, "parse completed") != 1 {
		t.Errorf("expected one completion entry:\n%s", out)
	}
	if !strings.Contains(out, "file=a.tupl") || !strings.Contains(out, "operation=parse") {
		t.Errorf("timer fields missing:\n%s", out)
	}
}

func TestTimer_StopWithResultEscalates(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.StartTimer("analyze").StopWithResult(false, 2)

	if !strings.Contains(buf.String(), "analyze completed with errors") {
		t.Errorf("failed result not logged at warn:\n%s", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("discard logger should not enable any level")
	}
	logger.Fatal("nothing")
}
