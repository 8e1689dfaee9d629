package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"
)

func TestNewJSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Options{Level: "debug", Format: "json", Writers: []io.Writer{buf}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hello", "key", "value")

	line := strings.TrimSpace(buf.String())
	var record map[string]any
	if err := json.Unmarshal([]byte(line), &record); err != nil {
		t.Fatalf("log line not JSON: %v (%q)", err, line)
	}
	if record["msg"] != "hello" || record["key"] != "value" {
		t.Fatalf("record = %v", record)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Options{Level: "warn", Format: "console", Writers: []io.Writer{buf}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info record not filtered: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn record missing: %q", out)
	}
}
