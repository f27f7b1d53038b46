package logs

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closeLog, err := New(Options{Level: "warn", Stderr: &buf})
	if err != nil {
		t.Fatal(err)
	}
	defer closeLog()

	logger.Debug("store update", "field", "name")
	logger.Warn("export failed", "format", "md")

	out := buf.String()
	if strings.Contains(out, "store update") {
		t.Fatalf("debug record leaked: %q", out)
	}
	if !strings.Contains(out, "export failed") || !strings.Contains(out, "format=md") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestNew_FanoutToFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "dpsheet.log")
	logger, closeLog, err := New(Options{Level: "debug", File: path, Stderr: &buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("worksheet created", "index", 1)
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "worksheet created") {
		t.Fatalf("terminal missing record: %q", buf.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &rec); err != nil {
		t.Fatalf("log file is not JSON: %v (%q)", err, data)
	}
	if rec["msg"] != "worksheet created" {
		t.Fatalf("msg = %v", rec["msg"])
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatal("expected error")
	}
}
