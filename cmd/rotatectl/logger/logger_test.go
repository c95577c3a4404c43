package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitVerbose(t *testing.T) {
	var buf bytes.Buffer
	closeFn, err := Init(Options{Verbose: true, Stderr: &buf})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer closeFn()

	L.Debug("rotating", "n", 5)
	if !strings.Contains(buf.String(), "rotating") || !strings.Contains(buf.String(), "n=5") {
		t.Fatalf("unexpected log output: %q", buf.String())
	}
}

func TestInitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rotatectl.log")
	closeFn, err := Init(Options{File: path})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	L.Debug("hidden")
	L.Info("shown", "k", 2)
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one record, got %d: %q", len(lines), data)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("invalid JSON record: %v", err)
	}
	if rec["msg"] != "shown" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestInitDiscard(t *testing.T) {
	closeFn, err := Init(Options{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if L == nil {
		t.Fatalf("expected a logger")
	}
	L.Info("discarded")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
