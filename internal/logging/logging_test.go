package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesJSONWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	SetTraceEnabled(true)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})

	Trace("menu.cursor", map[string]interface{}{"cursor": 3})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected trace file: %v", err)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("expected JSON entry, got %q: %v", data, err)
	}
	if entry.Event != "menu.cursor" {
		t.Fatalf("expected menu.cursor event, got %q", entry.Event)
	}
	if entry.Payload["cursor"] != float64(3) {
		t.Fatalf("expected cursor 3, got %v", entry.Payload["cursor"])
	}
}

func TestTraceSkippedWhenDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	Configure(path)
	SetTraceEnabled(false)
	t.Cleanup(func() { Configure("") })

	Trace("menu.cursor", nil)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no trace file, got err=%v", err)
	}
}

func TestErrorAppendsToLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(errors.New("launch vim: boom"))
	Error(nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if strings.Count(string(data), "launch vim: boom") != 1 {
		t.Fatalf("expected one error line, got %q", data)
	}
}
