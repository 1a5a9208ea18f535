package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestErrorWritesToConfiguredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "shell.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(errors.New("transition failed"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file, got error: %v", err)
	}
	if !strings.Contains(string(data), "transition failed") {
		t.Fatalf("expected logged message, got %q", string(data))
	}
}

func TestErrorIgnoresNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shell.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(nil)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file for nil error")
	}
}

func TestTraceRespectsToggle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shell.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})

	Trace("shell.dispatch", map[string]interface{}{"trigger": "x"})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no trace output while disabled")
	}

	SetTraceEnabled(true)
	Trace("shell.dispatch", map[string]interface{}{"trigger": "x"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected trace file, got error: %v", err)
	}
	entry := string(data)
	if !strings.Contains(entry, `"event":"shell.dispatch"`) {
		t.Fatalf("expected event name in entry, got %q", entry)
	}
	if !strings.Contains(entry, `"trigger":"x"`) {
		t.Fatalf("expected payload in entry, got %q", entry)
	}
}
