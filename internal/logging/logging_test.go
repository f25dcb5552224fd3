package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesOnlyWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})

	SetTraceEnabled(false)
	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing disabled, got err=%v", err)
	}

	SetTraceEnabled(true)
	Trace("bookmark.add", map[string]interface{}{"id": "bookmark_1"})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace log: %v", err)
	}
	if !strings.Contains(string(data), `"event":"bookmark.add"`) {
		t.Fatalf("expected trace entry, got %q", data)
	}
}

func TestErrorAppendsMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(nil)
	Error(errors.New("store unavailable"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read error log: %v", err)
	}
	if !strings.Contains(string(data), "store unavailable") {
		t.Fatalf("expected error message in log, got %q", data)
	}
}
