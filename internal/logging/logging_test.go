package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "folio.log")

	l, err := New(Config{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	l.Debug("hello from test")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Fatalf("log file = %q, want message", data)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.log")

	l, err := New(Config{Level: "WARN", Encoding: "json", File: path})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	l.Info("quiet")
	l.Warn("loud")
	_ = l.Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "quiet") || !strings.Contains(string(data), `"msg":"loud"`) {
		t.Fatalf("log file = %q, want only the warning in json", data)
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("New with empty file returned nil error")
	}
	if _, err := New(Config{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")}); err == nil {
		t.Fatalf("New with bad level returned nil error")
	}
	l, err := NewOrNop(Config{})
	if err == nil || l == nil {
		t.Fatalf("NewOrNop = (%v, %v), want nop logger and error", l, err)
	}
}
