package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "wordvec.log")

	if err := Init(logPath); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	LogQuery("neighbors", "frog", "euclidean", 10, 42*time.Millisecond)
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", content)
	}
	if !strings.Contains(content, "[NEIGHBORS] input=frog") {
		t.Fatalf("expected LogQuery content, got: %s", content)
	}
}

func TestBuildQueryMessageDefaults(t *testing.T) {
	msg := buildQueryMessage(" ", " ", "", 3, time.Second)
	if !strings.Contains(msg, "[QUERY]") {
		t.Fatalf("expected default kind, got: %s", msg)
	}
	if !strings.Contains(msg, "input=unknown") {
		t.Fatalf("expected default input, got: %s", msg)
	}
	if !strings.Contains(msg, "metric=euclidean") {
		t.Fatalf("expected default metric, got: %s", msg)
	}
	if !strings.Contains(msg, "results=3") {
		t.Fatalf("expected result count, got: %s", msg)
	}
}

func TestBuildQueryMessageUppercasesKind(t *testing.T) {
	msg := buildQueryMessage("analogy", "king : queen :: man", "cosine", 5, 7*time.Millisecond)
	if !strings.HasPrefix(msg, "[ANALOGY]") {
		t.Fatalf("expected uppercased kind, got: %s", msg)
	}
	if !strings.Contains(msg, "metric=cosine") {
		t.Fatalf("expected metric, got: %s", msg)
	}
}
