package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// path is the file l currently writes to, or "" once closed.
func (l *DailyLogger) path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

func TestDailyLoggerWritesAndRotates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	l, err := NewDailyLogger(dir, "aoc")
	if err != nil {
		t.Fatalf("NewDailyLogger: %v", err)
	}
	defer l.Close()

	day := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return day }

	l.Printf("first %d", 1)
	first := filepath.Join(dir, "aoc-2024-12-01.log")
	if l.path() != first {
		t.Fatalf("Path = %q, want %q", l.path(), first)
	}

	day = day.Add(24 * time.Hour)
	l.Printf("second %d", 2)
	second := filepath.Join(dir, "aoc-2024-12-02.log")
	if l.path() != second {
		t.Fatalf("Path = %q, want %q", l.path(), second)
	}

	b, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("read first: %v", err)
	}
	if !strings.Contains(string(b), "first 1") || strings.Contains(string(b), "second 2") {
		t.Fatalf("first log content: %q", b)
	}
	b, err = os.ReadFile(second)
	if err != nil {
		t.Fatalf("read second: %v", err)
	}
	if !strings.Contains(string(b), "second 2") {
		t.Fatalf("second log content: %q", b)
	}
}

func TestDailyLoggerBadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewDailyLogger(file, "aoc"); err == nil {
		t.Fatalf("expected error when log dir is a file")
	}
}

func TestDailyLoggerPrintfAfterClose(t *testing.T) {
	dir := t.TempDir()

	l, err := NewDailyLogger(dir, "aoc")
	if err != nil {
		t.Fatalf("NewDailyLogger: %v", err)
	}
	day := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return day }
	l.Printf("before close")

	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if l.path() != "" {
		t.Fatalf("path after Close = %q, want empty", l.path())
	}

	day = day.Add(24 * time.Hour)
	l.Printf("after close")

	if _, err := os.Stat(filepath.Join(dir, "aoc-2024-12-02.log")); !os.IsNotExist(err) {
		t.Fatalf("Printf after Close reopened a log file: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "aoc-2024-12-01.log"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(b), "after close") {
		t.Fatalf("log written after Close: %q", b)
	}
}
