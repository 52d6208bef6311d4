package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{"-17", -17, false},
		{"+5", 5, false},
		{"2147483647", 2147483647, false},
		{"-2147483648", -2147483648, false},
		{"2147483648", 0, true},
		{"1.5", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"1,000", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseInt(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseInt(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestEnsureParentDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "input", "day1", "input")

	if err := EnsureParentDir(file); err != nil {
		t.Fatalf("EnsureParentDir: %v", err)
	}
	info, err := os.Stat(filepath.Dir(file))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("%s is not a directory", filepath.Dir(file))
	}
	// Second call on an existing dir is a no-op.
	if err := EnsureParentDir(file); err != nil {
		t.Fatalf("EnsureParentDir again: %v", err)
	}
}
