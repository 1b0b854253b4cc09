package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheck(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	if err := os.WriteFile(present, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	results := Check([]Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "definitely-not-installed-binary"},
		{Name: "Blank", Command: "   "},
	})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].Available || results[0].Detail != "" {
		t.Fatalf("present binary misreported: %#v", results[0])
	}
	if results[1].Available || results[1].Detail == "" {
		t.Fatalf("missing binary misreported: %#v", results[1])
	}
	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("blank command misreported: %#v", results[2])
	}
}

func TestFirstAvailable(t *testing.T) {
	statuses := []Status{
		{Requirement: Requirement{Name: "A"}, Available: false},
		{Requirement: Requirement{Name: "B"}, Available: true},
		{Requirement: Requirement{Name: "C"}, Available: true},
	}
	got, ok := FirstAvailable(statuses)
	if !ok || got.Name != "B" {
		t.Fatalf("FirstAvailable = %#v ok=%v, want B", got, ok)
	}

	if _, ok := FirstAvailable(nil); ok {
		t.Fatal("FirstAvailable on empty input should report false")
	}
}
