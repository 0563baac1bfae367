package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddDropsEmptyAndConsecutiveDuplicates(t *testing.T) {
	dir := t.TempDir()
	h, err := Open(filepath.Join(dir, "history"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	for _, cmd := range []string{"run", "run", "", "continue", "quit"} {
		if err := h.Add(cmd); err != nil {
			t.Fatalf("Add(%q): %v", cmd, err)
		}
	}

	want := []string{"run", "continue", "quit"}
	got := h.Entries()
	if len(got) != len(want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	last, ok := h.LastCommand()
	if !ok || last != "quit" {
		t.Errorf("LastCommand() = (%q, %v), want (\"quit\", true)", last, ok)
	}
}

func TestAddPersistsToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history")
	h, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	for _, cmd := range []string{"run", "run", "continue"} {
		if err := h.Add(cmd); err != nil {
			t.Fatalf("Add(%q): %v", cmd, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "run\ncontinue\n" {
		t.Errorf("file contents = %q, want %q", data, "run\ncontinue\n")
	}
}

func TestOpenLoadsExistingEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history")
	if err := os.WriteFile(path, []byte("a\n\nb\nc\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	h, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	got := h.Entries()
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}
}

func TestLastCommandOnEmptyHistory(t *testing.T) {
	dir := t.TempDir()
	h, err := Open(filepath.Join(dir, "history"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := h.LastCommand(); ok {
		t.Error("expected ok=false on empty history")
	}
}
