package handler

import (
	"os"
	"path/filepath"
	"testing"
)

func newVault(t *testing.T) *FileHandler {
	t.Helper()
	h := NewFileHandler(t.TempDir(), ".md")
	if err := h.EnsureVault(); err != nil {
		t.Fatalf("failed to ensure vault: %v", err)
	}
	return h
}

func TestExtensionNormalization(t *testing.T) {
	h := NewFileHandler("/tmp/x", "")
	if got := h.Path("a"); got != filepath.Join("/tmp/x", "a.md") {
		t.Fatalf("default extension: %q", got)
	}

	h = NewFileHandler("/tmp/x", "txt")
	if got := h.Path("a"); got != filepath.Join("/tmp/x", "a.txt") {
		t.Fatalf("dotless extension: %q", got)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	h := newVault(t)

	if err := h.Write("groceries", "- milk\n- eggs\n"); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := h.Read("groceries")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "- milk\n- eggs\n" {
		t.Fatalf("content = %q", got)
	}
}

func TestReadMissingNoteIsEmpty(t *testing.T) {
	h := newVault(t)

	got, err := h.Read("nope")
	if err != nil {
		t.Fatalf("missing note must not error: %v", err)
	}
	if got != "" {
		t.Fatalf("content = %q", got)
	}
}

func TestListNotesSortedAndFiltered(t *testing.T) {
	h := newVault(t)

	for _, name := range []string{"zebra", "Apple", "mango"} {
		if err := h.Write(name, ""); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	// Noise the listing must skip.
	if err := os.WriteFile(filepath.Join(h.VaultDir(), ".hidden.md"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(h.VaultDir(), "notes.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(h.VaultDir(), "subdir.md"), 0o755); err != nil {
		t.Fatal(err)
	}

	names, err := h.ListNotes()
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []string{"Apple", "mango", "zebra"}
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
}

func TestCreateRefusesExisting(t *testing.T) {
	h := newVault(t)

	if err := h.Create("once"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := h.Create("once"); err == nil {
		t.Fatal("creating an existing note must fail")
	}
}

func TestDeleteAndExists(t *testing.T) {
	h := newVault(t)

	if err := h.Write("gone", "x"); err != nil {
		t.Fatal(err)
	}
	if !h.Exists("gone") {
		t.Fatal("note should exist")
	}
	if err := h.Delete("gone"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if h.Exists("gone") {
		t.Fatal("note should be gone")
	}
}

func TestRename(t *testing.T) {
	h := newVault(t)

	if err := h.Write("old", "content"); err != nil {
		t.Fatal(err)
	}
	if err := h.Rename("old", "new"); err != nil {
		t.Fatalf("rename: %v", err)
	}

	if h.Exists("old") {
		t.Fatal("old name still present")
	}
	got, err := h.Read("new")
	if err != nil || got != "content" {
		t.Fatalf("read after rename: %q, %v", got, err)
	}
}

func TestModifiedTime(t *testing.T) {
	h := newVault(t)

	if _, ok := h.ModifiedTime("missing"); ok {
		t.Fatal("missing note must report no time")
	}

	if err := h.Write("note", "x"); err != nil {
		t.Fatal(err)
	}
	if mod, ok := h.ModifiedTime("note"); !ok || mod.IsZero() {
		t.Fatalf("modified time = %v, %v", mod, ok)
	}
}

func TestNextUntitled(t *testing.T) {
	h := newVault(t)

	if got := h.NextUntitled(); got != "Note 1" {
		t.Fatalf("first untitled = %q", got)
	}
	if err := h.Create("Note 1"); err != nil {
		t.Fatal(err)
	}
	if err := h.Create("Note 2"); err != nil {
		t.Fatal(err)
	}
	if got := h.NextUntitled(); got != "Note 3" {
		t.Fatalf("untitled after two = %q", got)
	}
}
