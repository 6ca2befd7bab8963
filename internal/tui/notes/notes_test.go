package notes

import (
	"testing"

	"github.com/danpozmanter/NoteSquirrel/internal/config"
	"github.com/danpozmanter/NoteSquirrel/internal/handler"
	"github.com/danpozmanter/NoteSquirrel/internal/state"
	"github.com/danpozmanter/NoteSquirrel/internal/textstate"
)

func newTestModel(t *testing.T, seed map[string]string) *NoteListModel {
	t.Helper()
	vault := t.TempDir()
	h := handler.NewFileHandler(vault, ".md")
	if err := h.EnsureVault(); err != nil {
		t.Fatalf("ensure vault: %v", err)
	}
	for name, content := range seed {
		if err := h.Write(name, content); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}

	s := &state.State{
		Config:  &config.Config{SortField: "title", SortOrder: "ascending"},
		Handler: h,
		Theme:   textstate.DefaultTheme(),
		Home:    vault,
		Vault:   vault,
	}
	m, err := NewNoteListModel(s)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func TestPreviewElementCountSurvivesCacheHit(t *testing.T) {
	m := newTestModel(t, nil)

	m.editor.load("tasks", "- [ ] one\n- [ ] two\n")
	m.refreshPreview()
	if m.previewElems != 2 {
		t.Fatalf("tasks: want 2 elements, got %d", m.previewElems)
	}

	m.editor.load("plain", "just a paragraph\n")
	m.refreshPreview()
	if m.previewElems != 0 {
		t.Fatalf("plain: want 0 elements, got %d", m.previewElems)
	}

	// Revisiting the first note hits the frame cache; the element count
	// must still reflect the displayed note.
	m.editor.load("tasks", "- [ ] one\n- [ ] two\n")
	m.refreshPreview()
	if m.previewElems != 2 {
		t.Fatalf("tasks revisited: want 2 elements, got %d", m.previewElems)
	}

	m.cycleElement(1)
	if m.previewFocus != 0 {
		t.Fatalf("cycling after revisit: focus = %d, want 0", m.previewFocus)
	}
}

func TestInitialNoteOpensEditorThroughInit(t *testing.T) {
	m := newTestModel(t, map[string]string{"todo": "- [ ] first\n"})

	m.selectByName("todo")
	m.initialCmd = m.openSelected()

	if m.focus != focusEditor {
		t.Fatalf("focus = %d, want editor", m.focus)
	}
	if m.editor.name != "todo" {
		t.Fatalf("editor note = %q", m.editor.name)
	}
	if m.Init() == nil {
		t.Fatal("the initial open command must surface through Init")
	}
}
