package textstate

import (
	"testing"

	"github.com/danpozmanter/NoteSquirrel/internal/search"
)

func newState(t *testing.T) *TextState {
	t.Helper()
	return New(DefaultTheme())
}

func TestSetTextClearsHistory(t *testing.T) {
	ts := newState(t)
	ts.SetTextWithUndo("one")
	ts.SetTextWithUndo("two")

	ts.SetText("fresh note")
	if ts.CanUndo() || ts.CanRedo() {
		t.Fatal("switching notes must drop history")
	}
	if ts.Text() != "fresh note" {
		t.Fatalf("text = %q", ts.Text())
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	ts := newState(t)
	ts.SetText("a")
	ts.SetTextWithUndo("ab")
	ts.SetTextWithUndo("abc")

	if !ts.Undo() {
		t.Fatal("undo failed")
	}
	if ts.Text() != "ab" {
		t.Fatalf("after undo: %q", ts.Text())
	}
	if !ts.Undo() {
		t.Fatal("second undo failed")
	}
	if ts.Text() != "a" {
		t.Fatalf("after second undo: %q", ts.Text())
	}

	if !ts.Redo() {
		t.Fatal("redo failed")
	}
	if !ts.Redo() {
		t.Fatal("second redo failed")
	}
	if ts.Text() != "abc" {
		t.Fatalf("after redo round trip: %q", ts.Text())
	}
}

func TestUndoRedoEmptyStacks(t *testing.T) {
	ts := newState(t)
	ts.SetText("stable")

	if ts.Undo() {
		t.Fatal("undo on empty stack must report false")
	}
	if ts.Redo() {
		t.Fatal("redo on empty stack must report false")
	}
	if ts.Text() != "stable" {
		t.Fatalf("text changed: %q", ts.Text())
	}
}

func TestSetTextWithUndoEqualTextIsNoOp(t *testing.T) {
	ts := newState(t)
	ts.SetText("same")
	ts.SetTextWithUndo("same")

	if ts.CanUndo() {
		t.Fatal("equal text must not push history")
	}
}

func TestNewEditClearsRedo(t *testing.T) {
	ts := newState(t)
	ts.SetText("a")
	ts.SetTextWithUndo("ab")
	ts.Undo()

	if !ts.CanRedo() {
		t.Fatal("expected redo after undo")
	}
	ts.SetTextWithUndo("ax")
	if ts.CanRedo() {
		t.Fatal("a fresh edit must clear the redo stack")
	}
}

func TestPendingCursorIsOneShot(t *testing.T) {
	ts := newState(t)
	ts.SetText("")
	ts.InsertCheckboxEntry(0)

	pos, ok := ts.PendingCursor()
	if !ok {
		t.Fatal("expected a pending cursor after insert")
	}
	if pos != len("- [ ] ") {
		t.Fatalf("pending cursor = %d", pos)
	}
	if _, ok := ts.PendingCursor(); ok {
		t.Fatal("pending cursor must only be returned once")
	}
}

func TestSetCursorClamps(t *testing.T) {
	ts := newState(t)
	ts.SetText("abc")

	ts.SetCursor(-5)
	ts.InsertListEntry(-1)
	if ts.Text() != "\n- abc" {
		t.Fatalf("clamped low cursor: %q", ts.Text())
	}

	ts.SetText("abc")
	ts.SetCursor(999)
	ts.InsertListEntry(-1)
	if ts.Text() != "abc\n- " {
		t.Fatalf("clamped high cursor: %q", ts.Text())
	}
}

func TestStyledRunsCacheInvalidation(t *testing.T) {
	ts := newState(t)
	ts.SetText("hello world")

	first := ts.StyledRuns()
	second := ts.StyledRuns()
	if &first[0] != &second[0] {
		t.Fatal("unchanged inputs must return the cached layout")
	}

	// Text change invalidates.
	ts.SetTextWithUndo("hello world!")
	third := ts.StyledRuns()
	if len(third) == 0 || third[len(third)-1].End != len("hello world!") {
		t.Fatalf("layout not rebuilt for new text: %+v", third)
	}

	// Match change invalidates.
	ts.SetMatches([]search.Match{{Start: 0, End: 5}}, 0)
	fourth := ts.StyledRuns()
	if len(fourth) == len(third) {
		t.Fatal("match overlay should have split runs")
	}

	// Current-index change alone invalidates.
	ts.SetMatches([]search.Match{{Start: 0, End: 5}}, -1)
	if got := ts.StyledRuns(); len(got) != len(fourth) {
		t.Fatalf("same ranges should split identically, got %d runs", len(got))
	}
}

func TestSetMatchesEqualValuesKeepCache(t *testing.T) {
	ts := newState(t)
	ts.SetText("abc abc")
	ts.SetMatches([]search.Match{{Start: 0, End: 3}}, 0)
	first := ts.StyledRuns()

	// Same ranges in a freshly allocated slice: cache must survive.
	ts.SetMatches([]search.Match{{Start: 0, End: 3}}, 0)
	second := ts.StyledRuns()
	if &first[0] != &second[0] {
		t.Fatal("value-equal matches must not invalidate the cache")
	}
}

func TestSetMatchesClamping(t *testing.T) {
	ts := newState(t)
	ts.SetText("x")

	ts.SetMatches([]search.Match{{Start: 0, End: 1}}, 7)
	if ts.MatchCount() != 1 {
		t.Fatalf("match count = %d", ts.MatchCount())
	}

	ts.SetMatches(nil, 3)
	if ts.MatchCount() != 0 {
		t.Fatal("nil matches must clear the overlay")
	}
}
