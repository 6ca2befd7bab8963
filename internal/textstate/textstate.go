// Package textstate owns the in-memory document for the active note: the
// authoritative text, whole-snapshot undo/redo history, the active search
// match overlay, and a cached styled layout derived from all three. It has
// no I/O; loading and saving notes is the caller's concern.
package textstate

import (
	"github.com/danpozmanter/NoteSquirrel/internal/search"
)

// TextState is the single source of truth for what the editable region should
// currently show. It is owned by the UI goroutine and never shared.
type TextState struct {
	text  string
	theme Theme

	undo []string
	redo []string

	matches []search.Match
	current int // -1 when no active match

	lastCursor    int // last known byte offset of the editor cursor
	pendingCursor int
	hasPending    bool

	cacheText    string
	cacheMatches []search.Match
	cacheCurrent int
	cacheRuns    []StyledRun
	cacheValid   bool
}

func New(theme Theme) *TextState {
	return &TextState{theme: theme, current: -1, cacheCurrent: -1}
}

func (ts *TextState) Text() string { return ts.text }

// SetText replaces the document without touching history, then drops the
// existing history. Used when switching notes: undo history is per-note,
// per-session.
func (ts *TextState) SetText(text string) {
	ts.text = text
	ts.undo = ts.undo[:0]
	ts.redo = ts.redo[:0]
	ts.lastCursor = len(text)
	ts.hasPending = false
}

// SetTextWithUndo replaces the document through the history path: the current
// text is pushed onto the undo stack and the redo stack is cleared. Equal
// text is a no-op.
func (ts *TextState) SetTextWithUndo(text string) {
	if text == ts.text {
		return
	}
	ts.pushUndo()
	ts.text = text
}

// Undo restores the most recent snapshot, moving the current text to the redo
// stack. Reports whether a change occurred.
func (ts *TextState) Undo() bool {
	if len(ts.undo) == 0 {
		return false
	}
	prev := ts.undo[len(ts.undo)-1]
	ts.undo = ts.undo[:len(ts.undo)-1]
	ts.redo = append(ts.redo, ts.text)
	ts.text = prev
	return true
}

// Redo re-applies the most recently undone snapshot. Reports whether a change
// occurred.
func (ts *TextState) Redo() bool {
	if len(ts.redo) == 0 {
		return false
	}
	next := ts.redo[len(ts.redo)-1]
	ts.redo = ts.redo[:len(ts.redo)-1]
	ts.undo = append(ts.undo, ts.text)
	ts.text = next
	return true
}

// CanUndo and CanRedo let the UI dim its history indicators.
func (ts *TextState) CanUndo() bool { return len(ts.undo) > 0 }
func (ts *TextState) CanRedo() bool { return len(ts.redo) > 0 }

func (ts *TextState) pushUndo() {
	ts.undo = append(ts.undo, ts.text)
	ts.redo = ts.redo[:0]
}

// SetCursor records the editor's last known cursor byte offset, used as the
// default position for the insertion helpers.
func (ts *TextState) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(ts.text) {
		pos = len(ts.text)
	}
	ts.lastCursor = pos
}

// PendingCursor returns a one-shot cursor override recorded by an insertion
// helper, to be applied to the text widget on the next draw.
func (ts *TextState) PendingCursor() (int, bool) {
	if !ts.hasPending {
		return 0, false
	}
	ts.hasPending = false
	return ts.pendingCursor, true
}

// SetMatches replaces the highlight overlay. The layout cache is only
// invalidated when the ranges or the current index actually changed. current
// is clamped into range; with no matches it is forced absent.
func (ts *TextState) SetMatches(matches []search.Match, current int) {
	if len(matches) == 0 {
		current = -1
	} else {
		if current < 0 {
			current = 0
		}
		if current >= len(matches) {
			current = len(matches) - 1
		}
	}

	if current == ts.current && matchesEqual(matches, ts.matches) {
		return
	}

	ts.matches = append(ts.matches[:0], matches...)
	ts.current = current
	ts.cacheValid = false
}

// ClearMatches removes the highlight overlay.
func (ts *TextState) ClearMatches() {
	ts.SetMatches(nil, -1)
}

func (ts *TextState) MatchCount() int { return len(ts.matches) }

// StyledRuns returns the styled layout for the committed document, rebuilding
// only when text, matches, or the current-match index changed since the last
// build.
func (ts *TextState) StyledRuns() []StyledRun {
	if ts.cacheValid &&
		ts.cacheText == ts.text &&
		ts.cacheCurrent == ts.current &&
		matchesEqual(ts.cacheMatches, ts.matches) {
		return ts.cacheRuns
	}

	ts.cacheRuns = BuildStyledRuns(ts.theme, ts.text, ts.matches, ts.current)
	ts.cacheText = ts.text
	ts.cacheMatches = append(ts.cacheMatches[:0], ts.matches...)
	ts.cacheCurrent = ts.current
	ts.cacheValid = true
	return ts.cacheRuns
}

func matchesEqual(a, b []search.Match) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
