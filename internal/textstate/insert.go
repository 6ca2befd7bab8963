package textstate

import (
	"strings"
)

const (
	listMarker     = "- "
	checkboxMarker = "- [ ] "

	uncheckedBox = "- [ ]"
	checkedBox   = "- [x]"
)

// InsertListEntry inserts a bullet entry at pos (a byte offset; negative
// means the last known cursor position). Always mutates and always pushes
// history; returns true unconditionally.
func (ts *TextState) InsertListEntry(pos int) bool {
	return ts.insertEntry(pos, listMarker)
}

// InsertCheckboxEntry inserts an unchecked task entry at pos.
func (ts *TextState) InsertCheckboxEntry(pos int) bool {
	return ts.insertEntry(pos, checkboxMarker)
}

func (ts *TextState) insertEntry(pos int, marker string) bool {
	if pos < 0 {
		pos = ts.lastCursor
	}
	if pos > len(ts.text) {
		pos = len(ts.text)
	}

	lineStart := strings.LastIndexByte(ts.text[:pos], '\n') + 1
	atEmptyLineStart := pos == lineStart && (pos == len(ts.text) || ts.text[pos] == '\n')

	var inserted string
	if atEmptyLineStart {
		// The line above the empty line decides the indentation.
		inserted = markerIndent(ts.text, lineStart-1) + marker
	} else {
		inserted = "\n" + markerIndent(ts.text, pos) + marker
	}

	ts.pushUndo()
	ts.text = ts.text[:pos] + inserted + ts.text[pos:]

	ts.pendingCursor = pos + len(inserted)
	ts.hasPending = true
	ts.lastCursor = ts.pendingCursor
	return true
}

// markerIndent returns the leading whitespace of the line containing pos, but
// only when that line itself starts (after its indentation) with a bullet,
// numbered, or checkbox marker. Otherwise no indentation is inherited.
func markerIndent(text string, pos int) string {
	if pos < 0 {
		return ""
	}
	if pos > len(text) {
		pos = len(text)
	}

	start := strings.LastIndexByte(text[:pos], '\n') + 1
	end := strings.IndexByte(text[start:], '\n')
	if end < 0 {
		end = len(text)
	} else {
		end += start
	}
	line := text[start:end]

	stripped := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(stripped, "- ") &&
		!strings.HasPrefix(stripped, "* ") &&
		!strings.HasPrefix(stripped, "+ ") &&
		!orderedPrefix.MatchString(stripped) {
		return ""
	}
	return line[:len(line)-len(stripped)]
}

// ToggleCheckboxAtLine flips the first checkbox marker on the given
// zero-based line between unchecked and checked. Out-of-range lines and
// lines without a marker are no-ops with no history push; a real toggle goes
// through the undo path like every other document mutation.
func (ts *TextState) ToggleCheckboxAtLine(line int) bool {
	lines := strings.Split(ts.text, "\n")
	if line < 0 || line >= len(lines) {
		return false
	}

	old := lines[line]
	var updated string
	switch {
	case strings.Contains(old, uncheckedBox):
		updated = strings.Replace(old, uncheckedBox, checkedBox, 1)
	case strings.Contains(old, checkedBox):
		updated = strings.Replace(old, checkedBox, uncheckedBox, 1)
	default:
		return false
	}

	ts.pushUndo()
	lines[line] = updated
	ts.text = strings.Join(lines, "\n")
	return true
}
