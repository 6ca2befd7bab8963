package notes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"

	"github.com/danpozmanter/NoteSquirrel/internal/textstate"
)

// editorSession owns the textarea and the undo-aware text state behind it.
// The textarea is the input surface; TextState is the source of truth for
// content, history, and highlight layout.
type editorSession struct {
	area textarea.Model
	text *textstate.TextState
	name string
}

func newEditorSession(theme textstate.Theme) *editorSession {
	area := textarea.New()
	area.Placeholder = "Start writing..."
	area.CharLimit = 0
	area.ShowLineNumbers = false
	return &editorSession{
		area: area,
		text: textstate.New(theme),
	}
}

// load replaces the session contents with a freshly read note. History from
// the previous note does not carry over.
func (s *editorSession) load(name, content string) {
	s.name = name
	s.text.SetText(content)
	s.area.SetValue(content)
	s.area.CursorEnd()
}

// commit pushes the textarea's current value into the text state. Returns
// true when the value actually changed.
func (s *editorSession) commit() bool {
	value := s.area.Value()
	if value == s.text.Text() {
		s.text.SetCursor(s.cursorOffset())
		return false
	}
	s.text.SetTextWithUndo(value)
	s.text.SetCursor(s.cursorOffset())
	return true
}

// syncFromState pushes the text state's content back into the textarea,
// honoring a pending cursor position when one was set by a structural edit.
func (s *editorSession) syncFromState() {
	content := s.text.Text()
	s.area.SetValue(content)
	if pos, ok := s.text.PendingCursor(); ok {
		s.moveCursorTo(pos)
	} else {
		s.area.CursorEnd()
	}
}

// cursorOffset converts the textarea's row and column into a byte offset
// into the full text.
func (s *editorSession) cursorOffset() int {
	text := s.area.Value()
	lines := strings.Split(text, "\n")

	row := s.area.Line()
	if row >= len(lines) {
		row = len(lines) - 1
	}

	info := s.area.LineInfo()
	col := info.StartColumn + info.ColumnOffset

	offset := 0
	for i := 0; i < row; i++ {
		offset += len(lines[i]) + 1
	}

	runes := []rune(lines[row])
	if col > len(runes) {
		col = len(runes)
	}
	offset += len(string(runes[:col]))
	return offset
}

// moveCursorTo places the textarea cursor at the given byte offset. SetValue
// leaves the cursor at the end of the buffer, so movement is always upward.
func (s *editorSession) moveCursorTo(offset int) {
	text := s.area.Value()
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	row := strings.Count(text[:offset], "\n")
	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1
	col := len([]rune(text[lineStart:offset]))

	for s.area.Line() > row {
		s.area.CursorUp()
	}
	for s.area.Line() < row {
		s.area.CursorDown()
	}
	s.area.SetCursor(col)
}

func (s *editorSession) setSize(width, height int) {
	s.area.SetWidth(width)
	s.area.SetHeight(height)
}
