package notes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/danpozmanter/NoteSquirrel/internal/textstate"
)

// renderHighlighted draws text through its styled runs. Used for the
// read-only editor pane while the find overlay is open, so matches and the
// active match stay visible while the inputs have focus.
func renderHighlighted(text string, runs []textstate.StyledRun) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	for _, run := range runs {
		segment := text[run.Start:run.End]
		style := lipgloss.NewStyle()
		if run.Style.Fg != "" {
			style = style.Foreground(lipgloss.Color(run.Style.Fg))
		}
		if run.Style.Bg != "" {
			style = style.Background(lipgloss.Color(run.Style.Bg))
		}
		if run.Style.Bold {
			style = style.Bold(true)
		}
		if run.Style.Italic {
			style = style.Italic(true)
		}

		// Styling a trailing newline would paint the rest of the row, so
		// the break is emitted outside the styled segment.
		for len(segment) > 0 {
			nl := strings.IndexByte(segment, '\n')
			if nl < 0 {
				b.WriteString(style.Render(segment))
				break
			}
			if nl > 0 {
				b.WriteString(style.Render(segment[:nl]))
			}
			b.WriteString("\n")
			segment = segment[nl+1:]
		}
	}
	return b.String()
}
