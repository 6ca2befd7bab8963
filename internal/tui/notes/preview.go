package notes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/danpozmanter/NoteSquirrel/internal/markup"
	"github.com/danpozmanter/NoteSquirrel/internal/textstate"
)

// previewRenderer turns the walk's draw ops into a styled frame. The focused
// interactive element, when any, is drawn inverted so tab cycling is visible.
type previewRenderer struct {
	theme      textstate.Theme
	focused    int
	builder    strings.Builder
	line       strings.Builder
	quoteDepth int
	lastBlank  bool
}

func renderOps(ops []markup.Op, theme textstate.Theme, focused int) string {
	r := &previewRenderer{theme: theme, focused: focused, lastBlank: true}
	for _, op := range ops {
		r.render(op)
	}
	r.flushLine()
	return strings.TrimRight(r.builder.String(), "\n")
}

func (r *previewRenderer) render(op markup.Op) {
	switch op.Kind {
	case markup.OpSpacer:
		r.flushLine()
		r.blankLine()

	case markup.OpBreak:
		r.flushLine()

	case markup.OpHeading:
		r.flushLine()
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(r.theme.HeadingStyle(op.Level).Fg)).
			Bold(true)
		r.writeLine(style.Render(op.Text))

	case markup.OpBullet:
		r.flushLine()
		marker := "• "
		if op.Ordered {
			marker = fmt.Sprintf("%d. ", op.Number)
		}
		r.line.WriteString(r.indent(op.Depth))
		r.line.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(r.theme.List)).
			Render(marker))

	case markup.OpCheckbox:
		r.flushLine()
		box := "[ ] "
		if op.Checked {
			box = "[x] "
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(r.theme.List))
		if op.Element == r.focused {
			style = style.Reverse(true).Bold(true)
		}
		r.line.WriteString(r.indent(op.Depth))
		r.line.WriteString(style.Render(box))

	case markup.OpLabel:
		r.line.WriteString(r.labelStyle(op).Render(op.Text))

	case markup.OpLink:
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7AA2F7")).
			Underline(true)
		if op.Element == r.focused {
			style = style.Reverse(true).Bold(true)
		}
		r.line.WriteString(style.Render(op.Text))

	case markup.OpCodeBlock:
		r.flushLine()
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(r.theme.Code)).
			Background(lipgloss.Color(r.theme.CodeBg))
		for _, codeLine := range strings.Split(strings.TrimRight(op.Text, "\n"), "\n") {
			r.writeLine(style.Render("  " + codeLine))
		}

	case markup.OpQuoteStart:
		r.flushLine()
		r.quoteDepth++

	case markup.OpQuoteEnd:
		r.flushLine()
		if r.quoteDepth > 0 {
			r.quoteDepth--
		}
	}
}

func (r *previewRenderer) labelStyle(op markup.Op) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(r.theme.Body))
	if r.quoteDepth > 0 {
		style = style.Foreground(lipgloss.Color(r.theme.Quote)).Italic(true)
	}
	if op.Code {
		style = style.
			Foreground(lipgloss.Color(r.theme.Code)).
			Background(lipgloss.Color(r.theme.CodeBg))
	}
	if op.Strong {
		style = style.Bold(true)
	}
	if op.Emphasis {
		style = style.Italic(true)
	}
	if op.Strike {
		style = style.Strikethrough(true)
	}
	return style
}

func (r *previewRenderer) indent(depth int) string {
	if depth <= 1 {
		return ""
	}
	return strings.Repeat("  ", depth-1)
}

func (r *previewRenderer) flushLine() {
	if r.line.Len() == 0 {
		return
	}
	r.writeLine(r.line.String())
	r.line.Reset()
}

func (r *previewRenderer) writeLine(content string) {
	if r.quoteDepth > 0 {
		prefix := lipgloss.NewStyle().
			Foreground(lipgloss.Color(r.theme.Quote)).
			Render(strings.Repeat("▎ ", r.quoteDepth))
		content = prefix + content
	}
	r.builder.WriteString(content)
	r.builder.WriteString("\n")
	r.lastBlank = false
}

func (r *previewRenderer) blankLine() {
	if r.lastBlank {
		return
	}
	r.builder.WriteString("\n")
	r.lastBlank = true
}
