package textstate

import (
	"regexp"
	"strings"

	"github.com/danpozmanter/NoteSquirrel/internal/search"
)

// StyledRun tags a contiguous byte range [Start, End) of the document with a
// draw style. A built layout partitions the document: runs are ordered, never
// overlap, and their union covers the full text.
type StyledRun struct {
	Start int
	End   int
	Style Style
}

var orderedPrefix = regexp.MustCompile(`^\d+\. `)

// BuildStyledRuns builds the styled layout for text: a base style per line
// chosen by line-prefix matching, then a refinement pass that overlays the
// search-match highlight ranges. current is the index of the active match in
// matches, or negative when there is none. Pure; never fails. Empty text
// yields no runs.
func BuildStyledRuns(theme Theme, text string, matches []search.Match, current int) []StyledRun {
	if len(text) == 0 {
		return nil
	}

	runs := make([]StyledRun, 0, strings.Count(text, "\n")+4)

	lineStart := 0
	for lineStart <= len(text) {
		lineEnd := strings.IndexByte(text[lineStart:], '\n')
		last := lineEnd < 0
		if last {
			lineEnd = len(text)
		} else {
			lineEnd += lineStart
		}

		if lineStart == len(text) {
			break
		}

		runs = appendLineRuns(runs, theme, text, lineStart, lineEnd)

		if last {
			break
		}
		// Fold the newline byte into the line's final run so coverage
		// stays total.
		if len(runs) > 0 && runs[len(runs)-1].End == lineEnd {
			runs[len(runs)-1].End = lineEnd + 1
		} else {
			runs = append(runs, StyledRun{Start: lineEnd, End: lineEnd + 1, Style: Style{Fg: theme.Body}})
		}
		lineStart = lineEnd + 1
	}

	return applyMatchHighlights(theme, runs, matches, current)
}

// appendLineRuns emits the base-style runs for one line [start, end).
func appendLineRuns(runs []StyledRun, theme Theme, text string, start, end int) []StyledRun {
	line := text[start:end]
	if line == "" {
		return runs
	}

	stripped := strings.TrimLeft(line, " \t")
	indent := len(line) - len(stripped)
	body := start + indent

	if level, ok := headingLevel(stripped); ok {
		// Leading whitespace and the hashes are dimmed markers, the
		// space after the hashes stays unstyled, the rest takes the
		// heading style.
		if indent > 0 {
			runs = append(runs, StyledRun{Start: start, End: body, Style: Style{Fg: theme.Body}})
		}
		runs = append(runs, StyledRun{Start: body, End: body + level, Style: Style{Fg: theme.Marker}})
		runs = append(runs, StyledRun{Start: body + level, End: body + level + 1, Style: Style{Fg: theme.Body}})
		if body+level+1 < end {
			runs = append(runs, StyledRun{Start: body + level + 1, End: end, Style: theme.HeadingStyle(level)})
		}
		return runs
	}

	style := Style{Fg: theme.Body}
	switch {
	case strings.HasPrefix(stripped, "```"):
		style = Style{Fg: theme.Code, Bg: theme.CodeBg, Mono: true}
	case strings.HasPrefix(stripped, ">"):
		style = Style{Fg: theme.Quote, Italic: true}
	case strings.HasPrefix(stripped, "- "),
		strings.HasPrefix(stripped, "* "),
		strings.HasPrefix(stripped, "+ "),
		orderedPrefix.MatchString(stripped):
		style = Style{Fg: theme.List}
	}

	return append(runs, StyledRun{Start: start, End: end, Style: style})
}

// headingLevel reports the ATX heading level of a stripped line: one to six
// hashes followed by a space.
func headingLevel(stripped string) (int, bool) {
	level := 0
	for level < len(stripped) && stripped[level] == '#' {
		level++
	}
	if level < 1 || level > 6 {
		return 0, false
	}
	if level >= len(stripped) || stripped[level] != ' ' {
		return 0, false
	}
	return level, true
}

// applyMatchHighlights refines base runs against the match ranges: any run
// overlapping a match is split into up to three sub-runs, with the match
// portion's background swapped for the highlight color. Coverage and
// ordering are preserved. A run can intersect several matches; the split
// walks the overlaps in order.
func applyMatchHighlights(theme Theme, runs []StyledRun, matches []search.Match, current int) []StyledRun {
	if len(matches) == 0 {
		return runs
	}

	out := make([]StyledRun, 0, len(runs)+2*len(matches))
	for _, run := range runs {
		cursor := run.Start
		for mi, m := range matches {
			if m.End <= cursor || m.Start >= run.End {
				continue
			}
			if m.Start > cursor {
				out = append(out, StyledRun{Start: cursor, End: m.Start, Style: run.Style})
				cursor = m.Start
			}
			hi := run.Style
			hi.Bg = theme.MatchBg
			if mi == current {
				hi.Bg = theme.ActiveMatchBg
			}
			segEnd := m.End
			if segEnd > run.End {
				segEnd = run.End
			}
			out = append(out, StyledRun{Start: cursor, End: segEnd, Style: hi})
			cursor = segEnd
		}
		if cursor < run.End {
			out = append(out, StyledRun{Start: cursor, End: run.End, Style: run.Style})
		}
	}
	return out
}
