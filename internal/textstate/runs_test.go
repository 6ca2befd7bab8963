package textstate

import (
	"testing"

	"github.com/danpozmanter/NoteSquirrel/internal/search"
)

// checkCoverage asserts the partition law: ordered, non-overlapping runs
// whose union is the whole text.
func checkCoverage(t *testing.T, text string, runs []StyledRun) {
	t.Helper()
	if len(text) == 0 {
		if len(runs) != 0 {
			t.Fatalf("empty text must yield no runs, got %d", len(runs))
		}
		return
	}

	pos := 0
	for i, run := range runs {
		if run.Start != pos {
			t.Fatalf("run %d starts at %d, want %d (gap or overlap)", i, run.Start, pos)
		}
		if run.End <= run.Start {
			t.Fatalf("run %d is empty or reversed: %+v", i, run)
		}
		pos = run.End
	}
	if pos != len(text) {
		t.Fatalf("runs cover %d bytes, text has %d", pos, len(text))
	}
}

func TestBuildStyledRunsCoverage(t *testing.T) {
	theme := DefaultTheme()
	docs := []string{
		"",
		"plain",
		"# Heading\n\nbody text\n",
		"- one\n- two\n  1. three\n",
		"> quoted\n```\ncode\n```\n",
		"### deep heading\nnormal\n\n\n",
	}
	for _, doc := range docs {
		runs := BuildStyledRuns(theme, doc, nil, -1)
		checkCoverage(t, doc, runs)
	}
}

func TestHeadingRuns(t *testing.T) {
	theme := DefaultTheme()
	text := "## Title"
	runs := BuildStyledRuns(theme, text, nil, -1)
	checkCoverage(t, text, runs)

	if len(runs) != 3 {
		t.Fatalf("want hashes, space, text: got %d runs", len(runs))
	}
	if runs[0].Style.Fg != theme.Marker {
		t.Fatalf("hash run style = %+v", runs[0].Style)
	}
	if runs[2].Style.Fg != theme.Headings[1] || !runs[2].Style.Bold {
		t.Fatalf("heading text style = %+v", runs[2].Style)
	}
}

func TestSevenHashesIsNotAHeading(t *testing.T) {
	theme := DefaultTheme()
	text := "####### too deep"
	runs := BuildStyledRuns(theme, text, nil, -1)
	checkCoverage(t, text, runs)

	if len(runs) != 1 || runs[0].Style.Fg != theme.Body {
		t.Fatalf("got %+v", runs)
	}
}

func TestLinePrefixStyles(t *testing.T) {
	theme := DefaultTheme()

	cases := []struct {
		line string
		want Style
	}{
		{"- bullet", Style{Fg: theme.List}},
		{"* bullet", Style{Fg: theme.List}},
		{"+ bullet", Style{Fg: theme.List}},
		{"12. ordered", Style{Fg: theme.List}},
		{"> quote", Style{Fg: theme.Quote, Italic: true}},
		{"```go", Style{Fg: theme.Code, Bg: theme.CodeBg, Mono: true}},
		{"plain", Style{Fg: theme.Body}},
		{"-not a bullet", Style{Fg: theme.Body}},
	}

	for _, tc := range cases {
		runs := BuildStyledRuns(theme, tc.line, nil, -1)
		if len(runs) != 1 {
			t.Fatalf("%q: got %d runs", tc.line, len(runs))
		}
		if runs[0].Style != tc.want {
			t.Fatalf("%q: style = %+v, want %+v", tc.line, runs[0].Style, tc.want)
		}
	}
}

func TestMatchHighlightSplitsRun(t *testing.T) {
	theme := DefaultTheme()
	text := "say hello twice"
	matches := []search.Match{{Start: 4, End: 9}}

	runs := BuildStyledRuns(theme, text, matches, 0)
	checkCoverage(t, text, runs)

	if len(runs) != 3 {
		t.Fatalf("want pre/match/post split, got %d runs", len(runs))
	}
	if runs[0].Style.Bg != "" {
		t.Fatalf("pre segment has highlight: %+v", runs[0])
	}
	if runs[1].Start != 4 || runs[1].End != 9 {
		t.Fatalf("match segment = %+v", runs[1])
	}
	if runs[1].Style.Bg != theme.ActiveMatchBg {
		t.Fatalf("active match bg = %q", runs[1].Style.Bg)
	}
	if runs[1].Style.Fg != theme.Body {
		t.Fatal("highlight must keep the base foreground")
	}
}

func TestInactiveMatchBackground(t *testing.T) {
	theme := DefaultTheme()
	text := "aaa bbb aaa"
	matches := []search.Match{
		{Start: 0, End: 3},
		{Start: 8, End: 11},
	}

	runs := BuildStyledRuns(theme, text, matches, 1)
	checkCoverage(t, text, runs)

	var sawInactive, sawActive bool
	for _, run := range runs {
		switch run.Style.Bg {
		case theme.MatchBg:
			sawInactive = true
		case theme.ActiveMatchBg:
			sawActive = true
		}
	}
	if !sawInactive || !sawActive {
		t.Fatalf("want both inactive and active highlights: %+v", runs)
	}
}

func TestMatchSpanningLines(t *testing.T) {
	theme := DefaultTheme()
	text := "one\ntwo"
	matches := []search.Match{{Start: 2, End: 6}}

	runs := BuildStyledRuns(theme, text, matches, 0)
	checkCoverage(t, text, runs)

	highlighted := 0
	for _, run := range runs {
		if run.Style.Bg == theme.ActiveMatchBg {
			highlighted += run.End - run.Start
		}
	}
	if highlighted != 4 {
		t.Fatalf("highlighted %d bytes, want 4", highlighted)
	}
}

func TestMatchesOnHeadingLine(t *testing.T) {
	theme := DefaultTheme()
	text := "# find me\nfind again"
	matches := []search.Match{
		{Start: 2, End: 6},
		{Start: 10, End: 14},
	}

	runs := BuildStyledRuns(theme, text, matches, -1)
	checkCoverage(t, text, runs)

	for _, run := range runs {
		if run.Start >= 2 && run.End <= 6 && run.Style.Bg != theme.MatchBg {
			t.Fatalf("heading-line match not highlighted: %+v", run)
		}
	}
}
