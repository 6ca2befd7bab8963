// Package search implements the find/replace engine backing the editor's
// find dialog: literal and regex matching, circular match navigation, and
// replacement over a document snapshot.
package search

import (
	"fmt"
	"regexp"
	"strings"
)

// Match is a half-open byte range [Start, End) into the searched document.
// Matches are invalidated whenever the document text changes.
type Match struct {
	Start int
	End   int
}

// FindReplace holds the active search state. The zero value is usable: no
// pattern, case-insensitive literal mode, no matches.
type FindReplace struct {
	FindText      string
	ReplaceText   string
	CaseSensitive bool
	UseRegex      bool

	matches []Match
	current int // index into matches, -1 when absent
}

func NewFindReplace() *FindReplace {
	return &FindReplace{current: -1}
}

func (fr *FindReplace) Matches() []Match { return fr.matches }

// CurrentIndex returns the active match index and whether one exists.
func (fr *FindReplace) CurrentIndex() (int, bool) {
	if fr.current < 0 || fr.current >= len(fr.matches) {
		return 0, false
	}
	return fr.current, true
}

// Clear drops all matches and the current index, e.g. when the dialog closes.
func (fr *FindReplace) Clear() {
	fr.matches = nil
	fr.current = -1
}

// UpdateMatches recomputes the match set against text. An empty pattern or an
// invalid regular expression yields zero matches rather than an error. The
// current index is preserved where possible and clamped when the set shrinks.
func (fr *FindReplace) UpdateMatches(text string) {
	fr.matches = fr.matches[:0]

	if fr.FindText == "" {
		fr.matches = nil
		fr.current = -1
		return
	}

	if fr.UseRegex {
		re, err := fr.buildRegex()
		if err == nil {
			for _, loc := range re.FindAllStringIndex(text, -1) {
				fr.matches = append(fr.matches, Match{Start: loc[0], End: loc[1]})
			}
		}
	} else {
		needle := fr.FindText
		haystack := text
		if !fr.CaseSensitive {
			needle = strings.ToLower(needle)
			haystack = strings.ToLower(haystack)
		}

		start := 0
		for {
			pos := strings.Index(haystack[start:], needle)
			if pos < 0 {
				break
			}
			abs := start + pos
			fr.matches = append(fr.matches, Match{Start: abs, End: abs + len(fr.FindText)})
			start = abs + 1
		}
	}

	switch {
	case len(fr.matches) == 0:
		fr.current = -1
	case fr.current < 0:
		fr.current = 0
	case fr.current >= len(fr.matches):
		fr.current = len(fr.matches) - 1
	}
}

func (fr *FindReplace) buildRegex() (*regexp.Regexp, error) {
	pattern := fr.FindText
	if !fr.CaseSensitive {
		pattern = fmt.Sprintf("(?i)%s", pattern)
	}
	return regexp.Compile(pattern)
}

// NextMatch advances the current index, wrapping to the first match.
func (fr *FindReplace) NextMatch() {
	if len(fr.matches) == 0 {
		return
	}
	if fr.current < 0 {
		fr.current = 0
		return
	}
	fr.current = (fr.current + 1) % len(fr.matches)
}

// PrevMatch steps the current index backwards, wrapping to the last match.
func (fr *FindReplace) PrevMatch() {
	if len(fr.matches) == 0 {
		return
	}
	if fr.current <= 0 {
		fr.current = len(fr.matches) - 1
		return
	}
	fr.current--
}

// ReplaceCurrent replaces the active match in text and returns the new text.
// The match set is stale afterwards; callers re-run UpdateMatches against the
// returned text.
func (fr *FindReplace) ReplaceCurrent(text string) (string, bool) {
	if fr.current < 0 || fr.current >= len(fr.matches) {
		return text, false
	}
	m := fr.matches[fr.current]
	if m.Start > len(text) || m.End > len(text) || m.Start > m.End {
		return text, false
	}

	replacement := fr.ReplaceText
	if fr.UseRegex {
		if re, err := fr.buildRegex(); err == nil {
			replacement = re.ReplaceAllString(text[m.Start:m.End], fr.ReplaceText)
		}
	}

	return text[:m.Start] + replacement + text[m.End:], true
}

// ReplaceAll replaces every match in text, returning the new text and the
// number of matches replaced. Literal replacement runs back to front so
// earlier offsets stay valid.
func (fr *FindReplace) ReplaceAll(text string) (string, int) {
	count := len(fr.matches)
	if count == 0 {
		return text, 0
	}

	if fr.UseRegex {
		if re, err := fr.buildRegex(); err == nil {
			text = re.ReplaceAllString(text, fr.ReplaceText)
		}
		return text, count
	}

	for i := len(fr.matches) - 1; i >= 0; i-- {
		m := fr.matches[i]
		if m.Start <= len(text) && m.End <= len(text) && m.Start <= m.End {
			text = text[:m.Start] + fr.ReplaceText + text[m.End:]
		}
	}
	return text, count
}

// StatusLine formats the dialog's match counter, e.g. "2 of 7".
func (fr *FindReplace) StatusLine() string {
	if len(fr.matches) == 0 {
		return "No matches"
	}
	if idx, ok := fr.CurrentIndex(); ok {
		return fmt.Sprintf("%d of %d", idx+1, len(fr.matches))
	}
	return fmt.Sprintf("%d matches", len(fr.matches))
}
