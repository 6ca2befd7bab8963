package textstate

// Style describes how one run of document text is drawn. Colors are
// lipgloss-compatible strings (hex or ANSI index); empty means the
// terminal default.
type Style struct {
	Fg     string
	Bg     string
	Bold   bool
	Italic bool
	Mono   bool
}

// Theme holds the palette used for base line styling and match highlighting.
type Theme struct {
	Body     string
	Marker   string // dimmed heading hashes
	Quote    string
	List     string
	Code     string
	CodeBg   string
	Headings [6]string // index 0 is H1

	MatchBg       string
	ActiveMatchBg string
}

// DefaultTheme mirrors the built-in "squirrel" palette.
func DefaultTheme() Theme {
	return Theme{
		Body:   "#DDDDDD",
		Marker: "#666666",
		Quote:  "#999999",
		List:   "#7AA2F7",
		Code:   "#C3E88D",
		CodeBg: "#1E2030",
		Headings: [6]string{
			"#FF9E64", // H1
			"#E0AF68",
			"#9ECE6A",
			"#73DACA",
			"#7DCFFF",
			"#BB9AF7", // H6
		},
		MatchBg:       "#3B4261",
		ActiveMatchBg: "#FF9E64",
	}
}

// HeadingStyle returns the base style for a heading of the given level (1-6).
func (t Theme) HeadingStyle(level int) Style {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return Style{Fg: t.Headings[level-1], Bold: true}
}
