package markup

// OpKind identifies one draw instruction produced by the walk.
type OpKind int

const (
	// OpSpacer requests vertical spacing between blocks.
	OpSpacer OpKind = iota
	// OpHeading draws a heading label at the given level.
	OpHeading
	// OpBullet draws a list bullet or ordered-item number, indented by Depth.
	OpBullet
	// OpCheckbox draws an interactive task checkbox, indented by Depth.
	OpCheckbox
	// OpLabel draws one styled inline text run.
	OpLabel
	// OpLink draws an interactive hyperlink.
	OpLink
	// OpCodeBlock draws a verbatim fixed-width block.
	OpCodeBlock
	// OpQuoteStart and OpQuoteEnd bracket an indented blockquote region.
	OpQuoteStart
	OpQuoteEnd
	// OpBreak ends the current inline flow (paragraph or item body).
	OpBreak
)

// Op is one draw instruction. Interactive ops (OpCheckbox, OpLink) carry an
// Element ordinal; the host passes the ordinal it activated this frame back
// into Walk.
type Op struct {
	Kind OpKind

	Text  string
	Level int // heading level, 1-6

	Depth   int // list nesting depth, 1-based
	Ordered bool
	Number  int

	Checked bool
	Line    int // document line the checkbox toggles

	Dest    string
	Element int // interactive element ordinal, -1 otherwise

	Strong   bool
	Emphasis bool
	Strike   bool
	Code     bool
}

// Result is the outcome of one render pass: the draw sequence plus the side
// effects the host must apply (checkbox toggles by document line, link
// activations by URL).
type Result struct {
	Ops      []Op
	Toggles  []int
	OpenURLs []string

	// Elements is the number of interactive elements encountered, for
	// focus cycling in the host.
	Elements int
}
