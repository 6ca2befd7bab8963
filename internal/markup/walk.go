package markup

import (
	"strings"
)

// taskLookahead bounds the scan for a task marker at the front of a list
// item's events.
const taskLookahead = 5

// renderContext is the mutable state carried across one full walk: the
// heading level is scoped to a single heading, list state persists across
// sibling items.
type renderContext struct {
	headingLevel int
	inList       bool
	listDepth    int
	itemNumber   int
	ordered      bool
}

type walker struct {
	events    []Event
	doc       string
	activated int

	ctx       renderContext
	result    Result
	element   int // next interactive element ordinal
	taskIndex int // ordinal of the next task item in stream order

	taskLines []int
	haveLines bool
}

// Walk renders a flat event stream into draw operations. doc is the source
// document, used to map task items back to document lines. activated is the
// interactive element ordinal the user triggered this frame, or -1; matching
// checkboxes record a toggle line and matching links record their URL in the
// result. Malformed event ordering degrades to skipping a single event,
// never a panic.
func Walk(events []Event, doc string, activated int) Result {
	w := &walker{events: events, doc: doc, activated: activated}

	i := 0
	for i < len(w.events) {
		i = w.step(i)
	}

	w.result.Elements = w.element
	return w.result
}

func (w *walker) emit(op Op) {
	if op.Kind != OpCheckbox && op.Kind != OpLink {
		op.Element = -1
	}
	w.result.Ops = append(w.result.Ops, op)
}

// step dispatches on the event at start and returns the index to resume at.
func (w *walker) step(start int) int {
	if start >= len(w.events) {
		return start
	}

	switch ev := w.events[start]; ev.Kind {
	case EventHeadingStart:
		w.ctx.headingLevel = ev.Level
		return w.heading(start + 1)

	case EventParagraphStart:
		if !w.ctx.inList {
			w.emit(Op{Kind: OpSpacer})
		}
		next := w.inline(start+1, EventParagraphEnd, false)
		w.emit(Op{Kind: OpBreak})
		return next

	case EventListStart:
		w.ctx.inList = true
		w.ctx.listDepth++
		w.ctx.ordered = ev.Ordered
		w.ctx.itemNumber = ev.Number
		if !ev.Ordered {
			w.ctx.itemNumber = 1
		}
		w.emit(Op{Kind: OpSpacer})
		return start + 1

	case EventListEnd:
		if w.ctx.listDepth > 0 {
			w.ctx.listDepth--
		}
		if w.ctx.listDepth == 0 {
			w.ctx.inList = false
		}
		w.emit(Op{Kind: OpSpacer})
		return start + 1

	case EventItemStart:
		return w.item(start + 1)

	case EventCodeBlockStart:
		return w.codeBlock(start + 1)

	case EventQuoteStart:
		return w.blockquote(start + 1)

	default:
		// Stray end events or inline content outside any block: skip
		// forward one event as the safe recovery.
		return start + 1
	}
}

// heading collects plain text until the heading end and emits one label.
func (w *walker) heading(start int) int {
	var b strings.Builder
	i := start
	for i < len(w.events) {
		if w.events[i].Kind == EventHeadingEnd {
			break
		}
		if w.events[i].Kind == EventText {
			b.WriteString(w.events[i].Text)
		}
		i++
	}

	w.emit(Op{Kind: OpSpacer})
	w.emit(Op{Kind: OpHeading, Level: w.ctx.headingLevel, Text: b.String()})
	w.ctx.headingLevel = 0
	return i + 1
}

// item renders one list item: task-marker lookahead, then bullet or checkbox,
// then the inline body.
func (w *walker) item(start int) int {
	isTask := false
	checked := false
	for i := start; i < len(w.events) && i < start+taskLookahead; i++ {
		if w.events[i].Kind == EventTaskMarker {
			isTask = true
			checked = w.events[i].Checked
			break
		}
		if w.events[i].Kind == EventItemEnd {
			break
		}
	}

	if isTask {
		elem := w.element
		w.element++
		line := w.taskLine(w.taskIndex)
		w.taskIndex++
		if elem == w.activated {
			w.result.Toggles = append(w.result.Toggles, line)
			checked = !checked
		}
		w.emit(Op{
			Kind:    OpCheckbox,
			Depth:   w.ctx.listDepth,
			Checked: checked,
			Line:    line,
			Element: elem,
		})
	} else {
		op := Op{
			Kind:    OpBullet,
			Depth:   w.ctx.listDepth,
			Ordered: w.ctx.ordered,
			Number:  w.ctx.itemNumber,
		}
		w.emit(op)
		if w.ctx.ordered {
			w.ctx.itemNumber++
		}
	}

	next := w.inline(start, EventItemEnd, isTask && checked)
	w.emit(Op{Kind: OpBreak})
	return next
}

// codeBlock concatenates text events verbatim until the block end.
func (w *walker) codeBlock(start int) int {
	var b strings.Builder
	i := start
	for i < len(w.events) {
		if w.events[i].Kind == EventCodeBlockEnd {
			break
		}
		if w.events[i].Kind == EventText {
			b.WriteString(w.events[i].Text)
		}
		i++
	}

	w.emit(Op{Kind: OpSpacer})
	w.emit(Op{Kind: OpCodeBlock, Text: b.String()})
	w.emit(Op{Kind: OpSpacer})
	return i + 1
}

// blockquote recurses the general dispatch inside an indented region.
func (w *walker) blockquote(start int) int {
	w.emit(Op{Kind: OpQuoteStart})

	i := start
	for i < len(w.events) && w.events[i].Kind != EventQuoteEnd {
		i = w.step(i)
	}

	w.emit(Op{Kind: OpQuoteEnd})
	if i < len(w.events) {
		i++
	}
	return i
}

// inline scans text and span events until the given end kind, tracking
// non-nesting strong/emphasis/strike flags. struck forces strikethrough for
// the whole run (checked task items).
func (w *walker) inline(start int, end EventKind, struck bool) int {
	var strong, emphasis, strike bool

	i := start
	for i < len(w.events) {
		switch ev := w.events[i]; ev.Kind {
		case end:
			return i + 1

		case EventStrongStart:
			strong = true
			i++
		case EventStrongEnd:
			strong = false
			i++
		case EventEmphasisStart:
			emphasis = true
			i++
		case EventEmphasisEnd:
			emphasis = false
			i++
		case EventStrikeStart:
			strike = true
			i++
		case EventStrikeEnd:
			strike = false
			i++

		case EventTaskMarker:
			i++

		case EventListStart, EventListEnd, EventItemStart:
			// A nested list inside this item: hand the block events back
			// to the dispatcher, then resume the inline scan.
			i = w.step(i)

		case EventLinkStart:
			i = w.link(i)

		case EventText:
			w.emit(Op{
				Kind:     OpLabel,
				Text:     ev.Text,
				Strong:   strong,
				Emphasis: emphasis,
				Strike:   strike || struck,
			})
			i++

		case EventCodeSpan:
			w.emit(Op{Kind: OpLabel, Text: ev.Text, Code: true})
			i++

		case EventSoftBreak:
			w.emit(Op{Kind: OpLabel, Text: " "})
			i++

		default:
			i++
		}
	}
	return i
}

// link collects the link's text, emits one interactive hyperlink op, and
// records an activation when the host triggered this element.
func (w *walker) link(start int) int {
	dest := w.events[start].Dest

	var b strings.Builder
	i := start + 1
	for i < len(w.events) {
		if w.events[i].Kind == EventLinkEnd {
			break
		}
		if w.events[i].Kind == EventText {
			b.WriteString(w.events[i].Text)
		}
		i++
	}

	elem := w.element
	w.element++
	if elem == w.activated {
		w.result.OpenURLs = append(w.result.OpenURLs, dest)
	}
	w.emit(Op{Kind: OpLink, Text: b.String(), Dest: dest, Element: elem})

	if i < len(w.events) {
		i++
	}
	return i
}

// taskLine maps the n-th task item of the event stream to the n-th document
// line carrying a task marker. Falls back to line zero when the document and
// the stream disagree.
func (w *walker) taskLine(n int) int {
	if !w.haveLines {
		w.haveLines = true
		for i, line := range strings.Split(w.doc, "\n") {
			if strings.Contains(line, "- [ ]") || strings.Contains(line, "- [x]") {
				w.taskLines = append(w.taskLines, i)
			}
		}
	}
	if n < 0 || n >= len(w.taskLines) {
		return 0
	}
	return w.taskLines[n]
}
