// Package markup renders a note's markdown into draw operations for the
// preview pane. Parsing flattens a goldmark AST into a linear event stream;
// the walk in walk.go consumes that stream with an index cursor.
package markup

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// EventKind identifies one variant of the flat parse-event stream.
type EventKind int

const (
	EventText EventKind = iota
	EventCodeSpan
	EventSoftBreak
	EventTaskMarker
	EventHeadingStart
	EventHeadingEnd
	EventParagraphStart
	EventParagraphEnd
	EventListStart
	EventListEnd
	EventItemStart
	EventItemEnd
	EventCodeBlockStart
	EventCodeBlockEnd
	EventQuoteStart
	EventQuoteEnd
	EventEmphasisStart
	EventEmphasisEnd
	EventStrongStart
	EventStrongEnd
	EventStrikeStart
	EventStrikeEnd
	EventLinkStart
	EventLinkEnd
)

// Event is one element of the flat stream. Only the fields relevant to the
// Kind are set: Level for headings, Ordered/Number for lists, Checked for
// task markers, Text for text and code content, Dest for links.
type Event struct {
	Kind    EventKind
	Level   int
	Ordered bool
	Number  int
	Checked bool
	Text    string
	Dest    string
}

var parser = goldmark.New(
	goldmark.WithExtensions(extension.TaskList, extension.Strikethrough, extension.Linkify),
)

// Parse turns markdown source into the flat event stream consumed by Walk.
func Parse(source string) []Event {
	src := []byte(source)
	root := parser.Parser().Parse(text.NewReader(src))

	f := &flattener{src: src}
	f.children(root)
	return f.events
}

type flattener struct {
	src    []byte
	events []Event
}

func (f *flattener) emit(e Event) {
	f.events = append(f.events, e)
}

func (f *flattener) children(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		f.node(c)
	}
}

func (f *flattener) node(n ast.Node) {
	switch n := n.(type) {
	case *ast.Heading:
		f.emit(Event{Kind: EventHeadingStart, Level: n.Level})
		f.children(n)
		f.emit(Event{Kind: EventHeadingEnd, Level: n.Level})

	case *ast.Paragraph:
		f.emit(Event{Kind: EventParagraphStart})
		f.children(n)
		f.emit(Event{Kind: EventParagraphEnd})

	case *ast.TextBlock:
		// Tight list items carry their inline content in a bare text
		// block; the stream stays flat with no paragraph markers,
		// matching how the item walk consumes it.
		f.children(n)

	case *ast.List:
		ev := Event{Kind: EventListStart, Ordered: n.IsOrdered()}
		if n.IsOrdered() {
			ev.Number = n.Start
		}
		f.emit(ev)
		f.children(n)
		f.emit(Event{Kind: EventListEnd, Ordered: n.IsOrdered()})

	case *ast.ListItem:
		f.emit(Event{Kind: EventItemStart})
		f.children(n)
		f.emit(Event{Kind: EventItemEnd})

	case *east.TaskCheckBox:
		f.emit(Event{Kind: EventTaskMarker, Checked: n.IsChecked})

	case *ast.FencedCodeBlock:
		f.emit(Event{Kind: EventCodeBlockStart})
		f.codeLines(n)
		f.emit(Event{Kind: EventCodeBlockEnd})

	case *ast.CodeBlock:
		f.emit(Event{Kind: EventCodeBlockStart})
		f.codeLines(n)
		f.emit(Event{Kind: EventCodeBlockEnd})

	case *ast.Blockquote:
		f.emit(Event{Kind: EventQuoteStart})
		f.children(n)
		f.emit(Event{Kind: EventQuoteEnd})

	case *ast.Emphasis:
		start, end := EventEmphasisStart, EventEmphasisEnd
		if n.Level >= 2 {
			start, end = EventStrongStart, EventStrongEnd
		}
		f.emit(Event{Kind: start})
		f.children(n)
		f.emit(Event{Kind: end})

	case *east.Strikethrough:
		f.emit(Event{Kind: EventStrikeStart})
		f.children(n)
		f.emit(Event{Kind: EventStrikeEnd})

	case *ast.Link:
		f.emit(Event{Kind: EventLinkStart, Dest: string(n.Destination)})
		f.children(n)
		f.emit(Event{Kind: EventLinkEnd})

	case *ast.AutoLink:
		url := string(n.URL(f.src))
		f.emit(Event{Kind: EventLinkStart, Dest: url})
		f.emit(Event{Kind: EventText, Text: string(n.Label(f.src))})
		f.emit(Event{Kind: EventLinkEnd})

	case *ast.CodeSpan:
		f.emit(Event{Kind: EventCodeSpan, Text: string(n.Text(f.src))})

	case *ast.Text:
		f.emit(Event{Kind: EventText, Text: string(n.Segment.Value(f.src))})
		if n.SoftLineBreak() || n.HardLineBreak() {
			f.emit(Event{Kind: EventSoftBreak})
		}

	case *ast.String:
		f.emit(Event{Kind: EventText, Text: string(n.Value)})

	default:
		// Thematic breaks, raw HTML, and anything this renderer does
		// not draw: descend so inline content inside unknown blocks
		// still surfaces.
		f.children(n)
	}
}

func (f *flattener) codeLines(n interface {
	Lines() *text.Segments
}) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		f.emit(Event{Kind: EventText, Text: string(seg.Value(f.src))})
	}
}
