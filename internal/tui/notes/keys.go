package notes

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	openNote         key.Binding
	create           key.Binding
	rename           key.Binding
	deleteNote       key.Binding
	submitAltView    key.Binding
	exitAltView      key.Binding
	sortByTitle      key.Binding
	sortByModifiedAt key.Binding
	sortAscending    key.Binding
	sortDescending   key.Binding
	quit             key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		openNote: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
		create: key.NewBinding(
			key.WithKeys("C", "ctrl+n"),
			key.WithHelp("C", "create"),
		),
		rename: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "rename"),
		),
		deleteNote: key.NewBinding(
			key.WithKeys("D", "ctrl+d"),
			key.WithHelp("D", "delete"),
		),
		submitAltView: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "submit"),
		),
		exitAltView: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		sortByTitle: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "sort by title"),
		),
		sortByModifiedAt: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "sort by modified"),
		),
		sortAscending: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "ascending"),
		),
		sortDescending: key.NewBinding(
			key.WithKeys("f4"),
			key.WithHelp("f4", "descending"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (k *listKeyMap) fullHelp() []key.Binding {
	return []key.Binding{
		k.openNote,
		k.create,
		k.rename,
		k.deleteNote,
		k.sortByTitle,
		k.sortByModifiedAt,
		k.sortAscending,
		k.sortDescending,
	}
}

// editorKeyMap covers the bindings handled while the editor pane has focus.
// Plain characters fall through to the textarea.
type editorKeyMap struct {
	undo          key.Binding
	redo          key.Binding
	insertList    key.Binding
	insertCheck   key.Binding
	copyAll       key.Binding
	find          key.Binding
	focusPreview  key.Binding
	leaveEditor   key.Binding
	save          key.Binding
}

func newEditorKeyMap() *editorKeyMap {
	return &editorKeyMap{
		undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
		redo: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "redo"),
		),
		insertList: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "list entry"),
		),
		insertCheck: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "checkbox entry"),
		),
		copyAll: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "copy note"),
		),
		find: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "find/replace"),
		),
		focusPreview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "preview"),
		),
		leaveEditor: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to list"),
		),
		save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
	}
}

// previewKeyMap covers the bindings handled while the preview pane has focus.
type previewKeyMap struct {
	nextElement key.Binding
	prevElement key.Binding
	activate    key.Binding
	leave       key.Binding
}

func newPreviewKeyMap() *previewKeyMap {
	return &previewKeyMap{
		nextElement: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next element"),
		),
		prevElement: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev element"),
		),
		activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "toggle/open"),
		),
		leave: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to editor"),
		),
	}
}
