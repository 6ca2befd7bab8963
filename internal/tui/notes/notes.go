// Package notes hosts the note-taking TUI: a sidebar of vault notes, an
// undo-aware markdown editor, and an interactive rendered preview.
package notes

import (
	"crypto/sha256"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/danpozmanter/NoteSquirrel/internal/browser"
	"github.com/danpozmanter/NoteSquirrel/internal/cache"
	"github.com/danpozmanter/NoteSquirrel/internal/clipboard"
	"github.com/danpozmanter/NoteSquirrel/internal/markup"
	"github.com/danpozmanter/NoteSquirrel/internal/state"
)

var maxCacheSizeMB int64 = 50

type paneFocus int

const (
	focusList paneFocus = iota
	focusEditor
	focusPreview
)

type NoteListModel struct {
	list        list.Model
	cache       *cache.Cache
	keys        *listKeyMap
	editorKeys  *editorKeyMap
	previewKeys *previewKeyMap
	state       *state.State
	editor      *editorSession
	find        *findModel
	preview     viewport.Model
	renameInput textinput.Model
	initialCmd  tea.Cmd

	width         int
	height        int
	focus         paneFocus
	finding       bool
	renaming      bool
	confirmDelete bool
	previewFocus  int
	previewElems  int
	sortField     sortField
	sortOrder     sortOrder
}

func NewNoteListModel(s *state.State) (*NoteListModel, error) {
	items, err := loadItems(s.Handler)
	if err != nil {
		return nil, err
	}

	field := sortFieldFromConfig(s.Config.SortField)
	order := sortOrderFromConfig(s.Config.SortOrder)
	sortedItems := sortItems(items, field, order)

	lkeys := newListKeyMap()

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedItemStyle
	delegate.Styles.SelectedDesc = selectedItemStyle

	l := list.New(sortedItems, delegate, 0, 0)
	l.Title = "NoteSquirrel"
	l.Styles.Title = titleStyle
	l.Filter = fuzzyFilter
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{lkeys.openNote, lkeys.create}
	}
	l.AdditionalFullHelpKeys = lkeys.fullHelp

	c, err := cache.New(maxCacheSizeMB)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}

	rename := textinput.New()
	rename.Prompt = "Name: "
	rename.PromptStyle = findLabelStyle

	return &NoteListModel{
		list:         l,
		cache:        c,
		keys:         lkeys,
		editorKeys:   newEditorKeyMap(),
		previewKeys:  newPreviewKeyMap(),
		state:        s,
		editor:       newEditorSession(s.Theme),
		find:         newFindModel(),
		preview:      viewport.New(0, 0),
		renameInput:  rename,
		focus:        focusList,
		previewFocus: -1,
		sortField:    field,
		sortOrder:    order,
	}, nil
}

func (m NoteListModel) Init() tea.Cmd {
	return m.initialCmd
}

func (m NoteListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}

		switch {
		case m.renaming:
			return m.handleRenameUpdate(msg)
		case m.confirmDelete:
			return m.handleDeleteConfirm(msg)
		case m.finding:
			return m.handleFindUpdate(msg)
		}

		switch m.focus {
		case focusEditor:
			return m.handleEditorUpdate(msg)
		case focusPreview:
			return m.handlePreviewUpdate(msg)
		default:
			if m.list.FilterState() != list.Filtering {
				if handled, model, cmd := m.handleListKeys(msg); handled {
					return model, cmd
				}
			}
		}
	}

	nl, cmd := m.list.Update(msg)
	m.list = nl
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *NoteListModel) handleListKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.openNote):
		cmd := m.openSelected()
		return true, *m, cmd

	case key.Matches(msg, m.keys.create):
		cmd := m.createNote()
		return true, *m, cmd

	case key.Matches(msg, m.keys.rename):
		m.toggleRename()
		return true, *m, nil

	case key.Matches(msg, m.keys.deleteNote):
		if _, ok := m.list.SelectedItem().(ListItem); ok {
			m.confirmDelete = true
		}
		return true, *m, nil

	case key.Matches(msg, m.keys.sortByTitle):
		m.sortField = sortByTitle
		cmd := m.refreshSort()
		return true, *m, cmd

	case key.Matches(msg, m.keys.sortByModifiedAt):
		m.sortField = sortByModifiedAt
		cmd := m.refreshSort()
		return true, *m, cmd

	case key.Matches(msg, m.keys.sortAscending):
		m.sortOrder = ascending
		cmd := m.refreshSort()
		return true, *m, cmd

	case key.Matches(msg, m.keys.sortDescending):
		m.sortOrder = descending
		cmd := m.refreshSort()
		return true, *m, cmd
	}

	return false, *m, nil
}

func (m NoteListModel) handleEditorUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.editorKeys.undo):
		if m.editor.text.Undo() {
			m.editor.syncFromState()
			m.saveCurrent()
			m.refreshPreview()
		}
		return m, nil

	case key.Matches(msg, m.editorKeys.redo):
		if m.editor.text.Redo() {
			m.editor.syncFromState()
			m.saveCurrent()
			m.refreshPreview()
		}
		return m, nil

	case key.Matches(msg, m.editorKeys.insertList):
		m.editor.commit()
		if m.editor.text.InsertListEntry(m.editor.cursorOffset()) {
			m.editor.syncFromState()
			m.saveCurrent()
			m.refreshPreview()
		}
		return m, nil

	case key.Matches(msg, m.editorKeys.insertCheck):
		m.editor.commit()
		if m.editor.text.InsertCheckboxEntry(m.editor.cursorOffset()) {
			m.editor.syncFromState()
			m.saveCurrent()
			m.refreshPreview()
		}
		return m, nil

	case key.Matches(msg, m.editorKeys.copyAll):
		clipboard.SetText(m.editor.text.Text())
		return m, m.list.NewStatusMessage(statusStyle("Copied note to clipboard"))

	case key.Matches(msg, m.editorKeys.find):
		m.finding = true
		m.find.open()
		m.find.fr.UpdateMatches(m.editor.text.Text())
		m.syncMatches()
		return m, textinput.Blink

	case key.Matches(msg, m.editorKeys.focusPreview):
		m.focus = focusPreview
		m.previewFocus = -1
		m.editor.area.Blur()
		m.refreshPreview()
		return m, nil

	case key.Matches(msg, m.editorKeys.leaveEditor):
		m.focus = focusList
		m.editor.area.Blur()
		return m, nil

	case key.Matches(msg, m.editorKeys.save):
		m.saveCurrent()
		return m, m.list.NewStatusMessage(statusStyle("Saved " + m.editor.name))
	}

	var cmd tea.Cmd
	m.editor.area, cmd = m.editor.area.Update(msg)
	if m.editor.commit() {
		m.saveCurrent()
		m.refreshPreview()
	}
	return m, cmd
}

func (m NoteListModel) handlePreviewUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.previewKeys.nextElement):
		m.cycleElement(1)
		return m, nil

	case key.Matches(msg, m.previewKeys.prevElement):
		m.cycleElement(-1)
		return m, nil

	case key.Matches(msg, m.previewKeys.activate):
		m.activateElement()
		return m, nil

	case key.Matches(msg, m.previewKeys.leave):
		m.focus = focusEditor
		m.previewFocus = -1
		m.refreshPreview()
		return m, m.editor.area.Focus()
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m NoteListModel) handleFindUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, cmd := m.find.handleKey(msg)

	switch action {
	case findActionUpdate:
		m.find.fr.UpdateMatches(m.editor.text.Text())
		m.syncMatches()

	case findActionNext:
		m.find.fr.NextMatch()
		m.syncMatches()

	case findActionPrev:
		m.find.fr.PrevMatch()
		m.syncMatches()

	case findActionReplace:
		if newText, ok := m.find.fr.ReplaceCurrent(m.editor.text.Text()); ok {
			m.applyReplacement(newText)
		}

	case findActionReplaceAll:
		newText, count := m.find.fr.ReplaceAll(m.editor.text.Text())
		if count > 0 {
			m.applyReplacement(newText)
			return m, tea.Batch(cmd, m.list.NewStatusMessage(
				statusStyle(fmt.Sprintf("Replaced %d occurrences", count)),
			))
		}

	case findActionClose:
		m.finding = false
		m.find.close()
		m.editor.text.ClearMatches()
		return m, m.editor.area.Focus()
	}

	return m, cmd
}

func (m *NoteListModel) applyReplacement(newText string) {
	m.editor.text.SetTextWithUndo(newText)
	m.editor.area.SetValue(newText)
	m.find.fr.UpdateMatches(newText)
	m.syncMatches()
	m.saveCurrent()
	m.refreshPreview()
}

func (m *NoteListModel) syncMatches() {
	current := -1
	if idx, ok := m.find.fr.CurrentIndex(); ok {
		current = idx
	}
	m.editor.text.SetMatches(m.find.fr.Matches(), current)
}

func (m NoteListModel) handleRenameUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.exitAltView) {
		m.toggleRename()
		return m, nil
	}

	if key.Matches(msg, m.keys.submitAltView) {
		if err := m.renameSelected(); err != nil {
			return m, m.list.NewStatusMessage(
				statusStyle(fmt.Sprintf("Error renaming: %v", err)),
			)
		}
		m.toggleRename()
		cmd := m.refresh()
		return m, cmd
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

func (m NoteListModel) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirmDelete = false
		cmd := m.deleteSelected()
		return m, cmd
	case "n", "N", "esc":
		m.confirmDelete = false
	}
	return m, nil
}

func (m NoteListModel) View() string {
	sidebar := listStyle.Width(m.sidebarWidth()).Render(m.list.View())

	if m.renaming {
		prompt := textPromptStyle.Render(
			lipgloss.NewStyle().
				Height(m.list.Height()).
				MaxHeight(m.list.Height()).
				Padding(0, 2).
				Render(fmt.Sprintf(
					"%s\n\n%s\n\n%s",
					titleStyle.Render("Rename Note"),
					m.renameInput.View(),
					helpStyle.Render("do not include the file extension"),
				)),
		)
		return appStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, prompt))
	}

	if m.confirmDelete {
		name := ""
		if s, ok := m.list.SelectedItem().(ListItem); ok {
			name = s.name
		}
		prompt := textPromptStyle.Render(
			lipgloss.NewStyle().
				Height(m.list.Height()).
				Padding(0, 2).
				Render(fmt.Sprintf(
					"%s\n\nDelete %q? (y/n)",
					titleStyle.Render("Delete Note"),
					name,
				)),
		)
		return appStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, prompt))
	}

	editorPane := m.renderEditorPane()
	previewPane := m.renderPreviewPane()

	layout := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, editorPane, previewPane)
	return appStyle.Render(layout)
}

func (m NoteListModel) renderEditorPane() string {
	style := paneStyle
	if m.focus == focusEditor || m.finding {
		style = focusedPaneStyle
	}

	header := titleStyle.Render("Editor")
	if m.editor.name != "" {
		header = titleStyle.Render("Editing " + m.editor.name)
	}

	body := m.editor.area.View()
	if m.finding {
		highlighted := renderHighlighted(m.editor.text.Text(), m.editor.text.StyledRuns())
		body = highlighted + "\n\n" + m.find.View()
	}

	return style.Render(
		lipgloss.NewStyle().
			Height(m.list.Height()).
			MaxHeight(m.list.Height()).
			Width(m.paneWidth()).
			Render(header + "\n" + body),
	)
}

func (m NoteListModel) renderPreviewPane() string {
	style := paneStyle
	if m.focus == focusPreview {
		style = focusedPaneStyle
	}

	header := titleStyle.Render("Preview")
	if m.focus == focusPreview && m.previewElems > 0 {
		header += helpStyle.Render(" tab: cycle · ↵: toggle/open")
	}

	return style.Render(
		lipgloss.NewStyle().
			Height(m.list.Height()).
			MaxHeight(m.list.Height()).
			Width(m.paneWidth()).
			Render(header + "\n" + m.preview.View()),
	)
}

// Run starts the TUI and blocks until the user quits. A non-empty
// initialNote opens that note in the editor immediately.
func Run(s *state.State, initialNote string) error {
	m, err := NewNoteListModel(s)
	if err != nil {
		return err
	}
	if initialNote != "" {
		m.selectByName(initialNote)
		// Delivered through Init so the editor's focus command runs.
		m.initialCmd = m.openSelected()
	}

	if _, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen()).Run(); err != nil {
		if strings.Contains(err.Error(), "resource temporarily unavailable") {
			os.Exit(0)
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func (m *NoteListModel) resize(width, height int) {
	m.width = width
	m.height = height
	h, v := appStyle.GetFrameSize()
	m.list.SetSize(m.sidebarWidth(), height-v)
	m.editor.setSize(m.paneWidth()-h, m.list.Height()-2)
	m.preview.Width = m.paneWidth()
	m.preview.Height = m.list.Height() - 2
	m.refreshPreview()
}

func (m NoteListModel) sidebarWidth() int {
	w := m.width / 4
	if w < 24 {
		w = 24
	}
	return w
}

func (m NoteListModel) paneWidth() int {
	w := (m.width - m.sidebarWidth()) / 2
	if w < 20 {
		w = 20
	}
	return w
}

func (m *NoteListModel) openSelected() tea.Cmd {
	s, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return nil
	}

	content, err := m.state.Handler.Read(s.name)
	if err != nil {
		return m.list.NewStatusMessage(
			statusStyle(fmt.Sprintf("Error reading %s: %v", s.name, err)),
		)
	}

	m.editor.load(s.name, content)
	m.focus = focusEditor
	m.refreshPreview()
	return m.editor.area.Focus()
}

func (m *NoteListModel) createNote() tea.Cmd {
	name := m.state.Handler.NextUntitled()
	if err := m.state.Handler.Create(name); err != nil {
		return m.list.NewStatusMessage(
			statusStyle(fmt.Sprintf("Error creating note: %v", err)),
		)
	}

	cmd := m.refresh()
	m.selectByName(name)
	m.editor.load(name, "")
	m.focus = focusEditor
	m.refreshPreview()
	return tea.Batch(cmd, m.editor.area.Focus(),
		m.list.NewStatusMessage(statusStyle("Created "+name)))
}

func (m *NoteListModel) deleteSelected() tea.Cmd {
	s, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return nil
	}

	if err := m.state.Handler.Delete(s.name); err != nil {
		return m.list.NewStatusMessage(
			statusStyle(fmt.Sprintf("Error deleting %s: %v", s.name, err)),
		)
	}

	if m.editor.name == s.name {
		m.editor.load("", "")
	}
	cmd := m.refresh()
	return tea.Batch(cmd, m.list.NewStatusMessage(statusStyle("Deleted "+s.name)))
}

func (m *NoteListModel) renameSelected() error {
	s, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return nil
	}

	newName := strings.TrimSpace(m.renameInput.Value())
	if newName == "" || newName == s.name {
		return nil
	}

	if err := m.state.Handler.Rename(s.name, newName); err != nil {
		return err
	}
	if m.editor.name == s.name {
		m.editor.name = newName
	}
	return nil
}

func (m *NoteListModel) toggleRename() {
	switch m.renaming {
	case true:
		m.renaming = false
		m.renameInput.Blur()
	case false:
		if s, ok := m.list.SelectedItem().(ListItem); ok {
			m.renaming = true
			m.renameInput.SetValue(s.name)
			m.renameInput.Focus()
		}
	}
}

func (m *NoteListModel) refresh() tea.Cmd {
	m.list.ResetFilter()
	items, err := loadItems(m.state.Handler)
	if err != nil {
		return m.list.NewStatusMessage(
			statusStyle(fmt.Sprintf("Error reading vault: %v", err)),
		)
	}
	cmd := m.list.SetItems(sortItems(items, m.sortField, m.sortOrder))
	return cmd
}

func (m *NoteListModel) refreshSort() tea.Cmd {
	m.list.ResetFilter()
	items := castToListItems(m.list.Items())
	cmd := m.list.SetItems(sortItems(items, m.sortField, m.sortOrder))
	m.list.ResetSelected()
	m.persistSort()
	return cmd
}

func (m *NoteListModel) persistSort() {
	m.state.Config.SortField = m.sortField.configName()
	m.state.Config.SortOrder = m.sortOrder.configName()
	if err := m.state.Config.Save(m.state.Home); err != nil {
		log.Debug("failed to persist sort preference", "err", err)
	}
}

func (m *NoteListModel) selectByName(name string) {
	for idx, item := range m.list.Items() {
		if li, ok := item.(ListItem); ok && li.name == name {
			m.list.Select(idx)
			return
		}
	}
}

func (m *NoteListModel) saveCurrent() {
	if m.editor.name == "" {
		return
	}
	if err := m.state.Handler.Write(m.editor.name, m.editor.text.Text()); err != nil {
		log.Error("failed to save note", "note", m.editor.name, "err", err)
		m.list.NewStatusMessage(
			statusStyle(fmt.Sprintf("Error saving %s: %v", m.editor.name, err)),
		)
	}
}

func (m *NoteListModel) cycleElement(delta int) {
	if m.previewElems == 0 {
		return
	}
	m.previewFocus += delta
	if m.previewFocus >= m.previewElems {
		m.previewFocus = -1
	}
	if m.previewFocus < -1 {
		m.previewFocus = m.previewElems - 1
	}
	m.refreshPreview()
}

// activateElement re-walks the document with the focused element activated
// and applies whatever the walk collected: checkbox toggles flow back into
// the text state, link activations open the browser.
func (m *NoteListModel) activateElement() {
	if m.previewFocus < 0 {
		return
	}

	text := m.editor.text.Text()
	events := markup.Parse(text)
	result := markup.Walk(events, text, m.previewFocus)

	for _, line := range result.Toggles {
		m.editor.text.ToggleCheckboxAtLine(line)
	}
	if len(result.Toggles) > 0 {
		m.editor.area.SetValue(m.editor.text.Text())
		m.saveCurrent()
	}

	for _, url := range result.OpenURLs {
		browser.Open(url)
	}

	m.refreshPreview()
}

func (m *NoteListModel) refreshPreview() {
	// The walk runs on every refresh so the element count always reflects
	// the displayed note; the cache only short-circuits the styled render.
	text := m.editor.text.Text()
	events := markup.Parse(text)
	result := markup.Walk(events, text, -1)
	m.previewElems = result.Elements

	cacheKey := fmt.Sprintf(
		"%s|%x|%d|%d",
		m.editor.name,
		sha256.Sum256([]byte(text)),
		m.previewFocus,
		m.paneWidth(),
	)

	if frame, ok := m.cache.Get(cacheKey); ok {
		m.preview.SetContent(frame)
		return
	}

	frame := renderOps(result.Ops, m.state.Theme, m.previewFocus)
	m.cache.Put(cacheKey, frame)
	m.preview.SetContent(frame)
}
