package notes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/danpozmanter/NoteSquirrel/internal/search"
)

// findAction is what the overlay asks the host model to do after a keypress.
type findAction int

const (
	findActionNone findAction = iota
	findActionUpdate
	findActionNext
	findActionPrev
	findActionReplace
	findActionReplaceAll
	findActionClose
)

type findModel struct {
	findInput    textinput.Model
	replaceInput textinput.Model
	fr           *search.FindReplace
	onReplace    bool
}

func newFindModel() *findModel {
	find := textinput.New()
	find.Prompt = "Find: "
	find.PromptStyle = findLabelStyle
	find.Focus()

	replace := textinput.New()
	replace.Prompt = "Replace: "
	replace.PromptStyle = findLabelStyle

	return &findModel{
		findInput:    find,
		replaceInput: replace,
		fr:           search.NewFindReplace(),
	}
}

func (f *findModel) open() {
	f.onReplace = false
	f.findInput.Focus()
	f.replaceInput.Blur()
}

func (f *findModel) close() {
	f.findInput.Blur()
	f.replaceInput.Blur()
	f.fr.Clear()
}

// handleKey routes a keypress to the overlay, returning the action the host
// should take and any cursor blink command.
func (f *findModel) handleKey(msg tea.KeyMsg) (findAction, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return findActionClose, nil

	case "tab", "shift+tab":
		f.toggleFocus()
		return findActionNone, nil

	case "enter":
		if f.onReplace {
			return findActionReplace, nil
		}
		return findActionNext, nil

	case "ctrl+n", "f3":
		return findActionNext, nil

	case "ctrl+p", "shift+f3":
		return findActionPrev, nil

	case "ctrl+r":
		return findActionReplaceAll, nil

	case "alt+c":
		f.fr.CaseSensitive = !f.fr.CaseSensitive
		return findActionUpdate, nil

	case "alt+x":
		f.fr.UseRegex = !f.fr.UseRegex
		return findActionUpdate, nil
	}

	var cmd tea.Cmd
	if f.onReplace {
		f.replaceInput, cmd = f.replaceInput.Update(msg)
		f.fr.ReplaceText = f.replaceInput.Value()
		return findActionNone, cmd
	}

	f.findInput, cmd = f.findInput.Update(msg)
	f.fr.FindText = f.findInput.Value()
	return findActionUpdate, cmd
}

func (f *findModel) toggleFocus() {
	f.onReplace = !f.onReplace
	if f.onReplace {
		f.findInput.Blur()
		f.replaceInput.Focus()
	} else {
		f.replaceInput.Blur()
		f.findInput.Focus()
	}
}

func (f *findModel) View() string {
	var b strings.Builder
	b.WriteString(f.findInput.View())
	b.WriteString("\n")
	b.WriteString(f.replaceInput.View())
	b.WriteString("\n")

	flags := make([]string, 0, 2)
	if f.fr.CaseSensitive {
		flags = append(flags, "case")
	}
	if f.fr.UseRegex {
		flags = append(flags, "regex")
	}
	status := f.fr.StatusLine()
	if len(flags) > 0 {
		status += "  [" + strings.Join(flags, ",") + "]"
	}
	b.WriteString(findCountStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		"↵ next/replace · ctrl+p prev · ctrl+r replace all · alt+c case · alt+x regex · esc close",
	))
	return b.String()
}
