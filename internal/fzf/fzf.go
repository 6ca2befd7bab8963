// Package fzf wraps the terminal fuzzy finder used to pick a note from the
// vault, with a rendered markdown preview alongside the candidate list.
package fzf

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/danpozmanter/NoteSquirrel/internal/handler"
)

type FuzzyFinder struct {
	handler *handler.FileHandler
	Header  string
	notes   []string
}

func NewFuzzyFinder(h *handler.FileHandler, header string) *FuzzyFinder {
	return &FuzzyFinder{handler: h, Header: header}
}

// Run presents the vault's notes and returns the selected note name.
func (f *FuzzyFinder) Run() (string, error) {
	return f.find("")
}

// RunWithQuery pre-fills the finder's query.
func (f *FuzzyFinder) RunWithQuery(query string) (string, error) {
	return f.find(query)
}

func (f *FuzzyFinder) find(query string) (string, error) {
	notes, err := f.handler.ListNotes()
	if err != nil {
		return "", fmt.Errorf("error listing notes: %w", err)
	}
	if len(notes) == 0 {
		return "", fmt.Errorf("no notes in vault")
	}
	f.notes = notes

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderPreview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := fuzzyfinder.Find(f.notes, func(i int) string {
		return f.notes[i]
	}, options...)
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			return "", fmt.Errorf("no note selected")
		}
		return "", err
	}

	return f.notes[idx], nil
}

func (f *FuzzyFinder) renderPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	content, err := f.handler.Read(f.notes[i])
	if err != nil {
		return "Error reading note"
	}

	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(w/2-4),
		glamour.WithColorProfile(termenv.ANSI256),
	)

	markdown, err := r.Render(content)
	if err != nil {
		return "Error rendering markdown"
	}
	return markdown
}
