package notes

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/danpozmanter/NoteSquirrel/internal/state"
	"github.com/danpozmanter/NoteSquirrel/internal/tui/notes"
)

func NewCmdNotes(l *state.Lazy) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"n"},
		Short:   "Browse and edit vault notes in the TUI.",
		Long: heredoc.Doc(`
			Open the note-taking interface: a sidebar of vault notes, a
			markdown editor with undo history and find/replace, and a
			rendered preview with clickable checkboxes and links.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := l.Get()
			if err != nil {
				return err
			}
			return notes.Run(s, "")
		},
	}

	return cmd
}
