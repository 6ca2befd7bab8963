package root

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/danpozmanter/NoteSquirrel/internal/state"
	"github.com/danpozmanter/NoteSquirrel/pkg/cmd/initialize"
	"github.com/danpozmanter/NoteSquirrel/pkg/cmd/notes"
	"github.com/danpozmanter/NoteSquirrel/pkg/cmd/open"
	"github.com/danpozmanter/NoteSquirrel/pkg/cmd/preview"
)

var vaultFlag string

func NewCmdRoot(l *state.Lazy) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notesquirrel",
		Aliases: []string{"nsq"},
		Short:   "A markdown note-taking app with live preview.",
		Long: `NoteSquirrel keeps plain markdown notes in a vault directory and
  gives you an editor with undo history, find and replace, and a
  rendered preview where checkboxes toggle and links open.

  notesquirrel            launch the interface
  notesquirrel open todo  fuzzy-find a note and open it
  `,
		// Launching the notes TUI is the default action.
		RunE: notes.NewCmdNotes(l).RunE,
	}

	cmd.PersistentFlags().StringVar(
		&vaultFlag,
		"vault",
		"",
		"Vault directory to use instead of the configured one.",
	)

	cmd.AddCommand(
		initialize.NewCmdInit(),
		notes.NewCmdNotes(l),
		open.NewCmdOpen(l),
		preview.NewCmdPreview(l),
	)

	return cmd
}

// Execute runs the root command. State is built lazily inside each RunE, so
// cobra's own parse supplies the --vault override before it is read.
func Execute() {
	lazy := &state.Lazy{VaultOverride: &vaultFlag}

	if err := NewCmdRoot(lazy).Execute(); err != nil {
		os.Exit(1)
	}
}
