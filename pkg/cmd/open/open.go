package open

import (
	"github.com/spf13/cobra"

	"github.com/danpozmanter/NoteSquirrel/internal/fzf"
	"github.com/danpozmanter/NoteSquirrel/internal/state"
	"github.com/danpozmanter/NoteSquirrel/internal/tui/notes"
)

func NewCmdOpen(l *state.Lazy) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "open [query]",
		Aliases: []string{"o"},
		Short:   "Open a note picked with the fuzzy finder.",
		Long: `This command opens a vault note in the editor. It takes one optional
  argument used as the initial fuzzy finder query. The vault notes are
  displayed with a file preview for selection.`,
		Example: "notesquirrel open groceries",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := l.Get()
			if err != nil {
				return err
			}
			finder := fzf.NewFuzzyFinder(s.Handler, "Select note to open.")

			var name string
			if len(args) == 0 {
				name, err = finder.Run()
			} else {
				name, err = finder.RunWithQuery(args[0])
			}
			if err != nil {
				return err
			}

			return notes.Run(s, name)
		},
	}

	return cmd
}
