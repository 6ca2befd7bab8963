package preview

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/danpozmanter/NoteSquirrel/internal/state"
)

const defaultWrapWidth = 100

func NewCmdPreview(l *state.Lazy) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "preview [note]",
		Aliases: []string{"p"},
		Short:   "Render a note's markdown to the terminal.",
		Long: `This command renders a vault note as styled markdown on stdout,
  wrapped to the terminal width. Useful for a quick look without
  opening the full interface.`,
		Example: "notesquirrel preview groceries",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := l.Get()
			if err != nil {
				return err
			}

			name := args[0]
			if !s.Handler.Exists(name) {
				return fmt.Errorf("note %q not found in vault", name)
			}

			content, err := s.Handler.Read(name)
			if err != nil {
				return err
			}

			width := defaultWrapWidth
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				width = w
			}

			r, err := glamour.NewTermRenderer(
				glamour.WithStandardStyle("dark"),
				glamour.WithWordWrap(width),
				glamour.WithColorProfile(termenv.ANSI256),
			)
			if err != nil {
				return err
			}

			rendered, err := r.Render(content)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	return cmd
}
