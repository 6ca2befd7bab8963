package initialize

import (
	"fmt"
	"path/filepath"

	"github.com/erikgeiser/promptkit/selection"
	"github.com/erikgeiser/promptkit/textinput"
	"github.com/spf13/cobra"

	"github.com/danpozmanter/NoteSquirrel/internal/config"
	"github.com/danpozmanter/NoteSquirrel/internal/handler"
)

func NewCmdInit() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "initialize",
		Aliases: []string{"i", "init"},
		Short:   "Set up the NoteSquirrel configuration.",
		Long:    "This command walks you through setting up the vault location and defaults, then writes the configuration file.",
		Example: "notesquirrel init",
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := config.HomeDir()
			if err != nil {
				return err
			}

			cfg, err := config.Load(home)
			if err != nil {
				return err
			}

			vaultPrompt := textinput.New("Vault directory:")
			vaultPrompt.InitialValue = cfg.VaultDir
			vaultPrompt.Placeholder = filepath.Join(home, "NoteSquirrel")
			vault, err := vaultPrompt.RunPrompt()
			if err != nil {
				return err
			}
			if vault != "" {
				cfg.VaultDir = vault
			}

			extPrompt := textinput.New("Note file extension:")
			extPrompt.InitialValue = cfg.Extension
			ext, err := extPrompt.RunPrompt()
			if err != nil {
				return err
			}
			if ext != "" {
				cfg.Extension = ext
			}

			sortPrompt := selection.New("Sort notes by:", []string{"title", "modified"})
			sortPrompt.Filter = nil
			sortField, err := sortPrompt.RunPrompt()
			if err != nil {
				return err
			}
			cfg.SortField = sortField

			orderPrompt := selection.New("Sort order:", []string{"ascending", "descending"})
			orderPrompt.Filter = nil
			sortOrder, err := orderPrompt.RunPrompt()
			if err != nil {
				return err
			}
			cfg.SortOrder = sortOrder

			h := handler.NewFileHandler(cfg.VaultDir, cfg.Extension)
			if err := h.EnsureVault(); err != nil {
				return err
			}

			if err := cfg.Save(home); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written. Vault: %s\n", cfg.VaultDir)
			return nil
		},
	}

	return cmd
}
