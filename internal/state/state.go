// Package state wires the application's shared context: configuration, the
// vault file handler, and the resolved theme. One State is built at startup
// and passed explicitly into every component's entry point; there are no
// package-level globals.
package state

import (
	"sync"

	"github.com/danpozmanter/NoteSquirrel/internal/config"
	"github.com/danpozmanter/NoteSquirrel/internal/handler"
	"github.com/danpozmanter/NoteSquirrel/internal/textstate"
)

type State struct {
	Config  *config.Config
	Handler *handler.FileHandler
	Theme   textstate.Theme
	Home    string
	Vault   string
}

// NewState loads configuration and prepares the vault. vaultOverride, when
// non-empty, wins over the configured vault directory (the --vault flag).
func NewState(vaultOverride string) (*State, error) {
	home, err := config.HomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(home)
	if err != nil {
		return nil, err
	}

	vault := cfg.VaultDir
	if vaultOverride != "" {
		vault = vaultOverride
	}

	h := handler.NewFileHandler(vault, cfg.Extension)
	if err := h.EnsureVault(); err != nil {
		return nil, err
	}

	return &State{
		Config:  cfg,
		Handler: h,
		Theme:   config.ResolveTheme(home, cfg.Theme),
		Home:    home,
		Vault:   vault,
	}, nil
}

// Lazy defers state construction until a command actually runs, after flag
// parsing has happened. VaultOverride points at the --vault flag value.
type Lazy struct {
	VaultOverride *string

	once sync.Once
	s    *State
	err  error
}

// Get builds the state on first use and returns the same instance after.
func (l *Lazy) Get() (*State, error) {
	l.once.Do(func() {
		override := ""
		if l.VaultOverride != nil {
			override = *l.VaultOverride
		}
		l.s, l.err = NewState(override)
	})
	return l.s, l.err
}
