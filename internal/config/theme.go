package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/danpozmanter/NoteSquirrel/internal/textstate"
)

// ThemeDefinition is the on-disk shape of one theme in themes.yaml. Empty
// fields inherit from the built-in default.
type ThemeDefinition struct {
	Body     string   `yaml:"body"`
	Marker   string   `yaml:"marker"`
	Quote    string   `yaml:"quote"`
	List     string   `yaml:"list"`
	Code     string   `yaml:"code"`
	CodeBg   string   `yaml:"code_bg"`
	Headings []string `yaml:"headings"`

	MatchBg       string `yaml:"match_bg"`
	ActiveMatchBg string `yaml:"active_match_bg"`
}

const themesFile = "themes.yaml"

// ResolveTheme returns the palette for the named theme: the built-in
// "squirrel" palette, optionally overridden by an entry in themes.yaml next
// to the config file. Unknown names and unreadable theme files fall back to
// the default.
func ResolveTheme(home, name string) textstate.Theme {
	theme := textstate.DefaultTheme()
	if name == "" || name == "squirrel" {
		return theme
	}

	defs, err := loadThemes(filepath.Join(home, themesFile))
	if err != nil {
		return theme
	}
	def, ok := defs[name]
	if !ok {
		return theme
	}

	apply := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	apply(&theme.Body, def.Body)
	apply(&theme.Marker, def.Marker)
	apply(&theme.Quote, def.Quote)
	apply(&theme.List, def.List)
	apply(&theme.Code, def.Code)
	apply(&theme.CodeBg, def.CodeBg)
	apply(&theme.MatchBg, def.MatchBg)
	apply(&theme.ActiveMatchBg, def.ActiveMatchBg)
	for i := 0; i < len(def.Headings) && i < len(theme.Headings); i++ {
		apply(&theme.Headings[i], def.Headings[i])
	}
	return theme
}

func loadThemes(path string) (map[string]ThemeDefinition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes: %w", err)
	}
	defs := make(map[string]ThemeDefinition)
	if err := yaml.Unmarshal(raw, &defs); err != nil {
		return nil, fmt.Errorf("failed to parse themes: %w", err)
	}
	return defs, nil
}
