package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	home := t.TempDir()

	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.VaultDir != filepath.Join(home, DefaultVaultName) {
		t.Fatalf("vault dir = %q", cfg.VaultDir)
	}
	if cfg.Extension != ".md" {
		t.Fatalf("extension = %q", cfg.Extension)
	}
	if cfg.SortField != "title" || cfg.SortOrder != "ascending" {
		t.Fatalf("sort defaults = %q %q", cfg.SortField, cfg.SortOrder)
	}
	if cfg.Theme != "squirrel" {
		t.Fatalf("theme = %q", cfg.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	viper.Reset()
	home := t.TempDir()

	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cfg.VaultDir = filepath.Join(home, "elsewhere")
	cfg.SortField = "modified"
	cfg.SortOrder = "descending"
	cfg.Theme = "midnight"

	if err := cfg.Save(home); err != nil {
		t.Fatalf("save: %v", err)
	}

	viper.Reset()
	got, err := Load(home)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	if got.VaultDir != cfg.VaultDir {
		t.Fatalf("vault dir = %q, want %q", got.VaultDir, cfg.VaultDir)
	}
	if got.SortField != "modified" || got.SortOrder != "descending" {
		t.Fatalf("sort = %q %q", got.SortField, got.SortOrder)
	}
	if got.Theme != "midnight" {
		t.Fatalf("theme = %q", got.Theme)
	}
}

func TestHomeDirOverride(t *testing.T) {
	t.Setenv("NOTESQUIRREL_HOME", "/custom/home")

	home, err := HomeDir()
	if err != nil {
		t.Fatalf("home dir: %v", err)
	}
	if home != "/custom/home" {
		t.Fatalf("home = %q", home)
	}
}

func TestResolveThemeDefault(t *testing.T) {
	home := t.TempDir()

	theme := ResolveTheme(home, "squirrel")
	if theme.Headings[0] != "#FF9E64" {
		t.Fatalf("default H1 = %q", theme.Headings[0])
	}

	// Unknown name with no themes file falls back.
	theme = ResolveTheme(home, "missing")
	if theme.Body == "" {
		t.Fatal("fallback theme must be populated")
	}
}

func TestResolveThemeOverride(t *testing.T) {
	home := t.TempDir()

	themes := `midnight:
  body: "#C0CAF5"
  headings:
    - "#FF0000"
  active_match_bg: "#00FF00"
`
	if err := os.WriteFile(filepath.Join(home, "themes.yaml"), []byte(themes), 0o644); err != nil {
		t.Fatal(err)
	}

	theme := ResolveTheme(home, "midnight")
	if theme.Body != "#C0CAF5" {
		t.Fatalf("body = %q", theme.Body)
	}
	if theme.Headings[0] != "#FF0000" {
		t.Fatalf("H1 = %q", theme.Headings[0])
	}
	if theme.Headings[1] == "" {
		t.Fatal("unset heading levels must inherit the default")
	}
	if theme.ActiveMatchBg != "#00FF00" {
		t.Fatalf("active match bg = %q", theme.ActiveMatchBg)
	}
}
