// Package config loads and persists the application configuration: vault
// location, note extension, sidebar sort defaults, and the active theme.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	ConfigFile = ".notesquirrel"
	ConfigType = "yaml"

	DefaultExtension = ".md"
	DefaultVaultName = "NoteSquirrel"
)

type Config struct {
	VaultDir  string `yaml:"vaultdir"   json:"vault_dir"`
	Extension string `yaml:"extension"  json:"extension"`
	SortField string `yaml:"sort_field" json:"sort_field"` // "title" or "modified"
	SortOrder string `yaml:"sort_order" json:"sort_order"` // "ascending" or "descending"
	Theme     string `yaml:"theme"      json:"theme"`
}

// Load reads the config file from the user's home directory, filling in
// defaults for anything unset. A missing file is not an error; defaults
// apply and the first Save creates it.
func Load(home string) (*Config, error) {
	viper.SetConfigName(ConfigFile)
	viper.SetConfigType(ConfigType)
	viper.AddConfigPath(home)

	viper.SetDefault("vaultdir", filepath.Join(home, DefaultVaultName))
	viper.SetDefault("extension", DefaultExtension)
	viper.SetDefault("sort_field", "title")
	viper.SetDefault("sort_order", "ascending")
	viper.SetDefault("theme", "squirrel")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		VaultDir:  viper.GetString("vaultdir"),
		Extension: viper.GetString("extension"),
		SortField: viper.GetString("sort_field"),
		SortOrder: viper.GetString("sort_order"),
		Theme:     viper.GetString("theme"),
	}
	return cfg, nil
}

// Save writes the current values back to the config file, creating it on
// first use.
func (cfg *Config) Save(home string) error {
	viper.Set("vaultdir", cfg.VaultDir)
	viper.Set("extension", cfg.Extension)
	viper.Set("sort_field", cfg.SortField)
	viper.Set("sort_order", cfg.SortOrder)
	viper.Set("theme", cfg.Theme)

	path := filepath.Join(home, ConfigFile+"."+ConfigType)
	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// HomeDir resolves the directory holding the config file, honoring
// NOTESQUIRREL_HOME for tests and unusual setups.
func HomeDir() (string, error) {
	if override := os.Getenv("NOTESQUIRREL_HOME"); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return home, nil
}
