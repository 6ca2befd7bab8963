// Package handler owns all filesystem access for the note vault: one file
// per note, the filename (minus extension) is the note's display name.
// Callers decide whether to update in-memory state on failure; nothing here
// retries.
package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type FileHandler struct {
	vaultDir  string
	extension string
}

func NewFileHandler(vaultDir, extension string) *FileHandler {
	if extension == "" {
		extension = ".md"
	}
	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}
	return &FileHandler{vaultDir: vaultDir, extension: extension}
}

func (h *FileHandler) VaultDir() string { return h.vaultDir }

// Path returns the absolute file path backing a note name.
func (h *FileHandler) Path(name string) string {
	return filepath.Join(h.vaultDir, name+h.extension)
}

// EnsureVault creates the vault directory if it does not exist yet.
func (h *FileHandler) EnsureVault() error {
	if err := os.MkdirAll(h.vaultDir, 0o755); err != nil {
		return fmt.Errorf("failed to create vault directory: %w", err)
	}
	return nil
}

// ListNotes returns the note names in the vault, sorted case-insensitively.
// Dotfiles and files with a different extension are skipped.
func (h *FileHandler) ListNotes() ([]string, error) {
	entries, err := os.ReadDir(h.vaultDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read vault: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, h.extension) {
			continue
		}
		names = append(names, strings.TrimSuffix(name, h.extension))
	}

	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names, nil
}

// Read returns a note's content. A missing note reads as empty.
func (h *FileHandler) Read(name string) (string, error) {
	content, err := os.ReadFile(h.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read note %q: %w", name, err)
	}
	return string(content), nil
}

func (h *FileHandler) Write(name, content string) error {
	if err := os.WriteFile(h.Path(name), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write note %q: %w", name, err)
	}
	return nil
}

// Create makes a new empty note. It fails if the note already exists.
func (h *FileHandler) Create(name string) error {
	f, err := os.OpenFile(h.Path(name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create note %q: %w", name, err)
	}
	return f.Close()
}

func (h *FileHandler) Delete(name string) error {
	if err := os.Remove(h.Path(name)); err != nil {
		return fmt.Errorf("failed to delete note %q: %w", name, err)
	}
	return nil
}

func (h *FileHandler) Rename(oldName, newName string) error {
	if err := os.Rename(h.Path(oldName), h.Path(newName)); err != nil {
		return fmt.Errorf("failed to rename note %q: %w", oldName, err)
	}
	return nil
}

// Exists reports whether a note file is present.
func (h *FileHandler) Exists(name string) bool {
	_, err := os.Stat(h.Path(name))
	return err == nil
}

// ModifiedTime returns a note's modification time, or false when the file
// cannot be stat'd.
func (h *FileHandler) ModifiedTime(name string) (time.Time, bool) {
	info, err := os.Stat(h.Path(name))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// NextUntitled picks the first free "Note N" name, for quick note creation.
func (h *FileHandler) NextUntitled() string {
	for i := 1; ; i++ {
		name := fmt.Sprintf("Note %d", i)
		if !h.Exists(name) {
			return name
		}
	}
}
