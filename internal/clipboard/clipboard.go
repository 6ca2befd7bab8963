// Package clipboard is a best-effort wrapper over the system clipboard.
// Clipboard failures never surface to the user; a notes editor keeps working
// without one.
package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
)

// SetText copies text to the system clipboard. Failures are logged at debug
// level and otherwise ignored.
func SetText(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		log.Debug("clipboard write failed", "err", err)
	}
}

// GetText reads the system clipboard, returning empty text on failure.
func GetText() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		log.Debug("clipboard read failed", "err", err)
		return ""
	}
	return text
}
