// Package browser opens URLs in the user's default browser.
package browser

import (
	"github.com/charmbracelet/log"
	"github.com/pkg/browser"
)

// Open launches the default browser for url. Failure is logged, not fatal.
func Open(url string) {
	if err := browser.OpenURL(url); err != nil {
		log.Error("failed to open link", "url", url, "err", err)
	}
}
