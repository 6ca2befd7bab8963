package notes

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/sahilm/fuzzy"

	"github.com/danpozmanter/NoteSquirrel/internal/handler"
)

type ListItem struct {
	name     string
	modified time.Time
	hasTime  bool
}

func (i ListItem) Title() string { return i.name }

func (i ListItem) Description() string {
	if !i.hasTime {
		return "never saved"
	}
	return "Modified " + i.modified.Format("Mon, 02 Jan 2006 15:04")
}

func (i ListItem) FilterValue() string { return i.name }

// loadItems reads the vault directory into list items. Notes that vanish
// between the directory scan and the stat are kept without a timestamp.
func loadItems(h *handler.FileHandler) ([]ListItem, error) {
	names, err := h.ListNotes()
	if err != nil {
		return nil, err
	}

	items := make([]ListItem, 0, len(names))
	for _, n := range names {
		mod, ok := h.ModifiedTime(n)
		items = append(items, ListItem{name: n, modified: mod, hasTime: ok})
	}
	return items, nil
}

// fuzzyFilter ranks sidebar items with fuzzy matching rather than the
// default substring filter.
func fuzzyFilter(term string, targets []string) []list.Rank {
	matches := fuzzy.Find(term, targets)
	ranks := make([]list.Rank, len(matches))
	for i, match := range matches {
		ranks[i] = list.Rank{
			Index:          match.Index,
			MatchedIndexes: match.MatchedIndexes,
		}
	}
	return ranks
}

func castToListItems(items []list.Item) []ListItem {
	var listItems []ListItem
	for _, item := range items {
		if listItem, ok := item.(ListItem); ok {
			listItems = append(listItems, listItem)
		}
	}
	return listItems
}
