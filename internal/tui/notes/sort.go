package notes

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
)

type sortField int

const (
	sortByTitle sortField = iota
	sortByModifiedAt
)

type sortOrder int

const (
	ascending sortOrder = iota
	descending
)

func sortFieldFromConfig(name string) sortField {
	if name == "modified" {
		return sortByModifiedAt
	}
	return sortByTitle
}

func sortOrderFromConfig(name string) sortOrder {
	if name == "descending" {
		return descending
	}
	return ascending
}

func (f sortField) configName() string {
	if f == sortByModifiedAt {
		return "modified"
	}
	return "title"
}

func (o sortOrder) configName() string {
	if o == descending {
		return "descending"
	}
	return "ascending"
}

func sortItems(items []ListItem, field sortField, order sortOrder) []list.Item {
	sortedItems := make([]ListItem, len(items))
	copy(sortedItems, items)

	sort.SliceStable(sortedItems, func(i, j int) bool {
		switch field {
		case sortByModifiedAt:
			if order == ascending {
				return sortedItems[i].modified.Before(sortedItems[j].modified)
			}
			return sortedItems[i].modified.After(sortedItems[j].modified)
		default:
			iTitle := strings.ToLower(sortedItems[i].name)
			jTitle := strings.ToLower(sortedItems[j].name)
			if order == ascending {
				return iTitle < jTitle
			}
			return iTitle > jTitle
		}
	})

	listItems := make([]list.Item, len(sortedItems))
	for i, item := range sortedItems {
		listItems[i] = item
	}
	return listItems
}
