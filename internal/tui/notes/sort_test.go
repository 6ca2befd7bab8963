package notes

import (
	"testing"
	"time"
)

func namesOf(t *testing.T, items []ListItem) []string {
	t.Helper()
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.name
	}
	return names
}

func TestSortByTitleCaseInsensitive(t *testing.T) {
	items := []ListItem{
		{name: "zebra"},
		{name: "Apple"},
		{name: "mango"},
	}

	sorted := castToListItems(sortItems(items, sortByTitle, ascending))
	got := namesOf(t, sorted)
	want := []string{"Apple", "mango", "zebra"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	sorted = castToListItems(sortItems(items, sortByTitle, descending))
	if sorted[0].name != "zebra" {
		t.Fatalf("descending first = %q", sorted[0].name)
	}
}

func TestSortByModified(t *testing.T) {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	items := []ListItem{
		{name: "middle", modified: base.Add(time.Hour), hasTime: true},
		{name: "newest", modified: base.Add(2 * time.Hour), hasTime: true},
		{name: "oldest", modified: base, hasTime: true},
	}

	sorted := castToListItems(sortItems(items, sortByModifiedAt, descending))
	if sorted[0].name != "newest" || sorted[2].name != "oldest" {
		t.Fatalf("got %v", namesOf(t, sorted))
	}

	sorted = castToListItems(sortItems(items, sortByModifiedAt, ascending))
	if sorted[0].name != "oldest" {
		t.Fatalf("got %v", namesOf(t, sorted))
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	items := []ListItem{{name: "b"}, {name: "a"}}
	sortItems(items, sortByTitle, ascending)
	if items[0].name != "b" {
		t.Fatal("input slice was reordered")
	}
}

func TestSortConfigNames(t *testing.T) {
	if sortFieldFromConfig("modified") != sortByModifiedAt {
		t.Fatal("modified field")
	}
	if sortFieldFromConfig("anything else") != sortByTitle {
		t.Fatal("unknown field must default to title")
	}
	if sortOrderFromConfig("descending") != descending {
		t.Fatal("descending order")
	}
	if sortByModifiedAt.configName() != "modified" || ascending.configName() != "ascending" {
		t.Fatal("config name round trip")
	}
}
