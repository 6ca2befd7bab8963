package notes

import "testing"

func TestFuzzyFilterRanks(t *testing.T) {
	targets := []string{"groceries", "garden plan", "work journal"}

	ranks := fuzzyFilter("grc", targets)
	if len(ranks) == 0 {
		t.Fatal("expected at least one rank")
	}
	if ranks[0].Index != 0 {
		t.Fatalf("best match index = %d, want 0 (groceries)", ranks[0].Index)
	}
	if len(ranks[0].MatchedIndexes) != 3 {
		t.Fatalf("matched indexes = %v", ranks[0].MatchedIndexes)
	}
}

func TestFuzzyFilterNoMatch(t *testing.T) {
	ranks := fuzzyFilter("zzz", []string{"alpha", "beta"})
	if len(ranks) != 0 {
		t.Fatalf("expected no ranks, got %v", ranks)
	}
}

func TestListItemDisplay(t *testing.T) {
	item := ListItem{name: "ideas"}
	if item.Title() != "ideas" || item.FilterValue() != "ideas" {
		t.Fatalf("title = %q, filter = %q", item.Title(), item.FilterValue())
	}
	if item.Description() != "never saved" {
		t.Fatalf("description = %q", item.Description())
	}
}
