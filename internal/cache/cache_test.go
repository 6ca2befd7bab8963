package cache

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewRejectsNonPositiveSize(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("expected error for zero size")
	}
	if _, err := New(-1); err == nil {
		t.Fatal("expected error for negative size")
	}
}

func TestGetPut(t *testing.T) {
	c, err := New(1)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, ok := c.Get("missing"); ok {
		t.Fatal("empty cache returned a value")
	}

	c.Put("a", "frame-a")
	got, ok := c.Get("a")
	if !ok || got != "frame-a" {
		t.Fatalf("get = %q, %v", got, ok)
	}
}

func TestPutUpdatesExisting(t *testing.T) {
	c, _ := New(1)
	c.Put("k", "old")
	c.Put("k", "new value")

	got, _ := c.Get("k")
	if got != "new value" {
		t.Fatalf("got %q", got)
	}
	if c.Len() != 1 {
		t.Fatalf("len = %d", c.Len())
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c, _ := New(1)
	big := strings.Repeat("x", 400*1024)

	c.Put("a", big)
	c.Put("b", big)
	c.Get("a") // a is now the most recently used
	c.Put("c", big)

	if _, ok := c.Get("b"); ok {
		t.Fatal("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatal("a should have survived")
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatal("c should be present")
	}
}

func TestOversizeValueKeepsNewestEntry(t *testing.T) {
	c, _ := New(1)
	huge := strings.Repeat("y", 2*1024*1024)

	c.Put("huge", huge)
	if c.Len() != 1 {
		t.Fatalf("len = %d; the newest entry always stays", c.Len())
	}
	if got, ok := c.Get("huge"); !ok || got != huge {
		t.Fatal("oversize entry must still be retrievable")
	}
}

func TestSizeAccounting(t *testing.T) {
	c, _ := New(10)
	var want int64
	for i := 0; i < 20; i++ {
		key := fmt.Sprintf("key-%d", i)
		value := strings.Repeat("v", 100)
		c.Put(key, value)
		want += int64(len(key) + len(value))
	}
	if c.SizeOf() != want {
		t.Fatalf("size = %d, want %d", c.SizeOf(), want)
	}
}
