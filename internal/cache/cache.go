// Package cache provides a byte-size-bounded LRU used to keep rendered
// preview frames keyed on note identity plus content checksum.
package cache

import (
	"container/list"
	"fmt"
)

type Cache struct {
	maxBytes  int64
	usedBytes int64
	evictList *list.List
	items     map[string]*list.Element
}

type entry struct {
	key   string
	value string
}

// New creates a cache bounded to maxMB megabytes of stored values.
func New(maxMB int64) (*Cache, error) {
	if maxMB <= 0 {
		return nil, fmt.Errorf("cache size must be positive, got %d", maxMB)
	}
	return &Cache{
		maxBytes:  maxMB * 1024 * 1024,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}, nil
}

func (c *Cache) Get(key string) (string, bool) {
	ele, hit := c.items[key]
	if !hit {
		return "", false
	}
	c.evictList.MoveToFront(ele)
	return ele.Value.(*entry).value, true
}

func (c *Cache) Put(key, value string) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		ent := ele.Value.(*entry)
		c.usedBytes += int64(len(value)) - int64(len(ent.value))
		ent.value = value
	} else {
		ele := c.evictList.PushFront(&entry{key: key, value: value})
		c.items[key] = ele
		c.usedBytes += int64(len(key) + len(value))
	}

	for c.usedBytes > c.maxBytes && c.evictList.Len() > 1 {
		c.removeOldest()
	}
}

func (c *Cache) Len() int { return c.evictList.Len() }

func (c *Cache) SizeOf() int64 { return c.usedBytes }

func (c *Cache) removeOldest() {
	ele := c.evictList.Back()
	if ele == nil {
		return
	}
	ent := ele.Value.(*entry)
	c.evictList.Remove(ele)
	delete(c.items, ent.key)
	c.usedBytes -= int64(len(ent.key) + len(ent.value))
}
