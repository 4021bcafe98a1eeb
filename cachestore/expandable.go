package cachestore

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ExpandableItem is one numbered entry a `context` result hands back
// (§4.9, GLOSSARY "Expandable item") — a file/range pair the `expand
// N` follow-up query can turn into source text.
type ExpandableItem struct {
	Label     string
	File      string
	StartLine int
	EndLine   int
}

// ExpandableCache is the short-lived cache described in §4.8/§5: the
// "expandable items" produced by the last `context` call, scoped per
// (project root, symbol name, file pattern) and LRU-evicted under its
// own limit so it never competes with the persistent index cache.
type ExpandableCache struct {
	items   *lru.Cache[string, []ExpandableItem]
	latest  *lru.Cache[string, string] // project root -> most recent items-cache key
}

// NewExpandableCache builds a cache holding up to capacity distinct
// (project, symbol, pattern) entries.
func NewExpandableCache(capacity int) (*ExpandableCache, error) {
	if capacity <= 0 {
		capacity = 64
	}
	items, err := lru.New[string, []ExpandableItem](capacity)
	if err != nil {
		return nil, fmt.Errorf("cachestore: new expandable cache: %w", err)
	}
	latest, err := lru.New[string, string](capacity)
	if err != nil {
		return nil, fmt.Errorf("cachestore: new latest-context cache: %w", err)
	}
	return &ExpandableCache{items: items, latest: latest}, nil
}

func expandKey(projectRoot, symbolName, filePattern string) string {
	return projectRoot + "\x00" + symbolName + "\x00" + filePattern
}

// Put records the expandable items produced by a `context` call and
// marks it as the project's most recent, so a bare `expand N` (with no
// symbol name repeated) can find it via Latest.
func (c *ExpandableCache) Put(projectRoot, symbolName, filePattern string, items []ExpandableItem) {
	key := expandKey(projectRoot, symbolName, filePattern)
	c.items.Add(key, items)
	c.latest.Add(projectRoot, key)
}

// Get returns the numbered item n (1-based, matching the external
// protocol's display numbering) from the cached list for
// (projectRoot, symbolName, filePattern).
func (c *ExpandableCache) Get(projectRoot, symbolName, filePattern string, n int) (ExpandableItem, bool) {
	items, ok := c.items.Get(expandKey(projectRoot, symbolName, filePattern))
	if !ok || n < 1 || n > len(items) {
		return ExpandableItem{}, false
	}
	return items[n-1], true
}

// Latest returns item n from the most recent `context` call made for
// projectRoot, regardless of which symbol/pattern produced it.
func (c *ExpandableCache) Latest(projectRoot string, n int) (ExpandableItem, bool) {
	key, ok := c.latest.Get(projectRoot)
	if !ok {
		return ExpandableItem{}, false
	}
	items, ok := c.items.Get(key)
	if !ok || n < 1 || n > len(items) {
		return ExpandableItem{}, false
	}
	return items[n-1], true
}
