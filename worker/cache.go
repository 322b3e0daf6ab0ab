package worker

import (
	"sync"

	"github.com/signadot/jsondoc/tree"
)

const DefaultCacheSize = 64

type cacheEntry struct {
	tree *tree.Tree
	opts ParseOptions
}

// Cache holds parsed trees keyed by document and version. When full,
// the least recently stored entry is evicted.
type Cache struct {
	mu      sync.Mutex
	max     int
	entries map[DocRef]cacheEntry
	order   []DocRef
}

func NewCache(max int) *Cache {
	if max <= 0 {
		max = DefaultCacheSize
	}
	return &Cache{max: max, entries: map[DocRef]cacheEntry{}}
}

func (c *Cache) Get(ref DocRef) (*tree.Tree, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[ref]
	return e.tree, ok
}

// lookup returns the tree for ref if it was parsed from text with opts.
func (c *Cache) lookup(ref DocRef, text string, opts ParseOptions) (*tree.Tree, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[ref]
	if !ok || e.opts != opts || e.tree.Text != text {
		return nil, false
	}
	return e.tree, true
}

func (c *Cache) Put(ref DocRef, t *tree.Tree) {
	c.put(ref, t, ParseOptions{})
}

func (c *Cache) put(ref DocRef, t *tree.Tree, opts ParseOptions) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[ref]; !ok {
		c.order = append(c.order, ref)
	}
	c.entries[ref] = cacheEntry{tree: t, opts: opts}
	for len(c.order) > c.max {
		delete(c.entries, c.order[0])
		c.order = c.order[1:]
	}
}

// Drop removes every version of documentID.
func (c *Cache) Drop(documentID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.order[:0]
	for _, ref := range c.order {
		if ref.DocumentID == documentID {
			delete(c.entries, ref)
			continue
		}
		kept = append(kept, ref)
	}
	c.order = kept
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
