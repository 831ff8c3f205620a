package http

import (
	"container/list"
	"sync"
	"time"

	"caredash/internal/charts"
)

// specCache is an LRU cache with TTL for rendered chart specs. Handlers are
// pure functions over an immutable table, so a cached spec never goes stale
// within its TTL; the TTL only bounds memory held for rare key combinations.
type specCache struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[string]*list.Element
	lru     *list.List
}

type specCacheItem struct {
	key       string
	spec      charts.Spec
	expiresAt time.Time
}

func newSpecCache(maxSize int, ttl time.Duration) *specCache {
	return &specCache{
		maxSize: maxSize,
		ttl:     ttl,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

func (c *specCache) Get(key string) (charts.Spec, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, exists := c.items[key]
	if !exists {
		return charts.Spec{}, false
	}

	item := elem.Value.(*specCacheItem)
	if time.Now().After(item.expiresAt) {
		c.removeElement(elem)
		return charts.Spec{}, false
	}

	c.lru.MoveToFront(elem)
	return item.spec, true
}

func (c *specCache) Set(key string, spec charts.Spec) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := &specCacheItem{
		key:       key,
		spec:      spec,
		expiresAt: time.Now().Add(c.ttl),
	}

	if elem, exists := c.items[key]; exists {
		elem.Value = item
		c.lru.MoveToFront(elem)
		return
	}

	elem := c.lru.PushFront(item)
	c.items[key] = elem

	if c.lru.Len() > c.maxSize {
		if oldest := c.lru.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
}

func (c *specCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *specCache) removeElement(elem *list.Element) {
	item := elem.Value.(*specCacheItem)
	delete(c.items, item.key)
	c.lru.Remove(elem)
}

// CleanExpired removes all expired entries
func (c *specCache) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	var toRemove []*list.Element
	for elem := c.lru.Front(); elem != nil; elem = elem.Next() {
		if now.After(elem.Value.(*specCacheItem).expiresAt) {
			toRemove = append(toRemove, elem)
		}
	}
	for _, elem := range toRemove {
		c.removeElement(elem)
	}
	return len(toRemove)
}
