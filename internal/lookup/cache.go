package lookup

import (
	"sync"
	"time"
)

type cacheEntry struct {
	resp    *FindResponse
	expires time.Time
}

type cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

func newCache(ttl time.Duration) *cache {
	return &cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

func (c *cache) get(title string) (*FindResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[title]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.resp, true
}

func (c *cache) set(title string, resp *FindResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[title] = cacheEntry{
		resp:    resp,
		expires: time.Now().Add(c.ttl),
	}
}
