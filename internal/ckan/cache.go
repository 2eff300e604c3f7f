package ckan

import (
	"sync"
	"time"
)

// memoCache memoizes fetched payloads for the lifetime of the process.
// Invalidation is process restart; there is deliberately no eviction.
type memoCache struct {
	mu      sync.Mutex
	entries map[string]memoEntry
}

type memoEntry struct {
	body      []byte
	fetchedAt time.Time
}

func newMemoCache() *memoCache {
	return &memoCache{entries: make(map[string]memoEntry)}
}

func (c *memoCache) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	return entry.body, ok
}

func (c *memoCache) put(key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoEntry{body: body, fetchedAt: time.Now().UTC()}
}

// fetchedAt reports when the payload for key was stored, if it is cached.
func (c *memoCache) fetchedAt(key string) (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	return entry.fetchedAt, ok
}
