package store

import (
	"errors"
	"sync"
)

// ErrNotCached is returned by ReadRaw for a key that was never written.
var ErrNotCached = errors.New("not cached")

// RunCache memoizes raw upstream bodies for the lifetime of one aggregation
// run. It is never persisted; build a new one per run.
type RunCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	hits    int
	misses  int
}

func NewRunCache() *RunCache {
	return &RunCache{entries: make(map[string][]byte)}
}

func (c *RunCache) Exists(key string) bool {
	if c == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// ReadRaw returns the cached body for key.
func (c *RunCache) ReadRaw(key string) ([]byte, error) {
	if c == nil {
		return nil, ErrNotCached
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, ErrNotCached
	}
	c.hits++
	return b, nil
}

// WriteRaw stores a copy of body under key.
func (c *RunCache) WriteRaw(key string, body []byte) {
	if c == nil {
		return
	}
	cp := make([]byte, len(body))
	copy(cp, body)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cp
}

// Stats reports entries held and read hits/misses so far.
func (c *RunCache) Stats() (entries, hits, misses int) {
	if c == nil {
		return 0, 0, 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries), c.hits, c.misses
}
