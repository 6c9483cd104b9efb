package repository

import "sync"

// PlayerCache maps player names to their row IDs so repeated inserts skip the lookup.
type PlayerCache struct {
	mu    sync.RWMutex
	cache map[string]int
}

func NewPlayerCache() *PlayerCache {
	return &PlayerCache{
		cache: make(map[string]int),
	}
}

func (c *PlayerCache) Get(name string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, found := c.cache[name]
	return id, found
}

func (c *PlayerCache) Set(name string, id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[name] = id
}

// Clear drops every entry. Called after a rollback, since cached IDs may no longer exist.
func (c *PlayerCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]int)
}
