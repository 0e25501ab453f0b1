package cache

import (
	"sync"
	"time"
)

// Cache is a TTL-bounded in-memory key/value store. Entries expire ttl after
// they were last set; expired entries are dropped lazily on access and during
// Set sweeps. The clock is injectable so expiry is testable.
type Cache[V any] struct {
	mu      sync.Mutex
	items   map[string]entry[V]
	ttl     time.Duration
	now     func() time.Time
	sweepAt time.Time
}

type entry[V any] struct {
	value V
	exp   time.Time
}

const sweepInterval = time.Minute

// New creates a Cache with the given TTL. A nil now falls back to time.Now.
func New[V any](ttl time.Duration, now func() time.Time) *Cache[V] {
	if now == nil {
		now = time.Now
	}
	return &Cache[V]{
		items:   make(map[string]entry[V]),
		ttl:     ttl,
		now:     now,
		sweepAt: now().Add(sweepInterval),
	}
}

// Get returns the cached value for key if it exists and has not expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.now().After(item.exp) {
		delete(c.items, key)
		var zero V
		return zero, false
	}
	return item.value, true
}

// Set stores value under key, resetting its TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.items[key] = entry[V]{value: value, exp: now.Add(c.ttl)}

	if now.After(c.sweepAt) {
		for k, item := range c.items {
			if now.After(item.exp) {
				delete(c.items, k)
			}
		}
		c.sweepAt = now.Add(sweepInterval)
	}
}

// Delete removes key if present.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// Len reports the number of stored entries, including not-yet-swept expired ones.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
