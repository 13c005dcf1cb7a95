/*
Package cache memoizes ranked match results per query.

Entries are keyed by (query, strategy, vocabulary selector) so a result
computed under one vocabulary or strategy never answers for another.
Eviction is strict FIFO: at capacity the oldest-inserted entry goes,
regardless of how recently it was read.
*/
package cache

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/spellserve/spellserve/pkg/vocab"
)

// DefaultCapacity bounds the cache to keep memory flat during long
// sessions.
const DefaultCapacity = 200

// Key identifies one cached result list.
type Key struct {
	Query      string
	Strategy   string
	Vocabulary string
}

// Cache is a bounded FIFO result cache. Stored result lists are treated
// as immutable: callers must not modify a list after Put or what Get
// returns.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[Key]vocab.Vocabulary
	order    []Key
}

// New creates a cache. Non-positive capacities fall back to
// DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[Key]vocab.Vocabulary, capacity),
	}
}

// Get returns the cached result for key, if present.
func (c *Cache) Get(key Key) (vocab.Vocabulary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	return value, ok
}

// Put inserts a result. At capacity the oldest-inserted key is evicted
// first; reads never refresh an entry's position. Re-putting an
// existing key replaces its value without touching insertion order.
func (c *Cache) Put(key Key, value vocab.Vocabulary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = value
		return
	}
	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
		log.Debugf("Evicted cached query %q", oldest.Query)
	}
	c.entries[key] = value
	c.order = append(c.order, key)
}

// Clear empties the cache. Called whenever the vocabulary selection
// changes, since results computed under the old vocabulary are invalid.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]vocab.Vocabulary, c.capacity)
	c.order = c.order[:0]
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
