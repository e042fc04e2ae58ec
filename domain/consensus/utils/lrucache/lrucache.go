package lrucache

import (
	"sync"

	"github.com/cryptix-network/cryptixd/domain/consensus/model/externalapi"
)

// LRUCache is a bounded cache for any type that's able to be indexed by
// DomainHash. When the cache is full an arbitrary entry is evicted.
// It is safe for concurrent use.
type LRUCache[V any] struct {
	lock     sync.Mutex
	cache    map[externalapi.DomainHash]V
	capacity int
}

// New creates a new LRUCache
func New[V any](capacity int, preallocate bool) *LRUCache[V] {
	var cache map[externalapi.DomainHash]V
	if preallocate {
		cache = make(map[externalapi.DomainHash]V, capacity+1)
	} else {
		cache = make(map[externalapi.DomainHash]V)
	}
	return &LRUCache[V]{
		cache:    cache,
		capacity: capacity,
	}
}

// Add adds an entry to the LRUCache
func (c *LRUCache[V]) Add(key *externalapi.DomainHash, value V) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.cache[*key] = value

	if len(c.cache) > c.capacity {
		c.evictRandom(key)
	}
}

// Get returns the entry for the given key, or (zero value, false) otherwise
func (c *LRUCache[V]) Get(key *externalapi.DomainHash) (V, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	value, ok := c.cache[*key]
	return value, ok
}

// Has returns whether the LRUCache contains the given key
func (c *LRUCache[V]) Has(key *externalapi.DomainHash) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	_, ok := c.cache[*key]
	return ok
}

// Remove removes the entry for the the given key. Does nothing if
// the entry does not exist
func (c *LRUCache[V]) Remove(key *externalapi.DomainHash) {
	c.lock.Lock()
	defer c.lock.Unlock()
	delete(c.cache, *key)
}

// Len returns the number of entries currently in the cache
func (c *LRUCache[V]) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return len(c.cache)
}

// evictRandom removes an arbitrary entry other than keep.
func (c *LRUCache[V]) evictRandom(keep *externalapi.DomainHash) {
	for key := range c.cache {
		if key == *keep {
			continue
		}
		delete(c.cache, key)
		return
	}
}
