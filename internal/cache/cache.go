package cache

import "sync"

// LRU is a fixed-capacity cache that evicts the least recently used entry
// when a new entry would exceed the capacity.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*node[K, V]
	order    list[K, V]
	onEvict  func(K, V)

	hits   uint64
	misses uint64
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries.
	Capacity int
	// Hits and Misses count lookups since creation or the last Purge.
	Hits   uint64
	Misses uint64
}

// New creates a cache holding at most capacity entries (at least one).
// onEvict, if non-nil, is called with every entry that leaves the cache
// through eviction, replacement or Purge. It runs with the cache
// locked and must not call back into the cache.
func New[K comparable, V any](capacity int, onEvict func(K, V)) *LRU[K, V] {
	return &LRU[K, V]{
		capacity: max(capacity, 1),
		items:    make(map[K]*node[K, V]),
		onEvict:  onEvict,
	}
}

// Get retrieves a value and marks it as recently used.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.moveToFront(n)
	return n.value, true
}

// Add stores a value, replacing (and evicting) any previous value for key.
func (c *LRU[K, V]) Add(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.items[key]; ok {
		old := n.value
		n.value = value
		c.order.moveToFront(n)
		if c.onEvict != nil {
			c.onEvict(key, old)
		}
		return
	}
	c.insert(key, value)
}

// GetOrLoad returns the cached value for key, or calls load and caches its
// result. load runs under the cache lock, so concurrent callers never load
// the same key twice. Errors are returned and not cached.
func (c *LRU[K, V]) GetOrLoad(key K, load func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.items[key]; ok {
		c.hits++
		c.order.moveToFront(n)
		return n.value, nil
	}
	c.misses++

	value, err := load()
	if err != nil {
		var zero V
		return zero, err
	}
	c.insert(key, value)
	return value, nil
}

// Purge evicts every entry, oldest first, and resets the statistics.
func (c *LRU[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for n := c.order.oldest(); n != nil; n = c.order.oldest() {
		c.evict(n)
	}
	c.hits, c.misses = 0, 0
}

// Len returns the number of entries in the cache.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.len
}

// Stats returns cache statistics.
func (c *LRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Len:      c.order.len,
		Capacity: c.capacity,
		Hits:     c.hits,
		Misses:   c.misses,
	}
}

// insert adds a new entry, evicting the oldest ones beyond capacity.
// Caller must hold c.mu.
func (c *LRU[K, V]) insert(key K, value V) {
	n := &node[K, V]{key: key, value: value}
	c.items[key] = n
	c.order.pushFront(n)

	for c.order.len > c.capacity {
		c.evict(c.order.oldest())
	}
}

// evict removes n and reports it to onEvict. Caller must hold c.mu.
func (c *LRU[K, V]) evict(n *node[K, V]) {
	c.order.remove(n)
	delete(c.items, n.key)
	if c.onEvict != nil {
		c.onEvict(n.key, n.value)
	}
}
