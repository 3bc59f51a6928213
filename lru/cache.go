package lru

import (
	"cmp"
	"errors"
	"fmt"
	"iter"

	"github.com/npillmayer/ordered/order"
	"github.com/npillmayer/ordered/rbtree"
)

// ErrInvalidConfig signals an unusable cache configuration.
var ErrInvalidConfig = errors.New("lru: invalid configuration")

// Config configures a cache.
type Config struct {
	// Capacity is the maximum number of entries. It must be positive.
	Capacity int
}

func (cfg Config) validate() error {
	if cfg.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, is %d", ErrInvalidConfig, cfg.Capacity)
	}
	return nil
}

// Stats is a snapshot of cache usage.
type Stats struct {
	Hits     uint64
	Misses   uint64
	Capacity int
	Count    int
}

func (s Stats) String() string {
	return fmt.Sprintf("hits=%d misses=%d count=%d/%d", s.Hits, s.Misses, s.Count, s.Capacity)
}

// Cache maps keys to values, holding at most Capacity entries. When full,
// inserting a new key evicts the least recently used entry.
type Cache[K, V any] struct {
	tree     *rbtree.Tree[K, entry[V]]
	list     recency
	capacity int
	hits     uint64
	misses   uint64
}

// New creates a cache ordering its keys by policy. The policy must not admit
// duplicate keys.
func New[K, V any](policy order.Policy[K], cfg Config) (*Cache[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if policy != nil && policy.Multi() {
		return nil, fmt.Errorf("%w: cache keys must be unique", ErrInvalidConfig)
	}
	tree, err := rbtree.New[K, entry[V]](rbtree.Config[K]{
		Policy:       policy,
		CapacityHint: cfg.Capacity,
	})
	if err != nil {
		return nil, err
	}
	return &Cache[K, V]{tree: tree, capacity: cfg.Capacity}, nil
}

// NewOrdered creates a cache for keys with a natural order.
func NewOrdered[K cmp.Ordered, V any](capacity int) (*Cache[K, V], error) {
	return New[K, V](order.Natural[K]{}, Config{Capacity: capacity})
}

func (c *Cache[K, V]) link(s rbtree.Slot) (prev, next *rbtree.Slot) {
	e := c.tree.ValueRef(s)
	return &e.prev, &e.next
}

// Get returns the value cached for key and marks the entry as most recently
// used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	s := c.tree.Find(key)
	if s == c.tree.End() {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.list.moveToFront(c, s)
	return c.tree.Value(s).value, true
}

// Peek returns the value cached for key without touching its recency or the
// statistics.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	if s := c.tree.Find(key); s != c.tree.End() {
		return c.tree.Value(s).value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is cached, without touching its recency.
func (c *Cache[K, V]) Contains(key K) bool {
	return c.tree.Contains(key)
}

// Put caches value for key as the most recently used entry. If the cache is
// full and key is new, the least recently used entry is evicted first.
func (c *Cache[K, V]) Put(key K, value V) {
	parent, side, found := c.tree.FindEqual(key)
	if found != rbtree.Null {
		c.tree.ValueRef(found).value = value
		c.list.moveToFront(c, found)
		return
	}
	if c.tree.Len() >= c.capacity {
		c.evict()
		// eviction may have rebalanced the tree
		parent, side, _ = c.tree.FindEqual(key)
	}
	s := c.tree.InsertAt(parent, side, key, entry[V]{value: value})
	c.list.pushFront(c, s)
}

// Memoize returns the value cached for key. On a miss it calls compute,
// caches the result and returns it.
func (c *Cache[K, V]) Memoize(key K, compute func(K) V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := compute(key)
	c.Put(key, v)
	return v
}

// Remove drops the entry for key and reports whether it was present.
func (c *Cache[K, V]) Remove(key K) bool {
	s := c.tree.Find(key)
	if s == c.tree.End() {
		return false
	}
	c.list.remove(c, s)
	c.tree.Erase(s)
	return true
}

// evict drops the least recently used entry.
func (c *Cache[K, V]) evict() {
	victim := c.list.tail
	if victim == rbtree.Null {
		return
	}
	tracer().Debugf("lru: evicting %v", c.tree.Key(victim))
	c.list.remove(c, victim)
	c.tree.Erase(victim)
}

// Resize changes the capacity, evicting least recently used entries if the
// cache holds more than capacity entries.
func (c *Cache[K, V]) Resize(capacity int) error {
	if err := (Config{Capacity: capacity}).validate(); err != nil {
		return err
	}
	for c.tree.Len() > capacity {
		c.evict()
	}
	c.capacity = capacity
	return nil
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return c.tree.Len()
}

// Capacity returns the maximum number of entries.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns hit and miss counters and the fill level.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Hits:     c.hits,
		Misses:   c.misses,
		Capacity: c.capacity,
		Count:    c.tree.Len(),
	}
}

// Clear drops all entries. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	c.tree.Clear()
	c.list.reset()
}

// Keys iterates over the cached keys from most to least recently used,
// without touching recency.
func (c *Cache[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for s := c.list.head; s != rbtree.Null; s = c.tree.Value(s).next {
			if !yield(c.tree.Key(s)) {
				return
			}
		}
	}
}

// Ordered iterates over the cached entries in key order, without touching
// recency.
func (c *Cache[K, V]) Ordered() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, e := range c.tree.All() {
			if !yield(k, e.value) {
				return
			}
		}
	}
}

// Check validates the tree and the recency list.
func (c *Cache[K, V]) Check() error {
	if err := c.tree.Check(); err != nil {
		return err
	}
	n := 0
	prev := rbtree.Null
	for s := c.list.head; s != rbtree.Null; s = c.tree.Value(s).next {
		if c.tree.Value(s).prev != prev {
			return fmt.Errorf("lru: broken back link at %v", s)
		}
		prev = s
		n++
		if n > c.tree.Len() {
			return fmt.Errorf("lru: recency list is cyclic")
		}
	}
	if prev != c.list.tail {
		return fmt.Errorf("lru: tail is %v, list ends at %v", c.list.tail, prev)
	}
	if n != c.tree.Len() {
		return fmt.Errorf("lru: recency list has %d entries, tree %d", n, c.tree.Len())
	}
	return nil
}
