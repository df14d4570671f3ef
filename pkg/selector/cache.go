package selector

import (
	"container/list"
	"regexp"
	"sync"
)

// DefaultCacheSize is the capacity used when none is configured.
const DefaultCacheSize = 256

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Size      int
	Capacity  int
}

// RegexCache is a fixed-capacity LRU of compiled regular expressions keyed by
// their source text. It is safe for concurrent use. A nil cache or one with
// capacity <= 0 never stores anything.
type RegexCache struct {
	// mu guards every field; Get reorders the list so a read lock is not enough
	mu sync.Mutex

	capacity int
	order    *list.List
	entries  map[string]*list.Element

	hits      uint64
	misses    uint64
	evictions uint64
}

type cacheEntry struct {
	source string
	re     *regexp.Regexp
}

// NewRegexCache creates a cache holding at most capacity entries.
func NewRegexCache(capacity int) *RegexCache {
	return &RegexCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element),
	}
}

// Get returns the compiled regex for source, marking it most recently used.
func (c *RegexCache) Get(source string) (*regexp.Regexp, bool) {
	if c == nil || c.capacity <= 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[source]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).re, true
}

// Add stores a compiled regex, evicting the least recently used entry when full.
func (c *RegexCache) Add(source string, re *regexp.Regexp) {
	if c == nil || c.capacity <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[source]; ok {
		c.order.MoveToFront(elem)
		return
	}

	for c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).source)
		c.evictions++
	}

	c.entries[source] = c.order.PushFront(&cacheEntry{source: source, re: re})
}

// GetOrCompile returns the cached regex for source or compiles and stores it.
// Compilation errors are not cached.
func (c *RegexCache) GetOrCompile(source string) (*regexp.Regexp, error) {
	if re, ok := c.Get(source); ok {
		return re, nil
	}
	re, err := regexp.Compile(source)
	if err != nil {
		return nil, err
	}
	c.Add(source, re)
	return re, nil
}

// Contains reports whether source is cached without touching LRU order.
func (c *RegexCache) Contains(source string) bool {
	if c == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[source]
	return ok
}

// Len returns the number of cached entries.
func (c *RegexCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Purge removes every entry and resets the counters.
func (c *RegexCache) Purge() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.entries = make(map[string]*list.Element)
	c.hits, c.misses, c.evictions = 0, 0, 0
}

// Stats returns a snapshot of the cache counters.
func (c *RegexCache) Stats() CacheStats {
	if c == nil {
		return CacheStats{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      c.order.Len(),
		Capacity:  c.capacity,
	}
}
