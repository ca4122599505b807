package cubislang

import (
	"sync"
	"time"
)

// Cache stores machine translation results keyed by source text and
// locale pair. Implementations must be safe for concurrent use.
type Cache interface {
	Get(text, sourceLocale, targetLocale string) (string, bool)
	Put(text, sourceLocale, targetLocale, translation string)
	Clear()
	Size() int
	CleanupExpired() int
}

type cacheEntry struct {
	translation string
	createdAt   time.Time
}

// MemoryCache is an in-memory Cache with optional TTL expiry and a
// size cap. When full, the oldest entry is evicted.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	maxSize int
}

// NewMemoryCache returns a cache that expires entries after ttl and
// holds at most maxSize entries. A non-positive ttl disables expiry; a
// non-positive maxSize leaves the cache unbounded.
func NewMemoryCache(ttl time.Duration, maxSize int) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

func translationCacheKey(text, src, tgt string) string {
	return src + ":" + tgt + ":" + text
}

func (c *MemoryCache) Get(text, sourceLocale, targetLocale string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := translationCacheKey(text, sourceLocale, targetLocale)
	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.expired(e) {
		delete(c.entries, key)
		return "", false
	}
	return e.translation, true
}

func (c *MemoryCache) Put(text, sourceLocale, targetLocale, translation string) {
	if translation == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	key := translationCacheKey(text, sourceLocale, targetLocale)
	if _, exists := c.entries[key]; !exists && c.maxSize > 0 && len(c.entries) >= c.maxSize {
		c.evictOldest()
	}
	c.entries[key] = cacheEntry{translation: translation, createdAt: time.Now()}
}

func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

func (c *MemoryCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// CleanupExpired removes entries past their TTL and reports how many
// were removed.
func (c *MemoryCache) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for key, e := range c.entries {
		if c.expired(e) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *MemoryCache) expired(e cacheEntry) bool {
	return c.ttl > 0 && time.Since(e.createdAt) > c.ttl
}

func (c *MemoryCache) evictOldest() {
	var oldestKey string
	var oldestAt time.Time
	first := true
	for key, e := range c.entries {
		if first || e.createdAt.Before(oldestAt) {
			oldestKey, oldestAt = key, e.createdAt
			first = false
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}
