package cache

import (
	"context"
	"sync"
	"time"

	"github.com/packlens/backend/internal/domain"
)

const defaultCleanupInterval = 10 * time.Minute

// cacheItem represents a single item in the cache with expiration
type cacheItem struct {
	Value      domain.Classification
	Expiration time.Time
}

// MemoryCache is a thread-safe in-memory cache of classification results with TTL support
type MemoryCache struct {
	data       map[string]cacheItem
	mutex      sync.RWMutex
	maxEntries int
	now        func() time.Time
	stop       chan struct{}
	stopOnce   sync.Once
}

// NewMemoryCache creates a new in-memory cache. maxEntries <= 0 means unbounded.
func NewMemoryCache(maxEntries int) *MemoryCache {
	return newMemoryCache(maxEntries, defaultCleanupInterval)
}

func newMemoryCache(maxEntries int, cleanupInterval time.Duration) *MemoryCache {
	cache := &MemoryCache{
		data:       make(map[string]cacheItem),
		maxEntries: maxEntries,
		now:        time.Now,
		stop:       make(chan struct{}),
	}

	// Remove expired entries periodically until Close
	go cache.cleanupExpired(cleanupInterval)

	return cache
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) (*domain.Classification, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists || c.now().After(item.Expiration) {
		return nil, domain.ErrCacheMiss
	}

	value := item.Value
	return &value, nil
}

// Set stores a copy of value in the cache with TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value *domain.Classification, ttl time.Duration) error {
	if value == nil {
		return domain.ErrInvalidRequest
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, exists := c.data[key]; !exists && c.maxEntries > 0 && len(c.data) >= c.maxEntries {
		c.evictLocked()
	}

	c.data[key] = cacheItem{
		Value:      *value,
		Expiration: c.now().Add(ttl),
	}

	return nil
}

// evictLocked drops expired entries, or one arbitrary entry when none have expired
func (c *MemoryCache) evictLocked() {
	now := c.now()
	removed := false
	for key, item := range c.data {
		if now.After(item.Expiration) {
			delete(c.data, key)
			removed = true
		}
	}
	if removed {
		return
	}
	for key := range c.data {
		delete(c.data, key)
		return
	}
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// Exists checks if a key exists in the cache and is not expired
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return false, nil
	}

	return !c.now().After(item.Expiration), nil
}

// cleanupExpired removes expired entries on every tick
func (c *MemoryCache) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

func (c *MemoryCache) removeExpired() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := c.now()
	for key, item := range c.data {
		if now.After(item.Expiration) {
			delete(c.data, key)
		}
	}
}

// Size returns the current number of items in the cache (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all items from the cache
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]cacheItem)
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (c *MemoryCache) Close() error {
	c.stopOnce.Do(func() { close(c.stop) })
	return nil
}
