package user

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// CacheConfig sizes the user lookup cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// cachedUserEntry wraps a user with version metadata for cache invalidation
type cachedUserEntry struct {
	Version  string
	User     *domain.User
	CachedAt time.Time
}

// userCache provides an in-memory LRU cache for user lookups
// with time-based expiration and version-based invalidation to prevent stale data.
type userCache struct {
	lru    *expirable.LRU[int, *cachedUserEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

// newUserCache creates a new user cache. Zero values fall back to the defaults.
func newUserCache(cfg CacheConfig) *userCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	return &userCache{
		lru: expirable.NewLRU[int, *cachedUserEntry](cfg.Size, nil, cfg.TTL),
	}
}

// Get retrieves a user from the cache.
// Returns (nil, false) if not in cache, expired, or version mismatch.
func (c *userCache) Get(id int) (*domain.User, bool) {
	entry, found := c.lru.Get(id)
	if !found {
		c.misses.Add(1)
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		c.misses.Add(1)
		return nil, false
	}

	c.hits.Add(1)
	return entry.User, true
}

// Set stores a user in the cache with current schema version.
func (c *userCache) Set(user *domain.User) {
	c.lru.Add(user.ID, &cachedUserEntry{
		Version:  CacheSchemaVersion,
		User:     user,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a user from the cache.
func (c *userCache) Invalidate(id int) {
	c.lru.Remove(id)
}

// GetStats returns hit/miss counters and the current size
func (c *userCache) GetStats() domain.CacheStats {
	return domain.CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
