package users

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/simplelru"

	"github.com/carelink/vitals/config"
)

type cacheEntry struct {
	user   User
	expiry time.Time
}

func (c cacheEntry) IsExpired() bool {
	return time.Now().After(c.expiry)
}

// CachingDirectory keeps successful resolutions in memory. Users are never
// deleted, so a cached entry can only become stale if it is recreated out of band,
// which is bounded by the expiration.
type CachingDirectory struct {
	delegate   Directory
	expiration time.Duration
	lru        *simplelru.LRU
	mu         *sync.Mutex
}

var _ Directory = &CachingDirectory{}

func NewCachingDirectory(size int, expiration time.Duration, delegate Directory) (*CachingDirectory, error) {
	var onEvict simplelru.EvictCallback
	lru, err := simplelru.NewLRU(size, onEvict)
	if err != nil {
		return nil, err
	}

	return &CachingDirectory{
		delegate:   delegate,
		expiration: expiration,
		lru:        lru,
		mu:         &sync.Mutex{},
	}, nil
}

func NewDirectory(cfg *config.Config, repo Repository) (Directory, error) {
	if cfg.UserCacheSize <= 0 {
		return repo, nil
	}
	directory, err := NewCachingDirectory(cfg.UserCacheSize, cfg.UserCacheTTL, repo)
	if err != nil {
		return nil, err
	}
	return directory, nil
}

func (c *CachingDirectory) Resolve(ctx context.Context, userId string) (*User, error) {
	if entry := c.getCachedEntry(userId); entry != nil {
		user := entry.user
		return &user, nil
	}

	user, err := c.delegate.Resolve(ctx, userId)
	if err != nil {
		return nil, err
	}

	c.setCacheEntry(userId, cacheEntry{
		user:   *user,
		expiry: time.Now().Add(c.expiration),
	})

	return user, nil
}

func (c *CachingDirectory) getCachedEntry(userId string) *cacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.lru.Get(userId); ok {
		entry := e.(cacheEntry)
		if entry.IsExpired() {
			c.lru.Remove(userId)
			return nil
		}
		return &entry
	}

	return nil
}

func (c *CachingDirectory) setCacheEntry(userId string, entry cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.lru.Add(userId, entry)
}
