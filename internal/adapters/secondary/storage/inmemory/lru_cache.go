package inmemory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/admin/jyotish/vedic-client/internal/ports/cache"
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultLRUSize = 512

type entry struct {
	value     string
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// LRUCache локальная реализация cache.Cache, используется без Redis
type LRUCache struct {
	mu    sync.Mutex
	items *lru.Cache[string, entry]
	now   func() time.Time
}

func NewLRUCache(size int) (cache.Cache, error) {
	return newLRUCache(size, time.Now)
}

func newLRUCache(size int, now func() time.Time) (*LRUCache, error) {
	if size <= 0 {
		size = defaultLRUSize
	}
	items, err := lru.New[string, entry](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru cache: %w", err)
	}
	return &LRUCache{items: items, now: now}, nil
}

func (c *LRUCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.items.Get(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", cache.ErrCacheMiss, key)
	}
	if e.expired(c.now()) {
		c.items.Remove(key)
		return "", fmt.Errorf("%w: %s", cache.ErrCacheMiss, key)
	}
	return e.value, nil
}

// Set сохраняет значение; ttl <= 0 означает хранение без срока
func (c *LRUCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items.Add(key, e)
	return nil
}

func (c *LRUCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items.Remove(key)
	return nil
}

func (c *LRUCache) Exists(ctx context.Context, key string) (bool, error) {
	_, err := c.Get(ctx, key)
	return err == nil, nil
}

func (c *LRUCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items.Purge()
	return nil
}
