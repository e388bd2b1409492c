package astro

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/admin/jyotish/vedic-client/internal/ports/cache"
)

// cacheGet читает JSON-значение из кеша; false при промахе или недоступном кеше
func (s *Service) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.Cache == nil {
		return false
	}

	raw, err := s.Cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.Log.Warn("failed to read cache", "error", err, "cache_key", key)
		}
		return false
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.Log.Warn("failed to decode cached value", "error", err, "cache_key", key)
		return false
	}
	return true
}

// cacheSet пишет значение в кеш; ошибки кеша не прерывают запрос
func (s *Service) cacheSet(ctx context.Context, key string, value any, ttl time.Duration) {
	if s.Cache == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		s.Log.Warn("failed to encode value for cache", "error", err, "cache_key", key)
		return
	}

	if err := s.Cache.Set(ctx, key, string(raw), ttl); err != nil {
		s.Log.Warn("failed to write cache", "error", err, "cache_key", key)
		return
	}
	s.Log.Debug("value cached", "cache_key", key, "ttl", ttl)
}
