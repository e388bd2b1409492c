package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/admin/jyotish/vedic-client/internal/ports/cache"
	"github.com/admin/jyotish/vedic-client/internal/ports/service"
)

// Catalog загружает каталог городов из сервиса расчётов и кэширует его
type Catalog struct {
	astroAPI service.IAstroAPIService
	cache    cache.Cache
	ttl      time.Duration
	log      *slog.Logger
}

func NewCatalog(astroAPI service.IAstroAPIService, c cache.Cache, ttl time.Duration, log *slog.Logger) *Catalog {
	return &Catalog{
		astroAPI: astroAPI,
		cache:    c,
		ttl:      ttl,
		log:      log,
	}
}

// Load возвращает каталог из кэша, при промахе запрашивает сервис
func (c *Catalog) Load(ctx context.Context) ([]string, error) {
	if cities, ok := c.cached(ctx); ok {
		return cities, nil
	}
	return c.Refresh(ctx)
}

// Refresh запрашивает каталог у сервиса и перезаписывает кэш
func (c *Catalog) Refresh(ctx context.Context) ([]string, error) {
	cities, err := c.astroAPI.GetCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load location catalog: %w", err)
	}

	if c.cache != nil {
		raw, err := json.Marshal(cities)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal location catalog: %w", err)
		}
		if err := c.cache.Set(ctx, cache.CitiesKey(), string(raw), c.ttl); err != nil {
			c.log.Warn("failed to cache location catalog", "error", err)
		}
	}

	return cities, nil
}

func (c *Catalog) cached(ctx context.Context) ([]string, bool) {
	if c.cache == nil {
		return nil, false
	}
	raw, err := c.cache.Get(ctx, cache.CitiesKey())
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			c.log.Warn("failed to read location catalog from cache", "error", err)
		}
		return nil, false
	}
	var cities []string
	if err := json.Unmarshal([]byte(raw), &cities); err != nil {
		c.log.Warn("cached location catalog is corrupted", "error", err)
		return nil, false
	}
	return cities, true
}

// Suggest загружает каталог и ищет в нём query
func (c *Catalog) Suggest(ctx context.Context, query string) ([]string, error) {
	cities, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Search(cities, query), nil
}
