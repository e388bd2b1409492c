package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/admin/jyotish/vedic-client/internal/ports/jobs"
)

// CatalogSource перезагружает справочник мест из внешнего сервиса
type CatalogSource interface {
	Refresh(ctx context.Context) ([]string, error)
}

// CatalogRefresher периодически обновляет кеш списка городов
type CatalogRefresher struct {
	source   CatalogSource
	interval time.Duration
	log      *slog.Logger
}

func NewCatalogRefresher(source CatalogSource, interval time.Duration, log *slog.Logger) *CatalogRefresher {
	if interval <= 0 {
		interval = 6 * time.Hour
	}
	return &CatalogRefresher{source: source, interval: interval, log: log}
}

func (j *CatalogRefresher) Name() string {
	return "catalog-refresher"
}

// NextRun ставит запуск на ближайшую границу интервала
func (j *CatalogRefresher) NextRun(now time.Time) time.Time {
	return jobs.NextInterval(now, j.interval)
}

func (j *CatalogRefresher) Run(ctx context.Context) error {
	cities, err := j.source.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("refresh catalog: %w", err)
	}
	j.log.Info("places catalog refreshed", "cities", len(cities))
	return nil
}
