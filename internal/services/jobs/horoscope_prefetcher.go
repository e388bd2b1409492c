package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/ports/jobs"
)

// HoroscopeSource прогревает кеш гороскопа для одного знака на дату
type HoroscopeSource interface {
	PrefetchHoroscope(ctx context.Context, rashi, date string) error
}

// HoroscopePrefetcher раз в сутки прогревает гороскопы всех 12 знаков
type HoroscopePrefetcher struct {
	source   HoroscopeSource
	hour     int
	location *time.Location
	log      *slog.Logger
}

func NewHoroscopePrefetcher(source HoroscopeSource, hour int, location *time.Location, log *slog.Logger) *HoroscopePrefetcher {
	if location == nil {
		location = time.UTC
	}
	if hour < 0 || hour > 23 {
		hour = 0
	}
	return &HoroscopePrefetcher{source: source, hour: hour, location: location, log: log}
}

func (j *HoroscopePrefetcher) Name() string {
	return "horoscope-prefetcher"
}

// NextRun вычисляет следующее время запуска в заданный час по локальному времени
func (j *HoroscopePrefetcher) NextRun(now time.Time) time.Time {
	return jobs.NextDailyAt(now, j.hour, j.location)
}

// Run прогревает все знаки; ошибки отдельных знаков собираются, остальные знаки не прерываются
func (j *HoroscopePrefetcher) Run(ctx context.Context) error {
	date := time.Now().In(j.location).Format(domain.HoroscopeDateLayout)

	var errs []error
	for _, rashi := range domain.Rashis {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := j.source.PrefetchHoroscope(ctx, rashi, date); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", rashi, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("prefetch horoscopes (%d/%d failed): %w", len(errs), len(domain.Rashis), errors.Join(errs...))
	}
	j.log.Info("daily horoscopes prefetched", "date", date)
	return nil
}
