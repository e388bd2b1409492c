package jobs

import (
	"context"
	"time"
)

// Job фоновая задача планировщика: обновление каталога городов, прогрев гороскопов
type Job interface {
	// Name используется в логах и алертах
	Name() string
	// NextRun момент следующего запуска, строго после now
	NextRun(now time.Time) time.Time
	Run(ctx context.Context) error
}

// NextInterval ближайшая граница интервала после now
func NextInterval(now time.Time, interval time.Duration) time.Time {
	next := now.Truncate(interval).Add(interval)
	if !next.After(now) {
		next = next.Add(interval)
	}
	return next
}

// NextDailyAt ближайшее наступление часа hour в зоне loc после now
func NextDailyAt(now time.Time, hour int, loc *time.Location) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
