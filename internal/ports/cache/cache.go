package cache

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrCacheMiss ключ отсутствует в кэше
var ErrCacheMiss = errors.New("cache: key not found")

// Пространства ключей. Адаптер может добавить свой общий префикс.
const (
	citiesKey          = "places:cities"
	chartsNamespace    = "charts:"
	horoscopeNamespace = "horoscope:"
)

// CitiesKey ключ каталога городов
func CitiesKey() string {
	return citiesKey
}

// ChartKey ключ карты рождения по идентификатору
func ChartKey(chartID string) string {
	return chartsNamespace + chartID
}

// HoroscopeKey ключ гороскопа знака на дату; имя знака не зависит от регистра
func HoroscopeKey(rashi, date string) string {
	return horoscopeNamespace + strings.ToLower(rashi) + ":" + date
}

// Cache строковое хранилище значений с TTL.
//
// Get возвращает ErrCacheMiss, если ключа нет или срок истёк.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Close() error
}
