package astro

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/ports/cache"
)

// normalizeHoroscopeArgs проверяет знак и дату; пустая дата означает сегодня по UTC
func (s *Service) normalizeHoroscopeArgs(rashi, date string) (string, string, error) {
	name, ok := canonicalRashi(rashi)
	if !ok {
		return "", "", fmt.Errorf("%q: %w", rashi, domain.ErrUnknownRashi)
	}

	date = strings.TrimSpace(date)
	if date == "" {
		return name, s.now().UTC().Format(domain.HoroscopeDateLayout), nil
	}
	if _, err := time.Parse(domain.HoroscopeDateLayout, date); err != nil {
		return "", "", fmt.Errorf("%q: %w", date, domain.ErrInvalidDate)
	}
	return name, date, nil
}

func canonicalRashi(rashi string) (string, bool) {
	num, ok := domain.RashiNumber(strings.TrimSpace(rashi))
	if !ok {
		return "", false
	}
	name, _, _ := domain.RashiName(num)
	return name, true
}

// DailyHoroscope возвращает гороскоп знака на дату, используя кеш
func (s *Service) DailyHoroscope(ctx context.Context, rashi, date string) (*domain.DailyHoroscope, error) {
	rashi, date, err := s.normalizeHoroscopeArgs(rashi, date)
	if err != nil {
		return nil, err
	}

	slot := s.beginSlot(ctx, ViewHoroscope)
	defer s.finishSlot(slot)

	var cached domain.DailyHoroscope
	if s.cacheGet(ctx, cache.HoroscopeKey(rashi, date), &cached) {
		return &cached, nil
	}

	horoscope, err := s.fetchHoroscope(ctx, rashi, date)
	if err != nil {
		return nil, err
	}

	if err := s.applyIfLatest(slot); err != nil {
		return nil, err
	}
	return horoscope, nil
}

// PrefetchHoroscope прогревает кеш гороскопа без проверки слота
func (s *Service) PrefetchHoroscope(ctx context.Context, rashi, date string) error {
	rashi, date, err := s.normalizeHoroscopeArgs(rashi, date)
	if err != nil {
		return err
	}
	_, err = s.fetchHoroscope(ctx, rashi, date)
	return err
}

func (s *Service) fetchHoroscope(ctx context.Context, rashi, date string) (*domain.DailyHoroscope, error) {
	horoscope, err := s.AstroAPIService.DailyHoroscope(ctx, rashi, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily horoscope: %w", err)
	}
	s.cacheSet(ctx, cache.HoroscopeKey(rashi, date), horoscope, s.HoroscopeTTL)
	return horoscope, nil
}
