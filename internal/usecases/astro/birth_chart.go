package astro

import (
	"context"
	"fmt"
	"strings"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/ports/cache"
)

// CalculateBirthChart проверяет форму и запрашивает расчёт карты.
// Ответ, пришедший после сброса слота или более нового запроса, отбрасывается.
func (s *Service) CalculateBirthChart(ctx context.Context, subject domain.BirthSubject) (*domain.ChartResult, error) {
	subject = subject.Normalized()
	if err := s.Validator.Validate(subject); err != nil {
		return nil, err
	}

	slot := s.beginSlot(ctx, ViewBirthChart)
	defer s.finishSlot(slot)

	chart, err := s.AstroAPIService.CalculateBirthChart(ctx, subject)
	if err != nil {
		s.Log.Warn("birth chart calculation failed",
			"error", err,
			"place_of_birth", subject.PlaceOfBirth,
		)
		return nil, fmt.Errorf("failed to calculate birth chart: %w", err)
	}

	if err := s.applyIfLatest(slot); err != nil {
		return nil, err
	}

	if chart.ID != "" {
		s.cacheSet(ctx, cache.ChartKey(chart.ID), chart, s.ChartTTL)
	}
	s.publish(ctx, domain.EventChartComputed, chart.ID, map[string]string{
		"place_of_birth": subject.PlaceOfBirth,
		"lagna":          chart.Lagna.Rashi,
		"moon_rashi":     chart.MoonRashi,
	})

	s.Log.Info("birth chart calculated",
		"chart_id", chart.ID,
		"planets", chart.Planets.Len(),
		"houses", len(chart.Houses),
	)
	return chart, nil
}

// GetBirthChart возвращает сохранённую карту по id
func (s *Service) GetBirthChart(ctx context.Context, chartID string) (*domain.ChartResult, error) {
	chartID = strings.TrimSpace(chartID)
	if chartID == "" {
		return nil, domain.ErrChartNotFound
	}

	var cached domain.ChartResult
	if s.cacheGet(ctx, cache.ChartKey(chartID), &cached) {
		return &cached, nil
	}

	chart, err := s.AstroAPIService.GetBirthChart(ctx, chartID)
	if err != nil {
		return nil, fmt.Errorf("failed to get birth chart: %w", err)
	}

	s.cacheSet(ctx, cache.ChartKey(chartID), chart, s.ChartTTL)
	return chart, nil
}
