package astro

import (
	"context"
	"fmt"

	"github.com/admin/jyotish/vedic-client/internal/domain"
)

// KundliMatching проверяет обе формы и запрашивает Гун Милан
func (s *Service) KundliMatching(ctx context.Context, req domain.MatchingRequest) (*domain.MatchingResult, error) {
	req = domain.MatchingRequest{
		Person1: req.Person1.Normalized(),
		Person2: req.Person2.Normalized(),
	}
	if err := s.Validator.Validate(req); err != nil {
		return nil, err
	}

	slot := s.beginSlot(ctx, ViewMatching)
	defer s.finishSlot(slot)

	result, err := s.AstroAPIService.KundliMatching(ctx, req)
	if err != nil {
		s.Log.Warn("kundli matching failed", "error", err)
		return nil, fmt.Errorf("failed to calculate kundli matching: %w", err)
	}

	if err := s.applyIfLatest(slot); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.EventMatchingComputed, slot.requestID.String(), map[string]string{
		"total_score": fmt.Sprint(result.TotalScore),
		"percentage":  fmt.Sprint(result.Percentage),
	})

	s.Log.Info("kundli matching calculated",
		"total_score", result.TotalScore,
		"kootas", len(result.Kootas),
		"doshas", len(result.Doshas),
	)
	return result, nil
}
