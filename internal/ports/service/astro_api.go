package service

import (
	"context"

	"github.com/admin/jyotish/vedic-client/internal/domain"
)

// IAstroAPIService интерфейс внешнего сервиса ведических расчётов
type IAstroAPIService interface {
	GetCities(ctx context.Context) ([]string, error)
	CalculateBirthChart(ctx context.Context, subject domain.BirthSubject) (*domain.ChartResult, error)
	GetBirthChart(ctx context.Context, chartID string) (*domain.ChartResult, error)
	GeneratePDF(ctx context.Context, chartID string) ([]byte, error)
	KundliMatching(ctx context.Context, req domain.MatchingRequest) (*domain.MatchingResult, error)
	DailyHoroscope(ctx context.Context, rashi, date string) (*domain.DailyHoroscope, error)
	Chat(ctx context.Context, message, sessionID string, chartID *string) (string, error)
	ChatHistory(ctx context.Context, sessionID string) ([]domain.ChatHistoryRecord, error)
}
