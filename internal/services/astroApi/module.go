package astroApi

import (
	"context"
	"encoding/json"
	"fmt"

	astroApiAdapter "github.com/admin/jyotish/vedic-client/internal/adapters/secondary/astroApi"
	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/ports/service"
)

// Service реализует IAstroAPIService поверх HTTP-клиента
type Service struct {
	client *astroApiAdapter.Client
}

// New создаёт новый сервис для работы с астро-API
func New(client *astroApiAdapter.Client) service.IAstroAPIService {
	return &Service{
		client: client,
	}
}

func toBirthDetails(s domain.BirthSubject) astroApiAdapter.BirthDetails {
	return astroApiAdapter.BirthDetails{
		Name:         s.Name,
		Gender:       string(s.Gender),
		DateOfBirth:  s.DateOfBirth,
		TimeOfBirth:  s.TimeOfBirth,
		PlaceOfBirth: s.PlaceOfBirth,
	}
}

func (s *Service) GetCities(ctx context.Context) ([]string, error) {
	resp, err := s.client.GetCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cities: %w", err)
	}
	return resp.Cities, nil
}

func (s *Service) CalculateBirthChart(ctx context.Context, subject domain.BirthSubject) (*domain.ChartResult, error) {
	body, err := s.client.CalculateBirthChart(ctx, toBirthDetails(subject))
	if err != nil {
		return nil, fmt.Errorf("failed to calculate birth chart: %w", err)
	}
	return decodeChart(body)
}

func (s *Service) GetBirthChart(ctx context.Context, chartID string) (*domain.ChartResult, error) {
	body, err := s.client.GetBirthChart(ctx, chartID)
	if err != nil {
		if svcErr, ok := domain.AsServiceError(err); ok && svcErr.Status == 404 {
			return nil, fmt.Errorf("chart %s: %w", chartID, domain.ErrChartNotFound)
		}
		return nil, fmt.Errorf("failed to get birth chart: %w", err)
	}
	return decodeChart(body)
}

func decodeChart(body []byte) (*domain.ChartResult, error) {
	var chart domain.ChartResult
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("failed to decode birth chart: %w", err)
	}
	return &chart, nil
}

func (s *Service) GeneratePDF(ctx context.Context, chartID string) ([]byte, error) {
	doc, err := s.client.GeneratePDF(ctx, chartID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}
	return doc, nil
}

func (s *Service) KundliMatching(ctx context.Context, req domain.MatchingRequest) (*domain.MatchingResult, error) {
	resp, err := s.client.KundliMatching(ctx, astroApiAdapter.MatchingRequest{
		Person1: toBirthDetails(req.Person1),
		Person2: toBirthDetails(req.Person2),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to calculate kundli matching: %w", err)
	}
	if len(resp.MatchingResult) == 0 {
		return nil, fmt.Errorf("astro API returned empty matching_result")
	}

	var result domain.MatchingResult
	if err := json.Unmarshal(resp.MatchingResult, &result); err != nil {
		return nil, fmt.Errorf("failed to decode matching result: %w", err)
	}
	return &result, nil
}

func (s *Service) DailyHoroscope(ctx context.Context, rashi, date string) (*domain.DailyHoroscope, error) {
	body, err := s.client.DailyHoroscope(ctx, rashi, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily horoscope: %w", err)
	}
	var horoscope domain.DailyHoroscope
	if err := json.Unmarshal(body, &horoscope); err != nil {
		return nil, fmt.Errorf("failed to decode daily horoscope: %w", err)
	}
	return &horoscope, nil
}

func (s *Service) Chat(ctx context.Context, message, sessionID string, chartID *string) (string, error) {
	resp, err := s.client.Chat(ctx, astroApiAdapter.ChatRequest{
		Message:   message,
		SessionID: sessionID,
		ChartID:   chartID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send chat message: %w", err)
	}
	return resp.Response, nil
}

func (s *Service) ChatHistory(ctx context.Context, sessionID string) ([]domain.ChatHistoryRecord, error) {
	resp, err := s.client.ChatHistory(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat history: %w", err)
	}
	records := make([]domain.ChatHistoryRecord, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		records = append(records, domain.ChatHistoryRecord{
			SessionID:   m.SessionID,
			ChartID:     m.ChartID,
			UserMessage: m.UserMessage,
			AIResponse:  m.AIResponse,
			Timestamp:   m.Timestamp,
		})
	}
	return records, nil
}
