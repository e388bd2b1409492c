package alerter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/admin/jyotish/vedic-client/internal/adapters/secondary/alerter"
	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/ports/service"
)

var errNoClient = errors.New("alerter client is not initialized")

// Service доставляет алерты вебхуков и отказы фоновых задач в чат
type Service struct {
	client *alerter.Client
	log    *slog.Logger
}

func New(client *alerter.Client, log *slog.Logger) service.IAlerterService {
	return &Service{
		client: client,
		log:    log,
	}
}

func (s *Service) SendAlert(ctx context.Context, alert domain.Alert) error {
	if s.client == nil {
		return errNoClient
	}
	if err := s.client.SendAlert(ctx, alert.Text()); err != nil {
		return fmt.Errorf("send alert from %q: %w", alert.Source, err)
	}
	return nil
}

// ReportJobFailure сообщает, что задача исчерпала повторы
func (s *Service) ReportJobFailure(ctx context.Context, failure domain.JobFailure) error {
	if s.client == nil {
		return errNoClient
	}
	if err := s.client.SendAlert(ctx, failure.Text()); err != nil {
		return fmt.Errorf("report failure of job %s: %w", failure.Job, err)
	}
	s.log.Info("job failure reported", "job_name", failure.Job, "attempts", len(failure.Attempts))
	return nil
}
