package astro

import (
	"context"

	"github.com/google/uuid"

	"github.com/admin/jyotish/vedic-client/internal/domain"
)

// publish отправляет событие отчёта; сбой публикации не влияет на результат
func (s *Service) publish(ctx context.Context, eventType domain.EventType, objectID string, attrs map[string]string) {
	if s.Events == nil {
		return
	}

	event := domain.ReportEvent{
		ID:         uuid.New(),
		Type:       eventType,
		ObjectID:   objectID,
		Attributes: attrs,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.Events.PublishEvent(ctx, event); err != nil && !domain.IsBusinessError(err) {
		s.Log.Warn("failed to publish report event",
			"error", err,
			"event_type", eventType,
			"object_id", objectID,
		)
	}
}
