package kafka

import (
	"context"

	"github.com/admin/jyotish/vedic-client/internal/domain"
)

// IEventPublisher публикует события отчётов в Kafka
type IEventPublisher interface {
	PublishEvent(ctx context.Context, event domain.ReportEvent) error
	Close() error
}
