package service

import (
	"context"

	"github.com/admin/jyotish/vedic-client/internal/domain"
)

// IAlerterService доставка алертов дежурным
type IAlerterService interface {
	SendAlert(ctx context.Context, alert domain.Alert) error
	ReportJobFailure(ctx context.Context, failure domain.JobFailure) error
}
