package repository

import (
	"context"

	"github.com/admin/jyotish/vedic-client/internal/domain"
)

// IPDFArchiveRepo учёт PDF-отчётов, сохранённых в объектном хранилище
type IPDFArchiveRepo interface {
	Save(ctx context.Context, record *domain.PDFArchiveRecord) error
	GetByChartID(ctx context.Context, chartID string) (*domain.PDFArchiveRecord, error)
}
