package pdfArchiveRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/ports/persistence"
	ports "github.com/admin/jyotish/vedic-client/internal/ports/repository"
)

type archiveColumns struct {
	TableName string
	ChartID   string
	ObjectKey string
	FileName  string
	SizeBytes string
	CreatedAt string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns archiveColumns
}

func New(db persistence.Persistence, log *slog.Logger) ports.IPDFArchiveRepo {
	return &Repository{
		db:  db,
		Log: log,
		columns: archiveColumns{
			TableName: "pdf_archive",
			ChartID:   "chart_id",
			ObjectKey: "object_key",
			FileName:  "file_name",
			SizeBytes: "size_bytes",
			CreatedAt: "created_at",
		},
	}
}

func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s",
		r.columns.ChartID,
		r.columns.ObjectKey,
		r.columns.FileName,
		r.columns.SizeBytes,
		r.columns.CreatedAt)
}

// Save сохраняет или обновляет запись об отчёте
func (r *Repository) Save(ctx context.Context, record *domain.PDFArchiveRecord) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s`,
		r.columns.TableName,
		r.allColumns(),
		r.columns.ChartID,
		r.columns.ObjectKey, r.columns.ObjectKey,
		r.columns.FileName, r.columns.FileName,
		r.columns.SizeBytes, r.columns.SizeBytes,
		r.columns.CreatedAt, r.columns.CreatedAt)
	err := r.db.Exec(ctx, query,
		record.ChartID,
		record.ObjectKey,
		record.FileName,
		record.SizeBytes,
		record.CreatedAt)
	if err != nil {
		r.Log.Error("failed to save pdf archive record",
			"error", err,
			"chart_id", record.ChartID)
		return fmt.Errorf("failed to save pdf archive record: %w", err)
	}
	return nil
}

// GetByChartID возвращает запись об отчёте или domain.ErrChartNotFound
func (r *Repository) GetByChartID(ctx context.Context, chartID string) (*domain.PDFArchiveRecord, error) {
	var record domain.PDFArchiveRecord
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ChartID)
	if err := r.db.Get(ctx, &record, query, chartID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("pdf archive for chart %s: %w", chartID, domain.ErrChartNotFound)
		}
		r.Log.Error("failed to get pdf archive record",
			"error", err,
			"chart_id", chartID)
		return nil, fmt.Errorf("failed to get pdf archive record: %w", err)
	}
	return &record, nil
}
