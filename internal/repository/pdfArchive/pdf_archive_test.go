package pdfArchiveRepo

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/logger"
)

type fakeDB struct {
	query  string
	args   []any
	stored *domain.PDFArchiveRecord
	err    error
}

func (f *fakeDB) Get(_ context.Context, dest any, query string, args ...any) error {
	f.query, f.args = query, args
	if f.err != nil {
		return f.err
	}
	*dest.(*domain.PDFArchiveRecord) = *f.stored
	return nil
}

func (f *fakeDB) Select(context.Context, any, string, ...any) error { return nil }

func (f *fakeDB) Exec(_ context.Context, query string, args ...any) error {
	f.query, f.args = query, args
	return f.err
}

func (f *fakeDB) ExecWithResult(context.Context, string, ...any) (int64, error) { return 0, nil }

func TestSaveUpsertsByChartID(t *testing.T) {
	db := &fakeDB{}
	repo := New(db, logger.Nop())
	created := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	err := repo.Save(context.Background(), &domain.PDFArchiveRecord{
		ChartID:   "c1",
		ObjectKey: "reports/c1/janampatri_Asha.pdf",
		FileName:  "janampatri_Asha.pdf",
		SizeBytes: 2048,
		CreatedAt: created,
	})
	require.NoError(t, err)

	assert.Contains(t, db.query, "INSERT INTO pdf_archive (chart_id, object_key, file_name, size_bytes, created_at)")
	assert.Contains(t, db.query, "ON CONFLICT (chart_id) DO UPDATE")
	assert.Equal(t, []any{"c1", "reports/c1/janampatri_Asha.pdf", "janampatri_Asha.pdf", int64(2048), created}, db.args)
}

func TestSaveWrapsDatabaseError(t *testing.T) {
	repo := New(&fakeDB{err: errors.New("connection reset")}, logger.Nop())

	err := repo.Save(context.Background(), &domain.PDFArchiveRecord{ChartID: "c1"})
	assert.ErrorContains(t, err, "failed to save pdf archive record")
}

func TestGetByChartID(t *testing.T) {
	db := &fakeDB{stored: &domain.PDFArchiveRecord{ChartID: "c1", FileName: "janampatri_Asha.pdf"}}
	repo := New(db, logger.Nop())

	record, err := repo.GetByChartID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "janampatri_Asha.pdf", record.FileName)
	assert.Equal(t, []any{"c1"}, db.args)
	assert.Contains(t, db.query, "WHERE chart_id = $1")
}

func TestGetByChartIDMissingRecord(t *testing.T) {
	repo := New(&fakeDB{err: sql.ErrNoRows}, logger.Nop())

	_, err := repo.GetByChartID(context.Background(), "c404")
	assert.ErrorIs(t, err, domain.ErrChartNotFound)
}
