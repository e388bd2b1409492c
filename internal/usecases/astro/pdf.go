package astro

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/admin/jyotish/vedic-client/internal/domain"
)

const pdfContentType = "application/pdf"

// PDFExport сгенерированный отчёт джанампатри
type PDFExport struct {
	FileName string
	Data     []byte
	// URL ссылка на копию в объектном хранилище, пустая без S3
	URL string
}

// ExportPDF генерирует PDF карты и, если настроено хранилище, архивирует его
func (s *Service) ExportPDF(ctx context.Context, chartID string) (*PDFExport, error) {
	chartID = strings.TrimSpace(chartID)
	chart, err := s.GetBirthChart(ctx, chartID)
	if err != nil {
		return nil, err
	}

	data, err := s.AstroAPIService.GeneratePDF(ctx, chartID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}

	export := &PDFExport{
		FileName: domain.PDFFileName(chart.Name),
		Data:     data,
	}

	if s.S3Client != nil {
		url, err := s.archivePDF(ctx, chartID, export)
		if err != nil {
			s.Log.Warn("failed to archive pdf", "error", err, "chart_id", chartID)
		} else {
			export.URL = url
		}
	}

	s.Log.Info("pdf generated", "chart_id", chartID, "size", len(data), "archived", export.URL != "")
	return export, nil
}

func (s *Service) pdfObjectKey(chartID, fileName string) string {
	return path.Join(s.PDFKeyPrefix, chartID, fileName)
}

func (s *Service) archivePDF(ctx context.Context, chartID string, export *PDFExport) (string, error) {
	key := s.pdfObjectKey(chartID, export.FileName)
	if err := s.S3Client.PutFile(ctx, key, export.Data, pdfContentType); err != nil {
		return "", err
	}

	if s.PDFArchive != nil {
		record := &domain.PDFArchiveRecord{
			ChartID:   chartID,
			ObjectKey: key,
			FileName:  export.FileName,
			SizeBytes: int64(len(export.Data)),
			CreatedAt: s.now().UTC(),
		}
		if err := s.PDFArchive.Save(ctx, record); err != nil {
			return "", fmt.Errorf("failed to record archived pdf: %w", err)
		}
	}

	return s.S3Client.GetPresignedURL(ctx, key, export.FileName, s.PresignTTL)
}

// PDFDownloadURL выдаёт ссылку на ранее заархивированный PDF
func (s *Service) PDFDownloadURL(ctx context.Context, chartID string) (string, error) {
	if s.S3Client == nil || s.PDFArchive == nil {
		return "", fmt.Errorf("pdf archive is not configured: %w", domain.ErrChartNotFound)
	}

	record, err := s.PDFArchive.GetByChartID(ctx, chartID)
	if err != nil {
		return "", err
	}
	return s.S3Client.GetPresignedURL(ctx, record.ObjectKey, record.FileName, s.PresignTTL)
}
