package domain

import (
	"regexp"
	"strings"
	"time"
)

const pdfFilePrefix = "janampatri_"

var unsafeFileChars = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_-]+`)

// PDFFileName имя файла отчёта по имени субъекта: "Asha Rao" -> "janampatri_Asha_Rao.pdf"
func PDFFileName(name string) string {
	clean := unsafeFileChars.ReplaceAllString(strings.TrimSpace(name), "_")
	clean = strings.Trim(clean, "_")
	if clean == "" {
		clean = "chart"
	}
	return pdfFilePrefix + clean + ".pdf"
}

// PDFArchiveRecord сведения об отчёте, сохранённом в объектном хранилище
type PDFArchiveRecord struct {
	ChartID   string    `db:"chart_id"`
	ObjectKey string    `db:"object_key"`
	FileName  string    `db:"file_name"`
	SizeBytes int64     `db:"size_bytes"`
	CreatedAt time.Time `db:"created_at"`
}
