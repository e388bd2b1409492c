package astro

import (
	"log/slog"
	"time"

	"github.com/admin/jyotish/vedic-client/internal/pkg/validator"
	"github.com/admin/jyotish/vedic-client/internal/ports/cache"
	"github.com/admin/jyotish/vedic-client/internal/ports/kafka"
	"github.com/admin/jyotish/vedic-client/internal/ports/repository"
	"github.com/admin/jyotish/vedic-client/internal/ports/service"
	"github.com/admin/jyotish/vedic-client/internal/ports/storage"
)

// Слоты результатов, для которых действует защита от устаревших ответов
const (
	ViewBirthChart = "birth-chart"
	ViewMatching   = "kundli-matching"
	ViewHoroscope  = "daily-horoscope"
)

const (
	defaultChartTTL     = 24 * time.Hour
	defaultHoroscopeTTL = 25 * time.Hour
)

// StaleObserver считает отброшенные устаревшие результаты
type StaleObserver interface {
	IncStaleResult(view string)
}

// Service бизнес-логика клиента: формы, отчёты, PDF
type Service struct {
	AstroAPIService service.IAstroAPIService
	Validator       *validator.CustomValidator
	Slots           cache.ISlotTracker
	Log             *slog.Logger

	// Необязательные зависимости; nil отключает соответствующую функцию
	Cache      cache.Cache
	Events     kafka.IEventPublisher
	S3Client   storage.IObjectStorage
	PDFArchive repository.IPDFArchiveRepo
	Metrics    StaleObserver

	ChartTTL     time.Duration
	HoroscopeTTL time.Duration
	PDFKeyPrefix string
	PresignTTL   time.Duration

	now func() time.Time
}

// New создаёт сервис с обязательными зависимостями
func New(
	astroAPIService service.IAstroAPIService,
	v *validator.CustomValidator,
	slots cache.ISlotTracker,
	log *slog.Logger,
) *Service {
	return &Service{
		AstroAPIService: astroAPIService,
		Validator:       v,
		Slots:           slots,
		Log:             log,
		ChartTTL:        defaultChartTTL,
		HoroscopeTTL:    defaultHoroscopeTTL,
		PDFKeyPrefix:    "reports/",
		now:             time.Now,
	}
}
