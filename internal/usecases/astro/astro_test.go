package astro

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/jyotish/vedic-client/internal/adapters/secondary/storage/inmemory"
	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/logger"
	"github.com/admin/jyotish/vedic-client/internal/pkg/validator"
	"github.com/admin/jyotish/vedic-client/internal/ports/service"
)

type fakeAstroAPI struct {
	service.IAstroAPIService

	mu         sync.Mutex
	during     func()
	chart      *domain.ChartResult
	err        error
	pdf        []byte
	horoscopes map[string]int
	chartCalls int
}

func (f *fakeAstroAPI) CalculateBirthChart(context.Context, domain.BirthSubject) (*domain.ChartResult, error) {
	if f.during != nil {
		f.during()
	}
	return f.chart, f.err
}

func (f *fakeAstroAPI) GetBirthChart(_ context.Context, id string) (*domain.ChartResult, error) {
	f.mu.Lock()
	f.chartCalls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	c := *f.chart
	c.ID = id
	return &c, nil
}

func (f *fakeAstroAPI) GeneratePDF(context.Context, string) ([]byte, error) {
	return f.pdf, f.err
}

func (f *fakeAstroAPI) KundliMatching(context.Context, domain.MatchingRequest) (*domain.MatchingResult, error) {
	if f.during != nil {
		f.during()
	}
	return &domain.MatchingResult{TotalScore: 28, Percentage: 77.78}, f.err
}

func (f *fakeAstroAPI) DailyHoroscope(_ context.Context, rashi, date string) (*domain.DailyHoroscope, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.horoscopes == nil {
		f.horoscopes = map[string]int{}
	}
	f.horoscopes[rashi+"|"+date]++
	return &domain.DailyHoroscope{Rashi: rashi, Date: date, OverallRating: 8}, f.err
}

type staleCounter struct{ views []string }

func (s *staleCounter) IncStaleResult(view string) { s.views = append(s.views, view) }

type recordingPublisher struct{ events []domain.ReportEvent }

func (p *recordingPublisher) PublishEvent(_ context.Context, e domain.ReportEvent) error {
	p.events = append(p.events, e)
	return nil
}
func (p *recordingPublisher) Close() error { return nil }

type fakeStorage struct {
	objects map[string][]byte
	putErr  error
}

func (f *fakeStorage) PutFile(_ context.Context, path string, data []byte, _ string) error {
	if f.putErr != nil {
		return f.putErr
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[path] = data
	return nil
}

func (f *fakeStorage) GetFile(_ context.Context, path string) ([]byte, error) {
	return f.objects[path], nil
}

func (f *fakeStorage) GetPresignedURL(_ context.Context, path, name string, _ time.Duration) (string, error) {
	return "https://s3.local/" + path + "?name=" + name, nil
}

type fakeArchive struct {
	records map[string]*domain.PDFArchiveRecord
}

func (f *fakeArchive) Save(_ context.Context, r *domain.PDFArchiveRecord) error {
	if f.records == nil {
		f.records = map[string]*domain.PDFArchiveRecord{}
	}
	f.records[r.ChartID] = r
	return nil
}

func (f *fakeArchive) GetByChartID(_ context.Context, id string) (*domain.PDFArchiveRecord, error) {
	if r, ok := f.records[id]; ok {
		return r, nil
	}
	return nil, domain.ErrChartNotFound
}

func validSubject() domain.BirthSubject {
	return domain.BirthSubject{
		Name:         " Asha Rao ",
		Gender:       domain.GenderFemale,
		DateOfBirth:  "15-08-1990",
		TimeOfBirth:  "14:30",
		PlaceOfBirth: "Delhi",
	}
}

func newService(t *testing.T, api *fakeAstroAPI) *Service {
	t.Helper()
	s := New(api, validator.NewValidator(), inmemory.NewSlotTracker(), logger.Nop())
	c, err := inmemory.NewLRUCache(64)
	require.NoError(t, err)
	s.Cache = c
	s.now = func() time.Time { return time.Date(2026, 10, 17, 23, 30, 0, 0, time.UTC) }
	return s
}

func TestCalculateBirthChartPublishesEvent(t *testing.T) {
	api := &fakeAstroAPI{chart: &domain.ChartResult{ID: "c1", Name: "Asha Rao", MoonRashi: "Leo"}}
	s := newService(t, api)
	pub := &recordingPublisher{}
	s.Events = pub

	chart, err := s.CalculateBirthChart(context.Background(), validSubject())
	require.NoError(t, err)
	assert.Equal(t, "c1", chart.ID)
	require.Len(t, pub.events, 1)
	assert.Equal(t, domain.EventChartComputed, pub.events[0].Type)
	assert.Equal(t, "c1", pub.events[0].ObjectID)

	cached, err := s.GetBirthChart(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", cached.Name)
	assert.Zero(t, api.chartCalls)
}

func TestCalculateBirthChartValidation(t *testing.T) {
	api := &fakeAstroAPI{}
	s := newService(t, api)

	subject := validSubject()
	subject.DateOfBirth = "1990-08-15"
	subject.PlaceOfBirth = "  "

	_, err := s.CalculateBirthChart(context.Background(), subject)
	require.Error(t, err)
	assert.True(t, validator.IsValidationError(err))

	fields := s.Validator.FormatValidationErrors(err)
	assert.Contains(t, fields, "date_of_birth")
	assert.Contains(t, fields, "place_of_birth")
}

func TestCalculateBirthChartServiceErrorPassesThrough(t *testing.T) {
	api := &fakeAstroAPI{err: &domain.ServiceError{Status: 400, Detail: "Invalid place"}}
	s := newService(t, api)

	_, err := s.CalculateBirthChart(context.Background(), validSubject())
	svcErr, ok := domain.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid place", svcErr.Detail)
}

func TestResetDropsInFlightChart(t *testing.T) {
	api := &fakeAstroAPI{chart: &domain.ChartResult{ID: "c1"}}
	s := newService(t, api)
	stale := &staleCounter{}
	s.Metrics = stale
	api.during = func() { s.ResetView(ViewBirthChart, "form-a") }

	_, err := s.CalculateBirthChart(WithForm(context.Background(), "form-a"), validSubject())
	assert.ErrorIs(t, err, domain.ErrStaleResult)
	assert.Equal(t, []string{ViewBirthChart}, stale.views)
}

func TestResetOfOtherFormKeepsChart(t *testing.T) {
	api := &fakeAstroAPI{chart: &domain.ChartResult{ID: "c1"}}
	s := newService(t, api)
	api.during = func() { s.ResetView(ViewBirthChart, "form-b") }

	chart, err := s.CalculateBirthChart(WithForm(context.Background(), "form-a"), validSubject())
	require.NoError(t, err)
	assert.Equal(t, "c1", chart.ID)
}

func TestConcurrentFormsDoNotSupersedeEachOther(t *testing.T) {
	api := &fakeAstroAPI{chart: &domain.ChartResult{ID: "c1"}}
	s := newService(t, api)

	// оба запроса гарантированно в полёте одновременно
	var barrier sync.WaitGroup
	barrier.Add(2)
	api.during = func() {
		barrier.Done()
		barrier.Wait()
	}

	errs := make(chan error, 2)
	for _, formID := range []string{"form-a", "form-b"} {
		ctx := WithForm(context.Background(), formID)
		go func() {
			_, err := s.CalculateBirthChart(ctx, validSubject())
			errs <- err
		}()
	}
	require.NoError(t, <-errs)
	require.NoError(t, <-errs)
	assert.Zero(t, s.Slots.(*inmemory.SlotTracker).Len())
}

func TestRequestsWithoutFormAreIndependent(t *testing.T) {
	api := &fakeAstroAPI{}
	s := newService(t, api)

	req := domain.MatchingRequest{Person1: validSubject(), Person2: validSubject()}
	req.Person2.Gender = domain.GenderMale

	var inner error
	api.during = func() {
		api.during = nil
		_, inner = s.KundliMatching(context.Background(), req)
	}

	_, err := s.KundliMatching(context.Background(), req)
	require.NoError(t, err)
	assert.NoError(t, inner)
	s.ResetView(ViewMatching, "")
}

func TestNewerMatchingRequestWins(t *testing.T) {
	api := &fakeAstroAPI{}
	s := newService(t, api)

	req := domain.MatchingRequest{Person1: validSubject(), Person2: validSubject()}
	req.Person2.Gender = domain.GenderMale

	ctx := WithForm(context.Background(), "form-a")
	var newer error
	api.during = func() {
		api.during = nil
		_, newer = s.KundliMatching(ctx, req)
	}

	_, err := s.KundliMatching(ctx, req)
	assert.ErrorIs(t, err, domain.ErrStaleResult)
	assert.NoError(t, newer)
}

func TestKundliMatchingValidatesBothPersons(t *testing.T) {
	s := newService(t, &fakeAstroAPI{})

	req := domain.MatchingRequest{Person1: validSubject(), Person2: validSubject()}
	req.Person2.Name = " "
	_, err := s.KundliMatching(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, s.Validator.FormatValidationErrors(err), "person2.name")
}

func TestDailyHoroscopeCachesPerDay(t *testing.T) {
	api := &fakeAstroAPI{}
	s := newService(t, api)
	ctx := context.Background()

	h, err := s.DailyHoroscope(ctx, "leo", "")
	require.NoError(t, err)
	assert.Equal(t, "Leo", h.Rashi)
	assert.Equal(t, "2026-10-17", h.Date)

	_, err = s.DailyHoroscope(ctx, "Leo", "2026-10-17")
	require.NoError(t, err)
	assert.Equal(t, 1, api.horoscopes["Leo|2026-10-17"])

	_, err = s.DailyHoroscope(ctx, "Leo", "2026-10-18")
	require.NoError(t, err)
	assert.Equal(t, 1, api.horoscopes["Leo|2026-10-18"])
}

func TestDailyHoroscopeRejectsBadInput(t *testing.T) {
	s := newService(t, &fakeAstroAPI{})

	_, err := s.DailyHoroscope(context.Background(), "Ophiuchus", "")
	assert.ErrorIs(t, err, domain.ErrUnknownRashi)

	_, err = s.DailyHoroscope(context.Background(), "Leo", "17-10-2026")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestPrefetchHoroscopeFillsCache(t *testing.T) {
	api := &fakeAstroAPI{}
	s := newService(t, api)

	require.NoError(t, s.PrefetchHoroscope(context.Background(), "Aries", "2026-10-17"))
	_, err := s.DailyHoroscope(context.Background(), "Aries", "2026-10-17")
	require.NoError(t, err)
	assert.Equal(t, 1, api.horoscopes["Aries|2026-10-17"])
}

func TestExportPDFWithoutStorage(t *testing.T) {
	api := &fakeAstroAPI{chart: &domain.ChartResult{Name: "Asha Rao"}, pdf: []byte("%PDF-1.4")}
	s := newService(t, api)

	export, err := s.ExportPDF(context.Background(), " c9 ")
	require.NoError(t, err)
	assert.Equal(t, "janampatri_Asha_Rao.pdf", export.FileName)
	assert.Equal(t, []byte("%PDF-1.4"), export.Data)
	assert.Empty(t, export.URL)
}

func TestExportPDFArchivesToStorage(t *testing.T) {
	api := &fakeAstroAPI{chart: &domain.ChartResult{Name: "Asha Rao"}, pdf: []byte("%PDF")}
	s := newService(t, api)
	store := &fakeStorage{}
	archive := &fakeArchive{}
	s.S3Client = store
	s.PDFArchive = archive

	export, err := s.ExportPDF(context.Background(), "c9")
	require.NoError(t, err)
	assert.Equal(t, "https://s3.local/reports/c9/janampatri_Asha_Rao.pdf?name=janampatri_Asha_Rao.pdf", export.URL)
	assert.Contains(t, store.objects, "reports/c9/janampatri_Asha_Rao.pdf")
	assert.Equal(t, int64(4), archive.records["c9"].SizeBytes)

	url, err := s.PDFDownloadURL(context.Background(), "c9")
	require.NoError(t, err)
	assert.Equal(t, export.URL, url)

	_, err = s.PDFDownloadURL(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrChartNotFound)
}

func TestExportPDFArchiveFailureStillReturnsFile(t *testing.T) {
	api := &fakeAstroAPI{chart: &domain.ChartResult{Name: "A"}, pdf: []byte("%PDF")}
	s := newService(t, api)
	s.S3Client = &fakeStorage{putErr: errors.New("bucket gone")}

	export, err := s.ExportPDF(context.Background(), "c1")
	require.NoError(t, err)
	assert.Empty(t, export.URL)
	assert.NotEmpty(t, export.Data)
}

func TestGetBirthChartNotFound(t *testing.T) {
	s := newService(t, &fakeAstroAPI{err: domain.ErrChartNotFound})
	_, err := s.GetBirthChart(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrChartNotFound)

	_, err = s.GetBirthChart(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrChartNotFound)
}
