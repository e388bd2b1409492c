package chart

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/controllers/response"
	"github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/middlewares"
	"github.com/admin/jyotish/vedic-client/internal/adapters/secondary/storage/inmemory"
	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/locale"
	"github.com/admin/jyotish/vedic-client/internal/pkg/logger"
	"github.com/admin/jyotish/vedic-client/internal/pkg/validator"
	"github.com/admin/jyotish/vedic-client/internal/ports/service"
	astroUsecase "github.com/admin/jyotish/vedic-client/internal/usecases/astro"
)

type fakeCharts struct {
	chart  *domain.ChartResult
	err    error
	export *astroUsecase.PDFExport
	resets []string
	v      *validator.CustomValidator
}

func (f *fakeCharts) CalculateBirthChart(_ context.Context, s domain.BirthSubject) (*domain.ChartResult, error) {
	if err := f.v.Validate(s); err != nil {
		return nil, err
	}
	return f.chart, f.err
}

func (f *fakeCharts) GetBirthChart(context.Context, string) (*domain.ChartResult, error) {
	return f.chart, f.err
}

func (f *fakeCharts) ExportPDF(context.Context, string) (*astroUsecase.PDFExport, error) {
	return f.export, f.err
}

func (f *fakeCharts) PDFDownloadURL(context.Context, string) (string, error) {
	if f.export == nil || f.export.URL == "" {
		return "", domain.ErrChartNotFound
	}
	return f.export.URL, nil
}

func (f *fakeCharts) ResetView(view, formID string) {
	f.resets = append(f.resets, astroUsecase.SlotKey(view, formID))
}

func sampleChart() *domain.ChartResult {
	return &domain.ChartResult{
		ID:        "c1",
		Name:      "Asha Rao",
		Lagna:     domain.Lagna{Rashi: "Leo", RashiHindi: "सिंह", RashiNum: 5, Degree: 12.345},
		MoonRashi: "Cancer",
		Houses:    []domain.House{{HouseNum: 1, RashiNum: 5}},
		Planets: domain.NewPlanets(domain.NamedPlanet{
			Name:     "Sun",
			Position: domain.PlanetPosition{Rashi: "Leo", RashiNum: 5, Degree: 3.1},
		}),
	}
}

func newRouter(f *fakeCharts) *gin.Engine {
	gin.SetMode(gin.TestMode)
	f.v = validator.NewValidator()
	r := gin.New()
	r.Use(middlewares.Language(locale.NewSwitcher(domain.LanguageEnglish, locale.MustNewResolver())))
	New(f, f.v, logger.Nop()).RegisterRoutes(r)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validBody = `{"name":"Asha Rao","gender":"Female","date_of_birth":"15-08-1990","time_of_birth":"14:30","place_of_birth":"Delhi"}`

func TestCalculateRendersView(t *testing.T) {
	r := newRouter(&fakeCharts{chart: sampleChart()})

	w := do(r, http.MethodPost, "/api/birth-chart?lang=hi", validBody)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ChartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "c1", resp.View.ID)
	assert.Equal(t, "सिंह", resp.View.Lagna.Sign)
	assert.Equal(t, "12.35°", resp.View.Lagna.Degree)
	assert.Equal(t, "/api/birth-chart/c1/chart.svg", resp.SVGPath)
}

func TestCalculateValidationIs422(t *testing.T) {
	r := newRouter(&fakeCharts{chart: sampleChart()})

	w := do(r, http.MethodPost, "/api/birth-chart", `{"name":"A","gender":"Female","date_of_birth":"1990-08-15","time_of_birth":"14:30","place_of_birth":"Delhi"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Fields, "date_of_birth")
}

func TestCalculateSurfacesServiceDetail(t *testing.T) {
	r := newRouter(&fakeCharts{err: &domain.ServiceError{Status: 400, Detail: "Location not found"}})

	w := do(r, http.MethodPost, "/api/birth-chart", validBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Location not found"}`, w.Body.String())
}

func TestCalculateMalformedBody(t *testing.T) {
	r := newRouter(&fakeCharts{})
	w := do(r, http.MethodPost, "/api/birth-chart", `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSVG(t *testing.T) {
	r := newRouter(&fakeCharts{chart: sampleChart()})

	w := do(r, http.MethodGet, "/api/birth-chart/c1/chart.svg", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "<svg"))
}

func TestGetMissingChart(t *testing.T) {
	r := newRouter(&fakeCharts{err: domain.ErrChartNotFound})
	w := do(r, http.MethodGet, "/api/birth-chart/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPDFDownload(t *testing.T) {
	export := &astroUsecase.PDFExport{FileName: "janampatri_Asha_Rao.pdf", Data: []byte("%PDF"), URL: "https://s3/x"}
	r := newRouter(&fakeCharts{export: export})

	w := do(r, http.MethodPost, "/api/birth-chart/c1/pdf", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "janampatri_Asha_Rao.pdf")
	assert.Equal(t, "%PDF", w.Body.String())

	w = do(r, http.MethodPost, "/api/birth-chart/c1/pdf?link=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"file_name":"janampatri_Asha_Rao.pdf","url":"https://s3/x"}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/birth-chart/c1/pdf-url", "")
	assert.JSONEq(t, `{"url":"https://s3/x"}`, w.Body.String())
}

func TestResetView(t *testing.T) {
	f := &fakeCharts{}
	r := newRouter(f)

	w := do(r, http.MethodDelete, "/api/birth-chart/view?form=f1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{astroUsecase.SlotKey(astroUsecase.ViewBirthChart, "f1")}, f.resets)

	w = do(r, http.MethodDelete, "/api/birth-chart/view", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, f.resets, 1)
}

// barrierAPI держит все расчёты карты, пока их не наберётся нужное число
type barrierAPI struct {
	service.IAstroAPIService
	barrier *sync.WaitGroup
}

func (a barrierAPI) CalculateBirthChart(context.Context, domain.BirthSubject) (*domain.ChartResult, error) {
	a.barrier.Done()
	a.barrier.Wait()
	return sampleChart(), nil
}

func concurrentCalculate(t *testing.T, forms ...string) []int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	var barrier sync.WaitGroup
	barrier.Add(len(forms))
	v := validator.NewValidator()
	svc := astroUsecase.New(barrierAPI{barrier: &barrier}, v, inmemory.NewSlotTracker(), logger.Nop())
	r := gin.New()
	New(svc, v, logger.Nop()).RegisterRoutes(r)

	codes := make([]int, len(forms))
	var wg sync.WaitGroup
	for i, formID := range forms {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/api/birth-chart", strings.NewReader(validBody))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(middlewares.FormHeader, formID)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			codes[i] = w.Code
		}()
	}
	wg.Wait()
	return codes
}

func TestConcurrentClientsBothGetCharts(t *testing.T) {
	assert.Equal(t, []int{http.StatusOK, http.StatusOK}, concurrentCalculate(t, "form-a", "form-b"))
}

func TestSameFormKeepsOnlyNewestChart(t *testing.T) {
	codes := concurrentCalculate(t, "form-a", "form-a")
	assert.ElementsMatch(t, []int{http.StatusOK, http.StatusConflict}, codes)
}
