package matching

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/middlewares"
	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/locale"
	"github.com/admin/jyotish/vedic-client/internal/pkg/logger"
	astroUsecase "github.com/admin/jyotish/vedic-client/internal/usecases/astro"
	"github.com/admin/jyotish/vedic-client/internal/usecases/report"
)

type fakeMatching struct {
	got    domain.MatchingRequest
	form   string
	err    error
	resets []string
}

func (f *fakeMatching) KundliMatching(ctx context.Context, req domain.MatchingRequest) (*domain.MatchingResult, error) {
	f.got = req
	f.form = astroUsecase.FormFrom(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return &domain.MatchingResult{TotalScore: 28, MaxScore: 36, Percentage: 78, Verdict: "Good match"}, nil
}

func (f *fakeMatching) ResetView(view, formID string) {
	f.resets = append(f.resets, astroUsecase.SlotKey(view, formID))
}

func newRouter(f *fakeMatching) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middlewares.Language(locale.NewSwitcher(domain.LanguageEnglish, locale.MustNewResolver())))
	New(f, nil, logger.Nop()).RegisterRoutes(r)
	return r
}

func TestMatchingRendersPayloadPercentage(t *testing.T) {
	f := &fakeMatching{}
	r := newRouter(f)

	body := `{"person1":{"name":"A","gender":"Male","date_of_birth":"01-01-1990","time_of_birth":"10:00","place_of_birth":"Delhi"},
	          "person2":{"name":"B","gender":"Female","date_of_birth":"02-02-1992","time_of_birth":"11:00","place_of_birth":"Mumbai"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/kundli-matching?form=tab-1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Mumbai", f.got.Person2.PlaceOfBirth)
	assert.Equal(t, "tab-1", f.form)

	var view report.MatchingView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "78% compatibility", view.PercentageText)
}

func TestMatchingTransportFailureIs502(t *testing.T) {
	r := newRouter(&fakeMatching{err: &domain.ServiceError{Err: context.DeadlineExceeded}})

	req := httptest.NewRequest(http.MethodPost, "/api/kundli-matching", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"detail":"astro service unavailable"}`, w.Body.String())
}

func TestMatchingResetView(t *testing.T) {
	f := &fakeMatching{}
	r := newRouter(f)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/kundli-matching/view", nil)
	req.Header.Set(middlewares.FormHeader, "tab-2")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"kundli-matching:tab-2"}, f.resets)
}
