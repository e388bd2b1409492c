package astroApi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	calls []string
}

func (o *recordingObserver) ObserveAstroCall(endpoint, outcome string, _ time.Duration) {
	o.calls = append(o.calls, endpoint+":"+outcome)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recordingObserver) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	obs := &recordingObserver{}
	return NewClient(&Config{BaseURL: srv.URL, Prefix: "/api"}, logger.Nop(), obs), obs
}

func TestGetCities(t *testing.T) {
	client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/cities", r.URL.Path)
		_, _ = io.WriteString(w, `{"cities":["Delhi","Mumbai"]}`)
	})

	resp, err := client.GetCities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Delhi", "Mumbai"}, resp.Cities)
	assert.Equal(t, []string{"cities:ok"}, obs.calls)
}

func TestCalculateBirthChartSendsSubject(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/birth-chart", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var got BirthDetails
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "15-08-1990", got.DateOfBirth)
		_, _ = io.WriteString(w, `{"id":"c1"}`)
	})

	body, err := client.CalculateBirthChart(context.Background(), BirthDetails{Name: "Asha", DateOfBirth: "15-08-1990"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"c1"}`, string(body))
}

func TestServiceDetailSurfacedVerbatim(t *testing.T) {
	client, obs := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"detail":"Could not find coordinates for Atlantis"}`)
	})

	_, err := client.CalculateBirthChart(context.Background(), BirthDetails{})
	require.Error(t, err)
	svcErr, ok := domain.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, svcErr.Status)
	assert.Equal(t, "Could not find coordinates for Atlantis", svcErr.Detail)
	assert.Equal(t, []string{"birth-chart:service_error"}, obs.calls)
}

func TestValidationDetailListJoined(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"detail":[{"loc":["body","name"],"msg":"field required"},{"msg":"invalid date"}]}`)
	})

	_, err := client.KundliMatching(context.Background(), MatchingRequest{})
	svcErr, ok := domain.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "field required; invalid date", svcErr.Detail)
}

func TestNonJSONErrorBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetBirthChart(context.Background(), "c1")
	svcErr, ok := domain.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "Internal Server Error", svcErr.Detail)
}

func TestTransportFailureIsServiceError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient(&Config{BaseURL: srv.URL, Prefix: "/api"}, logger.Nop(), nil)

	_, err := client.GetCities(context.Background())
	svcErr, ok := domain.AsServiceError(err)
	require.True(t, ok)
	assert.Zero(t, svcErr.Status)
	assert.Error(t, svcErr.Err)
}

func TestDailyHoroscopeDateQuery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/daily-horoscope/Leo", r.URL.Path)
		assert.Equal(t, "2026-10-17", r.URL.Query().Get("date"))
		_, _ = io.WriteString(w, `{"rashi":"Leo"}`)
	})

	_, err := client.DailyHoroscope(context.Background(), "Leo", "2026-10-17")
	require.NoError(t, err)
}

func TestChatSendsNullChartID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"message":"hello","session_id":"session_1","chart_id":null}`, string(raw))
		_, _ = io.WriteString(w, `{"response":"Namaste","session_id":"session_1"}`)
	})

	resp, err := client.Chat(context.Background(), ChatRequest{Message: "hello", SessionID: "session_1"})
	require.NoError(t, err)
	assert.Equal(t, "Namaste", resp.Response)
}

func TestGeneratePDFReturnsBinary(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate-pdf/c1", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	})

	body, err := client.GeneratePDF(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(body))
}

func TestBuildURLWithoutPrefix(t *testing.T) {
	c := NewClient(&Config{BaseURL: "http://svc/"}, logger.Nop(), nil)
	assert.Equal(t, "http://svc/chat-history/session_1", c.buildURL(EndpointChatHistory, "session_1"))
}
