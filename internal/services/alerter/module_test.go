package alerter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	alerterAdapter "github.com/admin/jyotish/vedic-client/internal/adapters/secondary/alerter"
	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/logger"
)

func TestSendAlertWithoutClient(t *testing.T) {
	s := New(nil, logger.Nop())
	assert.EqualError(t, s.SendAlert(context.Background(), domain.Alert{Message: "x"}), "alerter client is not initialized")
	assert.Error(t, s.ReportJobFailure(context.Background(), domain.JobFailure{Job: "x"}))
}

func TestReportJobFailureSendsFormattedText(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		got, _ = body["text"].(string)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := alerterAdapter.NewClient(&alerterAdapter.Config{BotToken: "t", ChatID: 1, BaseURL: srv.URL}, logger.Nop())
	s := New(client, logger.Nop())

	err := s.ReportJobFailure(context.Background(), domain.JobFailure{
		Job:      "horoscope-prefetcher",
		Attempts: []error{errors.New("timeout"), errors.New("503")},
	})
	require.NoError(t, err)
	assert.Contains(t, got, "Job: horoscope-prefetcher")
	assert.Contains(t, got, "Attempt 2: 503")
}
