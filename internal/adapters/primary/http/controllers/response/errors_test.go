package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/validator"
)

func TestStatusMapping(t *testing.T) {
	validationErr := validator.NewValidator().Validate(domain.BirthSubject{})

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", validationErr, http.StatusUnprocessableEntity},
		{"service status", &domain.ServiceError{Status: 400, Detail: "bad place"}, http.StatusBadRequest},
		{"service transport", fmt.Errorf("x: %w", &domain.ServiceError{Err: errors.New("refused")}), http.StatusBadGateway},
		{"in flight", domain.ErrRequestInFlight, http.StatusConflict},
		{"stale", fmt.Errorf("birth-chart: %w", domain.ErrStaleResult), http.StatusConflict},
		{"chart missing", domain.ErrChartNotFound, http.StatusNotFound},
		{"session missing", domain.ErrSessionNotFound, http.StatusNotFound},
		{"empty message", domain.ErrEmptyMessage, http.StatusBadRequest},
		{"unknown rashi", domain.ErrUnknownRashi, http.StatusBadRequest},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"other", errors.New("boom"), http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Status(tc.err))
		})
	}
}

func TestDetailSurfacesServiceText(t *testing.T) {
	assert.Equal(t, "bad place", detail(&domain.ServiceError{Status: 400, Detail: "bad place"}))
	assert.Equal(t, "Not Found", detail(&domain.ServiceError{Status: 404}))
	assert.Equal(t, "astro service unavailable", detail(&domain.ServiceError{Err: errors.New("dial")}))
}
