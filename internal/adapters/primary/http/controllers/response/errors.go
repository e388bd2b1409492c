package response

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/validator"
)

// ErrorBody тело ответа об ошибке; detail совпадает с полем внешнего сервиса
type ErrorBody struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Status подбирает HTTP-статус для ошибки use case
func Status(err error) int {
	if svcErr, ok := domain.AsServiceError(err); ok {
		if svcErr.Status == 0 {
			return http.StatusBadGateway
		}
		return svcErr.Status
	}

	switch {
	case validator.IsValidationError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrEmptyMessage),
		errors.Is(err, domain.ErrUnknownRashi),
		errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRequestInFlight),
		errors.Is(err, domain.ErrStaleResult):
		return http.StatusConflict
	case errors.Is(err, domain.ErrChartNotFound),
		errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

// Error пишет ответ об ошибке и логирует серверные сбои
func Error(ctx *gin.Context, log *slog.Logger, v *validator.CustomValidator, err error) {
	status := Status(err)
	body := ErrorBody{Detail: detail(err)}

	if status == http.StatusUnprocessableEntity && v != nil {
		body.Detail = "validation failed"
		body.Fields = v.FormatValidationErrors(err)
	}

	if status >= http.StatusInternalServerError && !domain.IsBusinessError(err) {
		log.Error("request failed",
			"error", err,
			"status", status,
			"route", ctx.FullPath(),
		)
	} else {
		log.Debug("request rejected", "error", err, "status", status, "route", ctx.FullPath())
	}

	ctx.AbortWithStatusJSON(status, body)
}

// detail текст для клиента: detail сервиса дословно, иначе текст ошибки
func detail(err error) string {
	if svcErr, ok := domain.AsServiceError(err); ok {
		if svcErr.Status == 0 {
			return "astro service unavailable"
		}
		if svcErr.Detail != "" {
			return svcErr.Detail
		}
		return http.StatusText(svcErr.Status)
	}
	return err.Error()
}

// BadRequest ответ на нечитаемое тело запроса
func BadRequest(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorBody{Detail: "invalid request: " + err.Error()})
}
