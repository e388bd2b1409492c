package alerter

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/ports/service"
)

type Controller struct {
	AlerterService service.IAlerterService
	Log            *slog.Logger
}

func New(alerterService service.IAlerterService, log *slog.Logger) *Controller {
	return &Controller{
		AlerterService: alerterService,
		Log:            log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/webhooks/alert", c.handleGenericAlert)
}

// GenericAlertPayload алерт в свободной форме от внешней системы
type GenericAlertPayload struct {
	Message  string `json:"message"`
	Source   string `json:"source,omitempty"`
	Severity string `json:"severity,omitempty"`
}

func (p GenericAlertPayload) toDomain() domain.Alert {
	return domain.Alert{
		Message:  strings.TrimSpace(p.Message),
		Source:   p.Source,
		Severity: p.Severity,
	}
}

// handleGenericAlert пересылает алерт в чат дежурных
func (c *Controller) handleGenericAlert(ctx *gin.Context) {
	var payload GenericAlertPayload

	if err := ctx.ShouldBindJSON(&payload); err != nil {
		c.Log.Warn("failed to bind generic alert request", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request: " + err.Error()})
		return
	}

	if strings.TrimSpace(payload.Message) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "message is required"})
		return
	}

	if c.AlerterService == nil {
		c.Log.Info("alerter service not configured, skipping alert", "source", payload.Source)
		ctx.JSON(http.StatusOK, gin.H{"ok": true, "message": "alerter not configured"})
		return
	}

	if err := c.AlerterService.SendAlert(ctx.Request.Context(), payload.toDomain()); err != nil {
		c.Log.Warn("failed to send alert", "error", err, "source", payload.Source)
		// 200, чтобы отправитель не повторял запрос
		ctx.JSON(http.StatusOK, gin.H{"ok": false, "detail": "failed to send alert"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
