package matching

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/controllers/response"
	"github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/middlewares"
	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/validator"
	astroUsecase "github.com/admin/jyotish/vedic-client/internal/usecases/astro"
	"github.com/admin/jyotish/vedic-client/internal/usecases/report"
)

type MatchingService interface {
	KundliMatching(ctx context.Context, req domain.MatchingRequest) (*domain.MatchingResult, error)
	ResetView(view, formID string)
}

type Controller struct {
	Matching  MatchingService
	Validator *validator.CustomValidator
	Log       *slog.Logger
}

func New(matching MatchingService, v *validator.CustomValidator, log *slog.Logger) *Controller {
	return &Controller{Matching: matching, Validator: v, Log: log}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/kundli-matching", c.match)
	router.DELETE("/api/kundli-matching/view", c.resetView)
}

func (c *Controller) match(ctx *gin.Context) {
	var req domain.MatchingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, err)
		return
	}

	result, err := c.Matching.KundliMatching(middlewares.FormContext(ctx), req)
	if err != nil {
		response.Error(ctx, c.Log, c.Validator, err)
		return
	}

	ctx.JSON(http.StatusOK, report.BuildMatchingView(middlewares.Locale(ctx), *result))
}

func (c *Controller) resetView(ctx *gin.Context) {
	formID := middlewares.FormID(ctx)
	if formID == "" {
		response.BadRequest(ctx, middlewares.ErrFormIDRequired)
		return
	}
	c.Matching.ResetView(astroUsecase.ViewMatching, formID)
	ctx.Status(http.StatusNoContent)
}
