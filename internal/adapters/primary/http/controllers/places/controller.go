package places

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/controllers/response"
)

// Suggester подбирает варианты мест по вводу
type Suggester interface {
	Suggest(ctx context.Context, query string) ([]string, error)
}

type Controller struct {
	Places Suggester
	Log    *slog.Logger
}

func New(places Suggester, log *slog.Logger) *Controller {
	return &Controller{Places: places, Log: log}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/places", c.suggest)
}

type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

func (c *Controller) suggest(ctx *gin.Context) {
	suggestions, err := c.Places.Suggest(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		response.Error(ctx, c.Log, nil, err)
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	ctx.JSON(http.StatusOK, SuggestResponse{Suggestions: suggestions})
}
