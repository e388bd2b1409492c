package horoscope

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/controllers/response"
	"github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/middlewares"
	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/locale"
	"github.com/admin/jyotish/vedic-client/internal/usecases/report"
)

type HoroscopeService interface {
	DailyHoroscope(ctx context.Context, rashi, date string) (*domain.DailyHoroscope, error)
}

type Controller struct {
	Horoscopes HoroscopeService
	Log        *slog.Logger
}

func New(horoscopes HoroscopeService, log *slog.Logger) *Controller {
	return &Controller{Horoscopes: horoscopes, Log: log}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/rashis", c.rashis)
	router.GET("/api/daily-horoscope/:rashi", c.daily)
}

type RashiOption struct {
	Num   int    `json:"num"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

// rashis список знаков для выбора, подписи на активном языке
func (c *Controller) rashis(ctx *gin.Context) {
	lc := middlewares.Locale(ctx)
	options := make([]RashiOption, 0, len(domain.Rashis))
	for i, name := range domain.Rashis {
		options = append(options, RashiOption{
			Num:   i + 1,
			Name:  name,
			Label: locale.Select(lc.Lang, name, domain.RashisHindi[i]),
		})
	}
	ctx.JSON(http.StatusOK, gin.H{"rashis": options})
}

func (c *Controller) daily(ctx *gin.Context) {
	h, err := c.Horoscopes.DailyHoroscope(middlewares.FormContext(ctx), ctx.Param("rashi"), ctx.Query("date"))
	if err != nil {
		response.Error(ctx, c.Log, nil, err)
		return
	}
	ctx.JSON(http.StatusOK, report.BuildHoroscopeView(middlewares.Locale(ctx), *h))
}
