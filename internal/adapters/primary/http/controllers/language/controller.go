package language

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/middlewares"
	"github.com/admin/jyotish/vedic-client/internal/pkg/locale"
)

type Controller struct {
	Switcher *locale.Switcher
}

func New(switcher *locale.Switcher) *Controller {
	return &Controller{Switcher: switcher}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/language", c.current)
	router.POST("/api/language/toggle", c.toggle)
	router.GET("/api/i18n/:key", c.translate)
}

type LanguageResponse struct {
	Language string `json:"language"`
}

type TranslationResponse struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Language string `json:"language"`
}

func (c *Controller) current(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, LanguageResponse{Language: string(c.Switcher.Language())})
}

func (c *Controller) toggle(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, LanguageResponse{Language: string(c.Switcher.Toggle())})
}

func (c *Controller) translate(ctx *gin.Context) {
	lc := middlewares.Locale(ctx)
	key := ctx.Param("key")
	ctx.JSON(http.StatusOK, TranslationResponse{
		Key:      key,
		Value:    lc.T(key),
		Language: string(lc.Lang),
	})
}
