package chart

import (
	"context"
	"log/slog"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/controllers/response"
	"github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/middlewares"
	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/validator"
	astroUsecase "github.com/admin/jyotish/vedic-client/internal/usecases/astro"
	chartUsecase "github.com/admin/jyotish/vedic-client/internal/usecases/chart"
	"github.com/admin/jyotish/vedic-client/internal/usecases/report"
)

// ChartService операции с натальными картами
type ChartService interface {
	CalculateBirthChart(ctx context.Context, subject domain.BirthSubject) (*domain.ChartResult, error)
	GetBirthChart(ctx context.Context, chartID string) (*domain.ChartResult, error)
	ExportPDF(ctx context.Context, chartID string) (*astroUsecase.PDFExport, error)
	PDFDownloadURL(ctx context.Context, chartID string) (string, error)
	ResetView(view, formID string)
}

type Controller struct {
	Charts    ChartService
	Validator *validator.CustomValidator
	Log       *slog.Logger
}

func New(charts ChartService, v *validator.CustomValidator, log *slog.Logger) *Controller {
	return &Controller{Charts: charts, Validator: v, Log: log}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/api/birth-chart")
	{
		group.POST("", c.calculate)
		group.DELETE("/view", c.resetView)
		group.GET("/:id", c.get)
		group.GET("/:id/chart.svg", c.svg)
		group.POST("/:id/pdf", c.pdf)
		group.GET("/:id/pdf-url", c.pdfURL)
	}
}

// ChartResponse представление карты и ссылка на SVG-диаграмму
type ChartResponse struct {
	View    report.ChartView `json:"view"`
	SVGPath string           `json:"svg_path,omitempty"`
}

type PDFLinkResponse struct {
	FileName string `json:"file_name,omitempty"`
	URL      string `json:"url"`
}

func (c *Controller) render(ctx *gin.Context, status int, result *domain.ChartResult) {
	resp := ChartResponse{View: report.BuildChartView(middlewares.Locale(ctx), *result)}
	if result.ID != "" {
		resp.SVGPath = "/api/birth-chart/" + result.ID + "/chart.svg"
	}
	ctx.JSON(status, resp)
}

func (c *Controller) calculate(ctx *gin.Context) {
	var subject domain.BirthSubject
	if err := ctx.ShouldBindJSON(&subject); err != nil {
		response.BadRequest(ctx, err)
		return
	}

	result, err := c.Charts.CalculateBirthChart(middlewares.FormContext(ctx), subject)
	if err != nil {
		response.Error(ctx, c.Log, c.Validator, err)
		return
	}
	c.render(ctx, http.StatusOK, result)
}

func (c *Controller) get(ctx *gin.Context) {
	result, err := c.Charts.GetBirthChart(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.Error(ctx, c.Log, c.Validator, err)
		return
	}
	c.render(ctx, http.StatusOK, result)
}

func (c *Controller) svg(ctx *gin.Context) {
	result, err := c.Charts.GetBirthChart(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.Error(ctx, c.Log, c.Validator, err)
		return
	}
	ctx.Data(http.StatusOK, "image/svg+xml", chartUsecase.RenderSVG(chartUsecase.FromChart(result)))
}

// pdf отдаёт файл; с ?link=true возвращает ссылку на архивную копию, если она есть
func (c *Controller) pdf(ctx *gin.Context) {
	export, err := c.Charts.ExportPDF(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.Error(ctx, c.Log, c.Validator, err)
		return
	}

	if ctx.Query("link") == "true" && export.URL != "" {
		ctx.JSON(http.StatusOK, PDFLinkResponse{FileName: export.FileName, URL: export.URL})
		return
	}

	ctx.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": export.FileName}))
	ctx.Data(http.StatusOK, "application/pdf", export.Data)
}

func (c *Controller) pdfURL(ctx *gin.Context) {
	url, err := c.Charts.PDFDownloadURL(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.Error(ctx, c.Log, c.Validator, err)
		return
	}
	ctx.JSON(http.StatusOK, PDFLinkResponse{URL: url})
}

// resetView сбрасывает слот карты для формы клиента
func (c *Controller) resetView(ctx *gin.Context) {
	formID := middlewares.FormID(ctx)
	if formID == "" {
		response.BadRequest(ctx, middlewares.ErrFormIDRequired)
		return
	}
	c.Charts.ResetView(astroUsecase.ViewBirthChart, formID)
	ctx.Status(http.StatusNoContent)
}
