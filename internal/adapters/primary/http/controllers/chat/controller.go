package chat

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/controllers/response"
	"github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/middlewares"
	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/usecases/conversation"
)

type Controller struct {
	Sessions *conversation.Registry
	Log      *slog.Logger
}

func New(sessions *conversation.Registry, log *slog.Logger) *Controller {
	return &Controller{Sessions: sessions, Log: log}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/api/chat/sessions")
	{
		group.POST("", c.create)
		group.GET("/:id", c.get)
		group.POST("/:id/messages", c.send)
		group.DELETE("/:id", c.delete)
	}
}

type CreateSessionRequest struct {
	ChartID *string `json:"chart_id"`
}

type SessionResponse struct {
	SessionID string                    `json:"session_id"`
	ChartID   *string                   `json:"chart_id"`
	Turns     []domain.ConversationTurn `json:"turns"`
	Pending   bool                      `json:"pending"`
}

type SendRequest struct {
	Message string `json:"message"`
}

type SendResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

func toSessionResponse(s *conversation.Session) SessionResponse {
	return SessionResponse{
		SessionID: s.ID(),
		ChartID:   s.ChartID(),
		Turns:     s.Turns(),
		Pending:   s.InFlight(),
	}
}

func (c *Controller) create(ctx *gin.Context) {
	var req CreateSessionRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.BadRequest(ctx, err)
			return
		}
	}
	if req.ChartID != nil && strings.TrimSpace(*req.ChartID) == "" {
		req.ChartID = nil
	}

	s := c.Sessions.Create(ctx.Request.Context(), req.ChartID, middlewares.Locale(ctx).Lang)
	ctx.JSON(http.StatusCreated, toSessionResponse(s))
}

func (c *Controller) get(ctx *gin.Context) {
	s, err := c.Sessions.Resume(ctx.Request.Context(), ctx.Param("id"), middlewares.Locale(ctx).Lang)
	if err != nil {
		response.Error(ctx, c.Log, nil, err)
		return
	}
	ctx.JSON(http.StatusOK, toSessionResponse(s))
}

func (c *Controller) send(ctx *gin.Context) {
	var req SendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, err)
		return
	}

	s, err := c.Sessions.Resume(ctx.Request.Context(), ctx.Param("id"), middlewares.Locale(ctx).Lang)
	if err != nil {
		response.Error(ctx, c.Log, nil, err)
		return
	}

	reply, err := s.Send(ctx.Request.Context(), req.Message)
	if err != nil {
		response.Error(ctx, c.Log, nil, err)
		return
	}
	ctx.JSON(http.StatusOK, SendResponse{Response: reply, SessionID: s.ID()})
}

func (c *Controller) delete(ctx *gin.Context) {
	if err := c.Sessions.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.Error(ctx, c.Log, nil, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
