package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/middlewares"
	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/locale"
	"github.com/admin/jyotish/vedic-client/internal/pkg/logger"
	"github.com/admin/jyotish/vedic-client/internal/usecases/conversation"
)

type fakeAssistant struct {
	reply string
	err   error
}

func (f *fakeAssistant) Chat(context.Context, string, string, *string) (string, error) {
	return f.reply, f.err
}

func (f *fakeAssistant) ChatHistory(context.Context, string) ([]domain.ChatHistoryRecord, error) {
	return nil, nil
}

func newRouter(a *fakeAssistant) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middlewares.Language(locale.NewSwitcher(domain.LanguageEnglish, locale.MustNewResolver())))
	New(conversation.NewRegistry(a, nil, nil, logger.Nop()), logger.Nop()).RegisterRoutes(r)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createSession(t *testing.T, r http.Handler, body string) SessionResponse {
	t.Helper()
	w := do(r, http.MethodPost, "/api/chat/sessions", body)
	require.Equal(t, http.StatusCreated, w.Code)
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestChatConversationFlow(t *testing.T) {
	r := newRouter(&fakeAssistant{reply: "Saturn teaches patience"})

	session := createSession(t, r, `{"chart_id":"c1"}`)
	assert.True(t, strings.HasPrefix(session.SessionID, "session_"))
	require.NotNil(t, session.ChartID)
	assert.Equal(t, "c1", *session.ChartID)

	w := do(r, http.MethodPost, "/api/chat/sessions/"+session.SessionID+"/messages", `{"message":"Tell me about Saturn"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"response":"Saturn teaches patience","session_id":"`+session.SessionID+`"}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/chat/sessions/"+session.SessionID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Turns, 2)
	assert.Equal(t, domain.RoleUser, got.Turns[0].Role)
	assert.False(t, got.Pending)
}

func TestChatBlankMessageRejected(t *testing.T) {
	r := newRouter(&fakeAssistant{reply: "x"})
	session := createSession(t, r, "")
	assert.Nil(t, session.ChartID)

	w := do(r, http.MethodPost, "/api/chat/sessions/"+session.SessionID+"/messages", `{"message":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatServiceFailureKeepsUserTurn(t *testing.T) {
	r := newRouter(&fakeAssistant{err: &domain.ServiceError{Status: 500, Detail: "LLM unavailable"}})
	session := createSession(t, r, "")

	w := do(r, http.MethodPost, "/api/chat/sessions/"+session.SessionID+"/messages", `{"message":"hello"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"LLM unavailable"}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/chat/sessions/"+session.SessionID, "")
	var got SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Turns, 1)
}

func TestChatDelete(t *testing.T) {
	r := newRouter(&fakeAssistant{})
	session := createSession(t, r, "")

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/api/chat/sessions/"+session.SessionID, "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/api/chat/sessions/"+session.SessionID, "").Code)
}
