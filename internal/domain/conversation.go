package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn одна реплика диалога
type ConversationTurn struct {
	ID        uuid.UUID `json:"id" db:"id"`
	SessionID string    `json:"session_id" db:"session_id"`
	Seq       int       `json:"seq" db:"seq"`
	Role      Role      `json:"role" db:"role"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ChatHistoryRecord запись истории в формате внешнего сервиса
type ChatHistoryRecord struct {
	SessionID   string  `json:"session_id"`
	ChartID     *string `json:"chart_id,omitempty"`
	UserMessage string  `json:"user_message"`
	AIResponse  string  `json:"ai_response"`
	Timestamp   string  `json:"timestamp"`
}

// ChatSessionRecord сессия чата в хранилище
type ChatSessionRecord struct {
	SessionID string    `db:"session_id"`
	ChartID   *string   `db:"chart_id"`
	Language  Language  `db:"language"`
	CreatedAt time.Time `db:"created_at"`
}
