package repository

import (
	"context"

	"github.com/admin/jyotish/vedic-client/internal/domain"
)

// ITranscriptRepo хранилище стенограмм чата
type ITranscriptRepo interface {
	CreateSession(ctx context.Context, session *domain.ChatSessionRecord) error
	GetSession(ctx context.Context, sessionID string) (*domain.ChatSessionRecord, error)
	AppendTurn(ctx context.Context, turn *domain.ConversationTurn) error
	ListTurns(ctx context.Context, sessionID string) ([]domain.ConversationTurn, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
