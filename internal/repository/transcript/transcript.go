package transcriptRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/ports/persistence"
	ports "github.com/admin/jyotish/vedic-client/internal/ports/repository"
)

// DB соединение, умеющее открывать транзакции
type DB interface {
	persistence.Persistence
	persistence.TxManager
}

type sessionColumns struct {
	TableName string
	SessionID string
	ChartID   string
	Language  string
	CreatedAt string
}

type turnColumns struct {
	TableName string
	ID        string
	SessionID string
	Seq       string
	Role      string
	Content   string
	CreatedAt string
}

type Repository struct {
	db       DB
	Log      *slog.Logger
	sessions sessionColumns
	turns    turnColumns
}

// New создаёт репозиторий стенограмм чата
func New(db DB, log *slog.Logger) ports.ITranscriptRepo {
	return &Repository{
		db:  db,
		Log: log,
		sessions: sessionColumns{
			TableName: "chat_sessions",
			SessionID: "session_id",
			ChartID:   "chart_id",
			Language:  "language",
			CreatedAt: "created_at",
		},
		turns: turnColumns{
			TableName: "chat_turns",
			ID:        "id",
			SessionID: "session_id",
			Seq:       "seq",
			Role:      "role",
			Content:   "content",
			CreatedAt: "created_at",
		},
	}
}

// turnAllColumns возвращает строку со всеми колонками реплики
func (r *Repository) turnAllColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s",
		r.turns.ID,
		r.turns.SessionID,
		r.turns.Seq,
		r.turns.Role,
		r.turns.Content,
		r.turns.CreatedAt)
}

func (r *Repository) insertSessionQuery() string {
	return fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4) ON CONFLICT (%s) DO NOTHING`,
		r.sessions.TableName,
		r.sessions.SessionID,
		r.sessions.ChartID,
		r.sessions.Language,
		r.sessions.CreatedAt,
		r.sessions.SessionID)
}

// CreateSession регистрирует сессию; повторная регистрация не является ошибкой
func (r *Repository) CreateSession(ctx context.Context, session *domain.ChatSessionRecord) error {
	err := r.db.Exec(ctx, r.insertSessionQuery(),
		session.SessionID,
		session.ChartID,
		session.Language,
		session.CreatedAt)
	if err != nil {
		r.Log.Error("failed to create chat session",
			"error", err,
			"session_id", session.SessionID)
		return fmt.Errorf("failed to create chat session: %w", err)
	}
	r.Log.Debug("chat session created", "session_id", session.SessionID)
	return nil
}

// GetSession возвращает запись о сессии или domain.ErrSessionNotFound
func (r *Repository) GetSession(ctx context.Context, sessionID string) (*domain.ChatSessionRecord, error) {
	var session domain.ChatSessionRecord
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		r.sessions.SessionID,
		r.sessions.ChartID,
		r.sessions.Language,
		r.sessions.CreatedAt,
		r.sessions.TableName,
		r.sessions.SessionID)
	if err := r.db.Get(ctx, &session, query, sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("chat session %s: %w", sessionID, domain.ErrSessionNotFound)
		}
		r.Log.Error("failed to get chat session",
			"error", err,
			"session_id", sessionID)
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}
	return &session, nil
}

// AppendTurn добавляет реплику; сессия создаётся в той же транзакции, если её ещё нет
func (r *Repository) AppendTurn(ctx context.Context, turn *domain.ConversationTurn) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx persistence.Transaction) error {
		if err := tx.Exec(ctx, r.insertSessionQuery(),
			turn.SessionID, nil, domain.LanguageEnglish, turn.CreatedAt); err != nil {
			return fmt.Errorf("ensure session: %w", err)
		}

		query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6)`,
			r.turns.TableName,
			r.turnAllColumns())
		if err := tx.Exec(ctx, query,
			turn.ID,
			turn.SessionID,
			turn.Seq,
			turn.Role,
			turn.Content,
			turn.CreatedAt); err != nil {
			return fmt.Errorf("insert turn: %w", err)
		}
		return nil
	})
	if err != nil {
		r.Log.Error("failed to append chat turn",
			"error", err,
			"session_id", turn.SessionID,
			"seq", turn.Seq)
		return fmt.Errorf("failed to append chat turn: %w", err)
	}
	return nil
}

// ListTurns возвращает реплики сессии в порядке добавления
func (r *Repository) ListTurns(ctx context.Context, sessionID string) ([]domain.ConversationTurn, error) {
	var turns []domain.ConversationTurn
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		r.turnAllColumns(),
		r.turns.TableName,
		r.turns.SessionID,
		r.turns.Seq)
	if err := r.db.Select(ctx, &turns, query, sessionID); err != nil {
		r.Log.Error("failed to list chat turns",
			"error", err,
			"session_id", sessionID)
		return nil, fmt.Errorf("failed to list chat turns: %w", err)
	}
	r.Log.Debug("chat turns retrieved", "session_id", sessionID, "count", len(turns))
	return turns, nil
}

// DeleteSession удаляет сессию вместе с репликами
func (r *Repository) DeleteSession(ctx context.Context, sessionID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		r.sessions.TableName,
		r.sessions.SessionID)
	affected, err := r.db.ExecWithResult(ctx, query, sessionID)
	if err != nil {
		r.Log.Error("failed to delete chat session",
			"error", err,
			"session_id", sessionID)
		return fmt.Errorf("failed to delete chat session: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("chat session %s: %w", sessionID, domain.ErrSessionNotFound)
	}
	return nil
}
