package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/ports/kafka"
	"github.com/admin/jyotish/vedic-client/internal/ports/repository"
)

const sessionIDPrefix = "session_"

// Assistant внешний ИИ-астролог
type Assistant interface {
	Chat(ctx context.Context, message, sessionID string, chartID *string) (string, error)
	ChatHistory(ctx context.Context, sessionID string) ([]domain.ChatHistoryRecord, error)
}

// Session диалог с ассистентом: стенограмма только дополняется, отправки идут по одной
type Session struct {
	id        string
	chartID   *string
	lang      domain.Language
	createdAt time.Time

	assistant Assistant
	store     repository.ITranscriptRepo
	events    kafka.IEventPublisher
	log       *slog.Logger
	now       func() time.Time

	mu       sync.Mutex
	turns    []domain.ConversationTurn
	inFlight bool
	closed   bool

	// persistMu упорядочивает записи в хранилище относительно close
	persistMu sync.Mutex
}

type Option func(*Session)

// WithStore сохраняет реплики в хранилище стенограмм
func WithStore(store repository.ITranscriptRepo) Option {
	return func(s *Session) { s.store = store }
}

// WithPublisher публикует событие chat.turn после каждого ответа
func WithPublisher(events kafka.IEventPublisher) Option {
	return func(s *Session) { s.events = events }
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Session) { s.log = log }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func WithLanguage(lang domain.Language) Option {
	return func(s *Session) { s.lang = lang }
}

func withID(id string) Option {
	return func(s *Session) { s.id = id }
}

// NewSessionID генерирует идентификатор вида session_<uuid>
func NewSessionID() string {
	return sessionIDPrefix + uuid.NewString()
}

// Start открывает новую сессию; chartID может быть nil
func Start(assistant Assistant, chartID *string, opts ...Option) *Session {
	s := &Session{
		chartID:   chartID,
		lang:      domain.LanguageEnglish,
		assistant: assistant,
		log:       slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = NewSessionID()
	}
	s.createdAt = s.now()
	s.log = s.log.With("session_id", s.id)
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) ChartID() *string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chartID
}

func (s *Session) Language() domain.Language {
	return s.lang
}

// Turns возвращает копию стенограммы
func (s *Session) Turns() []domain.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ConversationTurn, len(s.turns))
	copy(out, s.turns)
	return out
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// InFlight сообщает, ждёт ли сессия ответа ассистента
func (s *Session) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Send отправляет реплику пользователя. Реплика пользователя остаётся в стенограмме
// даже при ошибке, реплика ассистента добавляется только при успехе.
// Ответ, пришедший после закрытия сессии, отбрасывается с ErrStaleResult.
func (s *Session) Send(ctx context.Context, text string) (string, error) {
	message := strings.TrimSpace(text)
	if message == "" {
		return "", domain.ErrEmptyMessage
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return "", fmt.Errorf("session %s: %w", s.id, domain.ErrSessionNotFound)
	}
	if s.inFlight {
		s.mu.Unlock()
		return "", domain.ErrRequestInFlight
	}
	s.inFlight = true
	userTurn := s.appendLocked(domain.RoleUser, message)
	chartID := s.chartID
	s.mu.Unlock()

	s.persist(ctx, userTurn)

	reply, err := s.assistant.Chat(ctx, message, s.id, chartID)

	s.mu.Lock()
	s.inFlight = false
	if s.closed {
		s.mu.Unlock()
		s.log.Info("dropping assistant reply for closed session")
		return "", fmt.Errorf("chat: %w", domain.ErrStaleResult)
	}
	if err != nil {
		s.mu.Unlock()
		s.log.Warn("assistant request failed", "error", err)
		return "", fmt.Errorf("chat: %w", err)
	}
	assistantTurn := s.appendLocked(domain.RoleAssistant, reply)
	s.mu.Unlock()

	s.persist(ctx, assistantTurn)
	s.publish(ctx, assistantTurn)

	return reply, nil
}

func (s *Session) appendLocked(role domain.Role, content string) domain.ConversationTurn {
	turn := domain.ConversationTurn{
		ID:        uuid.New(),
		SessionID: s.id,
		Seq:       len(s.turns) + 1,
		Role:      role,
		Content:   content,
		CreatedAt: s.now(),
	}
	s.turns = append(s.turns, turn)
	return turn
}

// Close закрывает сессию: дальнейшие Send отклоняются, а ответы в полёте
// не попадают ни в стенограмму, ни в хранилище. Возвращается после того,
// как завершилась текущая запись в хранилище.
func (s *Session) Close() {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) persist(ctx context.Context, turn domain.ConversationTurn) {
	if s.store == nil {
		return
	}
	s.persistMu.Lock()
	defer s.persistMu.Unlock()
	if s.Closed() {
		return
	}
	if err := s.store.AppendTurn(ctx, &turn); err != nil {
		s.log.Warn("failed to persist chat turn", "error", err, "seq", turn.Seq)
	}
}

func (s *Session) publish(ctx context.Context, turn domain.ConversationTurn) {
	if s.events == nil {
		return
	}
	attrs := map[string]string{
		"seq":      fmt.Sprint(turn.Seq),
		"language": string(s.lang),
	}
	if chartID := s.ChartID(); chartID != nil {
		attrs["chart_id"] = *chartID
	}
	event := domain.ReportEvent{
		ID:         uuid.New(),
		Type:       domain.EventChatTurn,
		ObjectID:   s.id,
		Attributes: attrs,
		CreatedAt:  turn.CreatedAt,
	}
	if err := s.events.PublishEvent(ctx, event); err != nil && !domain.IsBusinessError(err) {
		s.log.Warn("failed to publish chat event", "error", err)
	}
}

// Restore поднимает стенограмму, если локально она пуста: сначала из хранилища,
// затем из истории внешнего сервиса. Возвращает число восстановленных реплик.
func (s *Session) Restore(ctx context.Context) (int, error) {
	if s.Len() > 0 {
		return 0, nil
	}

	turns, chartID, err := s.loadTurns(ctx)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chartID == nil {
		s.chartID = chartID
	}
	if len(s.turns) > 0 || s.inFlight {
		return 0, nil
	}
	s.turns = turns
	return len(turns), nil
}

// loadTurns возвращает реплики и карту, известную истории сервиса (если есть)
func (s *Session) loadTurns(ctx context.Context) ([]domain.ConversationTurn, *string, error) {
	if s.store != nil {
		stored, err := s.store.ListTurns(ctx, s.id)
		if err != nil {
			s.log.Warn("failed to load stored transcript, falling back to service history", "error", err)
		} else if len(stored) > 0 {
			return stored, nil, nil
		}
	}

	history, err := s.assistant.ChatHistory(ctx, s.id)
	if err != nil {
		return nil, nil, fmt.Errorf("chat history: %w", err)
	}
	return s.fromHistory(history), historyChartID(history), nil
}

func historyChartID(history []domain.ChatHistoryRecord) *string {
	for _, rec := range history {
		if rec.ChartID != nil && *rec.ChartID != "" {
			id := *rec.ChartID
			return &id
		}
	}
	return nil
}

// fromHistory разворачивает пары вопрос/ответ сервиса в реплики
func (s *Session) fromHistory(history []domain.ChatHistoryRecord) []domain.ConversationTurn {
	turns := make([]domain.ConversationTurn, 0, len(history)*2)
	for _, rec := range history {
		at := s.parseTimestamp(rec.Timestamp)
		if rec.UserMessage != "" {
			turns = append(turns, domain.ConversationTurn{
				ID: uuid.New(), SessionID: s.id, Seq: len(turns) + 1,
				Role: domain.RoleUser, Content: rec.UserMessage, CreatedAt: at,
			})
		}
		if rec.AIResponse != "" {
			turns = append(turns, domain.ConversationTurn{
				ID: uuid.New(), SessionID: s.id, Seq: len(turns) + 1,
				Role: domain.RoleAssistant, Content: rec.AIResponse, CreatedAt: at,
			})
		}
	}
	return turns
}

func (s *Session) parseTimestamp(raw string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return s.now()
}
