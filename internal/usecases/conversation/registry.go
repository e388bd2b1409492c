package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/ports/kafka"
	"github.com/admin/jyotish/vedic-client/internal/ports/repository"
)

const (
	DefaultMaxSessions = 1024
	DefaultSessionTTL  = 12 * time.Hour
)

// Registry держит открытые сессии процесса. Сессии вытесняются по размеру
// и по времени простоя; вытесненную сессию можно поднять через Resume.
type Registry struct {
	assistant Assistant
	store     repository.ITranscriptRepo
	events    kafka.IEventPublisher
	log       *slog.Logger

	maxSessions int
	sessionTTL  time.Duration

	// mu делает атомарными проверку и добавление в Resume
	mu       sync.Mutex
	sessions *expirable.LRU[string, *Session]
}

type RegistryOption func(*Registry)

// WithSessionLimit задаёт ёмкость реестра и время жизни простаивающей сессии
func WithSessionLimit(size int, ttl time.Duration) RegistryOption {
	return func(r *Registry) {
		if size > 0 {
			r.maxSessions = size
		}
		if ttl > 0 {
			r.sessionTTL = ttl
		}
	}
}

// NewRegistry создаёт реестр; store и events могут быть nil
func NewRegistry(assistant Assistant, store repository.ITranscriptRepo, events kafka.IEventPublisher, log *slog.Logger, opts ...RegistryOption) *Registry {
	r := &Registry{
		assistant:   assistant,
		store:       store,
		events:      events,
		log:         log.With("component", "conversation"),
		maxSessions: DefaultMaxSessions,
		sessionTTL:  DefaultSessionTTL,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.sessions = expirable.NewLRU[string, *Session](r.maxSessions, r.onEvict, r.sessionTTL)
	return r
}

func (r *Registry) onEvict(id string, _ *Session) {
	r.log.Debug("chat session evicted from memory", "session_id", id)
}

// Len число сессий в памяти
func (r *Registry) Len() int {
	return r.sessions.Len()
}

func (r *Registry) options(lang domain.Language) []Option {
	return []Option{
		WithStore(r.store),
		WithPublisher(r.events),
		WithLogger(r.log),
		WithLanguage(lang),
	}
}

// Create открывает новую сессию и регистрирует её в хранилище
func (r *Registry) Create(ctx context.Context, chartID *string, lang domain.Language) *Session {
	s := Start(r.assistant, chartID, r.options(lang)...)

	r.mu.Lock()
	r.sessions.Add(s.ID(), s)
	r.mu.Unlock()

	if r.store != nil {
		rec := &domain.ChatSessionRecord{
			SessionID: s.ID(),
			ChartID:   chartID,
			Language:  lang,
			CreatedAt: s.createdAt,
		}
		if err := r.store.CreateSession(ctx, rec); err != nil {
			r.log.Warn("failed to store chat session", "error", err, "session_id", s.ID())
		}
	}

	r.log.Info("chat session started", "session_id", s.ID(), "has_chart", chartID != nil)
	return s
}

// Get возвращает открытую сессию и продлевает её время жизни
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
	}
	r.sessions.Add(id, s)
	return s, nil
}

// Resume возвращает открытую сессию или поднимает её по идентификатору из истории
func (r *Registry) Resume(ctx context.Context, id string, lang domain.Language) (*Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("empty session id: %w", domain.ErrSessionNotFound)
	}
	if s, err := r.Get(id); err == nil {
		return s, nil
	}

	s := Start(r.assistant, r.storedChartID(ctx, id), append(r.options(lang), withID(id))...)
	restored, err := s.Restore(ctx)
	if err != nil {
		return nil, fmt.Errorf("resume session %s: %w", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.sessions.Get(id); ok {
		return existing, nil
	}
	r.sessions.Add(id, s)
	r.log.Info("chat session resumed", "session_id", id, "turns", restored, "has_chart", s.ChartID() != nil)
	return s, nil
}

// storedChartID карта сессии из хранилища; nil, если сессия там не найдена
func (r *Registry) storedChartID(ctx context.Context, id string) *string {
	if r.store == nil {
		return nil
	}
	rec, err := r.store.GetSession(ctx, id)
	switch {
	case err == nil:
		return rec.ChartID
	case errors.Is(err, domain.ErrSessionNotFound):
	default:
		r.log.Warn("failed to load stored chat session", "error", err, "session_id", id)
	}
	return nil
}

// Delete закрывает сессию и удаляет её стенограмму из хранилища.
// Ответ ассистента, который придёт позже, будет отброшен.
func (r *Registry) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	s, open := r.sessions.Peek(id)
	r.sessions.Remove(id)
	r.mu.Unlock()

	if open {
		s.Close()
	}

	if r.store != nil {
		err := r.store.DeleteSession(ctx, id)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, domain.ErrSessionNotFound):
			if open {
				return nil
			}
			return err
		default:
			r.log.Warn("failed to delete stored chat session", "error", err, "session_id", id)
		}
	}

	if !open {
		return fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
	}
	return nil
}
