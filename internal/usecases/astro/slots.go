package astro

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/admin/jyotish/vedic-client/internal/domain"
)

type formKey struct{}

// WithForm привязывает запросы к форме клиента. Слоты результатов ведутся
// отдельно для каждой формы, поэтому запросы разных клиентов не вытесняют
// друг друга. Без формы запрос не участвует в учёте слотов.
func WithForm(ctx context.Context, formID string) context.Context {
	return context.WithValue(ctx, formKey{}, strings.TrimSpace(formID))
}

// FormFrom возвращает форму, заданную через WithForm
func FormFrom(ctx context.Context) string {
	formID, _ := ctx.Value(formKey{}).(string)
	return formID
}

// SlotKey ключ слота в трекере
func SlotKey(view, formID string) string {
	return view + ":" + formID
}

// slotTicket запрос, занявший слот
type slotTicket struct {
	view      string
	key       string // пустой, если запрос без формы
	requestID uuid.UUID
}

func (s *Service) beginSlot(ctx context.Context, view string) slotTicket {
	formID := FormFrom(ctx)
	if formID == "" {
		return slotTicket{view: view, requestID: uuid.New()}
	}
	key := SlotKey(view, formID)
	return slotTicket{view: view, key: key, requestID: s.Slots.Begin(key)}
}

// finishSlot освобождает слот после завершения запроса
func (s *Service) finishSlot(t slotTicket) {
	if t.key != "" {
		s.Slots.Finish(t.key, t.requestID)
	}
}

// applyIfLatest проверяет, что запрос всё ещё последний для своего слота
func (s *Service) applyIfLatest(t slotTicket) error {
	if t.key == "" || s.Slots.IsLatest(t.key, t.requestID) {
		return nil
	}
	if s.Metrics != nil {
		s.Metrics.IncStaleResult(t.view)
	}
	s.Log.Info("stale result dropped", "view", t.view, "slot", t.key)
	return fmt.Errorf("%s: %w", t.view, domain.ErrStaleResult)
}

// ResetView сбрасывает слот формы: ответ на уже отправленный запрос будет отброшен
func (s *Service) ResetView(view, formID string) {
	formID = strings.TrimSpace(formID)
	if formID == "" {
		return
	}
	s.Slots.Reset(SlotKey(view, formID))
	s.Log.Debug("view reset", "view", view, "form_id", formID)
}
