package inmemory

import (
	"sync"

	"github.com/admin/jyotish/vedic-client/internal/ports/cache"
	"github.com/google/uuid"
)

// SlotTracker in-memory реализация учёта последних request_id по слотам
type SlotTracker struct {
	mu            sync.RWMutex
	lastRequestID map[string]uuid.UUID // slot -> request_id; только запросы в полёте
}

func NewSlotTracker() cache.ISlotTracker {
	return &SlotTracker{
		lastRequestID: make(map[string]uuid.UUID),
	}
}

// Begin регистрирует новый запрос для слота; предыдущий запрос становится устаревшим
func (t *SlotTracker) Begin(slot string) uuid.UUID {
	requestID := uuid.New()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastRequestID[slot] = requestID
	return requestID
}

// IsLatest проверяет, является ли request_id последним для слота
func (t *SlotTracker) IsLatest(slot string, requestID uuid.UUID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	lastID, exists := t.lastRequestID[slot]
	return exists && lastID == requestID
}

// Finish удаляет слот после завершения запроса, если его не перехватил более новый
func (t *SlotTracker) Finish(slot string, requestID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.lastRequestID[slot] == requestID {
		delete(t.lastRequestID, slot)
	}
}

// Len число занятых слотов
func (t *SlotTracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.lastRequestID)
}

// Reset сбрасывает слот: любой запрос в полёте больше не будет применён
func (t *SlotTracker) Reset(slot string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.lastRequestID, slot)
}
