package cache

import "github.com/google/uuid"

// ISlotTracker хранит id последнего запроса для каждого слота результата.
// Слот это пара view и форма клиента. Результат применяется, только если его
// запрос всё ещё последний для слота.
type ISlotTracker interface {
	Begin(slot string) uuid.UUID
	IsLatest(slot string, requestID uuid.UUID) bool
	// Finish освобождает слот, если requestID всё ещё последний в нём
	Finish(slot string, requestID uuid.UUID)
	Reset(slot string)
}
