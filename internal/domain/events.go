package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventChartComputed    EventType = "chart.computed"
	EventMatchingComputed EventType = "matching.computed"
	EventChatTurn         EventType = "chat.turn"
)

// ReportEvent событие для аналитики, публикуется после успешного действия
type ReportEvent struct {
	ID         uuid.UUID         `json:"id"`
	Type       EventType         `json:"type"`
	ObjectID   string            `json:"object_id"`
	Attributes map[string]string `json:"attributes,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}
