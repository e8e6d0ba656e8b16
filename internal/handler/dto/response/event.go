package response

import (
	"time"

	"drop-arbiter/internal/domain/event"

	"github.com/google/uuid"
)

type EventResponse struct {
	ID        uuid.UUID     `json:"id"`
	Type      string        `json:"type"`
	Actor     string        `json:"actor"`
	Payload   event.Payload `json:"payload"`
	CreatedAt time.Time     `json:"created_at"`
}

func FromEvent(e event.Event) EventResponse {
	return EventResponse{
		ID:        e.ID,
		Type:      string(e.Type),
		Actor:     e.Actor,
		Payload:   e.Payload,
		CreatedAt: e.CreatedAt,
	}
}
